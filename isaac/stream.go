package isaac

import "encoding/binary"

// Stream draws words from a State one block at a time. Several streams may
// share a State; callers sharing one across goroutines must serialize access
// (see Locked).
type Stream struct {
	state     *State
	block     [Words]uint32
	remaining int
}

// NewStream returns a Stream over an already seeded state. The first draw
// triggers a refill.
func NewStream(state *State) *Stream {
	return &Stream{state: state}
}

// Uint32 returns the next output word. Words are taken from the end of each
// block first since the later words of a block are slightly better mixed.
func (r *Stream) Uint32() uint32 {
	if r.remaining == 0 {
		r.state.Refill(&r.block)
		r.remaining = Words
	}
	r.remaining--
	return r.block[r.remaining]
}

// Uniform returns a value uniformly distributed over [0, n], inclusive.
func (r *Stream) Uniform(n uint32) uint32 {
	m := n + 1
	if m == 0 {
		return r.Uint32()
	}

	// 2^32 mod m: the low words naive reduction would over-represent.
	lim := -m % m
	for {
		x := r.Uint32()
		if x >= lim {
			return x % m
		}
	}
}

// RejectionLimit returns how many of the 2^32 word values Uniform discards
// when reducing modulo m, i.e. 2^32 mod m. m must be in [1, 2^32].
func RejectionLimit(m uint64) uint32 {
	return uint32((1 << 32) % m)
}

// Remaining reports how many words of the current block are still unread.
func (r *Stream) Remaining() int {
	return r.remaining
}

// Uint64 joins two words, high word first. With it a Stream satisfies
// math/rand/v2.Source.
func (r *Stream) Uint64() uint64 {
	hi := uint64(r.Uint32())
	lo := uint64(r.Uint32())
	return hi<<32 | lo
}

// Read fills p with output words in little-endian order. It always returns
// len(p), nil.
func (r *Stream) Read(p []byte) (int, error) {
	n := len(p)
	for len(p) >= 4 {
		binary.LittleEndian.PutUint32(p, r.Uint32())
		p = p[4:]
	}
	if len(p) > 0 {
		var tail [4]byte
		binary.LittleEndian.PutUint32(tail[:], r.Uint32())
		copy(p, tail[:])
	}
	return n, nil
}
