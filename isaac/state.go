package isaac

const (
	// Log2Words is log2 of the main array length.
	Log2Words = 8
	// Words is the number of 32-bit words in the main array and in each
	// refill block.
	Words = 1 << Log2Words
	// Bytes is the size of the main array's byte view.
	Bytes = Words * 4

	wordMask = Words - 1
)

// initialIV is the golden ratio 0x9e3779b9 in all eight lanes, scrambled by
// four Mix calls.
var initialIV = [8]uint32{
	0x1367df5a, 0x95d90059, 0xc3163e4b, 0x0f421ad8,
	0xd92a4a78, 0xa51a3c49, 0xc4efea1b, 0x30609119,
}

type phase uint8

const (
	phaseSeeding phase = iota
	phaseReady
)

func (p phase) String() string {
	switch p {
	case phaseSeeding:
		return "seeding"
	case phaseReady:
		return "ready"
	default:
		return "unknown"
	}
}

// State is the persistent ISAAC generator state. It is seeded through
// SeedStart, SeedAccumulate and SeedFinish and advanced by Refill.
//
// State is not safe for concurrent use.
type State struct {
	mm [Words]uint32
	iv [8]uint32
	a  uint32
	b  uint32

	phase phase
	// cursor is the byte offset into mm's byte view where the next seed byte
	// lands. Only meaningful while seeding.
	cursor int
	// count is the refill counter. Only meaningful once ready.
	count uint32
}

// NewState returns a State positioned at the start of seeding. Seeding it
// with no data and calling SeedFinish gives the reference ISAAC zero-seed
// generator.
func NewState() *State {
	s := &State{}
	s.SeedStart()
	return s
}

// SeedStart resets s to the beginning of the seeding phase.
func (s *State) SeedStart() {
	s.mm = [Words]uint32{}
	s.iv = initialIV
	s.a, s.b = 0, 0
	s.cursor = 0
	s.count = 0
	s.phase = phaseSeeding
}

// SeedAccumulate XORs p into the main array's byte view at the current
// cursor. Each time a full 1024-byte block has been filled the state is mixed
// and the cursor wraps to zero, so any split of the same bytes across calls
// yields the same state.
func (s *State) SeedAccumulate(p []byte) {
	for len(p) > 0 {
		avail := Bytes - s.cursor
		if len(p) <= avail {
			s.xorBytes(p)
			s.cursor += len(p)
			return
		}
		s.xorBytes(p[:avail])
		p = p[avail:]
		s.mixState()
		s.cursor = 0
	}
}

// Write implements io.Writer over SeedAccumulate so seed material can be fed
// with encoding/binary or io.Copy. It never fails.
func (s *State) Write(p []byte) (int, error) {
	s.SeedAccumulate(p)
	return len(p), nil
}

// SeedFinish runs the two closing mixing passes and readies s for Refill.
func (s *State) SeedFinish() {
	s.mixState()
	s.mixState()
	s.count = 0
	s.cursor = 0
	s.phase = phaseReady
}

// Ready reports whether SeedFinish has run since the last SeedStart.
func (s *State) Ready() bool {
	return s.phase == phaseReady
}

// xorBytes XORs p into mm starting at the cursor. Words are viewed
// little-endian so explicit seeds are portable across hosts.
func (s *State) xorBytes(p []byte) {
	off := s.cursor
	for _, c := range p {
		s.mm[(off>>2)&wordMask] ^= uint32(c) << (uint(off&3) * 8)
		off++
	}
}
