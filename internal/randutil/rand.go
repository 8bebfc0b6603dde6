// Package randutil builds ISAAC streams and math/rand/v2 generators from the
// seeds callers usually have at hand.
package randutil

import (
	"encoding/binary"
	rand "math/rand/v2"

	"github.com/lox/isaacrand/isaac"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand backed by ISAAC and seeded deterministically from
// the provided int64.
func New(seed int64) *rand.Rand {
	return rand.New(NewStream(seed))
}

// NewStream returns an ISAAC stream seeded from an int64. The seed is spread
// over two splitmix outputs so nearby seeds give unrelated streams.
func NewStream(seed int64) *isaac.Stream {
	u := uint64(seed)
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], mix(u))
	binary.LittleEndian.PutUint64(buf[8:], mix(u+goldenRatio64))
	return FromBytes(buf[:])
}

// FromBytes returns a stream seeded only from p. Identical p gives an
// identical stream on every platform.
func FromBytes(p []byte) *isaac.Stream {
	state := isaac.NewState()
	isaac.Seed(state, isaac.SeedBytes(p))
	return isaac.NewStream(state)
}

// FromSystem returns a stream seeded from process identity, time and the
// configured entropy devices. cfg may be nil.
func FromSystem(cfg *isaac.EntropyConfig) *isaac.Stream {
	state := isaac.NewState()
	isaac.Seed(state, isaac.SystemEntropy(cfg)...)
	return isaac.NewStream(state)
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
