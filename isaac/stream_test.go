package isaac

import (
	"math"
	rand "math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStream(seed string) *Stream {
	s := NewState()
	Seed(s, SeedBytes([]byte(seed)))
	return NewStream(s)
}

func TestStreamKnownAnswer(t *testing.T) {
	tests := []struct {
		name  string
		state func() *State
		want  []uint32
	}{
		{
			name:  "zero seed",
			state: zeroSeeded,
			want: []uint32{
				0x182600f3, 0x300b4a8d, 0x301b6622, 0xb08acd21,
				0x296fd679, 0x995206e9, 0xb3ffa8b5, 0x0fc99c24,
			},
		},
		{
			name: "short seed",
			state: func() *State {
				s := NewState()
				Seed(s, SeedBytes([]byte("golden isaac seed")))
				return s
			},
			want: []uint32{
				0x1402dc9f, 0xc108a15e, 0x369dfd28, 0x89efa08c,
				0x9ebba4b1, 0x868b9c7e, 0x45500302, 0x542aae32,
			},
		},
		{
			name: "multi-block seed",
			state: func() *State {
				s := NewState()
				Seed(s, SeedBytes(seedBytes(2000)))
				return s
			},
			want: []uint32{0x552d2cd1, 0x88a04a67, 0x1a58803e, 0x93a38f1d},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewStream(tt.state())
			got := make([]uint32, len(tt.want))
			for i := range got {
				got[i] = r.Uint32()
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStreamAcrossBlocks(t *testing.T) {
	r := NewStream(zeroSeeded())

	var w uint32
	for i := 0; i < Words; i++ {
		w = r.Uint32()
	}
	assert.Equal(t, uint32(0xe76dd339), w, "last word of a block is its first output")

	assert.Equal(t, uint32(0x7a68710f), r.Uint32())
	assert.Equal(t, uint32(0x6554abda), r.Uint32())

	for i := Words + 2; i < 9999; i++ {
		r.Uint32()
	}
	assert.Equal(t, uint32(0x49130ca2), r.Uint32())
}

func TestStreamRemaining(t *testing.T) {
	s := zeroSeeded()
	r := NewStream(s)
	require.Zero(t, r.Remaining())

	r.Uint32()
	assert.Equal(t, Words-1, r.Remaining())
	assert.Equal(t, uint32(1), s.count)

	for i := 0; i < 3*Words-1; i++ {
		r.Uint32()
		require.GreaterOrEqual(t, r.Remaining(), 0)
		require.Less(t, r.Remaining(), Words)
	}
	assert.Zero(t, r.Remaining())
	assert.Equal(t, uint32(3), s.count, "one refill per block")

	r.Uint32()
	assert.Equal(t, uint32(4), s.count)
	assert.Equal(t, Words-1, r.Remaining())
}

func TestStreamDeterminism(t *testing.T) {
	a := seededStream("determinism")
	b := seededStream("determinism")
	c := seededStream("determinism!")

	diverged := false
	for i := 0; i < 5000; i++ {
		x, y, z := a.Uint32(), b.Uint32(), c.Uint32()
		require.Equal(t, x, y, "word %d", i)
		if x != z {
			diverged = true
		}
	}
	assert.True(t, diverged)
}

func TestUniformKnownAnswer(t *testing.T) {
	r := NewStream(zeroSeeded())
	got := make([]uint32, 8)
	for i := range got {
		got[i] = r.Uniform(5)
	}
	assert.Equal(t, []uint32{5, 1, 4, 3, 1, 3, 3, 0}, got)
}

func TestUniformZero(t *testing.T) {
	r := seededStream("zero")
	for i := 0; i < 1000; i++ {
		require.Zero(t, r.Uniform(0))
	}
}

func TestUniformFullRangeNeverRejects(t *testing.T) {
	a := seededStream("full range")
	b := seededStream("full range")
	for i := 0; i < 3*Words; i++ {
		require.Equal(t, b.Uint32(), a.Uniform(math.MaxUint32))
	}
}

func TestUniformRejectsBelowLimit(t *testing.T) {
	// n = 2^31 makes m = 2^31+1 and lim = 2^31-1, so roughly half of all
	// words are rejected; the draws that survive must be consistent with the
	// raw word stream.
	const n = 1 << 31
	m := uint64(n) + 1
	lim := RejectionLimit(m)
	require.Equal(t, uint32(1<<31-1), lim)

	a := seededStream("reject")
	b := seededStream("reject")
	for i := 0; i < 1000; i++ {
		var x uint32
		for {
			x = b.Uint32()
			if x >= lim {
				break
			}
		}
		require.Equal(t, uint32(uint64(x)%m), a.Uniform(n))
	}
}

func TestUniformDistribution(t *testing.T) {
	tests := []struct {
		n      uint32
		trials int
	}{
		{0, 1000},
		{1, 100000},
		{2, 100000},
		{255, 256 * 400},
		{65535, 65536 * 10},
	}

	r := seededStream("distribution")
	for _, tt := range tests {
		counts := make([]int, int(tt.n)+1)
		for i := 0; i < tt.trials; i++ {
			v := r.Uniform(tt.n)
			require.LessOrEqual(t, v, tt.n)
			counts[v]++
		}
		assert.Less(t, chiSquareZ(counts, tt.trials), 5.0, "n=%d", tt.n)
	}
}

func TestUniformWideRanges(t *testing.T) {
	// Too many residues to count individually; bucket into 64 equal slices
	// of [0, n] instead.
	const buckets = 64
	const trials = 64 * 2000

	for _, n := range []uint32{1<<31 - 1, math.MaxUint32} {
		r := seededStream("wide")
		counts := make([]int, buckets)
		width := (uint64(n) + 1) / buckets
		for i := 0; i < trials; i++ {
			counts[uint64(r.Uniform(n))/width]++
		}
		assert.Less(t, chiSquareZ(counts, trials), 5.0, "n=%d", n)
	}
}

// chiSquareZ returns the chi-square statistic of counts against a uniform
// expectation, normalised to a z-score.
func chiSquareZ(counts []int, trials int) float64 {
	k := len(counts)
	if k < 2 {
		return 0
	}
	expected := float64(trials) / float64(k)
	var chi float64
	for _, c := range counts {
		d := float64(c) - expected
		chi += d * d / expected
	}
	df := float64(k - 1)
	return math.Abs(chi-df) / math.Sqrt(2*df)
}

func TestRejectionLimit(t *testing.T) {
	tests := []struct {
		m    uint64
		want uint32
	}{
		{1, 0},
		{2, 0},
		{3, 1},
		{6, 4},
		{256, 0},
		{1<<31 + 1, 1<<31 - 1},
		{1 << 32, 0},
		{1<<32 - 1, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RejectionLimit(tt.m), "m=%d", tt.m)
	}
}

func TestRejectionLimitBounds(t *testing.T) {
	rng := seededStream("bounds")
	for i := 0; i < 10000; i++ {
		m := uint64(rng.Uint32()) + 1
		lim := RejectionLimit(m)
		require.Less(t, uint64(lim), m)
		// Values in [lim, 2^32) split evenly into m residue classes.
		require.Zero(t, ((1<<32)-uint64(lim))%m)
		// Matches the in-sampler expression for m < 2^32.
		if m < 1<<32 {
			mm := uint32(m)
			require.Equal(t, -mm%mm, lim)
		}
	}
}

func TestStreamAsRandSource(t *testing.T) {
	a := rand.New(seededStream("source"))
	b := seededStream("source")

	hi, lo := uint64(b.Uint32()), uint64(b.Uint32())
	assert.Equal(t, hi<<32|lo, a.Uint64())

	perm := rand.New(seededStream("perm")).Perm(52)
	assert.ElementsMatch(t, rand.New(rand.NewPCG(1, 2)).Perm(52), perm)
}

func TestStreamRead(t *testing.T) {
	a := seededStream("read")
	b := seededStream("read")

	buf := make([]byte, 10)
	n, err := a.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	w0, w1, w2 := b.Uint32(), b.Uint32(), b.Uint32()
	assert.Equal(t, []byte{
		byte(w0), byte(w0 >> 8), byte(w0 >> 16), byte(w0 >> 24),
		byte(w1), byte(w1 >> 8), byte(w1 >> 16), byte(w1 >> 24),
		byte(w2), byte(w2 >> 8),
	}, buf)
}
