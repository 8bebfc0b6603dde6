package isaac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMixGoldenRatioReproducesIV(t *testing.T) {
	const gold = 0x9e3779b9
	p := [8]uint32{gold, gold, gold, gold, gold, gold, gold, gold}
	for i := 0; i < 4; i++ {
		p = Mix(p)
	}
	assert.Equal(t, initialIV, p)
}

func TestMixKnownAnswer(t *testing.T) {
	// First group of a mixing pass over an all-zero main array.
	want := [8]uint32{
		0x06cca0e5, 0x7bcc7892, 0x1ab2de71, 0x2bfc6cb4,
		0x55056274, 0xaf9b10f9, 0x13a1c75c, 0x10239bf4,
	}
	assert.Equal(t, want, Mix(initialIV))
}

func TestMixIsPure(t *testing.T) {
	in := [8]uint32{1, 2, 3, 4, 5, 6, 7, 8}
	orig := in
	first := Mix(in)
	second := Mix(in)

	assert.Equal(t, orig, in)
	assert.Equal(t, first, second)
	assert.NotEqual(t, in, first)
}

func TestMixStateCarriesIV(t *testing.T) {
	s := NewState()
	s.mixState()

	require.Equal(t, Mix(initialIV), [8]uint32(s.mm[0:8]))
	assert.Equal(t, s.iv, [8]uint32(s.mm[Words-8:]))
}
