package basepair_test

import (
	"testing"

	"github.com/foldwright/kinetics/basepair"
	"github.com/stretchr/testify/assert"
)

func TestPairWatsonCrick(t *testing.T) {
	assert.True(t, basepair.Pair(basepair.A, basepair.T, false))
	assert.True(t, basepair.Pair(basepair.C, basepair.G, false))
	assert.False(t, basepair.Pair(basepair.A, basepair.C, false))
}

func TestPairWobble(t *testing.T) {
	assert.False(t, basepair.Pair(basepair.G, basepair.T, false))
	assert.True(t, basepair.Pair(basepair.G, basepair.T, true))
	assert.True(t, basepair.Pair(basepair.T, basepair.G, true))
}

func TestMultiCountSymmetric(t *testing.T) {
	// AAAA vs TTTT: 4*4 = 16 legal pairings either direction.
	var a, b basepair.Counter
	for i := 0; i < 4; i++ {
		a.Increment(basepair.A)
		b.Increment(basepair.T)
	}
	assert.Equal(t, 16, a.MultiCount(b, false))
	assert.Equal(t, 16, b.MultiCount(a, false))
}

func TestMultiCountNoWobble(t *testing.T) {
	var a, b basepair.Counter
	a.Increment(basepair.G)
	b.Increment(basepair.T)
	assert.Equal(t, 0, a.MultiCount(b, false))
	assert.Equal(t, 1, a.MultiCount(b, true))
}

func TestAddSubRoundTrip(t *testing.T) {
	var total basepair.Counter
	c1 := basepair.Counter{Count: [4]int{2, 0, 1, 3}}
	c2 := basepair.Counter{Count: [4]int{1, 1, 0, 0}}
	total.AddFrom(c1)
	total.AddFrom(c2)
	total.SubFrom(c1)
	assert.Equal(t, c2, total)
}
