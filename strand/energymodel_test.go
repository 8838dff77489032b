package strand_test

import (
	"testing"

	"github.com/foldwright/kinetics/strand"
	"github.com/stretchr/testify/assert"
)

func TestEnergyCacheKeyStableAndSensitiveToStructure(t *testing.T) {
	a := strand.EnergyCacheKey("ACGU", "((..))")
	b := strand.EnergyCacheKey("ACGU", "((..))")
	c := strand.EnergyCacheKey("ACGU", "(....)")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestEnergyCacheKeySensitiveToSequence(t *testing.T) {
	a := strand.EnergyCacheKey("ACGU", "......")
	b := strand.EnergyCacheKey("AAAA", "......")
	assert.NotEqual(t, a, b)
}
