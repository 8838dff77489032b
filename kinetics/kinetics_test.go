package kinetics_test

import (
	"testing"

	"github.com/foldwright/kinetics/kinetics"
	"github.com/foldwright/kinetics/strand"
	"github.com/foldwright/kinetics/stopcond"
	"github.com/stretchr/testify/assert"
)

func TestSingleHairpinUnimolecular(t *testing.T) {
	em := strand.SimpleModel{Volume: 1.0, Assoc: 1.0, Join: 1.0}
	population := kinetics.NewList(em, false)
	hairpin := strand.NewRefComplex(0, "h1", "ACCGGGGGT", em, false, 1.0, 0.5)
	population.AddComplex(hairpin)
	population.InitializeList()

	total := population.GetTotalFlux()
	assert.Equal(t, 0.0, population.JoinRate())
	assert.Greater(t, total, 0.0)

	population.DoBasicChoice(0, 1.0)
	assert.Equal(t, 1, population.Count())
}

func TestTwoComplexesJoinFlux(t *testing.T) {
	em := strand.SimpleModel{Join: 1.0}
	population := kinetics.NewList(em, false)
	a := strand.NewRefComplex(0, "a", "AAAA", em, false, 1.0, 1.0)
	b := strand.NewRefComplex(1, "b", "TTTT", em, false, 1.0, 1.0)
	population.AddComplex(a)
	population.AddComplex(b)
	population.InitializeList()

	flux := population.GetJoinFlux()
	assert.Equal(t, 16.0, flux)

	population.GetTotalFlux()
	population.DoJoinChoice(0)
	assert.Equal(t, 1, population.Count())
}

func TestThreeComplexesFluxAdditivity(t *testing.T) {
	em := strand.SimpleModel{Join: 1.0}
	population := kinetics.NewList(em, false)
	population.AddComplex(strand.NewRefComplex(0, "a", "AAAA", em, false, 1.0, 1.0))
	population.AddComplex(strand.NewRefComplex(1, "b", "TTTT", em, false, 1.0, 1.0))
	population.AddComplex(strand.NewRefComplex(2, "c", "GGGG", em, false, 1.0, 1.0))
	population.InitializeList()

	assert.Equal(t, 16.0, population.GetJoinFlux())
}

func TestEmptyListHasZeroFlux(t *testing.T) {
	em := strand.SimpleModel{Join: 1.0}
	population := kinetics.NewList(em, false)
	assert.Equal(t, 0.0, population.GetTotalFlux())
}

func TestSingleComplexJoinIsNoop(t *testing.T) {
	em := strand.SimpleModel{Join: 1.0}
	population := kinetics.NewList(em, false)
	population.AddComplex(strand.NewRefComplex(0, "a", "AAAA", em, false, 1.0, 1.0))
	population.InitializeList()
	assert.Equal(t, 0.0, population.GetJoinFlux())
	population.DoJoinChoice(0) // no-op, must not panic
	assert.Equal(t, 1, population.Count())
}

func TestTotalFluxIdempotent(t *testing.T) {
	em := strand.SimpleModel{Join: 1.0}
	population := kinetics.NewList(em, false)
	population.AddComplex(strand.NewRefComplex(0, "a", "AAAA", em, false, 1.0, 1.0))
	population.AddComplex(strand.NewRefComplex(1, "b", "TTTT", em, false, 1.0, 1.0))
	population.InitializeList()

	first := population.GetTotalFlux()
	second := population.GetTotalFlux()
	assert.InDelta(t, first, second, 1e-12*first)
}

func TestCheckStopDisassoc(t *testing.T) {
	em := strand.SimpleModel{Join: 1.0}
	population := kinetics.NewList(em, false)
	population.AddComplex(strand.NewRefComplex(1, "a", "AAAA", em, false, 1.0, 1.0))
	population.AddComplex(strand.NewRefComplex(2, "b", "TTTT", em, false, 1.0, 1.0))
	population.InitializeList()

	ok, err := population.CheckStopComplexList(stopcond.Spec{Clauses: []stopcond.Clause{
		{Type: stopcond.Disassoc, StrandIDs: []int{1}},
	}})
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = population.CheckStopComplexList(stopcond.Spec{Clauses: []stopcond.Clause{
		{Type: stopcond.Disassoc, StrandIDs: []int{1, 2}},
	}})
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestCheckStopRejectsMultipleBound(t *testing.T) {
	em := strand.SimpleModel{Join: 1.0}
	population := kinetics.NewList(em, false)
	population.AddComplex(strand.NewRefComplex(1, "a", "AAAA", em, false, 1.0, 1.0))
	population.InitializeList()

	_, err := population.CheckStopComplexList(stopcond.Spec{Clauses: []stopcond.Clause{
		{Type: stopcond.Bound, StrandIDs: []int{1}},
		{Type: stopcond.Bound, StrandIDs: []int{2}},
	}})
	assert.Error(t, err)
}

func TestSortedEntryIDsIsOrderIndependent(t *testing.T) {
	em := strand.SimpleModel{Join: 1.0}
	population := kinetics.NewList(em, false)
	population.AddComplex(strand.NewRefComplex(0, "a", "AAAA", em, false, 1.0, 1.0))
	population.AddComplex(strand.NewRefComplex(1, "b", "TTTT", em, false, 1.0, 1.0))
	population.AddComplex(strand.NewRefComplex(2, "c", "GGGG", em, false, 1.0, 1.0))
	population.InitializeList()

	assert.Equal(t, []int{0, 1, 2}, population.SortedEntryIDs())
}

func TestGetEnergyVolumeFlag(t *testing.T) {
	em := strand.SimpleModel{Volume: 2.0, Assoc: 3.0, Join: 1.0}
	population := kinetics.NewList(em, false)
	a := strand.NewRefComplex(1, "a", "AAAA", em, false, 1.0, 1.0)
	b := strand.NewRefComplex(2, "b", "TTTT", em, false, 1.0, 1.0)
	population.AddComplex(a)
	population.AddComplex(b)
	population.InitializeList()
	population.GetTotalFlux()
	population.DoJoinChoice(0)

	full := population.GetEnergy(0x03)
	noVolume := population.GetEnergy(0x02)
	noAssoc := population.GetEnergy(0x01)
	neither := population.GetEnergy(0x00)

	assert.InDelta(t, full[0]-2.0, noVolume[0], 1e-9)
	assert.InDelta(t, full[0]-3.0, noAssoc[0], 1e-9)
	assert.InDelta(t, full[0]-5.0, neither[0], 1e-9)
}
