package stopcond_test

import (
	"testing"

	"github.com/foldwright/kinetics/stopcond"
	"github.com/stretchr/testify/assert"
)

type fakeComplex struct {
	ids       []int
	structure string
	bound     map[int]bool
}

func (f fakeComplex) StrandIDs() []int { return f.ids }
func (f fakeComplex) GetStructure() string { return f.structure }
func (f fakeComplex) CheckIDBound(id int) bool { return f.bound[id] }
func (f fakeComplex) CheckIDList(ids []int, count int) bool {
	if len(f.ids) != count || len(ids) != count {
		return false
	}
	n := len(ids)
	for shift := 0; shift < n; shift++ {
		match := true
		for k := 0; k < n; k++ {
			if f.ids[(k+shift)%n] != ids[k] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func TestDisassoc(t *testing.T) {
	pop := []stopcond.ComplexView{
		fakeComplex{ids: []int{1}},
		fakeComplex{ids: []int{2}},
	}
	assert.True(t, stopcond.Evaluate(stopcond.Spec{Clauses: []stopcond.Clause{
		{Type: stopcond.Disassoc, StrandIDs: []int{1}},
	}}, pop))
	assert.False(t, stopcond.Evaluate(stopcond.Spec{Clauses: []stopcond.Clause{
		{Type: stopcond.Disassoc, StrandIDs: []int{1, 2}},
	}}, pop))
}

func TestStructureCircularRotation(t *testing.T) {
	pop := []stopcond.ComplexView{
		fakeComplex{ids: []int{2, 3, 1}, structure: "((.))"},
	}
	assert.True(t, stopcond.Evaluate(stopcond.Spec{Clauses: []stopcond.Clause{
		{Type: stopcond.Structure, StrandIDs: []int{1, 2, 3}, Structure: "((.))"},
	}}, pop))
}

func TestBoundRequiresAllListed(t *testing.T) {
	pop := []stopcond.ComplexView{
		fakeComplex{bound: map[int]bool{1: true}},
	}
	assert.True(t, stopcond.Evaluate(stopcond.Spec{Clauses: []stopcond.Clause{
		{Type: stopcond.Bound, StrandIDs: []int{1}},
	}}, pop))
	assert.False(t, stopcond.Evaluate(stopcond.Spec{Clauses: []stopcond.Clause{
		{Type: stopcond.Bound, StrandIDs: []int{1, 2}},
	}}, pop))
}

func TestValidateRejectsMultipleBound(t *testing.T) {
	spec := stopcond.Spec{Clauses: []stopcond.Clause{
		{Type: stopcond.Bound, StrandIDs: []int{1}},
		{Type: stopcond.Bound, StrandIDs: []int{2}},
	}}
	assert.Error(t, spec.Validate())
}

func TestLooseMatchWildcardAbsorbsMismatch(t *testing.T) {
	assert.True(t, stopcond.LooseMatch("((..))", "((.*))", 0))
}

func TestLooseMatchToleranceExceeded(t *testing.T) {
	assert.False(t, stopcond.LooseMatch("((..))", "((.)).", 0))
}

func TestCountMatchNoWildcard(t *testing.T) {
	// A single literal mismatch with zero tolerance fails.
	assert.False(t, stopcond.CountMatch("....", "(..)", 0))
	assert.True(t, stopcond.CountMatch("....", "(..)", 2))
}

func TestMoreClausesThanComplexesFails(t *testing.T) {
	pop := []stopcond.ComplexView{fakeComplex{ids: []int{1}}}
	assert.False(t, stopcond.Evaluate(stopcond.Spec{Clauses: []stopcond.Clause{
		{Type: stopcond.Disassoc, StrandIDs: []int{1}},
		{Type: stopcond.Disassoc, StrandIDs: []int{2}},
	}}, pop))
}
