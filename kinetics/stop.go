package kinetics

import "github.com/foldwright/kinetics/stopcond"

// complexView adapts an Entry's wrapped StrandComplex to stopcond.ComplexView.
type complexView struct {
	c interface {
		StrandIDs() []int
		GetStructure() string
		CheckIDBound(strandID int) bool
		CheckIDList(ids []int, count int) bool
	}
}

func (v complexView) StrandIDs() []int                     { return v.c.StrandIDs() }
func (v complexView) GetStructure() string                 { return v.c.GetStructure() }
func (v complexView) CheckIDBound(id int) bool             { return v.c.CheckIDBound(id) }
func (v complexView) CheckIDList(ids []int, n int) bool    { return v.c.CheckIDList(ids, n) }

// CheckStopComplexList evaluates spec against the current population
// (spec.md §6 Driver API checkStopComplexList). It returns an error only if
// spec itself is malformed (more than one BOUND clause); a well-formed spec
// that simply doesn't match returns (false, nil).
func (l *List) CheckStopComplexList(spec stopcond.Spec) (bool, error) {
	if err := spec.Validate(); err != nil {
		return false, err
	}
	views := make([]stopcond.ComplexView, len(l.order))
	for i, h := range l.order {
		views[i] = complexView{c: l.entries[h].Complex}
	}
	return stopcond.Evaluate(spec, views), nil
}
