package kinetics

import (
	"github.com/foldwright/kinetics/basepair"
	"github.com/foldwright/kinetics/strand"
)

// ArrheniusTable accumulates, for each ordered pair of half-contexts
// between distinct open loops of distinct complexes, the Arrhenius join
// rate for that pair (spec.md §4.5 "Arrhenius join-flux table"), mirroring
// original_source/state/scomplexlist.cc's arrExtern/computeArrBiRate/
// cycleCrossRateArr/computeCrossRateArr/addExtRate.
type ArrheniusTable struct {
	RateSum float64
	// ByBase buckets the accumulated rate by the first half-context's
	// base identity, matching arrExtern's per-base push in the original.
	ByBase [4]float64
}

func (t *ArrheniusTable) push(rate float64, b basepair.Base) {
	t.RateSum += rate
	t.ByBase[b] += rate
}

// buildArrheniusTable walks every ordered pair of distinct complexes in the
// population and, within each pair, every ordered pair of their open loops'
// half-contexts, accumulating the Arrhenius rate for each legal pairing.
func (l *List) buildArrheniusTable() *ArrheniusTable {
	table := &ArrheniusTable{}
	for i := 0; i < len(l.order); i++ {
		orderingI := l.entries[l.order[i]].Complex.GetOrdering()
		for j := i + 1; j < len(l.order); j++ {
			orderingJ := l.entries[l.order[j]].Complex.GetOrdering()
			l.cycleCrossRateArr(table, orderingI, orderingJ)
		}
	}
	return table
}

// cycleCrossRateArr cycles every open loop of orderingA against every open
// loop of orderingB (original's SComplexList::cycleCrossRateArr).
func (l *List) cycleCrossRateArr(table *ArrheniusTable, orderingA, orderingB strand.StrandOrdering) {
	for _, loopA := range orderingA {
		for _, loopB := range orderingB {
			l.computeCrossRateArr(table, loopA, loopB)
		}
	}
}

// computeCrossRateArr cycles every half-context of loopA against every
// half-context of loopB (original's SComplexList::computeCrossRateArr,
// flattened: the original's four-deep nested vector-of-vector iteration
// collapses to a single slice per open loop here since RefComplex-style
// open loops expose their half-contexts as a flat list rather than a
// vector-of-vectors keyed by sub-region).
func (l *List) computeCrossRateArr(table *ArrheniusTable, loopA, loopB strand.OpenLoop) {
	for _, con1 := range loopA.Contexts() {
		for _, con2 := range loopB.Contexts() {
			l.addExtRate(table, con1, con2)
		}
	}
}

// addExtRate adds the Arrhenius rate for one legal (con1, con2) pairing,
// pairing each side's left neighbor with the other's right neighbor
// (original's SComplexList::addExtRate).
func (l *List) addExtRate(table *ArrheniusTable, con1, con2 strand.HalfContext) {
	if !basepair.Pair(con1.Base, con2.Base, l.wobble) {
		return
	}
	one := strand.Combine(con1.Left, con2.Right)
	two := strand.Combine(con2.Left, con1.Right)
	rate := l.em.ApplyPrefactors(l.em.JoinRate(), one, two)
	table.push(rate, con1.Base)
}
