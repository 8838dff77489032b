package kinetics

import (
	"github.com/foldwright/kinetics/basepair"
	"github.com/foldwright/kinetics/strand"
	"golang.org/x/exp/slices"
)

// List is the population of complexes (spec.md §3 ComplexList). It owns
// its Entry arena exclusively; each Entry owns its wrapped complex. The
// energy model is borrowed for the List's lifetime (spec.md §5).
type List struct {
	entries   map[Handle]*Entry
	order     []Handle // head-first: order[0] is the most recently added entry
	nextID    int
	nextHndl  Handle
	joinRate  float64
	em        strand.EnergyModel
	wobble    bool
	arrTable  *ArrheniusTable
}

// NewList returns an empty population bound to em for its lifetime.
// wobble controls whether G-T wobble pairs count toward join flux.
func NewList(em strand.EnergyModel, wobble bool) *List {
	return &List{
		entries: make(map[Handle]*Entry),
		em:      em,
		wobble:  wobble,
	}
}

// AddComplex wraps newComplex in an Entry, assigns it the next monotonically
// increasing id, and inserts it at the head of iteration order (spec.md §4.4
// "newest at head"). It does not call Initialize or FillData — callers
// (InitializeList, or DoBasicChoice for a freshly split-off complex) are
// responsible for that.
func (l *List) AddComplex(newComplex strand.StrandComplex) *Entry {
	entry := &Entry{ID: l.nextID, Complex: newComplex}
	l.nextID++
	h := l.nextHndl
	l.nextHndl++
	l.entries[h] = entry
	l.order = append([]Handle{h}, l.order...)
	return entry
}

// InitializeList builds loop graphs and initial moves for every complex
// currently in the population, and caches their energy/rate.
func (l *List) InitializeList() {
	for _, h := range l.order {
		e := l.entries[h]
		e.Initialize()
		e.FillData(l.em)
	}
}

// Refresh re-runs move generation (not loop generation) and cache refresh
// across the whole population — the maintenance pass described in
// spec.md §4 SUPPLEMENTED FEATURES, not part of the per-step hot path.
func (l *List) Refresh() {
	for _, h := range l.order {
		l.entries[h].RegenerateMoves(l.em)
	}
}

// Count returns the number of complexes currently in the population.
func (l *List) Count() int {
	return len(l.order)
}

// Entries returns the population's entries in current iteration order
// (newest first). Callers must not retain the slice across a mutating call.
func (l *List) Entries() []*Entry {
	out := make([]*Entry, len(l.order))
	for i, h := range l.order {
		out[i] = l.entries[h]
	}
	return out
}

// GetTotalFlux walks the population summing each entry's cached unimolecular
// rate, then recomputes and caches the bimolecular join flux (spec.md §4.3).
// O(n) in the number of complexes.
func (l *List) GetTotalFlux() float64 {
	total := 0.0
	for _, h := range l.order {
		total += l.entries[h].Rate
	}
	l.joinRate = l.GetJoinFlux()
	total += l.joinRate
	return total
}

// JoinRate returns the join flux cached by the most recent GetTotalFlux
// call. Per spec.md §5, this is stale immediately after DoBasicChoice
// returns; callers must call GetTotalFlux again before the next selection.
func (l *List) JoinRate() float64 {
	return l.joinRate
}

// GetEnergy returns the intrinsic energy of every complex, in current
// iteration order, with the volume/association correction conditionally
// subtracted per volumeFlag (spec.md §6).
func (l *List) GetEnergy(volumeFlag int) []float64 {
	out := make([]float64, len(l.order))
	for i, h := range l.order {
		out[i] = l.entries[h].IntrinsicEnergy(l.em, volumeFlag)
	}
	return out
}

// SortedEntryIDs returns every Entry.ID currently in the population in
// ascending order, independent of arena insertion order — useful for
// deterministic debug dumps and report diffing, where "newest first"
// iteration would make two otherwise-identical populations compare unequal.
func (l *List) SortedEntryIDs() []int {
	out := make([]int, 0, len(l.order))
	for _, h := range l.order {
		out = append(out, l.entries[h].ID)
	}
	slices.Sort(out)
	return out
}

// getExteriorBases is a small helper shared by GetJoinFlux and DoJoinChoice:
// it fetches entry's wrapped complex's exterior-base counter, respecting
// the energy model's Arrhenius mode flag.
func (l *List) getExteriorBases(e *Entry) basepair.Counter {
	return e.Complex.GetExteriorBases(l.em.UseArrhenius())
}
