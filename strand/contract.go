/*
Package strand defines the external-collaborator contracts the kinetic
engine depends on — the nearest-neighbor energy model and the per-complex
loop graph (spec.md §6) — and ships a minimal reference StrandComplex
implementation (single-loop, no stack/interior/hairpin/multi typing) used to
exercise the kinetics engine's tests and the example driver. Production loop
graphs (the real stack/interior/bulge/multi/hairpin/open loop taxonomy) are
out of scope here per spec.md §1; any type satisfying StrandComplex plugs
into the engine unmodified.
*/
package strand

import (
	"github.com/foldwright/kinetics/basepair"
	"github.com/foldwright/kinetics/move"
)

// MoveClass classifies a move for the purpose of selecting an Arrhenius
// prefactor. LoopMove is the neutral/default classifier used outside
// Arrhenius mode and for the bulk (non-tabulated) join-flux computation.
type MoveClass int

const LoopMove MoveClass = 0

// EnergyModel is the nearest-neighbor thermodynamic model, an injected,
// non-owned collaborator (spec.md §5 "the engine holds a non-owning
// reference to the energy model for its lifetime").
type EnergyModel interface {
	// VolumeEnergy is the per-strand volume correction (kcal/mol) added to
	// a complex's cached energy for each strand beyond the first.
	VolumeEnergy() float64
	// AssocEnergy is the per-strand association correction (kcal/mol),
	// added alongside VolumeEnergy.
	AssocEnergy() float64
	// JoinRate is the bimolecular rate constant applied per legal
	// exterior-base pairing in the bulk join-flux computation.
	JoinRate() float64
	// UseArrhenius reports whether the model is in Arrhenius mode, in which
	// case the engine additionally builds (but does not fold into
	// selection) the per-half-context join-rate table; see spec.md §4.5/§9.
	UseArrhenius() bool
	// ApplyPrefactors scales rate by the Arrhenius prefactors implied by
	// the two move classifiers. Outside Arrhenius mode this is typically
	// the identity function.
	ApplyPrefactors(rate float64, a, b MoveClass) float64
}

// HalfContext is the identity and loop-type neighborhood of one side of an
// exterior base, the unit the Arrhenius join-rate table is keyed by
// (spec.md glossary).
type HalfContext struct {
	Base  basepair.Base
	Left  MoveClass
	Right MoveClass
}

// Combine folds two neighboring half-context classifiers into the single
// MoveClass ApplyPrefactors expects, mirroring moveutil::combine in the
// original source.
func Combine(left, right MoveClass) MoveClass {
	return left ^ (right << 4)
}

// OpenLoop is one exterior-facing loop of a complex: a contiguous run of
// unpaired bases exposed to intermolecular joins, each with its own
// HalfContext. A complex with only one open region (the common case for the
// reference implementation in this package) exposes a StrandOrdering of
// length one.
type OpenLoop interface {
	LoopID() int
	Contexts() []HalfContext
}

// StrandOrdering is the sequence of open loops along a complex, in a fixed,
// deterministic order (spec.md §6 StrandComplex.GetOrdering).
type StrandOrdering []OpenLoop

// StrandComplex is the external loop-graph collaborator (spec.md §6). The
// kinetics engine only ever calls these methods; it never inspects loop
// internals.
type StrandComplex interface {
	GenerateLoops()
	GenerateMoves()
	GetEnergy() float64
	GetTotalFlux() float64
	GetStrandCount() int
	GetSequence() string
	GetStructure() string
	GetStrandNames() []string
	GetExteriorBases(useArrhenius bool) basepair.Counter
	GetOrdering() StrandOrdering
	// GetChoice consumes r (already localized to this complex's own flux
	// by the caller, i.e. 0 <= *r < GetTotalFlux()) and returns the chosen
	// Move.
	GetChoice(r *float64) move.Move
	// DoChoice executes m and, if executing it caused the complex to split
	// into two, returns the newly created complex and true.
	DoChoice(m move.Move) (StrandComplex, bool)
	CheckIDBound(strandID int) bool
	CheckIDList(ids []int, count int) bool
	Cleanup()
	UpdateLocalContext()
	// StrandIDs returns the strand ids, in the complex's current ordering,
	// used by StopSpec's circular-rotation matching (spec.md §4.6).
	StrandIDs() []int
	// PerformJoin merges other into the receiver in place, forming a new
	// base pair between position index[0] of the receiver's exterior pool
	// of base types[0] and position index[1] of other's exterior pool of
	// base types[1]. It returns other unchanged, for the caller
	// (kinetics.ComplexList) to unlink and discard as the now-defunct
	// second participant — the Go expression of spec.md §6's static
	// StrandComplex::performComplexJoin.
	PerformJoin(other StrandComplex, types [2]basepair.Base, index [2]int, useArrhenius bool) StrandComplex
}
