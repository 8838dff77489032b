/*
Package kinetics implements the rate-stratified selection engine over a
population of strand complexes: ComplexEntry/ComplexList (spec.md §3-4.2-4.3),
the two-level Gillespie-style selection dispatch (§4.4), bimolecular join
rate computation and execution (§4.5), and stop-condition evaluation (§4.6)
delegated to the stopcond package.

Following spec.md §9's design note, the population is held in an indexed
arena (map + explicit order slice) addressed by stable integer Handles,
rather than the original singly-linked list with raw-pointer unlinking: this
removes the recursive-destructor risk the original source carries
(~SComplexListEntry recurses through `next`) while preserving the
insertion-order iteration spec.md §5 requires for bit-reproducible
trajectories.
*/
package kinetics

import (
	"github.com/foldwright/kinetics/strand"
)

// Handle is a stable identifier for a ComplexEntry within a ComplexList. It
// is never reused for a different entry within the lifetime of a ComplexList,
// even after the entry it names is removed.
type Handle int

// EEEnergy is the Arrhenius enthalpy/entropy decomposition of a complex's
// cached energy (spec.md §3 ComplexEntry.eeEnergy).
type EEEnergy struct {
	DH   float64 // enthalpy
	NTdS float64 // -T*dS
}

// Entry wraps one complex with its cached energy, cached total unimolecular
// flux, and a unique, monotonically increasing id assigned at insertion
// (spec.md §3 ComplexEntry).
type Entry struct {
	ID       int
	Complex  strand.StrandComplex
	Energy   float64
	Rate     float64
	EEEnergy EEEnergy
}

// Initialize asks the wrapped complex to build its loop graph and generate
// its initial moves (spec.md §4.2).
func (e *Entry) Initialize() {
	e.Complex.GenerateLoops()
	e.Complex.GenerateMoves()
}

// RegenerateMoves re-runs move generation (but not loop generation) and
// refreshes cached data. This is the maintenance pass
// (original_source/state/scomplexlist.cc:regenerateMoves) a driver can run
// after perturbing structure outside of a normal selection step — not part
// of the per-step hot path.
func (e *Entry) RegenerateMoves(em strand.EnergyModel) {
	e.Complex.GenerateMoves()
	e.FillData(em)
}

// FillData recomputes Energy and Rate from the wrapped complex: Energy
// includes the per-strand volume and association corrections for every
// strand beyond the first (spec.md §4.2); Rate is the complex's own total
// unimolecular flux, with no join contribution (joins are reasoned about at
// the ComplexList level).
func (e *Entry) FillData(em strand.EnergyModel) {
	strandCorrection := em.VolumeEnergy() + em.AssocEnergy()
	e.Energy = e.Complex.GetEnergy() + strandCorrection*float64(e.Complex.GetStrandCount()-1)
	e.Rate = e.Complex.GetTotalFlux()
}

// IntrinsicEnergy returns Energy with the volume/association correction
// subtracted back out according to volumeFlag (spec.md §6 Volume-flag: bit0
// clear subtracts volume, bit1 clear subtracts association).
func (e *Entry) IntrinsicEnergy(em strand.EnergyModel, volumeFlag int) float64 {
	energy := e.Energy
	strands := float64(e.Complex.GetStrandCount() - 1)
	if volumeFlag&0x01 == 0 {
		energy -= em.VolumeEnergy() * strands
	}
	if volumeFlag&0x02 == 0 {
		energy -= em.AssocEnergy() * strands
	}
	return energy
}
