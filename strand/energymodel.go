package strand

import (
	"lukechampine.com/blake3"
)

// SimpleModel is a minimal EnergyModel: constant volume, association and
// join rates, and identity prefactors unless Prefactors is set. Arrhenius
// only sets the flag UseArrhenius reports. It memoizes nothing
// itself (RefComplex computes its own nominal energy), but exposes a
// content-addressed cache key helper, EnergyCacheKey, for callers layering
// a real nearest-neighbor model with expensive per-structure energy
// evaluation on top — the same "hash the (sequence, structure) pair" trick
// fold/seqfold.go's 2-D DP caches achieve with explicit indices, expressed
// here as a hash because the engine, unlike the folding DP, revisits the
// same structure non-contiguously across a trajectory.
type SimpleModel struct {
	Volume     float64
	Assoc      float64
	Join       float64
	Arrhenius  bool
	Prefactors func(rate float64, a, b MoveClass) float64
}

func (m SimpleModel) VolumeEnergy() float64 { return m.Volume }
func (m SimpleModel) AssocEnergy() float64  { return m.Assoc }
func (m SimpleModel) JoinRate() float64     { return m.Join }
func (m SimpleModel) UseArrhenius() bool    { return m.Arrhenius }

func (m SimpleModel) ApplyPrefactors(rate float64, a, b MoveClass) float64 {
	if m.Prefactors != nil {
		return m.Prefactors(rate, a, b)
	}
	return rate
}

// EnergyCacheKey returns a blake3 digest of the sequence+structure pair,
// suitable as a memoization key for an expensive per-structure energy
// evaluation layered on top of this model.
func EnergyCacheKey(sequence, structure string) [32]byte {
	h := blake3.New(32, nil)
	h.Write([]byte(sequence))
	h.Write([]byte{0})
	h.Write([]byte(structure))
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
