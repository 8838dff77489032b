package kinetics

import (
	"math"

	"github.com/foldwright/kinetics/basepair"
	"github.com/foldwright/kinetics/strand"
)

// joinOrder is the fixed base-identity enumeration order the bimolecular
// join algorithm commits to, matching spec.md §4.3/§4.5 ("b ∈ {A, T, G, C}
// in that order").
var joinOrder = [4]basepair.Base{basepair.A, basepair.T, basepair.G, basepair.C}

// GetJoinFlux computes the bimolecular flux across all ordered pairs of
// distinct complexes without materializing the O(n^2) pairs explicitly
// (spec.md §4.3):
//
//  1. If there are fewer than two complexes, the flux is zero.
//  2. Sum exterior bases across all complexes.
//  3. Walk the population once, each time subtracting that complex's own
//     exterior bases from the running sum and adding
//     running.MultiCount(thisComplex's bases) to the move count — the
//     running sum is always "every complex not yet visited", so each
//     ordered pair is counted exactly once.
func (l *List) GetJoinFlux() float64 {
	if l.Count() <= 1 {
		return 0
	}

	var total basepair.Counter
	for _, h := range l.order {
		total.AddFrom(l.getExteriorBases(l.entries[h]))
	}

	moveCount := 0
	for _, h := range l.order {
		ext := l.getExteriorBases(l.entries[h])
		total.SubFrom(ext)
		moveCount += total.MultiCount(ext, l.wobble)
	}

	output := 0.0
	if moveCount > 0 {
		output = float64(moveCount) * l.em.JoinRate()
		output = l.em.ApplyPrefactors(output, strand.LoopMove, strand.LoopMove)
	}

	if l.em.UseArrhenius() {
		// Built for its own sake (and for callers that want to inspect it)
		// but, per spec.md §4.5/§9, deliberately not folded into output:
		// the original source computes and prints this table without
		// adding its sum into the returned join flux
		// (original_source/state/scomplexlist.cc, comment
		// "avoid adding the rates for now"). See DESIGN.md for why this
		// repository keeps that behavior rather than resolving the open
		// question the other way.
		l.arrTable = l.buildArrheniusTable()
	}

	return output
}

// ArrheniusTable returns the most recently built per-half-context join-rate
// table, or nil if the energy model is not in Arrhenius mode or GetJoinFlux
// has not yet run.
func (l *List) ArrheniusTable() *ArrheniusTable {
	return l.arrTable
}

// findJoinNucleotides resolves an integer pair-index choice, local to base
// identity b and to the complex at l.order[fromIndex], into the partner
// complex (found among complexes later in iteration order) and the two
// local position indices within each complex's exterior pool — the Go
// expression of original_source/state/scomplexlist.cc:findJoinNucleotides.
func (l *List) findJoinNucleotides(b basepair.Base, choice int, external basepair.Counter, fromIndex int) (types [2]basepair.Base, index [2]int, partner Handle) {
	otherBase := b.Complement()
	types[0] = otherBase
	types[1] = b

	for i := fromIndex + 1; i < len(l.order); i++ {
		h := l.order[i]
		externOther := l.getExteriorBases(l.entries[h])
		rem := externOther.At(b) * external.At(otherBase)
		if choice < rem {
			index[0] = choice / externOther.At(b)
			index[1] = choice - index[0]*externOther.At(b)
			partner = h
			return
		}
		choice -= rem
	}
	panic("kinetics: findJoinNucleotides: no partner complex found for choice")
}

// DoJoinChoice executes the bimolecular join selected by choice (a raw flux
// draw already known to be less than JoinRate), per spec.md §4.5:
//
//  1. Scale choice down to an integer pair index by the (prefactor-applied)
//     per-pair join rate.
//  2. Walk the population; for each complex and each base identity in
//     {A,T,G,C}, test whether the index falls within that identity's
//     contribution, and if so resolve the exact partner and positions via
//     findJoinNucleotides.
//  3. Merge the two complexes via StrandComplex.PerformJoin, refresh the
//     surviving entry, and unlink the absorbed one.
func (l *List) DoJoinChoice(choice float64) {
	if l.Count() <= 1 {
		return
	}

	perPairRate := l.em.ApplyPrefactors(l.em.JoinRate(), strand.LoopMove, strand.LoopMove)
	intChoice := int(math.Floor(choice / perPairRate))

	var baseSum basepair.Counter
	for _, h := range l.order {
		baseSum.AddFrom(l.getExteriorBases(l.entries[h]))
	}

	for idx, h := range l.order {
		entry := l.entries[h]
		external := l.getExteriorBases(entry)
		baseSum.SubFrom(external)

		matched := false
		for _, b := range joinOrder {
			rem := baseSum.At(b) * external.At(b.Complement())
			if intChoice < rem {
				types, index, partnerHandle := l.findJoinNucleotides(b, intChoice, external, idx)
				l.performJoin(h, partnerHandle, types, index)
				matched = true
				break
			}
			intChoice -= rem
		}
		if matched {
			return
		}
	}
	panic("kinetics: DoJoinChoice: choice did not resolve to any complex pair")
}

// performJoin merges the complex at partnerHandle into the complex at
// survivorHandle, refreshes the survivor's cached data, and removes the
// partner entry from the population.
func (l *List) performJoin(survivorHandle, partnerHandle Handle, types [2]basepair.Base, index [2]int) {
	survivor := l.entries[survivorHandle]
	partner := l.entries[partnerHandle]

	survivor.Complex.PerformJoin(partner.Complex, types, index, l.em.UseArrhenius())

	survivor.FillData(l.em)
	l.remove(partnerHandle)
}

// remove deletes the entry at h from both the arena map and the order
// slice. O(n) in population size, same as the original's linked-list
// unlink, but without the recursive-destructor hazard spec.md §9 flags.
func (l *List) remove(h Handle) {
	delete(l.entries, h)
	for i, oh := range l.order {
		if oh == h {
			l.order = append(l.order[:i], l.order[i+1:]...)
			return
		}
	}
}
