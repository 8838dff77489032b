package kinetics

import "github.com/foldwright/kinetics/move"

// DoBasicChoice dispatches a single uniform draw choice, already scaled to
// [0, GetTotalFlux()), to either a bimolecular join or a unimolecular move
// inside whichever complex's cumulative rate interval contains it
// (spec.md §4.4). newtime is accepted for interface parity with the
// driver's time-advance contract (spec.md §6); the engine itself never
// mutates or reads simulation time.
//
// It returns the Kind of the Move that was executed, standing in for the
// "arrhenius-type-tag" spec.md §6 says doBasicChoice returns; for a join
// event there is no single Move, so the neutral Create|Shift-free
// placeholder JoinEvent is returned instead.
//
// Precondition: 0 <= choice < GetTotalFlux() (most recently computed) and
// the population is non-empty. Violating this is a programmer error and
// panics, per spec.md §7.
func (l *List) DoBasicChoice(choice, newtime float64) move.Type {
	if choice < l.joinRate {
		l.DoJoinChoice(choice)
		return JoinEvent
	}
	remaining := choice - l.joinRate

	var picked *Entry
	for _, h := range l.order {
		e := l.entries[h]
		if remaining < e.Rate {
			picked = e
			break
		}
		remaining -= e.Rate
	}
	if picked == nil {
		panic("kinetics: DoBasicChoice: choice did not resolve to any complex (is it < GetTotalFlux()?)")
	}

	chosen := picked.Complex.GetChoice(&remaining)
	if newComplex, split := picked.Complex.DoChoice(chosen); split {
		newEntry := l.AddComplex(newComplex)
		newEntry.Initialize()
		newEntry.FillData(l.em)
	}
	picked.FillData(l.em)

	return chosen.Kind
}

// JoinEvent is the move.Type tag DoBasicChoice returns for a bimolecular
// join, since a join is not a single loop's Move and so has no natural
// move.Type of its own.
const JoinEvent move.Type = 0
