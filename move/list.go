package move

import "fmt"

// tolerance absorbs floating-point drift accumulated in TotalRate across many
// AddMove calls: a draw r that overshoots the final prefix sum by no more
// than tolerance*TotalRate is clamped to the last move rather than panicking.
// See spec.md §9 "Numerical stability".
const tolerance = 1e-9

// List is the growable, rate-indexed collection of Moves owned by a single
// loop (MoveContainer / MoveList in spec.md §3-4.1). Deleted moves are parked
// in a side list until ResetDeleteMoves frees them, keeping Move values
// returned by Choose valid for the duration of one selection+execution cycle
// even if the loop regenerates its container mid-step.
type List struct {
	moves     []Move
	delMoves  []Move
	totalRate float64
}

// NewList returns an empty List, optionally pre-sizing its backing array.
func NewList(initialCapacity int) *List {
	return &List{moves: make([]Move, 0, initialCapacity)}
}

// TotalRate returns the cached sum of all live moves' rates, O(1).
func (l *List) TotalRate() float64 {
	return l.totalRate
}

// Len returns the number of live moves.
func (l *List) Len() int {
	return len(l.moves)
}

// AddMove appends newMove and folds its rate into TotalRate.
func (l *List) AddMove(newMove Move) {
	l.moves = append(l.moves, newMove)
	l.totalRate += newMove.Rate
}

// Choose returns the unique move whose half-open cumulative-rate interval
// contains r, walking moves in insertion order. r must be in [0, TotalRate());
// a draw that overshoots the last prefix by no more than tolerance*TotalRate
// is clamped to the last move. An empty container, or r far enough outside
// range to indicate caller error, panics — this is a programmer error per
// spec.md §4.1.
func (l *List) Choose(r float64) Move {
	if len(l.moves) == 0 {
		panic("move: Choose called on empty container")
	}
	if r < 0 {
		panic(fmt.Sprintf("move: Choose called with negative r=%v", r))
	}
	running := 0.0
	for _, m := range l.moves {
		running += m.Rate
		if r < running {
			return m
		}
	}
	if r < running+tolerance*l.totalRate {
		return l.moves[len(l.moves)-1]
	}
	panic(fmt.Sprintf("move: Choose called with r=%v >= totalRate=%v", r, l.totalRate))
}

// Moves returns the live moves in insertion order. Callers must not mutate
// the returned slice.
func (l *List) Moves() []Move {
	return l.moves
}

// Replace discards this container's live moves into its delete list (so
// previously returned Move values stay valid) and installs newMoves as the
// live set, recomputing TotalRate. This is how a loop regenerates its moves
// after a structural change without invalidating a Move the caller may still
// be executing (spec.md §4.1 deletion policy).
func (l *List) Replace(newMoves []Move) {
	l.delMoves = append(l.delMoves, l.moves...)
	l.moves = newMoves
	total := 0.0
	for _, m := range newMoves {
		total += m.Rate
	}
	l.totalRate = total
}

// ResetDeleteMoves frees the deletion list accumulated by Replace. The loop
// that owns the List calls this once the move (or join) it was applying has
// fully executed — strand.RefComplex does so at the end of DoChoice and
// PerformJoin — the barrier spec.md §4.1 describes.
func (l *List) ResetDeleteMoves() {
	l.delMoves = nil
}

// DeletedLen reports how many moves are currently parked awaiting
// ResetDeleteMoves; exposed for tests verifying the delete-bookkeeping
// invariant in spec.md §8.
func (l *List) DeletedLen() int {
	return len(l.delMoves)
}
