package move_test

import (
	"testing"

	"github.com/foldwright/kinetics/move"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

type fakeLoop int

func (f fakeLoop) LoopID() int { return int(f) }

func TestNewPanicsOnBadRate(t *testing.T) {
	assert.Panics(t, func() {
		move.New(move.Create, 0, fakeLoop(1), nil)
	})
}

func TestNewPanicsOnNilAffected(t *testing.T) {
	assert.Panics(t, func() {
		move.New(move.Create, 1.0, nil, nil)
	})
}

func TestHasArity(t *testing.T) {
	m := move.New(move.Create|move.Arity1, 1.0, fakeLoop(1), nil, 3)
	assert.True(t, m.HasArity(move.Arity1))
	assert.False(t, m.HasArity(move.Arity2))
}

func TestListTotalRateAndChoose(t *testing.T) {
	l := move.NewList(0)
	m1 := move.New(move.Create, 1.0, fakeLoop(1), nil)
	m2 := move.New(move.Delete, 2.0, fakeLoop(1), nil)
	m3 := move.New(move.Shift, 3.0, fakeLoop(1), fakeLoop(2))
	l.AddMove(m1)
	l.AddMove(m2)
	l.AddMove(m3)

	assert.Equal(t, 6.0, l.TotalRate())
	assert.True(t, cmp.Equal(m1, l.Choose(0)))
	assert.True(t, cmp.Equal(m2, l.Choose(1.0)))
	assert.True(t, cmp.Equal(m2, l.Choose(2.999)))
	assert.True(t, cmp.Equal(m3, l.Choose(3.0)))
	assert.True(t, cmp.Equal(m3, l.Choose(5.999999999)))
}

func TestChooseClampsNearBoundary(t *testing.T) {
	l := move.NewList(0)
	m := move.New(move.Create, 1.0, fakeLoop(1), nil)
	l.AddMove(m)
	// A draw that just overshoots the cached total by FP noise still
	// resolves to the last move rather than panicking.
	got := l.Choose(1.0 + 1e-13)
	assert.Equal(t, m, got)
}

func TestChoosePanicsOutOfRange(t *testing.T) {
	l := move.NewList(0)
	l.AddMove(move.New(move.Create, 1.0, fakeLoop(1), nil))
	assert.Panics(t, func() {
		l.Choose(5.0)
	})
}

func TestChoosePanicsEmpty(t *testing.T) {
	l := move.NewList(0)
	assert.Panics(t, func() {
		l.Choose(0)
	})
}

func TestReplaceKeepsPriorMovesValidUntilReset(t *testing.T) {
	l := move.NewList(0)
	old := move.New(move.Create, 1.0, fakeLoop(1), nil)
	l.AddMove(old)
	picked := l.Choose(0)

	l.Replace([]move.Move{move.New(move.Delete, 2.0, fakeLoop(1), nil)})
	assert.Equal(t, 1, l.DeletedLen())
	assert.Equal(t, 2.0, l.TotalRate())
	// picked is still a valid, readable Move value (it was copied, not
	// mutated in place).
	assert.Equal(t, old.Rate, picked.Rate)

	l.ResetDeleteMoves()
	assert.Equal(t, 0, l.DeletedLen())
}

func TestChooseDeterministicAcrossRegeneration(t *testing.T) {
	// spec.md §8: Choose(r) returns the same move for a given r regardless
	// of how AddMove/Replace/ResetDeleteMoves were interleaved, as long as
	// the live set is the same at call time.
	build := func() *move.List {
		l := move.NewList(0)
		l.AddMove(move.New(move.Create, 1.0, fakeLoop(1), nil))
		l.AddMove(move.New(move.Delete, 1.0, fakeLoop(1), nil))
		return l
	}

	fresh := build()

	churned := move.NewList(0)
	churned.AddMove(move.New(move.Shift, 9.0, fakeLoop(9), nil))
	churned.Replace(build().Moves())
	churned.ResetDeleteMoves()

	for _, r := range []float64{0, 0.5, 1.0, 1.9999} {
		assert.Equal(t, fresh.Choose(r).Rate, churned.Choose(r).Rate)
	}
}
