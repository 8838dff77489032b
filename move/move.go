/*
Package move implements the elementary transition record (Move) and the
per-loop rate-indexed collection that holds them (MoveList). A Move packages
the minimum information a loop needs to re-apply a transition deterministically;
a MoveList answers total-rate, weighted-choice, and append in O(1)/O(n) time
while preserving the insertion-order tie-break the selection engine depends on
for bit-reproducible trajectories.
*/
package move

import "fmt"

// Type is a bitset over the move category (CREATE/DELETE/SHIFT) and the
// arity sub-variant (1/2/3) a loop uses to dispatch execution.
type Type int

const (
	Create Type = 1 << iota
	Delete
	Shift
	Arity1
	Arity2
	Arity3
)

// Endpoint is the loop-side contract a Move's affected slots point at. The
// kinetics engine and the loop-graph implementation agree on a concrete type
// satisfying this (see the strand package); move itself only needs identity,
// never behavior.
type Endpoint interface {
	// LoopID is a stable, package-local identifier, used only for diagnostics.
	LoopID() int
}

// Move is an immutable record describing one elementary transition: its
// type, its rate, the one or two loop endpoints it affects, and up to four
// integer positions within those endpoints.
//
// Invariants: Rate > 0; Affected[0] != nil; for Shift moves Affected[1] may
// or may not equal Affected[0]; unused tail Index slots are zero.
type Move struct {
	Kind     Type
	Rate     float64
	Affected [2]Endpoint
	Index    [4]int
}

// New builds a Move. It panics if rate is not strictly positive or affected1
// is nil — both are programmer errors per spec.md §3's Move invariants.
func New(kind Type, rate float64, affected1, affected2 Endpoint, index ...int) Move {
	if rate <= 0 {
		panic(fmt.Sprintf("move: rate must be strictly positive, got %v", rate))
	}
	if affected1 == nil {
		panic("move: affected[0] must not be nil")
	}
	var m Move
	m.Kind = kind
	m.Rate = rate
	m.Affected[0] = affected1
	m.Affected[1] = affected2
	copy(m.Index[:], index)
	return m
}

// HasArity reports whether the move carries the given arity bit.
func (m Move) HasArity(arity Type) bool {
	return m.Kind&arity != 0
}
