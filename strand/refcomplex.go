package strand

import (
	"strings"

	"github.com/foldwright/kinetics/basepair"
	"github.com/foldwright/kinetics/move"
)

// Strand is one immutable oligonucleotide strand: an id (stable across
// joins/splits), a display name, and a sequence over {A,C,G,T}.
type Strand struct {
	ID       int
	Name     string
	Sequence []basepair.Base
}

// RefComplex is the minimal reference StrandComplex used to exercise the
// kinetics engine in tests and in the example driver. It treats the whole
// complex as a single open loop: every unpaired base is exterior, and the
// only moves it generates are pair CREATE/DELETE between bases that are
// legal partners and not already paired to something else. This is
// intentionally not a faithful thermodynamic loop graph (stack/interior/
// bulge/multi/hairpin typing is the external collaborator's job per
// spec.md §1) — it exists to give the engine something concrete to select
// and execute moves against.
type RefComplex struct {
	strands []Strand
	// pairedWith[i] is the index of the base i is paired to, or -1.
	pairedWith []int
	wobble     bool
	em         EnergyModel
	createRate float64
	deleteRate float64
	moves      *move.List
	id         int
	// energyCache memoizes GetEnergy by EnergyCacheKey(sequence, structure), so a
	// trajectory that revisits the same secondary structure non-contiguously (the
	// common case for a reversible CREATE/DELETE pair) does not recompute it.
	energyCache map[[32]byte]float64
}

// NewRefComplex builds a single-strand RefComplex from a sequence string
// (A/C/G/T or U, either case; U is read as T) with no initial pairs.
func NewRefComplex(id int, name, sequence string, em EnergyModel, wobble bool, createRate, deleteRate float64) *RefComplex {
	bases := make([]basepair.Base, len(sequence))
	for i, c := range sequence {
		bases[i] = parseBase(c)
	}
	rc := &RefComplex{
		strands:     []Strand{{ID: id, Name: name, Sequence: bases}},
		pairedWith:  make([]int, len(bases)),
		wobble:      wobble,
		em:          em,
		createRate:  createRate,
		deleteRate:  deleteRate,
		id:          id,
		energyCache: make(map[[32]byte]float64),
	}
	for i := range rc.pairedWith {
		rc.pairedWith[i] = -1
	}
	return rc
}

func parseBase(c rune) basepair.Base {
	switch c {
	case 'A', 'a':
		return basepair.A
	case 'C', 'c':
		return basepair.C
	case 'G', 'g':
		return basepair.G
	case 'T', 't', 'U', 'u':
		return basepair.T
	default:
		panic("strand: invalid base " + string(c))
	}
}

// LoopID satisfies move.Endpoint; a RefComplex is its own (only) loop.
func (c *RefComplex) LoopID() int { return c.id }

func (c *RefComplex) allBases() []basepair.Base {
	out := make([]basepair.Base, 0, c.length())
	for _, s := range c.strands {
		out = append(out, s.Sequence...)
	}
	return out
}

func (c *RefComplex) length() int {
	n := 0
	for _, s := range c.strands {
		n += len(s.Sequence)
	}
	return n
}

// GenerateLoops is a no-op for RefComplex: it has exactly one loop, itself.
func (c *RefComplex) GenerateLoops() {}

// GenerateMoves rebuilds the move list from the current pairing state:
// a CREATE move for every legal, currently-unpaired partner pair, and a
// DELETE move for every existing pair.
func (c *RefComplex) GenerateMoves() {
	bases := c.allBases()
	newMoves := make([]move.Move, 0)
	for i := 0; i < len(bases); i++ {
		if c.pairedWith[i] != -1 {
			if c.pairedWith[i] > i {
				newMoves = append(newMoves, move.New(move.Delete|move.Arity1, c.deleteRate, c, nil, i, c.pairedWith[i]))
			}
			continue
		}
		for j := i + 1; j < len(bases); j++ {
			if c.pairedWith[j] != -1 {
				continue
			}
			if basepair.Pair(bases[i], bases[j], c.wobble) {
				newMoves = append(newMoves, move.New(move.Create|move.Arity1, c.createRate, c, nil, i, j))
			}
		}
	}
	if c.moves == nil {
		c.moves = move.NewList(len(newMoves))
		for _, m := range newMoves {
			c.moves.AddMove(m)
		}
	} else {
		c.moves.Replace(newMoves)
	}
}

// GetEnergy returns a nominal energy of -1 kcal/mol per base pair, memoized
// by EnergyCacheKey(sequence, structure) so that a trajectory revisiting the
// same secondary structure (common after a reversible CREATE/DELETE pair)
// does not recompute it. A real nearest-neighbor model (stack/loop
// penalties, dangles) is the external collaborator's job per spec.md §1;
// this is enough to exercise both ComplexEntry.FillData's energy caching and
// the memoization key itself.
func (c *RefComplex) GetEnergy() float64 {
	key := EnergyCacheKey(c.GetSequence(), c.GetStructure())
	if cached, ok := c.energyCache[key]; ok {
		return cached
	}

	pairs := 0
	for _, p := range c.pairedWith {
		if p != -1 {
			pairs++
		}
	}
	energy := -1.0 * float64(pairs/2)
	c.energyCache[key] = energy
	return energy
}

// GetTotalFlux returns the cached total rate of this complex's move list.
func (c *RefComplex) GetTotalFlux() float64 {
	if c.moves == nil {
		return 0
	}
	return c.moves.TotalRate()
}

func (c *RefComplex) GetStrandCount() int { return len(c.strands) }

func (c *RefComplex) GetSequence() string {
	parts := make([]string, len(c.strands))
	for i, s := range c.strands {
		var sb strings.Builder
		for _, b := range s.Sequence {
			sb.WriteString(b.String())
		}
		parts[i] = sb.String()
	}
	return strings.Join(parts, "+")
}

func (c *RefComplex) GetStructure() string {
	bases := c.allBases()
	out := make([]byte, len(bases))
	for i := range bases {
		switch {
		case c.pairedWith[i] == -1:
			out[i] = '.'
		case c.pairedWith[i] > i:
			out[i] = '('
		default:
			out[i] = ')'
		}
	}
	// Strand boundaries are rendered as '+' in the structure string too,
	// matching multistrand's multi-strand dot-bracket convention.
	var sb strings.Builder
	pos := 0
	for si, s := range c.strands {
		if si > 0 {
			sb.WriteByte('+')
		}
		sb.Write(out[pos : pos+len(s.Sequence)])
		pos += len(s.Sequence)
	}
	return sb.String()
}

func (c *RefComplex) GetStrandNames() []string {
	names := make([]string, len(c.strands))
	for i, s := range c.strands {
		names[i] = s.Name
	}
	return names
}

// GetExteriorBases counts unpaired bases by identity. useArrhenius is
// accepted for interface compatibility; RefComplex's exterior accounting
// does not depend on it.
func (c *RefComplex) GetExteriorBases(useArrhenius bool) basepair.Counter {
	var counter basepair.Counter
	bases := c.allBases()
	for i, b := range bases {
		if c.pairedWith[i] == -1 {
			counter.Increment(b)
		}
	}
	return counter
}

// GetOrdering returns a single open loop covering every exterior base, in
// sequence order, each with the neutral LoopMove half-context on both
// sides (RefComplex does not model loop-type neighborhoods).
func (c *RefComplex) GetOrdering() StrandOrdering {
	return StrandOrdering{c}
}

// Contexts satisfies OpenLoop.
func (c *RefComplex) Contexts() []HalfContext {
	bases := c.allBases()
	out := make([]HalfContext, 0, len(bases))
	for i, b := range bases {
		if c.pairedWith[i] == -1 {
			out = append(out, HalfContext{Base: b, Left: LoopMove, Right: LoopMove})
		}
	}
	return out
}

// GetChoice delegates straight to the single move list: RefComplex has no
// sub-loops to dispatch into.
func (c *RefComplex) GetChoice(r *float64) move.Move {
	return c.moves.Choose(*r)
}

// DoChoice executes m by flipping the paired state of its two indices
// (CREATE pairs them, DELETE unpairs them) and regenerates moves.
// RefComplex never splits on DoChoice (that requires DELETE on the very
// last pair holding two strands together, which a real loop graph's
// dissociation path handles; not modeled here).
func (c *RefComplex) DoChoice(m move.Move) (StrandComplex, bool) {
	i, j := m.Index[0], m.Index[1]
	switch {
	case m.HasArity(move.Arity1) && m.Kind&move.Create != 0:
		c.pairedWith[i] = j
		c.pairedWith[j] = i
	case m.HasArity(move.Arity1) && m.Kind&move.Delete != 0:
		c.pairedWith[i] = -1
		c.pairedWith[j] = -1
	}
	c.GenerateMoves()
	c.moves.ResetDeleteMoves()
	return nil, false
}

func (c *RefComplex) CheckIDBound(strandID int) bool {
	for i, s := range c.strands {
		if s.ID != strandID {
			continue
		}
		start, end := c.strandRange(i)
		for p := start; p < end; p++ {
			if c.pairedWith[p] != -1 {
				return true
			}
		}
	}
	return false
}

func (c *RefComplex) strandRange(strandIndex int) (start, end int) {
	for i := 0; i < strandIndex; i++ {
		start += len(c.strands[i].Sequence)
	}
	end = start + len(c.strands[strandIndex].Sequence)
	return
}

// CheckIDList reports whether this complex's strand ids match ids under
// some circular rotation, and that there are exactly count of them.
func (c *RefComplex) CheckIDList(ids []int, count int) bool {
	if len(c.strands) != count || len(ids) != count {
		return false
	}
	mine := c.StrandIDs()
	n := len(mine)
	for shift := 0; shift < n; shift++ {
		match := true
		for k := 0; k < n; k++ {
			if mine[(k+shift)%n] != ids[k] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func (c *RefComplex) Cleanup()            {}
func (c *RefComplex) UpdateLocalContext() {}

func (c *RefComplex) StrandIDs() []int {
	ids := make([]int, len(c.strands))
	for i, s := range c.strands {
		ids[i] = s.ID
	}
	return ids
}

// PerformJoin merges other's strands into c, forming a new pair between c's
// index[0]'th unpaired base of identity types[0] and other's index[1]'th
// unpaired base of identity types[1]. Indices are positions within each
// complex's respective exterior pool of that base identity, as produced by
// kinetics.findJoinNucleotides (spec.md §4.5). useArrhenius is accepted for
// interface compatibility; RefComplex's join mechanics do not depend on it.
func (c *RefComplex) PerformJoin(otherComplex StrandComplex, types [2]basepair.Base, index [2]int, useArrhenius bool) StrandComplex {
	other := otherComplex.(*RefComplex)

	myPos := nthExteriorOfType(c, types[0], index[0])
	otherPos := nthExteriorOfType(other, types[1], index[1])

	offset := c.length()
	c.strands = append(c.strands, other.strands...)
	c.pairedWith = append(c.pairedWith, shiftPairs(other.pairedWith, offset)...)

	otherGlobal := offset + otherPos
	c.pairedWith[myPos] = otherGlobal
	c.pairedWith[otherGlobal] = myPos

	c.GenerateMoves()
	c.moves.ResetDeleteMoves()
	return other
}

// nthExteriorOfType returns the global index of the n'th (0-based) unpaired
// base of the given identity in c, in sequence order.
func nthExteriorOfType(c *RefComplex, b basepair.Base, n int) int {
	bases := c.allBases()
	count := 0
	for i, base := range bases {
		if c.pairedWith[i] != -1 || base != b {
			continue
		}
		if count == n {
			return i
		}
		count++
	}
	panic("strand: nthExteriorOfType out of range")
}

func shiftPairs(pairedWith []int, offset int) []int {
	out := make([]int, len(pairedWith))
	for i, p := range pairedWith {
		if p == -1 {
			out[i] = -1
		} else {
			out[i] = p + offset
		}
	}
	return out
}
