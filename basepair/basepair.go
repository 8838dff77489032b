/*
Package basepair provides the smallest building blocks of the kinetic engine:
a nucleotide identity, the Watson-Crick/wobble pairing predicate, and the
exterior-base counter used to compute bimolecular join rates across complexes.
*/
package basepair

// Base is a nucleotide identity. RNA's U is folded into T; callers translating
// RNA sequences should map U -> T before constructing a Base.
type Base int

const (
	A Base = iota
	C
	G
	T
)

// String returns the single-letter code for the base.
func (b Base) String() string {
	switch b {
	case A:
		return "A"
	case C:
		return "C"
	case G:
		return "G"
	case T:
		return "T"
	default:
		return "?"
	}
}

// Complement returns the Watson-Crick complement of b (A<->T, C<->G).
func (b Base) Complement() Base {
	switch b {
	case A:
		return T
	case T:
		return A
	case C:
		return G
	case G:
		return C
	default:
		return b
	}
}

// Pair reports whether b1 and b2 may form a base pair. Watson-Crick pairs
// (A-T, C-G) always count; G-T wobble pairs count only when wobble is true.
func Pair(b1, b2 Base, wobble bool) bool {
	if b1 == b2.Complement() {
		return true
	}
	if wobble && ((b1 == G && b2 == T) || (b1 == T && b2 == G)) {
		return true
	}
	return false
}

// Counter is a 4-tuple of non-negative integer counts of exterior (unpaired,
// outward-facing) bases, one count per identity. The zero Counter counts
// nothing.
type Counter struct {
	Count [4]int
}

// Increment adds 1 to the count for b.
func (c *Counter) Increment(b Base) {
	c.Count[b]++
}

// Decrement subtracts 1 from the count for b. It does not clamp at zero, so
// Increment and Decrement are exact inverses.
func (c *Counter) Decrement(b Base) {
	c.Count[b]--
}

// Add returns the element-wise sum of c and other.
func (c Counter) Add(other Counter) Counter {
	var out Counter
	for i := range out.Count {
		out.Count[i] = c.Count[i] + other.Count[i]
	}
	return out
}

// AddFrom increments c by other in place, one identity at a time.
func (c *Counter) AddFrom(other Counter) {
	for b := range c.Count {
		c.Count[b] += other.Count[b]
	}
}

// SubFrom decrements c by other in place, one identity at a time.
func (c *Counter) SubFrom(other Counter) {
	for b := range c.Count {
		c.Count[b] -= other.Count[b]
	}
}

// At returns the count for a single base identity.
func (c Counter) At(b Base) int {
	return c.Count[b]
}

// MultiCount returns the number of legal Watson-Crick (and, if wobble is
// true, wobble) bimolecular pairings between c's exterior pool and other's:
//
//	c.A*other.T + c.T*other.A + c.G*other.C + c.C*other.G
//
// plus, with wobble enabled, c.G*other.T + c.T*other.G. This is symmetric:
// c.MultiCount(other, w) == other.MultiCount(c, w).
func (c Counter) MultiCount(other Counter, wobble bool) int {
	n := c.Count[A]*other.Count[T] + c.Count[T]*other.Count[A] +
		c.Count[G]*other.Count[C] + c.Count[C]*other.Count[G]
	if wobble {
		n += c.Count[G]*other.Count[T] + c.Count[T]*other.Count[G]
	}
	return n
}

// Total returns the sum of all four counts.
func (c Counter) Total() int {
	return c.Count[A] + c.Count[C] + c.Count[G] + c.Count[T]
}
