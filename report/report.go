/*
Package report formats kinetics.List snapshots into human-readable
trajectory lines, the Go counterpart of Multistrand's
SComplexListEntry::toString / SComplexList::printComplexList
(original_source/state/scomplexlist.cc). Long structure and sequence
strings are wrapped with github.com/mitchellh/go-wordwrap, and any line
still longer than Width is cut every Width characters, so a terminal-facing
report never carries unbounded single lines.
*/
package report

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// Width is the column at which sequence/structure lines wrap.
const Width = 72

// ComplexSnapshot is the read surface report needs from one population
// member; the caller (cmd/kinsim) fills one from each kinetics.Entry and
// its wrapped strand.StrandComplex.
type ComplexSnapshot struct {
	ID        int
	Names     []string
	Sequence  string
	Structure string
	Energy    float64
}

// Line renders one complex's snapshot as a single report line: id, names,
// energy, then wrapped sequence/structure beneath it.
func Line(c ComplexSnapshot) string {
	// wordwrap.WrapString only breaks at white space, which sequence and
	// structure strings lack, so any line it leaves longer than Width is
	// also cut every Width characters.
	wrap := func(s string) string {
		var out []string
		for _, line := range strings.Split(wordwrap.WrapString(s, Width), "\n") {
			for len(line) > Width {
				out = append(out, line[:Width])
				line = line[Width:]
			}
			out = append(out, line)
		}
		return strings.Join(out, "\n")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%d] %s  dG=%.4f kcal/mol\n", c.ID, strings.Join(c.Names, "+"), c.Energy)
	b.WriteString(wrap(c.Sequence))
	b.WriteString("\n")
	b.WriteString(wrap(c.Structure))
	return b.String()
}

// Snapshot is a full population dump at one simulated time point (spec.md
// §6 StateOutput.report): a step counter, trajectory time, and one
// ComplexSnapshot per complex present.
type Snapshot struct {
	Step      int
	Time      float64
	Complexes []ComplexSnapshot
}

// Render formats a full Snapshot the way printComplexList walks the
// population: a header line followed by each complex's Line, blank-line
// separated.
func Render(s Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- step %d  t=%.6e s  (%d complexes) ---\n", s.Step, s.Time, len(s.Complexes))
	for i, c := range s.Complexes {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Line(c))
		b.WriteString("\n")
	}
	return b.String()
}
