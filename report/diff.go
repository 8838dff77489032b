package report

import (
	"fmt"
	"strings"

	dmp "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/pmezard/go-difflib/difflib"
)

// Diff renders a unified diff between two rendered Snapshots (or any two
// multi-line report strings), the way a trajectory-comparison tool reports
// a mismatch rather than dumping both texts side by side.
func Diff(name string, want, got string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: name + " (want)",
		ToFile:   name + " (got)",
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(diff)
}

// InlineDiff renders a single-line, character-level diff, useful for
// comparing two dot-bracket structure strings of the same length where a
// unified line diff would just show "entire line differs".
func InlineDiff(want, got string) string {
	differ := dmp.New()
	diffs := differ.DiffMain(want, got, false)
	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case dmp.DiffInsert:
			fmt.Fprintf(&b, "[+%s]", d.Text)
		case dmp.DiffDelete:
			fmt.Fprintf(&b, "[-%s]", d.Text)
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}
