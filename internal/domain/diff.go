package domain

import (
	"github.com/pmezard/go-difflib/difflib"
	m "mutafinder.dev/pkg/mutafinder/internal/model"
)

// DefaultDiffWidth is the line width sequences are wrapped at before diffing.
const DefaultDiffWidth = 60

// RenderSequenceDiff wraps both sequences at width residues per line and
// returns a unified diff of the wrapped lines. It returns an empty string when
// the lines are identical.
func RenderSequenceDiff(reference, candidate m.Sequence, width int) (string, error) {
	if width <= 0 {
		width = DefaultDiffWidth
	}

	diff := difflib.UnifiedDiff{
		A:        wrapResidues(reference, width),
		B:        wrapResidues(candidate, width),
		FromFile: "sequence 1 (reference)",
		ToFile:   "sequence 2 (mutated)",
		Context:  1,
	}

	return difflib.GetUnifiedDiffString(diff)
}

// wrapResidues splits a sequence into newline-terminated lines of width residues.
func wrapResidues(sequence m.Sequence, width int) []string {
	residues := sequence.Residues()
	lines := make([]string, 0, len(residues)/width+1)

	for start := 0; start < len(residues); start += width {
		end := min(start+width, len(residues))
		lines = append(lines, string(residues[start:end])+"\n")
	}

	return lines
}
