package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "mutafinder.dev/pkg/mutafinder/internal/model"
)

func TestWrapResidues(t *testing.T) {
	assert.Equal(t, []string{"ACG\n", "TAC\n", "G\n"}, wrapResidues("ACGTACG", 3))
	assert.Equal(t, []string{"ACG\n"}, wrapResidues("ACG", 3))
	assert.Empty(t, wrapResidues("", 3))
}

func TestRenderSequenceDiff_Identical(t *testing.T) {
	diff, err := RenderSequenceDiff("ACGTACGT", "ACGTACGT", 4)
	require.NoError(t, err)
	assert.Empty(t, diff)
}

func TestRenderSequenceDiff_ChangedLine(t *testing.T) {
	reference := m.Sequence("AAAACCCCGGGG")
	candidate := m.Sequence("AAAACTCCGGGG")

	diff, err := RenderSequenceDiff(reference, candidate, 4)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(diff, "--- sequence 1 (reference)"))
	assert.Contains(t, diff, "+++ sequence 2 (mutated)")
	assert.Contains(t, diff, "\n-CCCC\n")
	assert.Contains(t, diff, "\n+CTCC\n")
	assert.NotContains(t, diff, "-AAAA")
}

func TestRenderSequenceDiff_DefaultWidth(t *testing.T) {
	reference := m.Sequence(strings.Repeat("A", 120))
	candidate := m.Sequence(strings.Repeat("A", 119) + "T")

	diff, err := RenderSequenceDiff(reference, candidate, 0)
	require.NoError(t, err)

	assert.Contains(t, diff, "-"+strings.Repeat("A", DefaultDiffWidth)+"\n")
	assert.Contains(t, diff, "+"+strings.Repeat("A", DefaultDiffWidth-1)+"T\n")
}
