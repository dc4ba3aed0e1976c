package controller

import (
	"bytes"
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "mutafinder.dev/pkg/mutafinder/internal/model"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMenuModel_NumberKeys(t *testing.T) {
	for i, action := range m.MenuActions {
		model, cmd := newMenuModel().Update(runeKey(string(rune('1' + i))))

		menu, ok := model.(menuModel)
		require.True(t, ok)
		assert.True(t, menu.done)
		assert.Equal(t, action, menu.choice)
		assert.NotNil(t, cmd)
		assert.Empty(t, menu.View())
	}
}

func TestMenuModel_EnterSelectsHighlighted(t *testing.T) {
	model, _ := newMenuModel().Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, m.ActionLoadReference, model.(menuModel).choice)

	model, _ = newMenuModel().Update(tea.KeyMsg{Type: tea.KeyDown})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, m.ActionLoadCandidate, model.(menuModel).choice)
}

func TestMenuModel_QuitKeysExit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		model, _ := newMenuModel().Update(msg)
		assert.Equal(t, m.ActionExit, model.(menuModel).choice)
	}
}

func TestMenuModel_ViewListsActions(t *testing.T) {
	view := newMenuModel().View()

	assert.Contains(t, view, "mutafinder")
	assert.Contains(t, view, "Load sequence 1 (FASTA)")
}

func TestPromptModel_Enter(t *testing.T) {
	var model tea.Model = newPromptModel(m.SlotCandidate)

	assert.Contains(t, model.View(), "FASTA file for sequence 2")

	model, _ = model.Update(runeKey(" cand.fasta "))
	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	prompt := model.(promptModel)
	assert.True(t, prompt.done)
	assert.False(t, prompt.cancelled)
	assert.Equal(t, "cand.fasta", prompt.value)
	assert.NotNil(t, cmd)
}

func TestPromptModel_Escape(t *testing.T) {
	model, _ := newPromptModel(m.SlotReference).Update(tea.KeyMsg{Type: tea.KeyEsc})

	prompt := model.(promptModel)
	assert.True(t, prompt.cancelled)
	assert.Empty(t, prompt.View())
}

func TestTUI_Display(t *testing.T) {
	out := &bytes.Buffer{}
	ui := NewTUI(&bytes.Buffer{}, out)
	ctx := context.Background()

	require.NoError(t, ui.Start(ctx))
	ui.DisplayInfo(ctx, "Comparison complete. Found 2 mutations.")
	ui.DisplayWarning(ctx, "Compare the sequences first (option 3).")
	ui.DisplayError(ctx, errors.New("write failed"))
	ui.DisplayMutations(ctx, "Position | Original | Mutated\n")
	ui.DisplaySummary(ctx, m.Summary{ReferenceLength: 4, CandidateLength: 4, Compared: 4, Mutations: 1})
	ui.DisplayDiff(ctx, "--- a\n+++ b\n@@ -1 +1 @@\n-ACGT\n+ACTT\n")

	got := out.String()
	assert.Contains(t, got, "point mutation finder")
	assert.Contains(t, got, "Found 2 mutations.")
	assert.Contains(t, got, "option 3")
	assert.Contains(t, got, "write failed")
	assert.Contains(t, got, "Position | Original | Mutated")
	assert.Contains(t, got, "Comparison summary")
	assert.Contains(t, got, "75.00%")
	assert.Contains(t, got, "-ACGT")
	assert.Contains(t, got, "+ACTT")
}

func TestTUI_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ui := NewTUI(&bytes.Buffer{}, &bytes.Buffer{})

	_, err := ui.SelectAction(ctx)
	require.ErrorIs(t, err, context.Canceled)

	_, err = ui.PromptPath(ctx, m.SlotReference)
	require.ErrorIs(t, err, context.Canceled)
}
