package domain

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"mutafinder.dev/pkg/mutafinder/internal/adapter"
	controllermocks "mutafinder.dev/pkg/mutafinder/internal/controller/mocks"
	m "mutafinder.dev/pkg/mutafinder/internal/model"
)

func newTestWorkflow(ui *controllermocks.MockUI) Workflow {
	return NewWorkflow(adapter.NewLocalSequenceFSAdapter(), adapter.NewReportStore(), ui)
}

func TestWorkflow_Interactive(t *testing.T) {
	ui := controllermocks.NewMockUI(t)
	ui.On("Start", mock.Anything, mock.Anything).Return(nil).Once()
	ui.On("SelectAction", mock.Anything).Return(m.ActionExit, nil).Once()
	ui.On("DisplayInfo", mock.Anything, msgExiting).Once()
	ui.On("Close", mock.Anything).Once()

	err := newTestWorkflow(ui).Interactive(context.Background(), InteractiveArgs{Export: exportOptions(t.TempDir())})
	require.NoError(t, err)
}

func TestWorkflow_StartError(t *testing.T) {
	boom := errors.New("no terminal")

	ui := controllermocks.NewMockUI(t)
	ui.On("Start", mock.Anything, mock.Anything).Return(boom).Once()

	err := newTestWorkflow(ui).Interactive(context.Background(), InteractiveArgs{})
	require.ErrorIs(t, err, boom)
}

func TestWorkflow_Compare(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	refPath := writeFile(t, dir, "ref.fasta", ">seq1\nATGC\nGTAC\n")
	candPath := writeFile(t, dir, "cand.fasta", ">seq2\nATGA\nGTAT\n")

	ui := controllermocks.NewMockUI(t)
	ui.On("Start", mock.Anything, mock.Anything).Return(nil).Once()
	ui.On("DisplaySummary", mock.Anything, m.Summary{ReferenceLength: 8, CandidateLength: 8, Compared: 8, Mutations: 2}).Once()
	ui.On("DisplayMutations", mock.Anything, RenderTable(sampleMutations)).Once()
	ui.On("DisplayDiff", mock.Anything, mock.MatchedBy(func(diff string) bool {
		return strings.Contains(diff, "-ATGCGTAC") && strings.Contains(diff, "+ATGAGTAT")
	})).Once()
	ui.On("DisplayInfo", mock.Anything, "Report written: "+filepath.Join(outDir, "mutation_report.txt")).Once()
	ui.On("DisplayInfo", mock.Anything, "Table written: "+filepath.Join(outDir, "mutations.csv")).Once()
	ui.On("Close", mock.Anything).Once()

	err := newTestWorkflow(ui).Compare(context.Background(), CompareArgs{
		Reference:   m.Path(refPath),
		Candidate:   m.Path(candPath),
		Export:      exportOptions(outDir),
		WriteReport: true,
		WriteTable:  true,
		ShowDiff:    true,
	})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(outDir, "mutation_report.txt"))
	assert.FileExists(t, filepath.Join(outDir, "mutations.csv"))
}

func TestWorkflow_CompareWithoutExports(t *testing.T) {
	dir := t.TempDir()
	refPath := writeFile(t, dir, "ref.fasta", ">a\nACGT\n")

	ui := controllermocks.NewMockUI(t)
	ui.On("Start", mock.Anything, mock.Anything).Return(nil).Once()
	ui.On("DisplaySummary", mock.Anything, mock.Anything).Once()
	ui.On("DisplayMutations", mock.Anything, NoMutationsNotice+"\n").Once()
	ui.On("Close", mock.Anything).Once()

	err := newTestWorkflow(ui).Compare(context.Background(), CompareArgs{
		Reference: m.Path(refPath),
		Candidate: m.Path(refPath),
		Export:    exportOptions(filepath.Join(dir, "out")),
	})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "out"))
	assert.True(t, os.IsNotExist(err))
}

func TestWorkflow_CompareMissingCandidate(t *testing.T) {
	dir := t.TempDir()
	refPath := writeFile(t, dir, "ref.fasta", ">a\nACGT\n")

	ui := controllermocks.NewMockUI(t)
	ui.On("Start", mock.Anything, mock.Anything).Return(nil).Once()
	ui.On("Close", mock.Anything).Once()

	err := newTestWorkflow(ui).Compare(context.Background(), CompareArgs{
		Reference: m.Path(refPath),
		Candidate: m.Path(filepath.Join(dir, "missing.fasta")),
	})
	require.ErrorIs(t, err, ErrSequenceNotFound)
	assert.Contains(t, err.Error(), "load sequence 2")
}

func TestWorkflow_Show(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "mutations.tsv", "Position\tOriginal\tMutated\n4\tC\tA\n8\tC\tT\n")

	ui := controllermocks.NewMockUI(t)
	ui.On("Start", mock.Anything, mock.Anything).Return(nil).Once()
	ui.On("DisplayMutations", mock.Anything, RenderTable(sampleMutations)).Once()
	ui.On("Close", mock.Anything).Once()

	err := newTestWorkflow(ui).Show(context.Background(), ShowArgs{Table: m.Path(path)})
	require.NoError(t, err)
}

func TestWorkflow_ShowExplicitFormat(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "mutations.txt", "- position: 4\n  original: C\n  mutated: A\n")

	ui := controllermocks.NewMockUI(t)
	ui.On("Start", mock.Anything, mock.Anything).Return(nil).Once()
	ui.On("DisplayMutations", mock.Anything, RenderTable(m.MutationSet{{Position: 4, Reference: 'C', Mutated: 'A'}})).Once()
	ui.On("Close", mock.Anything).Once()

	err := newTestWorkflow(ui).Show(context.Background(), ShowArgs{Table: m.Path(path), Format: m.TableYAML})
	require.NoError(t, err)
}

func TestWorkflow_ShowInvalidTable(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "broken.csv", "what,is,this\n")

	ui := controllermocks.NewMockUI(t)
	ui.On("Start", mock.Anything, mock.Anything).Return(nil).Once()
	ui.On("Close", mock.Anything).Once()

	err := newTestWorkflow(ui).Show(context.Background(), ShowArgs{Table: m.Path(path)})
	require.ErrorIs(t, err, ErrInvalidTable)
}
