package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"mutafinder.dev/pkg/mutafinder/internal/domain"
	m "mutafinder.dev/pkg/mutafinder/internal/model"
)

func TestShowCmd_GuessesFormat(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRootCmd(t, newShowCmd())

	mockWorkflow.On("Show", mock.Anything, mock.MatchedBy(func(args domain.ShowArgs) bool {
		return args.Table == m.Path("data/output/mutations.tsv") && args.Format == ""
	})).Return(nil)

	cmd.SetArgs(withLogFile(t, "show", "data/output/mutations.tsv"))
	require.NoError(t, cmd.Execute())
}

func TestShowCmd_ExplicitFormat(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRootCmd(t, newShowCmd())

	mockWorkflow.On("Show", mock.Anything, mock.MatchedBy(func(args domain.ShowArgs) bool {
		return args.Format == m.TableYAML
	})).Return(nil)

	cmd.SetArgs(withLogFile(t, "show", "table.txt", "--format", "yaml"))
	require.NoError(t, cmd.Execute())
}

func TestShowCmd_WorkflowError(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRootCmd(t, newShowCmd())

	mockWorkflow.On("Show", mock.Anything, mock.Anything).Return(domain.ErrInvalidTable)

	cmd.SetArgs(withLogFile(t, "show", "broken.csv"))
	err := cmd.Execute()
	require.True(t, errors.Is(err, domain.ErrInvalidTable))
}

func TestShowCmd_NeedsOneFile(t *testing.T) {
	cmd, _, _ := newTestRootCmd(t, newShowCmd())

	cmd.SetArgs(withLogFile(t, "show"))
	require.Error(t, cmd.Execute())
}
