package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	domainmocks "mutafinder.dev/pkg/mutafinder/internal/domain/mocks"
)

// newTestRootCmd builds a root command with the given subcommands, logging
// into a temporary file, and swaps the global workflow for a mock.
func newTestRootCmd(t *testing.T, subcommands ...*cobra.Command) (*cobra.Command, *domainmocks.MockWorkflow, *bytes.Buffer) {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	cmd := newRootCmd()
	cmd.AddCommand(subcommands...)

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	return cmd, mockWorkflow, out
}

func withLogFile(t *testing.T, args ...string) []string {
	t.Helper()

	return append(args, "--"+logFileFlagName, filepath.Join(t.TempDir(), "test.log"))
}
