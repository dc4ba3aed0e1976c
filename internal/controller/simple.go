package controller

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "mutafinder.dev/pkg/mutafinder/internal/model"
)

// SimpleUI implements UI with plain text over the cobra command's streams.
type SimpleUI struct {
	cmd    *cobra.Command
	reader *bufio.Reader
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start prints the ready banner for interactive sessions.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if newStartConfig(options...).mode == ModeInteractive {
		s.printf("=== mutafinder ready ===\n")
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// SelectAction prints the numbered menu and reads one choice.
// End of input selects ActionExit.
func (s *SimpleUI) SelectAction(ctx context.Context) (m.Action, error) {
	if err := ctx.Err(); err != nil {
		return m.ActionInvalid, err
	}

	s.printf("\n=== mutafinder ===\n")

	for _, action := range m.MenuActions {
		s.printf("%d. %s\n", int(action), action.Label())
	}

	s.printf("Select an option: ")

	line, err := s.readLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			s.printf("\n")
			return m.ActionExit, nil
		}

		return m.ActionInvalid, err
	}

	return m.ParseAction(line), nil
}

// PromptPath asks for the FASTA file of slot.
func (s *SimpleUI) PromptPath(ctx context.Context, slot m.Slot) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.printf("Enter the FASTA file for %s: ", slot)

	line, err := s.readLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", ErrPromptCancelled
		}

		return "", err
	}

	return m.Path(strings.TrimSpace(line)), nil
}

// readLine returns the next input line; a final line without newline is
// returned before io.EOF.
func (s *SimpleUI) readLine() (string, error) {
	if s.reader == nil {
		s.reader = bufio.NewReader(s.cmd.InOrStdin())
	}

	line, err := s.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// DisplayInfo prints a success or progress message.
func (s *SimpleUI) DisplayInfo(ctx context.Context, message string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("✔ %s\n", message)
}

// DisplayWarning prints a precondition or input warning.
func (s *SimpleUI) DisplayWarning(ctx context.Context, message string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("⚠ %s\n", message)
}

// DisplayError prints an operation failure.
func (s *SimpleUI) DisplayError(ctx context.Context, err error) {
	if ctx.Err() != nil || err == nil {
		return
	}

	s.printf("✖ %v\n", err)
}

// DisplayMutations prints a rendered mutation table.
func (s *SimpleUI) DisplayMutations(ctx context.Context, table string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n%s", table)
}

// DisplaySummary prints the comparison counts as a table.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.Summary) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n%s", renderSummaryTable(summary))
}

// DisplayDiff prints a unified diff of the wrapped sequences.
func (s *SimpleUI) DisplayDiff(ctx context.Context, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	if diff == "" {
		s.printf("\nSequences match line by line.\n")
		return
	}

	s.printf("\n%s", diff)
}

func renderSummaryTable(summary m.Summary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	table.Append([]string{"Sequence 1 (reference)", strconv.Itoa(summary.ReferenceLength)})
	table.Append([]string{"Sequence 2 (mutated)", strconv.Itoa(summary.CandidateLength)})
	table.Append([]string{"Compared positions", strconv.Itoa(summary.Compared)})
	table.Append([]string{"Ignored trailing residues", strconv.Itoa(summary.Ignored())})

	table.SetFooter([]string{
		fmt.Sprintf("Identity %.2f%%", summary.Identity()*100),
		fmt.Sprintf("%d mutations", summary.Mutations),
	})

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
