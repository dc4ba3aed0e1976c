// Package controller provides the user interfaces of mutafinder.
package controller

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	m "mutafinder.dev/pkg/mutafinder/internal/model"
)

// ErrPromptCancelled is returned by PromptPath when the user backs out of a prompt.
var ErrPromptCancelled = errors.New("prompt cancelled")

// Mode selects which UI implementation NewUI builds.
type Mode string

// Available UI modes.
const (
	ModeAuto   Mode = "auto"
	ModeSimple Mode = "simple"
	ModeTUI    Mode = "tui"
)

// ParseMode converts a config value into a Mode. Empty selects ModeAuto.
func ParseMode(value string) (Mode, error) {
	switch mode := Mode(strings.ToLower(strings.TrimSpace(value))); mode {
	case "":
		return ModeAuto, nil
	case ModeAuto, ModeSimple, ModeTUI:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown ui mode %q (want auto, simple or tui)", value)
	}
}

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeInteractive StartMode = iota
	ModeBatch
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithInteractiveMode starts the UI for the menu driven session.
func WithInteractiveMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeInteractive
	}
}

// WithBatchMode starts the UI for a single non-interactive command.
func WithBatchMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeBatch
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	cfg := StartConfig{mode: ModeInteractive}
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI is everything the session shell and the batch commands need from a
// user interface. Implementations can use different output methods (simple
// text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	SelectAction(ctx context.Context) (m.Action, error)
	PromptPath(ctx context.Context, slot m.Slot) (m.Path, error)
	DisplayInfo(ctx context.Context, message string)
	DisplayWarning(ctx context.Context, message string)
	DisplayError(ctx context.Context, err error)
	DisplayMutations(ctx context.Context, table string)
	DisplaySummary(ctx context.Context, summary m.Summary)
	DisplayDiff(ctx context.Context, diff string)
}

// NewUI picks the TUI for ModeTUI, or for ModeAuto when attached to a
// terminal, and the SimpleUI otherwise.
func NewUI(cmd *cobra.Command, mode Mode, isTTY bool) UI {
	if mode == ModeTUI || (mode == ModeAuto && isTTY) {
		return NewTUI(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether every given file is a terminal.
func IsTTY(files ...*os.File) bool {
	if len(files) == 0 {
		return false
	}

	for _, f := range files {
		if f == nil {
			return false
		}

		fd := f.Fd()
		if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
			return false
		}
	}

	return true
}
