package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"mutafinder.dev/pkg/mutafinder/internal/controller"
	m "mutafinder.dev/pkg/mutafinder/internal/model"
)

const (
	msgLoadBothFirst  = "Load both sequences first."
	msgCompareFirst   = "Compare the sequences first (option 3)."
	msgInvalidOption  = "Invalid option. Try again."
	msgLoadCancelled  = "Load cancelled."
	msgExiting        = "Exiting..."
	msgEmptyPathGiven = "No file given."
)

// Shell drives the interactive menu. It owns the Session and checks every
// precondition itself, so a missing sequence or comparison only produces a
// warning and the loop goes on.
type Shell struct {
	ui       controller.UI
	loader   *Loader
	exporter *Exporter
	session  *Session
	export   ExportOptions
}

// NewShell creates a Shell with an empty session.
func NewShell(ui controller.UI, loader *Loader, exporter *Exporter, export ExportOptions) *Shell {
	return &Shell{
		ui:       ui,
		loader:   loader,
		exporter: exporter,
		session:  NewSession(),
		export:   export,
	}
}

// Session returns the state the shell works on.
func (s *Shell) Session() *Session {
	return s.session
}

// Run loops over menu selections until the user exits, the input ends or
// the context is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		action, err := s.ui.SelectAction(ctx)
		if err != nil {
			slog.Error("Failed to read menu selection", "error", err)
			return fmt.Errorf("select action: %w", err)
		}

		if action == m.ActionExit {
			s.ui.DisplayInfo(ctx, msgExiting)
			return nil
		}

		s.Dispatch(ctx, action)
	}
}

// Dispatch performs one menu action.
func (s *Shell) Dispatch(ctx context.Context, action m.Action) {
	slog.Debug("Menu action", "action", action.Label())

	switch action {
	case m.ActionLoadReference:
		s.load(ctx, m.SlotReference)
	case m.ActionLoadCandidate:
		s.load(ctx, m.SlotCandidate)
	case m.ActionCompare:
		s.compare(ctx)
	case m.ActionDisplay:
		s.display(ctx)
	case m.ActionExportReport:
		s.exportNarrative(ctx)
	case m.ActionExportTable:
		s.exportTabular(ctx)
	case m.ActionExit:
		// Run handles exiting; nothing to do for a single action.
	case m.ActionInvalid:
		s.ui.DisplayWarning(ctx, msgInvalidOption)
	default:
		s.ui.DisplayWarning(ctx, msgInvalidOption)
	}
}

func (s *Shell) load(ctx context.Context, slot m.Slot) {
	path, err := s.ui.PromptPath(ctx, slot)
	if err != nil {
		if errors.Is(err, controller.ErrPromptCancelled) {
			s.ui.DisplayWarning(ctx, msgLoadCancelled)
			return
		}

		s.ui.DisplayError(ctx, err)

		return
	}

	if path == "" {
		s.ui.DisplayWarning(ctx, msgEmptyPathGiven)
		return
	}

	sequence, err := s.loader.Load(ctx, path)
	if err != nil {
		slog.Error("Failed to load sequence", "slot", slot.String(), "path", path, "error", err)
		s.ui.DisplayError(ctx, fmt.Errorf("load %s: %w", slot, err))

		return
	}

	s.session.Set(slot, sequence)
	s.ui.DisplayInfo(ctx, fmt.Sprintf("Sequence %d loaded (%d residues).", int(slot), sequence.Len()))
}

func (s *Shell) compare(ctx context.Context) {
	reference, candidate, err := s.session.Pair()
	if err != nil {
		slog.Debug("Compare refused", "error", err)
		s.ui.DisplayWarning(ctx, msgLoadBothFirst)

		return
	}

	mutations := Detect(reference, candidate)
	s.session.SetResult(reference, candidate, mutations)

	s.ui.DisplayInfo(ctx, fmt.Sprintf("Comparison complete. Found %d mutations.", len(mutations)))
	s.ui.DisplaySummary(ctx, Summarize(reference, candidate, mutations))
}

func (s *Shell) display(ctx context.Context) {
	mutations, err := s.session.Result()
	if err != nil {
		s.ui.DisplayWarning(ctx, msgCompareFirst)
		return
	}

	s.ui.DisplayMutations(ctx, RenderTable(mutations))
}

func (s *Shell) exportNarrative(ctx context.Context) {
	mutations, err := s.session.Result()
	if err != nil {
		s.ui.DisplayWarning(ctx, msgCompareFirst)
		return
	}

	reference, candidate, err := s.session.ComparedPair()
	if err != nil {
		s.ui.DisplayWarning(ctx, msgCompareFirst)
		return
	}

	path, err := s.exporter.ExportNarrative(ctx, s.export, mutations, reference, candidate)
	if err != nil {
		s.ui.DisplayError(ctx, fmt.Errorf("export report: %w", err))
		return
	}

	s.ui.DisplayInfo(ctx, fmt.Sprintf("Report written: %s", path))
}

func (s *Shell) exportTabular(ctx context.Context) {
	mutations, err := s.session.Result()
	if err != nil {
		s.ui.DisplayWarning(ctx, msgCompareFirst)
		return
	}

	path, err := s.exporter.ExportTabular(ctx, s.export, mutations)
	if err != nil {
		s.ui.DisplayError(ctx, fmt.Errorf("export table: %w", err))
		return
	}

	s.ui.DisplayInfo(ctx, fmt.Sprintf("Table written: %s", path))
}
