package domain

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"mutafinder.dev/pkg/mutafinder/internal/adapter"
	"mutafinder.dev/pkg/mutafinder/internal/controller"
	m "mutafinder.dev/pkg/mutafinder/internal/model"
)

// InteractiveArgs contains the arguments for the menu driven session.
type InteractiveArgs struct {
	Paths  PathArgs
	Export ExportOptions
}

// CompareArgs contains the arguments for a one-shot comparison.
type CompareArgs struct {
	Reference   m.Path
	Candidate   m.Path
	Paths       PathArgs
	Export      ExportOptions
	WriteReport bool
	WriteTable  bool
	ShowDiff    bool
	DiffWidth   int
}

// ShowArgs contains the arguments for displaying a tabular export.
type ShowArgs struct {
	Table  m.Path
	Paths  PathArgs
	Format m.TableFormat // guessed from the extension when empty
}

// Workflow is what the command line runs.
type Workflow interface {
	Interactive(ctx context.Context, args InteractiveArgs) error
	Compare(ctx context.Context, args CompareArgs) error
	Show(ctx context.Context, args ShowArgs) error
}

type workflow struct {
	adapter.SequenceFSAdapter
	adapter.ReportStore
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SequenceFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		SequenceFSAdapter: fsAdapter,
		ReportStore:       reportStore,
		UI:                ui,
	}
}

func (w *workflow) Interactive(ctx context.Context, args InteractiveArgs) error {
	if err := w.Start(ctx, controller.WithInteractiveMode()); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	resolver := NewPathResolver(w.SequenceFSAdapter, args.Paths)
	shell := NewShell(
		w.UI,
		NewLoader(w.SequenceFSAdapter, resolver),
		NewExporter(w.ReportStore, resolver),
		args.Export,
	)

	return shell.Run(ctx)
}

func (w *workflow) Compare(ctx context.Context, args CompareArgs) error {
	if err := w.Start(ctx, controller.WithBatchMode()); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	resolver := NewPathResolver(w.SequenceFSAdapter, args.Paths)
	loader := NewLoader(w.SequenceFSAdapter, resolver)

	reference, err := loader.Load(ctx, args.Reference)
	if err != nil {
		return fmt.Errorf("load %s: %w", m.SlotReference, err)
	}

	candidate, err := loader.Load(ctx, args.Candidate)
	if err != nil {
		return fmt.Errorf("load %s: %w", m.SlotCandidate, err)
	}

	mutations := Detect(reference, candidate)

	w.DisplaySummary(ctx, Summarize(reference, candidate, mutations))
	w.DisplayMutations(ctx, RenderTable(mutations))

	if args.ShowDiff {
		diff, err := RenderSequenceDiff(reference, candidate, args.DiffWidth)
		if err != nil {
			return fmt.Errorf("render diff: %w", err)
		}

		w.DisplayDiff(ctx, diff)
	}

	exporter := NewExporter(w.ReportStore, resolver)

	if args.WriteReport {
		path, err := exporter.ExportNarrative(ctx, args.Export, mutations, reference, candidate)
		if err != nil {
			return fmt.Errorf("export report: %w", err)
		}

		w.DisplayInfo(ctx, fmt.Sprintf("Report written: %s", path))
	}

	if args.WriteTable {
		path, err := exporter.ExportTabular(ctx, args.Export, mutations)
		if err != nil {
			return fmt.Errorf("export table: %w", err)
		}

		w.DisplayInfo(ctx, fmt.Sprintf("Table written: %s", path))
	}

	return nil
}

func (w *workflow) Show(ctx context.Context, args ShowArgs) error {
	if err := w.Start(ctx, controller.WithBatchMode()); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	path, err := NewPathResolver(w.SequenceFSAdapter, args.Paths).Resolve(ctx, args.Table)
	if err != nil {
		return err
	}

	content, err := w.LoadReport(ctx, path)
	if err != nil {
		return err
	}

	format := args.Format
	if format == "" {
		format = m.TableFormatForPath(path, m.TableCSV)
	}

	mutations, err := DecodeTable(bytes.NewReader(content), format)
	if err != nil {
		slog.Error("Failed to decode table", "path", path, "format", format, "error", err)
		return fmt.Errorf("decode %s: %w", path, err)
	}

	w.DisplayMutations(ctx, RenderTable(mutations))

	return nil
}
