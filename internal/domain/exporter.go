package domain

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"mutafinder.dev/pkg/mutafinder/internal/adapter"
	m "mutafinder.dev/pkg/mutafinder/internal/model"
)

// ExportOptions configures where and how export artifacts are written.
type ExportOptions struct {
	Output     m.Path // directory, resolved like any other path
	ReportName string
	TableName  string // an extension matching Format is added when missing
	Format     m.TableFormat
	Author     string
}

// Exporter renders comparison results and hands them to a ReportStore.
type Exporter struct {
	store    adapter.ReportStore
	resolver *PathResolver
}

// NewExporter creates an Exporter writing through store.
func NewExporter(store adapter.ReportStore, resolver *PathResolver) *Exporter {
	return &Exporter{store: store, resolver: resolver}
}

// ExportNarrative writes the narrative text report and returns its path.
func (e *Exporter) ExportNarrative(
	ctx context.Context,
	opts ExportOptions,
	mutations m.MutationSet,
	reference, candidate m.Sequence,
) (m.Path, error) {
	content := RenderNarrative(mutations, reference, candidate, opts.Author)

	return e.save(ctx, opts.Output, opts.ReportName, []byte(content))
}

// ExportTabular writes the mutation table in opts.Format and returns its path.
func (e *Exporter) ExportTabular(ctx context.Context, opts ExportOptions, mutations m.MutationSet) (m.Path, error) {
	var buf bytes.Buffer

	if err := EncodeTable(&buf, mutations, opts.Format); err != nil {
		return "", err
	}

	return e.save(ctx, opts.Output, TableFileName(opts.TableName, opts.Format), buf.Bytes())
}

func (e *Exporter) save(ctx context.Context, output m.Path, name string, content []byte) (m.Path, error) {
	dir, err := e.resolver.Resolve(ctx, output)
	if err != nil {
		return "", fmt.Errorf("resolve output directory: %w", err)
	}

	path, err := e.store.SaveReport(ctx, dir, name, content)
	if err != nil {
		slog.Error("Failed to export", "dir", dir, "name", name, "error", err)
		return "", err
	}

	slog.Info("Exported", "path", path)

	return path, nil
}

// TableFileName appends the format extension to name when it has none.
func TableFileName(name string, format m.TableFormat) string {
	if filepath.Ext(name) != "" {
		return name
	}

	return name + "." + string(format)
}
