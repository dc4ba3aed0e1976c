package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	m "mutafinder.dev/pkg/mutafinder/internal/model"
)

// ReportStore persists rendered export artifacts.
type ReportStore interface {
	// SaveReport writes content to dir/name, creating dir when it is missing.
	SaveReport(ctx context.Context, dir m.Path, name string, content []byte) (m.Path, error)

	// LoadReport reads a previously written artifact.
	LoadReport(ctx context.Context, path m.Path) ([]byte, error)
}

type reportStore struct{}

// NewReportStore creates a ReportStore writing to the local disk.
func NewReportStore() ReportStore {
	return &reportStore{}
}

func (s *reportStore) SaveReport(ctx context.Context, dir m.Path, name string, content []byte) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		slog.Error("Failed to create output directory", "dir", dir, "error", err)
		return "", fmt.Errorf("create output directory %s: %w", dir, err)
	}

	target := filepath.Join(string(dir), name)

	if err := os.WriteFile(target, content, 0o600); err != nil {
		slog.Error("Failed to write report", "path", target, "error", err)
		return "", fmt.Errorf("write %s: %w", target, err)
	}

	slog.Debug("Wrote report", "path", target, "bytes", len(content))

	return m.Path(target), nil
}

func (s *reportStore) LoadReport(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - the user chose this file to be read
	content, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return content, nil
}
