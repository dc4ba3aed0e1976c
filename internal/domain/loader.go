package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"mutafinder.dev/pkg/mutafinder/internal/adapter"
	m "mutafinder.dev/pkg/mutafinder/internal/model"
)

// Loader reads FASTA files into sequences.
type Loader struct {
	fs       adapter.SequenceFSAdapter
	resolver *PathResolver
}

// NewLoader creates a Loader reading through fsAdapter with paths resolved by resolver.
func NewLoader(fsAdapter adapter.SequenceFSAdapter, resolver *PathResolver) *Loader {
	return &Loader{fs: fsAdapter, resolver: resolver}
}

// Load resolves path and parses the FASTA file it names.
//
// A path that is missing or is a directory fails with ErrSequenceNotFound.
// A file that is not valid UTF-8 fails with ErrInvalidEncoding naming the path.
// Other I/O errors are returned unmodified.
func (l *Loader) Load(ctx context.Context, path m.Path) (m.Sequence, error) {
	resolved, err := l.resolver.Resolve(ctx, path)
	if err != nil {
		return "", err
	}

	if string(resolved) != adapter.StdinPath {
		info, err := l.fs.FileInfo(ctx, resolved)
		if err != nil {
			return "", notFoundOr(resolved, err)
		}

		if info.IsDir() {
			return "", fmt.Errorf("%w: %s is a directory", ErrSequenceNotFound, resolved)
		}
	}

	rc, err := l.fs.Open(ctx, resolved)
	if err != nil {
		return "", notFoundOr(resolved, err)
	}

	defer func() {
		if err := rc.Close(); err != nil {
			slog.Warn("Failed to close sequence file", "path", resolved, "error", err)
		}
	}()

	sequence, err := ParseFasta(rc)
	if err != nil {
		slog.Error("Failed to read sequence", "path", resolved, "error", err)

		if errors.Is(err, ErrInvalidEncoding) {
			return "", fmt.Errorf("%s: %w", resolved, err)
		}

		return "", err
	}

	slog.Debug("Loaded sequence", "path", resolved, "residues", sequence.Len())

	return sequence, nil
}

func notFoundOr(path m.Path, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrSequenceNotFound, path)
	}

	return err
}
