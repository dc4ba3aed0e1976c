// Package adapter contains the file system boundary of mutafinder.
package adapter

import (
	"bufio"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	m "mutafinder.dev/pkg/mutafinder/internal/model"
)

// StdinPath is the path that selects standard input instead of a file.
const StdinPath = "-"

// SequenceFSAdapter abstracts the file system operations the loader relies on
// so sequence loading can be tested without touching the disk.
type SequenceFSAdapter interface {
	// Open returns a reader over the (decompressed) contents of path.
	Open(ctx context.Context, path m.Path) (io.ReadCloser, error)

	// FileInfo returns metadata for a path so callers can tell files from directories.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// WorkingDir returns the current working directory.
	WorkingDir(ctx context.Context) (m.Path, error)

	// FindProjectRoot walks up from startDir until a directory holds one of the markers.
	FindProjectRoot(ctx context.Context, startDir m.Path, markers ...string) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(ctx context.Context, elem ...string) m.Path
}

// LocalSequenceFSAdapter implements SequenceFSAdapter on the local disk.
type LocalSequenceFSAdapter struct {
	stdin io.Reader
}

// NewLocalSequenceFSAdapter constructs a LocalSequenceFSAdapter reading "-" from os.Stdin.
func NewLocalSequenceFSAdapter() *LocalSequenceFSAdapter {
	return &LocalSequenceFSAdapter{stdin: os.Stdin}
}

// Open opens path for reading. "-" reads standard input. Gzip input is
// detected by its magic bytes or a .gz suffix and decompressed on the fly.
func (a *LocalSequenceFSAdapter) Open(ctx context.Context, path m.Path) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if string(path) == StdinPath {
		return maybeGunzip(io.NopCloser(a.stdin), false)
	}

	// #nosec G304 - the user chose this file to be read
	fh, err := os.Open(string(path))
	if err != nil {
		return nil, err
	}

	return maybeGunzip(fh, strings.HasSuffix(strings.ToLower(string(path)), ".gz"))
}

type gzipReadCloser struct {
	*gzip.Reader
	source io.Closer
}

func (g *gzipReadCloser) Close() error {
	gzErr := g.Reader.Close()
	srcErr := g.source.Close()

	if gzErr != nil {
		return gzErr
	}

	return srcErr
}

type bufferedReadCloser struct {
	*bufio.Reader
	io.Closer
}

func maybeGunzip(rc io.ReadCloser, forced bool) (io.ReadCloser, error) {
	br := bufio.NewReader(rc)

	magic, _ := br.Peek(2)
	isGzip := len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b

	if !isGzip && !forced {
		return &bufferedReadCloser{Reader: br, Closer: rc}, nil
	}

	gz, err := gzip.NewReader(br)
	if err != nil {
		_ = rc.Close()
		return nil, fmt.Errorf("open gzip stream: %w", err)
	}

	return &gzipReadCloser{Reader: gz, source: rc}, nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSequenceFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Stat(string(path))
}

// WorkingDir returns the process working directory.
func (a *LocalSequenceFSAdapter) WorkingDir(ctx context.Context) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	return m.Path(wd), nil
}

// FindProjectRoot searches startDir and its parents for any of the marker files.
func (a *LocalSequenceFSAdapter) FindProjectRoot(ctx context.Context, startDir m.Path, markers ...string) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir, err := filepath.Abs(string(startDir))
	if err != nil {
		return "", err
	}

	for {
		for _, marker := range markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return m.Path(dir), nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("none of %v found in any parent directory of %s", markers, startDir)
		}

		dir = parent
	}
}

// JoinPath joins path elements into a single path.
func (a *LocalSequenceFSAdapter) JoinPath(_ context.Context, elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
