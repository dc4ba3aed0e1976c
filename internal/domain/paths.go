package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"mutafinder.dev/pkg/mutafinder/internal/adapter"
	m "mutafinder.dev/pkg/mutafinder/internal/model"
)

// ProjectMarkers are the files that identify a project root.
var ProjectMarkers = []string{"mutafinder.yaml", "go.mod"}

// PathArgs configures how user supplied paths are resolved.
type PathArgs struct {
	Base m.PathBase
	Root m.Path // explicit project root; detected from ProjectMarkers when empty
}

// PathResolver turns user supplied paths into the paths that are read or written.
// Loads and exports go through the same resolver.
type PathResolver struct {
	fs   adapter.SequenceFSAdapter
	args PathArgs
}

// NewPathResolver creates a PathResolver over the given file system adapter.
func NewPathResolver(fs adapter.SequenceFSAdapter, args PathArgs) *PathResolver {
	if args.Base == "" {
		args.Base = m.PathBaseCwd
	}

	return &PathResolver{fs: fs, args: args}
}

// Resolve returns the path to use for p. Absolute paths and "-" are returned
// as given. Relative paths are joined with the working directory or the
// project root, or rejected with ErrRelativePath in absolute mode.
func (r *PathResolver) Resolve(ctx context.Context, p m.Path) (m.Path, error) {
	if string(p) == adapter.StdinPath {
		return p, nil
	}

	if filepath.IsAbs(string(p)) {
		return m.Path(filepath.Clean(string(p))), nil
	}

	switch r.args.Base {
	case m.PathBaseAbsolute:
		return "", fmt.Errorf("%w: %s", ErrRelativePath, p)

	case m.PathBaseProject:
		root, err := r.projectRoot(ctx)
		if err != nil {
			return "", err
		}

		return r.fs.JoinPath(ctx, string(root), string(p)), nil

	case m.PathBaseCwd:
		wd, err := r.fs.WorkingDir(ctx)
		if err != nil {
			return "", fmt.Errorf("resolve %s: %w", p, err)
		}

		return r.fs.JoinPath(ctx, string(wd), string(p)), nil
	}

	return "", fmt.Errorf("unknown path base %q", r.args.Base)
}

func (r *PathResolver) projectRoot(ctx context.Context) (m.Path, error) {
	if r.args.Root != "" && filepath.IsAbs(string(r.args.Root)) {
		return r.args.Root, nil
	}

	wd, err := r.fs.WorkingDir(ctx)
	if err != nil {
		return "", fmt.Errorf("find project root: %w", err)
	}

	if r.args.Root != "" {
		return r.fs.JoinPath(ctx, string(wd), string(r.args.Root)), nil
	}

	root, err := r.fs.FindProjectRoot(ctx, wd, ProjectMarkers...)
	if err != nil {
		slog.Error("Failed to find project root", "start", wd, "error", err)
		return "", fmt.Errorf("find project root: %w", err)
	}

	return root, nil
}
