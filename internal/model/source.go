package model

import (
	"fmt"
	"strings"
)

// Path represents a file system path.
type Path string

// PathBase selects how relative paths given by the user are resolved.
type PathBase string

const (
	// PathBaseCwd resolves relative paths against the working directory.
	PathBaseCwd PathBase = "cwd"

	// PathBaseProject resolves relative paths against the project root.
	PathBaseProject PathBase = "project"

	// PathBaseAbsolute accepts absolute paths only.
	PathBaseAbsolute PathBase = "absolute"
)

// ParsePathBase converts a config value into a PathBase. Empty selects PathBaseCwd.
func ParsePathBase(value string) (PathBase, error) {
	switch base := PathBase(strings.ToLower(strings.TrimSpace(value))); base {
	case "":
		return PathBaseCwd, nil
	case PathBaseCwd, PathBaseProject, PathBaseAbsolute:
		return base, nil
	default:
		return "", fmt.Errorf("unknown path base %q (want cwd, project or absolute)", value)
	}
}
