package domain

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrSequenceNotFound reports a path that does not resolve to a readable file.
	// It matches fs.ErrNotExist with errors.Is.
	ErrSequenceNotFound = fmt.Errorf("sequence file not found: %w", fs.ErrNotExist)

	// ErrInvalidEncoding reports a sequence file that is not valid UTF-8 text.
	ErrInvalidEncoding = errors.New("sequence file is not valid UTF-8")

	// ErrRelativePath is returned when only absolute paths are accepted.
	ErrRelativePath = errors.New("relative path not allowed")

	// ErrSequencesNotLoaded is returned when a comparison is requested before both sequences exist.
	ErrSequencesNotLoaded = errors.New("both sequences must be loaded first")

	// ErrNoComparison is returned when results are requested before any comparison.
	ErrNoComparison = errors.New("no comparison result available")

	// ErrInvalidTable reports tabular input that does not describe a mutation set.
	ErrInvalidTable = errors.New("invalid mutation table")
)
