// Package domain implements sequence loading, mutation detection and reporting.
package domain

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	m "mutafinder.dev/pkg/mutafinder/internal/model"
)

// ParseFasta reads FASTA text and returns its residues as one flat sequence.
//
// Lines whose first character is '>' are headers and are dropped. Every other
// line is trimmed of surrounding whitespace and appended in file order. Several
// records are not told apart: their residues end up in the same sequence.
// Read errors from r are returned as they are. A line that is not valid UTF-8
// fails with ErrInvalidEncoding naming its 1-based line number.
func ParseFasta(r io.Reader) (m.Sequence, error) {
	br := bufio.NewReader(r)

	var sequence strings.Builder

	for lineNo := 1; ; lineNo++ {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}

		if !utf8.ValidString(line) {
			return "", fmt.Errorf("%w: line %d", ErrInvalidEncoding, lineNo)
		}

		if !strings.HasPrefix(line, ">") {
			sequence.WriteString(strings.TrimSpace(line))
		}

		if errors.Is(err, io.EOF) {
			break
		}
	}

	return m.Sequence(sequence.String()), nil
}
