package domain

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	m "mutafinder.dev/pkg/mutafinder/internal/model"
)

const (
	// NoMutationsNotice replaces the table when a comparison found nothing.
	NoMutationsNotice = "No mutations found."

	// ReportTitle is the banner of the narrative report.
	ReportTitle = "=== MUTATION REPORT - mutafinder ==="

	resultsBanner   = "=== RESULTS ==="
	tableHeaderLine = "Position | Original | Mutated"
	positionWidth   = 8
)

// TabularHeader is the first row of every tabular export.
var TabularHeader = []string{"Position", "Original", "Mutated"}

// legacyTabularHeaders are accepted when reading exports back.
var legacyTabularHeaders = [][]string{
	{"Posición", "Original", "Mutada"},
	{"Position", "Original", "Mutada"},
}

// RenderTable renders mutations as a fixed-width three column table, or the
// "no mutations" notice when the set is empty.
func RenderTable(mutations m.MutationSet) string {
	var b strings.Builder

	writeTable(&b, mutations)

	return b.String()
}

func writeTable(b *strings.Builder, mutations m.MutationSet) {
	if len(mutations) == 0 {
		b.WriteString(NoMutationsNotice + "\n")
		return
	}

	b.WriteString(tableHeaderLine + "\n")
	b.WriteString(strings.Repeat("-", 32) + "\n")

	for _, mutation := range mutations {
		fmt.Fprintf(b, "%s |    %c     |    %c\n",
			center(strconv.Itoa(mutation.Position), positionWidth),
			mutation.Reference,
			mutation.Mutated)
	}
}

// center pads s to width, putting the odd space on the right.
func center(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}

	left := pad / 2

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// RenderNarrative renders the self-contained text report: banner, author,
// both sequences, the mutation count and the table from RenderTable.
func RenderNarrative(mutations m.MutationSet, reference, candidate m.Sequence, author string) string {
	var b strings.Builder

	b.WriteString(ReportTitle + "\n")
	fmt.Fprintf(&b, "Author: %s\n\n", author)

	fmt.Fprintf(&b, ">> Sequence 1 (%s):\n", m.SlotReference.Role())
	b.WriteString(string(reference) + "\n\n")

	fmt.Fprintf(&b, ">> Sequence 2 (%s):\n", m.SlotCandidate.Role())
	b.WriteString(string(candidate) + "\n\n")

	b.WriteString(resultsBanner + "\n")
	fmt.Fprintf(&b, "Total mutations detected: %d\n\n", len(mutations))

	writeTable(&b, mutations)

	return b.String()
}

// RenderTabular returns the header row followed by one row per mutation.
// The header is always present, even for an empty set.
func RenderTabular(mutations m.MutationSet) [][]string {
	rows := make([][]string, 0, len(mutations)+1)
	rows = append(rows, append([]string(nil), TabularHeader...))

	for _, mutation := range mutations {
		rows = append(rows, []string{
			strconv.Itoa(mutation.Position),
			string(mutation.Reference),
			string(mutation.Mutated),
		})
	}

	return rows
}

// ParseTabular is the inverse of RenderTabular. It checks the header, the
// row shape, that positions are positive and strictly ascending and that each
// base is a single character.
func ParseTabular(rows [][]string) (m.MutationSet, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: missing header row", ErrInvalidTable)
	}

	if !isTabularHeader(rows[0]) {
		return nil, fmt.Errorf("%w: unexpected header %q", ErrInvalidTable, rows[0])
	}

	mutations := make(m.MutationSet, 0, len(rows)-1)
	last := 0

	for i, row := range rows[1:] {
		line := i + 2

		mutation, err := parseTabularRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", ErrInvalidTable, line, err)
		}

		if mutation.Position <= last {
			return nil, fmt.Errorf("%w: row %d: position %d is not after %d", ErrInvalidTable, line, mutation.Position, last)
		}

		last = mutation.Position
		mutations = append(mutations, mutation)
	}

	return mutations, nil
}

func isTabularHeader(row []string) bool {
	candidates := append([][]string{TabularHeader}, legacyTabularHeaders...)

	for _, header := range candidates {
		if len(row) != len(header) {
			continue
		}

		match := true

		for i := range header {
			if !strings.EqualFold(strings.TrimSpace(row[i]), header[i]) {
				match = false
				break
			}
		}

		if match {
			return true
		}
	}

	return false
}

func parseTabularRow(row []string) (m.Mutation, error) {
	if len(row) != len(TabularHeader) {
		return m.Mutation{}, fmt.Errorf("want %d fields, got %d", len(TabularHeader), len(row))
	}

	position, err := strconv.Atoi(strings.TrimSpace(row[0]))
	if err != nil {
		return m.Mutation{}, fmt.Errorf("position %q: %w", row[0], err)
	}

	if position < 1 {
		return m.Mutation{}, fmt.Errorf("position %d is not 1-based", position)
	}

	reference, err := singleResidue(row[1])
	if err != nil {
		return m.Mutation{}, fmt.Errorf("original base: %w", err)
	}

	mutated, err := singleResidue(row[2])
	if err != nil {
		return m.Mutation{}, fmt.Errorf("mutated base: %w", err)
	}

	return m.Mutation{Position: position, Reference: reference, Mutated: mutated}, nil
}

func singleResidue(field string) (rune, error) {
	if utf8.RuneCountInString(field) != 1 {
		return 0, fmt.Errorf("%q is not a single residue", field)
	}

	r, _ := utf8.DecodeRuneInString(field)

	return r, nil
}
