package model

import (
	"fmt"
	"strings"
)

// TableFormat selects the encoding of the tabular export.
type TableFormat string

const (
	// TableCSV writes comma separated values.
	TableCSV TableFormat = "csv"
	// TableTSV writes tab separated values.
	TableTSV TableFormat = "tsv"
	// TableYAML writes a YAML list of mappings.
	TableYAML TableFormat = "yaml"
)

// ParseTableFormat converts a config value into a TableFormat. Empty selects TableCSV.
func ParseTableFormat(value string) (TableFormat, error) {
	switch format := TableFormat(strings.ToLower(strings.TrimSpace(value))); format {
	case "":
		return TableCSV, nil
	case TableCSV, TableTSV, TableYAML:
		return format, nil
	case "yml":
		return TableYAML, nil
	default:
		return "", fmt.Errorf("unknown table format %q (want csv, tsv or yaml)", value)
	}
}

// TableFormatForPath guesses the format from a file extension, falling back to def.
func TableFormatForPath(path Path, def TableFormat) TableFormat {
	lower := strings.ToLower(string(path))

	switch {
	case strings.HasSuffix(lower, ".csv"):
		return TableCSV
	case strings.HasSuffix(lower, ".tsv"), strings.HasSuffix(lower, ".tab"):
		return TableTSV
	case strings.HasSuffix(lower, ".yaml"), strings.HasSuffix(lower, ".yml"):
		return TableYAML
	}

	return def
}
