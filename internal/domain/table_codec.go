package domain

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
	m "mutafinder.dev/pkg/mutafinder/internal/model"
)

// tableRecord is the YAML shape of one mutation.
type tableRecord struct {
	Position int    `yaml:"position"`
	Original string `yaml:"original"`
	Mutated  string `yaml:"mutated"`
}

// EncodeTable writes mutations to w in the requested format. CSV and TSV
// carry the RenderTabular rows with standard quoting; YAML writes a list of
// position/original/mutated mappings.
func EncodeTable(w io.Writer, mutations m.MutationSet, format m.TableFormat) error {
	switch format {
	case m.TableCSV, m.TableTSV:
		writer := csv.NewWriter(w)
		if format == m.TableTSV {
			writer.Comma = '\t'
		}

		if err := writer.WriteAll(RenderTabular(mutations)); err != nil {
			return fmt.Errorf("write %s table: %w", format, err)
		}

		return nil

	case m.TableYAML:
		records := make([]tableRecord, 0, len(mutations))
		for _, mutation := range mutations {
			records = append(records, tableRecord{
				Position: mutation.Position,
				Original: string(mutation.Reference),
				Mutated:  string(mutation.Mutated),
			})
		}

		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)

		if err := encoder.Encode(records); err != nil {
			return fmt.Errorf("write yaml table: %w", err)
		}

		return encoder.Close()
	}

	return fmt.Errorf("unsupported table format %q", format)
}

// DecodeTable reads a table written by EncodeTable back into a MutationSet.
func DecodeTable(r io.Reader, format m.TableFormat) (m.MutationSet, error) {
	switch format {
	case m.TableCSV, m.TableTSV:
		reader := csv.NewReader(r)
		reader.FieldsPerRecord = -1

		if format == m.TableTSV {
			reader.Comma = '\t'
		}

		rows, err := reader.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
		}

		return ParseTabular(rows)

	case m.TableYAML:
		var records []tableRecord

		if err := yaml.NewDecoder(r).Decode(&records); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
		}

		rows := make([][]string, 0, len(records)+1)
		rows = append(rows, TabularHeader)

		for _, record := range records {
			rows = append(rows, []string{strconv.Itoa(record.Position), record.Original, record.Mutated})
		}

		return ParseTabular(rows)
	}

	return nil, fmt.Errorf("unsupported table format %q", format)
}
