package dummy

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/navalpablo/dicom-tools/internal/tsv"
)

const (
	patientColumn = "Patient ID"
	seriesColumn  = "Series Description"
)

// Criterion is one output column. The column is set for a subject when
// any of its series descriptions contains any of the terms. Matching is a
// case-sensitive substring test.
type Criterion struct {
	Name  string
	Terms []string
}

type Criteria []Criterion

// Matches reports whether desc satisfies the criterion.
func (c Criterion) Matches(desc string) bool {
	for _, t := range c.Terms {
		if strings.Contains(desc, t) {
			return true
		}
	}
	return false
}

// ParseCriteria decodes a JSON object mapping column names to a term or a
// list of terms (OR-combined). The object's key order is kept; it defines
// the output column order.
func ParseCriteria(raw string) (Criteria, error) {
	dec := json.NewDecoder(strings.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("invalid criteria JSON: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("criteria JSON must be an object")
	}

	var crit Criteria
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("invalid criteria JSON: %w", err)
		}
		name := keyTok.(string)

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("invalid criteria JSON: %w", err)
		}
		terms, err := parseTerms(value)
		if err != nil {
			return nil, fmt.Errorf("criteria %q: %w", name, err)
		}
		crit = append(crit, Criterion{Name: name, Terms: terms})
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("invalid criteria JSON: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("invalid criteria JSON: trailing data after object")
	}
	return crit, nil
}

func parseTerms(raw json.RawMessage) ([]string, error) {
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return []string{single}, nil
	}
	var many []string
	if err := json.Unmarshal(raw, &many); err != nil {
		return nil, errors.New("value must be a string or a list of strings")
	}
	if len(many) == 0 {
		return nil, errors.New("condition list is empty")
	}
	return many, nil
}

// Build computes the indicator table from a series summary: one row per
// subject in first-seen order, one 1/0 column per criterion. Subjects
// with no matching series stay in the output with all-zero columns, so
// every output row depends only on that subject's own input rows.
func Build(input *tsv.Table, crit Criteria) *tsv.Table {
	header := make([]string, 0, len(crit)+1)
	header = append(header, patientColumn)
	for _, c := range crit {
		header = append(header, c.Name)
	}
	out := &tsv.Table{Header: header}

	pi := input.Column(patientColumn)
	si := input.Column(seriesColumn)

	var order []string
	hits := make(map[string]map[string]bool)
	for _, row := range input.Rows {
		patient := tsv.Cell(row, pi)
		desc := tsv.Cell(row, si)
		if _, ok := hits[patient]; !ok {
			order = append(order, patient)
			hits[patient] = make(map[string]bool)
		}
		for _, c := range crit {
			if c.Matches(desc) {
				hits[patient][c.Name] = true
			}
		}
	}

	for _, patient := range order {
		row := make([]string, 0, len(header))
		row = append(row, patient)
		for _, c := range crit {
			row = append(row, indicator(hits[patient][c.Name]))
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

func indicator(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// OutputPath derives the default output location from the input path,
// out_test.tsv -> out_test_dummy.tsv.
func OutputPath(input string) string {
	if strings.HasSuffix(input, ".tsv") {
		return strings.TrimSuffix(input, ".tsv") + "_dummy.tsv"
	}
	return input + "_dummy.tsv"
}
