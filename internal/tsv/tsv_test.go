package tsv

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.tsv")
	table := &Table{
		Header: []string{"Patient ID", "Series Description"},
		Rows: [][]string{
			{"S1", "T1_MPRAGE_sag"},
			{"S2", "with spaces and, commas"},
		},
	}
	if err := Write(path, table); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !reflect.DeepEqual(got, table) {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, table)
	}
}

func TestWriteIsTabSeparated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.tsv")
	table := &Table{Header: []string{"a", "b"}, Rows: [][]string{{"1", "2"}}}
	if err := Write(path, table); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "a\tb\n1\t2\n" {
		t.Errorf("unexpected file contents %q", data)
	}
}

func TestReadHeaderOnlyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.tsv")
	if err := os.WriteFile(path, []byte("Patient ID\tSeries Description\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got.Header) != 2 || len(got.Rows) != 0 {
		t.Errorf("got %+v, want header only", got)
	}
}

func TestReadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.tsv")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.Header != nil || got.Rows != nil {
		t.Errorf("expected empty table, got %+v", got)
	}
}

func TestColumnAndCell(t *testing.T) {
	table := &Table{Header: []string{"a", "b"}}
	if got := table.Column("b"); got != 1 {
		t.Errorf("Column(b) = %d", got)
	}
	if got := table.Column("missing"); got != -1 {
		t.Errorf("Column(missing) = %d", got)
	}
	row := []string{"x"}
	if got := Cell(row, 0); got != "x" {
		t.Errorf("Cell(row, 0) = %q", got)
	}
	if got := Cell(row, 1); got != "" {
		t.Errorf("Cell(row, 1) = %q, want empty", got)
	}
	if got := Cell(row, -1); got != "" {
		t.Errorf("Cell(row, -1) = %q, want empty", got)
	}
}
