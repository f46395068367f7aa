package dicomdir

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/navalpablo/dicom-tools/internal/models"
)

func TestCode(t *testing.T) {
	if got := Code("PA", 1); got != "PA00001" {
		t.Errorf("Code(PA, 1) = %q", got)
	}
	if got := Code("DI", 12345); got != "DI12345" {
		t.Errorf("Code(DI, 12345) = %q", got)
	}
}

func TestFoldersNeeded(t *testing.T) {
	cases := map[int]int{0: 0, 1: 1, 1000: 1, 1001: 2, 2500: 3}
	for n, want := range cases {
		if got := FoldersNeeded(n); got != want {
			t.Errorf("FoldersNeeded(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestCheckOutputDir(t *testing.T) {
	base := t.TempDir()

	absent := filepath.Join(base, "new")
	if err := CheckOutputDir(absent); err != nil {
		t.Errorf("absent directory rejected: %v", err)
	}
	if err := CheckOutputDir(absent); err != nil {
		t.Errorf("empty directory rejected: %v", err)
	}

	if err := os.WriteFile(filepath.Join(absent, "x"), []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := CheckOutputDir(absent); err == nil {
		t.Error("non-empty directory accepted")
	}
}

func TestLayoutStructureAndSplit(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")

	// Build a series whose images spill into a second SE folder. The
	// folder cap is 1000, so this test uses synthetic grouped data with
	// small real files.
	series := &models.Series{UID: "1.2.3"}
	for i := 0; i < 1002; i++ {
		path := filepath.Join(src, "im"+strconv.Itoa(i))
		if err := os.WriteFile(path, []byte("img"), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		series.Files = append(series.Files, path)
	}
	data := map[string]*models.Patient{
		"P1": {
			ID: "P1",
			Studies: map[string]*models.Study{
				"1.2": {
					UID:    "1.2",
					Series: map[string]*models.Series{"1.2.3": series},
				},
			},
		},
	}

	placed, err := Layout(data, out)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if placed != 1002 {
		t.Errorf("placed %d files, want 1002", placed)
	}

	first := filepath.Join(out, "PA00001", "ST00001", "SE00001")
	second := filepath.Join(out, "PA00001", "ST00001", "SE00002")
	if entries, err := os.ReadDir(first); err != nil || len(entries) != 1000 {
		t.Errorf("SE00001 has %d entries (err %v), want 1000", len(entries), err)
	}
	if entries, err := os.ReadDir(second); err != nil || len(entries) != 2 {
		t.Errorf("SE00002 has %d entries (err %v), want 2", len(entries), err)
	}

	// Image counters reset per folder.
	if _, err := os.Stat(filepath.Join(second, "DI00001")); err != nil {
		t.Errorf("DI00001 missing in second folder: %v", err)
	}
}
