package extract

import (
	"log"

	"github.com/schollz/progressbar/v3"

	"github.com/navalpablo/dicom-tools/internal/dcmio"
	"github.com/navalpablo/dicom-tools/internal/dummy"
	"github.com/navalpablo/dicom-tools/internal/models"
	"github.com/navalpablo/dicom-tools/internal/scan"
	"github.com/navalpablo/dicom-tools/internal/tsv"
)

// Extractor reads DICOM headers across a directory tree and aggregates
// one summary row per series.
type Extractor struct {
	// Limit caps the number of files read per directory. Zero or
	// negative reads everything.
	Limit    int
	Progress bool
}

// Summarize walks dir and produces the series summary table. Unreadable
// files are logged and skipped. A series is the first file observed for a
// (study UID, series description) pair; pairs with either part missing
// are dropped.
func (e *Extractor) Summarize(dir string) (*tsv.Table, error) {
	files, err := scan.Candidates(dir, e.Limit)
	if err != nil {
		return nil, err
	}

	var bar *progressbar.ProgressBar
	if e.Progress {
		bar = progressbar.Default(int64(len(files)), "reading headers")
	}

	sum := newSummary()
	for _, path := range files {
		if bar != nil {
			bar.Add(1)
		}
		info, err := dcmio.ReadHeader(path)
		if err != nil {
			log.Printf("error reading DICOM file %s: %v", path, err)
			continue
		}
		sum.add(info)
	}
	return sum.table, nil
}

// summary folds per-file header maps into one row per series, in
// first-seen order.
type summary struct {
	table *tsv.Table
	seen  map[models.SeriesKey]bool
}

func newSummary() *summary {
	return &summary{
		table: &tsv.Table{Header: dcmio.ColumnNames()},
		seen:  make(map[models.SeriesKey]bool),
	}
}

// add records one file's fields. The first file observed for a
// (study UID, series description) pair wins; pairs with either
// component missing are dropped.
func (s *summary) add(info map[string]string) {
	key := models.SeriesKey{
		StudyInstanceUID:  info["Study Instance UID"],
		SeriesDescription: info["Series Description"],
	}
	if key.StudyInstanceUID == "" || key.SeriesDescription == "" || s.seen[key] {
		return
	}
	s.seen[key] = true

	row := make([]string, len(s.table.Header))
	for i, name := range s.table.Header {
		row[i] = info[name]
	}
	s.table.Rows = append(s.table.Rows, row)
}

// PresenceTable cross-references target series descriptions against each
// subject in the summary: one row per subject, one 1/0 column per target.
// A target counts as present when any of the subject's series
// descriptions contains it. The matching is shared with the standalone
// dummy table generator so the two stay in lockstep.
func PresenceTable(summary *tsv.Table, targets []string) *tsv.Table {
	crit := make(dummy.Criteria, len(targets))
	for i, t := range targets {
		crit[i] = dummy.Criterion{Name: t, Terms: []string{t}}
	}
	return dummy.Build(summary, crit)
}
