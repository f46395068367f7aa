package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/navalpablo/dicom-tools/internal/config"
	"github.com/navalpablo/dicom-tools/internal/dummy"
	"github.com/navalpablo/dicom-tools/internal/extract"
	"github.com/navalpablo/dicom-tools/internal/tsv"
)

// listFlag collects repeated flag values; comma-separated values are
// split, so both --dummy_table T1 --dummy_table FLAIR and
// --dummy_table T1,FLAIR work.
type listFlag []string

func (l *listFlag) String() string { return strings.Join(*l, ",") }

func (l *listFlag) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		if part != "" {
			*l = append(*l, part)
		}
	}
	return nil
}

func main() {
	log.SetFlags(0)

	var (
		dicomDir   = flag.String("dicom", "", "path to the directory containing DICOM files (required)")
		output     = flag.String("output", "", "path to save the output TSV file (required)")
		readAll    = flag.Bool("read_all", false, "read all DICOM files, not just the first few per directory")
		dummyTable listFlag
	)
	flag.Var(&dummyTable, "dummy_table", "target series description; repeatable. Also writes a per-subject presence table")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: dicom-headers --dicom <dir> --output <path.tsv> [--read_all] [--dummy_table <desc>]...\n\nExtract unique DICOM series information into a tab-separated table.\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *dicomDir == "" || *output == "" {
		flag.Usage()
		os.Exit(2)
	}
	if info, err := os.Stat(*dicomDir); err != nil || !info.IsDir() {
		log.Fatalf("directory %q does not exist or is not a directory", *dicomDir)
	}

	cfg, err := config.Load(config.DefaultFile)
	if err != nil {
		log.Fatal(err)
	}

	ex := &extract.Extractor{Limit: cfg.ReadLimit, Progress: true}
	if *readAll {
		ex.Limit = 0
	}

	summary, err := ex.Summarize(*dicomDir)
	if err != nil {
		log.Fatal(err)
	}
	if err := tsv.Write(*output, summary); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d series to %s", len(summary.Rows), *output)

	if len(dummyTable) > 0 {
		presence := extract.PresenceTable(summary, dummyTable)
		path := dummy.OutputPath(*output)
		if err := tsv.Write(path, presence); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote presence table for %d subjects to %s", len(presence.Rows), path)
	}
}
