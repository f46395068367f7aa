package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/navalpablo/dicom-tools/internal/dummy"
	"github.com/navalpablo/dicom-tools/internal/tsv"
)

func main() {
	log.SetFlags(0)

	var (
		input    = flag.String("input", "", "path to the input .tsv file (required)")
		criteria = flag.String("criteria_json", "", `JSON object mapping column name to a substring or list of substrings, e.g. {"T1": "T1", "GADO": ["GD", "CONTRA"]} (required)`)
		output   = flag.String("output", "", "path for the output table (default: input with _dummy.tsv suffix)")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: dicom-dummy --input <path.tsv> --criteria_json <json> [--output <path.tsv>]\n\nGenerate a per-subject indicator table from a series summary.\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *input == "" || *criteria == "" {
		flag.Usage()
		os.Exit(2)
	}

	// Criteria problems are fatal before any processing begins.
	crit, err := dummy.ParseCriteria(*criteria)
	if err != nil {
		log.Fatal(err)
	}

	table, err := tsv.Read(*input)
	if err != nil {
		log.Fatal(err)
	}

	out := *output
	if out == "" {
		out = dummy.OutputPath(*input)
	}
	result := dummy.Build(table, crit)
	if err := tsv.Write(out, result); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d subjects to %s", len(result.Rows), out)
}
