package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/navalpablo/dicom-tools/internal/config"
	"github.com/navalpablo/dicom-tools/internal/dicomdir"
)

func main() {
	log.SetFlags(0)

	var (
		dicomin  = flag.String("dicomin", "", "input directory containing unorganized DICOM files (required)")
		dicomout = flag.String("dicomout", "", "output directory for the sorted files and DICOMDIR (required)")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: dicom-dir --dicomin <dir> --dicomout <dir>\n\nSort DICOM files into a DICOMDIR-compliant structure and create a DICOMDIR file.\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *dicomin == "" || *dicomout == "" {
		flag.Usage()
		os.Exit(2)
	}
	in, err := filepath.Abs(*dicomin)
	if err != nil {
		log.Fatal(err)
	}
	out, err := filepath.Abs(*dicomout)
	if err != nil {
		log.Fatal(err)
	}
	if info, err := os.Stat(in); err != nil || !info.IsDir() {
		log.Fatalf("input directory %q does not exist or is not a directory", in)
	}
	if err := dicomdir.CheckOutputDir(out); err != nil {
		log.Fatal(err)
	}

	cfg, err := config.Load(config.DefaultFile)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("input directory: %s", in)
	log.Printf("output directory: %s", out)

	data, err := dicomdir.Scan(in)
	if err != nil {
		log.Fatal(err)
	}
	if len(data) == 0 {
		log.Fatal("no valid DICOM files found in the input directory")
	}

	placed, err := dicomdir.Layout(data, out)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("placed %d files", placed)

	builder := &dicomdir.Builder{Tool: cfg.DicomdirTool}
	if err := builder.Build(out); err != nil {
		log.Fatal(err)
	}
}
