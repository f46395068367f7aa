package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/navalpablo/dicom-tools/internal/config"
	"github.com/navalpablo/dicom-tools/internal/uidfix"
)

func main() {
	log.SetFlags(0)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: dicom-uidfix <input_folder>\n\nReplace noncompliant UID values in place across a directory tree.\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	root := flag.Arg(0)

	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		log.Fatalf("input folder %q does not exist or is not a directory", root)
	}

	cfg, err := config.Load(config.DefaultFile)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("starting UID fix in directory: %s", root)
	fixer := uidfix.New(cfg.Workers)
	processed, scanned, err := fixer.Run(root)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("processed %d DICOM files out of %d files scanned", processed, scanned)
}
