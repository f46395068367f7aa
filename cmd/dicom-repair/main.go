package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/navalpablo/dicom-tools/internal/repair"
)

func main() {
	log.SetFlags(0)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: dicom-repair <input_folder> <output_folder>\n\nRe-encode DICOM files with compliant sequence delimitations, mirroring the directory structure.\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	in, out := flag.Arg(0), flag.Arg(1)

	if info, err := os.Stat(in); err != nil || !info.IsDir() {
		log.Fatalf("directory %q does not exist or is not a directory", in)
	}

	repaired, err := repair.Tree(in, out)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("repaired %d files into %s", repaired, out)
}
