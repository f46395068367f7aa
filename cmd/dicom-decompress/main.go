package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/navalpablo/dicom-tools/internal/config"
	"github.com/navalpablo/dicom-tools/internal/decompress"
)

func main() {
	log.SetFlags(0)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: dicom-decompress <path_to_directory>\n\nRecursively decompress DICOM files in a directory tree, in place.\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	root := flag.Arg(0)

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		log.Fatalf("directory %q does not exist or is not a directory", root)
	}

	cfg, err := config.Load(config.DefaultFile)
	if err != nil {
		log.Fatal(err)
	}

	runner := &decompress.Runner{Tool: cfg.DecompressTool, Progress: true}
	if err := runner.Check(); err != nil {
		log.Fatal(err)
	}

	processed, skipped, err := runner.Run(root)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("decompressed %d files, skipped %d", processed, skipped)
}
