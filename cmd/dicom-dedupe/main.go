package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/navalpablo/dicom-tools/internal/config"
	"github.com/navalpablo/dicom-tools/internal/dedupe"
)

func main() {
	log.SetFlags(0)

	yes := flag.Bool("yes", false, "delete duplicates without asking")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: dicom-dedupe [--yes] <root_folder>\n\nFind duplicate DICOM files by header attributes; optionally delete all but the first of each group.\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	root := flag.Arg(0)

	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		log.Fatalf("root folder %q does not exist or is not a directory", root)
	}

	cfg, err := config.Load(config.DefaultFile)
	if err != nil {
		log.Fatal(err)
	}

	finder := &dedupe.Finder{Workers: cfg.Workers, Progress: true}
	dups, err := finder.Find(root)
	if err != nil {
		log.Fatal(err)
	}
	if len(dups) == 0 {
		log.Print("no duplicates found")
		return
	}

	for key, paths := range dups {
		log.Printf("found duplicates for attributes %+v:", key)
		for _, path := range paths {
			log.Printf("  %s", path)
		}
	}

	if !*yes && !confirm(os.Stdin, "Duplicates found. Do you want to delete the duplicates?") {
		return
	}
	removed := dedupe.Remove(dups)
	log.Printf("removed %d duplicate files", removed)
}

// confirm prompts until the answer is yes or no, ignoring case and
// surrounding whitespace. EOF counts as no.
func confirm(in io.Reader, prompt string) bool {
	reader := bufio.NewReader(in)
	for {
		fmt.Printf("%s (yes/no): ", prompt)
		line, err := reader.ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "yes":
			return true
		case "no":
			return false
		}
		if err != nil {
			return false
		}
	}
}
