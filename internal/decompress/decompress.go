package decompress

import (
	"bytes"
	"fmt"
	"log"
	"os/exec"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/navalpablo/dicom-tools/internal/scan"
)

// Runner invokes an external decompression tool on every file under a
// directory tree, rewriting each file in place. dcmdjpeg from DCMTK is
// the expected tool: it takes the input and output paths as its two
// arguments and fails on files that are not compressed DICOM.
type Runner struct {
	Tool     string
	Progress bool
}

// Check verifies the external tool can be found before any file is
// touched.
func (r *Runner) Check() error {
	if _, err := exec.LookPath(r.Tool); err != nil {
		return fmt.Errorf("decompression tool %q not found: %w", r.Tool, err)
	}
	return nil
}

// Run decompresses every file under root. Per-file failures are logged
// and skipped; the run continues. Returns the processed and skipped
// counts.
func (r *Runner) Run(root string) (processed, skipped int, err error) {
	files, err := scan.List(root)
	if err != nil {
		return 0, 0, err
	}

	var bar *progressbar.ProgressBar
	if r.Progress {
		bar = progressbar.Default(int64(len(files)), "decompressing")
	}

	for _, path := range files {
		if bar != nil {
			bar.Add(1)
		}
		cmd := exec.Command(r.Tool, path, path)
		var stderr bytes.Buffer
		cmd.Stderr = &stderr
		if err := cmd.Run(); err != nil {
			if msg := strings.TrimSpace(stderr.String()); msg != "" {
				log.Printf("skipping (not a compressed DICOM or other error): %s: %s", path, msg)
			} else {
				log.Printf("skipping (not a compressed DICOM or other error): %s", path)
			}
			skipped++
			continue
		}
		processed++
	}
	return processed, skipped, nil
}
