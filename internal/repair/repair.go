package repair

import (
	"log"
	"os"
	"path/filepath"

	"github.com/navalpablo/dicom-tools/internal/dcmio"
	"github.com/navalpablo/dicom-tools/internal/scan"
)

// Tree re-encodes every parseable DICOM file under in to the mirrored
// path under out, preserving the relative directory structure.
// Re-encoding normalizes noncompliant sequence delimitations to explicit
// lengths. Files that do not parse are skipped silently; per-file write
// failures are logged and the run continues. Returns the number of files
// repaired.
func Tree(in, out string) (int, error) {
	files, err := scan.List(in)
	if err != nil {
		return 0, err
	}

	repaired := 0
	for _, src := range files {
		if !dcmio.IsDICOM(src) {
			continue
		}
		rel, err := filepath.Rel(in, src)
		if err != nil {
			return repaired, err
		}
		dst := filepath.Join(out, rel)
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return repaired, err
		}
		if err := dcmio.Reencode(src, dst); err != nil {
			log.Printf("failed to repair %s: %v", src, err)
			continue
		}
		log.Printf("repaired file saved to: %s", dst)
		repaired++
	}
	return repaired, nil
}
