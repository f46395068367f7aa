package uidfix

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/navalpablo/dicom-tools/internal/dcmio"
	"github.com/navalpablo/dicom-tools/internal/scan"
)

// Fixer rewrites noncompliant UIDs across a directory tree. Replacements
// are cached so the same original UID maps to the same value everywhere
// in the run, which keeps study and series references consistent.
type Fixer struct {
	Workers int

	mu      sync.Mutex
	mapping map[string]string
}

func New(workers int) *Fixer {
	return &Fixer{Workers: workers, mapping: make(map[string]string)}
}

func (f *Fixer) derive(original string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if fixed, ok := f.mapping[original]; ok {
		return fixed
	}
	fixed := dcmio.DeriveUID(original)
	f.mapping[original] = fixed
	log.Printf("fixed UID: %s -> %s", original, fixed)
	return fixed
}

// Run processes every file under root with a worker pool. Files that
// fail to parse or save are logged and skipped. Returns the number of
// files processed successfully and the number scanned.
func (f *Fixer) Run(root string) (processed, scanned int, err error) {
	files, err := scan.List(root)
	if err != nil {
		return 0, 0, err
	}

	var done int64
	scan.Pool(files, f.Workers, func(path string) {
		n, err := dcmio.FixUIDs(path, f.derive)
		if err != nil {
			log.Printf("failed to process %s: %v", path, err)
			return
		}
		if n > 0 {
			log.Printf("processed file: %s (%d UIDs replaced)", path, n)
		}
		atomic.AddInt64(&done, 1)
	})
	return int(done), len(files), nil
}
