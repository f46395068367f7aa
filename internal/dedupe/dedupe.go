package dedupe

import (
	"log"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/schollz/progressbar/v3"
	"github.com/suyashkumar/dicom/pkg/tag"

	"github.com/navalpablo/dicom-tools/internal/dcmio"
	"github.com/navalpablo/dicom-tools/internal/scan"
)

// Key is the attribute tuple that identifies one slice. Files sharing a
// key are duplicates of each other.
type Key struct {
	SeriesDescription string
	SeriesNumber      string
	PatientID         string
	StudyDate         string
	SliceLocation     string
}

// Finder locates duplicate .dcm files under a directory tree.
type Finder struct {
	Workers  int
	Progress bool
}

// Find groups files by their identifying attributes and returns the
// groups with more than one member, each sorted by path so the kept file
// is deterministic. Unreadable files are logged and skipped.
func (f *Finder) Find(root string) (map[Key][]string, error) {
	all, err := scan.List(root)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, p := range all {
		if strings.HasSuffix(strings.ToLower(p), ".dcm") {
			files = append(files, p)
		}
	}

	var bar *progressbar.ProgressBar
	if f.Progress {
		bar = progressbar.Default(int64(len(files)), "reading attributes")
	}

	var mu sync.Mutex
	groups := make(map[Key][]string)
	scan.Pool(files, f.Workers, func(path string) {
		if bar != nil {
			defer bar.Add(1)
		}
		vals, err := dcmio.ReadTags(path,
			tag.SeriesDescription, tag.SeriesNumber, tag.PatientID,
			tag.StudyDate, tag.SliceLocation)
		if err != nil {
			log.Printf("error reading %s: %v", path, err)
			return
		}
		k := Key{
			SeriesDescription: vals[0],
			SeriesNumber:      vals[1],
			PatientID:         vals[2],
			StudyDate:         vals[3],
			SliceLocation:     vals[4],
		}
		mu.Lock()
		groups[k] = append(groups[k], path)
		mu.Unlock()
	})

	dups := make(map[Key][]string)
	for k, paths := range groups {
		if len(paths) < 2 {
			continue
		}
		sort.Strings(paths)
		dups[k] = paths
	}
	return dups, nil
}

// Remove deletes every duplicate beyond the first of each group and
// returns the number of files removed. Failures are logged; removal
// continues with the next file.
func Remove(dups map[Key][]string) int {
	removed := 0
	for _, paths := range dups {
		for _, path := range paths[1:] {
			log.Printf("removing duplicate file: %s", path)
			if err := os.Remove(path); err != nil {
				log.Printf("failed to remove %s: %v", path, err)
				continue
			}
			removed++
		}
	}
	return removed
}
