package scan

import (
	"os"
	"path/filepath"
	"strings"
)

// List returns every regular file under root in walk order.
func List(root string) ([]string, error) {
	var files []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// Candidates returns the likely DICOM files under root: names ending in
// .dcm or containing no dot at all. When limit is positive, at most limit
// files per directory are returned, which keeps header sampling cheap on
// large series.
func Candidates(root string, limit int) ([]string, error) {
	perDir := make(map[string]int)
	var files []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !IsCandidate(info.Name()) {
			return nil
		}
		dir := filepath.Dir(path)
		if limit > 0 && perDir[dir] >= limit {
			return nil
		}
		perDir[dir]++
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// IsCandidate reports whether a file name looks like a DICOM file. Many
// scanners write DICOM files without any extension.
func IsCandidate(name string) bool {
	return strings.HasSuffix(name, ".dcm") || !strings.Contains(name, ".")
}
