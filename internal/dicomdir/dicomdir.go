package dicomdir

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"sort"

	"github.com/suyashkumar/dicom/pkg/tag"

	"github.com/navalpablo/dicom-tools/internal/dcmio"
	"github.com/navalpablo/dicom-tools/internal/models"
	"github.com/navalpablo/dicom-tools/internal/scan"
)

// DICOMDIR media constraints: fixed 7-character folder basenames and at
// most 1000 images per series folder.
const maxImagesPerFolder = 1000

// Code formats a sequential DICOMDIR name, e.g. Code("PA", 1) == "PA00001".
func Code(prefix string, n int) string {
	return fmt.Sprintf("%s%05d", prefix, n)
}

// FoldersNeeded returns how many SE folders a series with n images
// occupies.
func FoldersNeeded(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + maxImagesPerFolder - 1) / maxImagesPerFolder
}

// CheckOutputDir ensures out does not exist or is empty, creating it when
// absent.
func CheckOutputDir(out string) error {
	entries, err := os.ReadDir(out)
	if os.IsNotExist(err) {
		return os.MkdirAll(out, 0o755)
	}
	if err != nil {
		return err
	}
	if len(entries) > 0 {
		return fmt.Errorf("output directory %q is not empty", out)
	}
	return nil
}

// Scan walks in and groups every readable DICOM file by
// patient/study/series. Files without a SOP Instance UID are skipped, as
// is every duplicate of a (series UID, SOP instance UID) pair already
// seen. Missing grouping attributes become "UNKNOWN".
func Scan(in string) (map[string]*models.Patient, error) {
	files, err := scan.List(in)
	if err != nil {
		return nil, err
	}

	data := make(map[string]*models.Patient)
	seen := make(map[[2]string]bool)
	valid := 0

	for _, path := range files {
		vals, err := dcmio.ReadTags(path,
			tag.PatientID, tag.StudyInstanceUID, tag.SeriesInstanceUID, tag.SOPInstanceUID)
		if err != nil {
			continue // not a DICOM file
		}
		patientID, studyUID, seriesUID, sopUID := orUnknown(vals[0]), orUnknown(vals[1]), orUnknown(vals[2]), vals[3]
		if sopUID == "" {
			continue
		}
		imageKey := [2]string{seriesUID, sopUID}
		if seen[imageKey] {
			log.Printf("duplicate found, skipping file: %s", path)
			continue
		}
		seen[imageKey] = true
		valid++

		patient := data[patientID]
		if patient == nil {
			patient = &models.Patient{ID: patientID, Studies: make(map[string]*models.Study)}
			data[patientID] = patient
		}
		study := patient.Studies[studyUID]
		if study == nil {
			study = &models.Study{UID: studyUID, Series: make(map[string]*models.Series)}
			patient.Studies[studyUID] = study
		}
		series := study.Series[seriesUID]
		if series == nil {
			series = &models.Series{UID: seriesUID}
			study.Series[seriesUID] = series
		}
		series.Files = append(series.Files, path)
	}

	log.Printf("scanned %d files, found %d valid DICOM files", len(files), valid)
	return data, nil
}

func orUnknown(s string) string {
	if s == "" {
		return "UNKNOWN"
	}
	return s
}

// Layout copies the grouped files into out using sequential codes:
// PAxxxxx/STxxxxx/SExxxxx/DIxxxxx. Keys are visited in sorted order for
// reproducibility; oversized series spill into consecutive SE folders
// with the image counter resetting per folder. Files are copied
// byte-for-byte, so compressed inputs should be decompressed beforehand.
// Returns the number of files placed.
func Layout(data map[string]*models.Patient, out string) (int, error) {
	placed := 0
	patientCounter := 1
	for _, patientID := range sortedKeys(data) {
		patient := data[patientID]
		patientDir := filepath.Join(out, Code("PA", patientCounter))
		if err := os.MkdirAll(patientDir, 0o755); err != nil {
			return placed, err
		}

		studyCounter := 1
		for _, studyUID := range sortedKeys(patient.Studies) {
			study := patient.Studies[studyUID]
			studyDir := filepath.Join(patientDir, Code("ST", studyCounter))
			if err := os.MkdirAll(studyDir, 0o755); err != nil {
				return placed, err
			}

			seriesCounter := 1
			for _, seriesUID := range sortedKeys(study.Series) {
				files := append([]string(nil), study.Series[seriesUID].Files...)
				sort.Strings(files)

				for folder := 0; folder < FoldersNeeded(len(files)); folder++ {
					seriesDir := filepath.Join(studyDir, Code("SE", seriesCounter))
					if err := os.MkdirAll(seriesDir, 0o755); err != nil {
						return placed, err
					}
					start := folder * maxImagesPerFolder
					end := start + maxImagesPerFolder
					if end > len(files) {
						end = len(files)
					}
					for i, src := range files[start:end] {
						dst := filepath.Join(seriesDir, Code("DI", i+1))
						if err := copyFile(src, dst); err != nil {
							log.Printf("error copying %s: %v", src, err)
							continue
						}
						placed++
					}
					seriesCounter++
				}
			}
			studyCounter++
		}
		patientCounter++
	}
	return placed, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Builder invokes the external DICOMDIR creation tool over a laid-out
// tree.
type Builder struct {
	Tool string
}

// Build runs the tool (dcmmkdir from DCMTK) recursively over out,
// replacing any existing DICOMDIR and inventing missing type 1
// attributes.
func (b *Builder) Build(out string) error {
	dicomdirPath := filepath.Join(out, "DICOMDIR")
	cmd := exec.Command(b.Tool, "+r", "+id", out, "+D", dicomdirPath, "-Pgp", "-A", "+I")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %v: %s", b.Tool, err, stderr.String())
	}
	log.Printf("DICOMDIR created at %s", dicomdirPath)
	return nil
}
