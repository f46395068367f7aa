package dcmio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"
)

// Reencode parses src in full and rewrites it to dst with the library's
// standard encoding, which normalizes noncompliant sequence delimitations
// to explicit lengths. VR verification is relaxed so slightly broken
// inputs still round-trip.
func Reencode(src, dst string) error {
	ds, err := dicom.ParseFile(src, nil)
	if err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if err := dicom.Write(out, ds, dicom.SkipVRVerification()); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// FixUIDs replaces noncompliant UI values in the file, rewriting it in
// place when anything changed. A broken SOP Class UID becomes
// DefaultSOPClassUID; every other broken UID goes through derive, which
// must be deterministic. Returns the number of replaced values.
func FixUIDs(path string, derive func(original string) string) (int, error) {
	ds, err := dicom.ParseFile(path, nil)
	if err != nil {
		return 0, err
	}

	fixed := 0
	for _, el := range ds.Elements {
		if el.RawValueRepresentation != "UI" || el.Value.ValueType() != dicom.Strings {
			continue
		}
		vals := append([]string(nil), dicom.MustGetStrings(el.Value)...)
		changed := false
		for j, uid := range vals {
			if ValidUID(uid) {
				continue
			}
			if el.Tag == tag.SOPClassUID {
				vals[j] = DefaultSOPClassUID
			} else {
				vals[j] = derive(uid)
			}
			changed = true
			fixed++
		}
		if !changed {
			continue
		}
		v, err := dicom.NewValue(vals)
		if err != nil {
			return fixed, fmt.Errorf("rebuilding %s: %w", el.Tag, err)
		}
		el.Value = v
	}

	if fixed == 0 {
		return 0, nil
	}
	if err := writeInPlace(path, ds); err != nil {
		return fixed, err
	}
	return fixed, nil
}

func writeInPlace(path string, ds dicom.Dataset) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	if err := dicom.Write(tmp, ds, dicom.SkipVRVerification()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
