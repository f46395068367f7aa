package dcmio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"
)

func mustElement(t *testing.T, tg tag.Tag, data interface{}) *dicom.Element {
	t.Helper()
	el, err := dicom.NewElement(tg, data)
	if err != nil {
		t.Fatalf("NewElement(%v): %v", tg, err)
	}
	return el
}

// writeTestFile synthesizes a minimal Explicit VR Little Endian file from
// the given data elements.
func writeTestFile(t *testing.T, path string, elements ...*dicom.Element) {
	t.Helper()
	meta := []*dicom.Element{
		mustElement(t, tag.FileMetaInformationVersion, []byte{0x00, 0x01}),
		mustElement(t, tag.MediaStorageSOPClassUID, []string{DefaultSOPClassUID}),
		mustElement(t, tag.MediaStorageSOPInstanceUID, []string{"1.2.3.4.5.6.7"}),
		mustElement(t, tag.TransferSyntaxUID, []string{"1.2.840.10008.1.2.1"}),
	}
	ds := dicom.Dataset{Elements: append(meta, elements...)}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	if err := dicom.Write(f, ds, dicom.SkipVRVerification()); err != nil {
		f.Close()
		t.Fatalf("write %s: %v", path, err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close %s: %v", path, err)
	}
}

func TestFixUIDsReplacesBrokenValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "im.dcm")
	writeTestFile(t, path,
		mustElement(t, tag.SOPClassUID, []string{"not-a-registered-uid"}),
		mustElement(t, tag.SOPInstanceUID, []string{"1.2.3.4"}),
		mustElement(t, tag.SeriesInstanceUID, []string{"1.2.broken!"}),
		mustElement(t, tag.PatientID, []string{"P1"}),
	)

	n, err := FixUIDs(path, DeriveUID)
	if err != nil {
		t.Fatalf("FixUIDs: %v", err)
	}
	if n != 2 {
		t.Errorf("replaced %d UIDs, want 2", n)
	}

	got, err := ReadTags(path, tag.SOPClassUID, tag.SeriesInstanceUID, tag.SOPInstanceUID, tag.PatientID)
	if err != nil {
		t.Fatalf("re-reading fixed file: %v", err)
	}
	if got[0] != DefaultSOPClassUID {
		t.Errorf("SOP Class UID = %q, want the default %q", got[0], DefaultSOPClassUID)
	}
	if want := DeriveUID("1.2.broken!"); got[1] != want {
		t.Errorf("Series Instance UID = %q, want derived %q", got[1], want)
	}
	if got[2] != "1.2.3.4" {
		t.Errorf("compliant SOP Instance UID changed to %q", got[2])
	}
	if got[3] != "P1" {
		t.Errorf("Patient ID = %q after rewrite, want %q", got[3], "P1")
	}
}

func TestFixUIDsLeavesCompliantFilesUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "im.dcm")
	writeTestFile(t, path,
		mustElement(t, tag.SOPClassUID, []string{DefaultSOPClassUID}),
		mustElement(t, tag.SOPInstanceUID, []string{"1.2.3.4"}),
	)
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	n, err := FixUIDs(path, DeriveUID)
	if err != nil {
		t.Fatalf("FixUIDs: %v", err)
	}
	if n != 0 {
		t.Errorf("replaced %d UIDs in a compliant file, want 0", n)
	}
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Error("compliant file was rewritten")
	}
}
