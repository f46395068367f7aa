package dcmio

import (
	"strconv"
	"strings"

	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"
)

// ReadHeader parses the file's header, skipping pixel data, and renders
// every field in Fields as a string. Absent fields map to "".
func ReadHeader(path string) (map[string]string, error) {
	ds, err := dicom.ParseFile(path, nil, dicom.SkipPixelData())
	if err != nil {
		return nil, err
	}
	info := make(map[string]string, len(Fields))
	for _, f := range Fields {
		info[f.Name] = elementString(&ds, f.Tag)
	}
	return info, nil
}

// ReadTags extracts the given tags from one file as rendered strings, in
// the order requested. Absent tags come back as "".
func ReadTags(path string, tags ...tag.Tag) ([]string, error) {
	ds, err := dicom.ParseFile(path, nil, dicom.SkipPixelData())
	if err != nil {
		return nil, err
	}
	vals := make([]string, len(tags))
	for i, t := range tags {
		vals[i] = elementString(&ds, t)
	}
	return vals, nil
}

// IsDICOM reports whether the file parses as DICOM. Pixel data is
// skipped, so this is a cheap header check.
func IsDICOM(path string) bool {
	_, err := dicom.ParseFile(path, nil, dicom.SkipPixelData())
	return err == nil
}

func elementString(ds *dicom.Dataset, t tag.Tag) string {
	el, err := ds.FindElementByTag(t)
	if err != nil || el == nil {
		return ""
	}
	return render(el.Value)
}

// render flattens an element value into a single cell. Multi-valued
// fields use the DICOM backslash separator.
func render(v dicom.Value) string {
	switch v.ValueType() {
	case dicom.Strings:
		return strings.Join(dicom.MustGetStrings(v), `\`)
	case dicom.Ints:
		ints := dicom.MustGetInts(v)
		parts := make([]string, len(ints))
		for i, n := range ints {
			parts[i] = strconv.Itoa(n)
		}
		return strings.Join(parts, `\`)
	case dicom.Floats:
		floats := dicom.MustGetFloats(v)
		parts := make([]string, len(floats))
		for i, f := range floats {
			parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
		}
		return strings.Join(parts, `\`)
	default:
		// Sequences and raw payloads have no tabular rendering.
		return ""
	}
}
