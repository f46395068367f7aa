package dcmio

import "github.com/suyashkumar/dicom/pkg/tag"

// Field maps a DICOM tag to its column name in the series summary table.
type Field struct {
	Tag  tag.Tag
	Name string
}

// Fields is the fixed set of header fields the extractor reads. The order
// defines the column order of the output table.
var Fields = []Field{
	{tag.PatientID, "Patient ID"},
	{tag.StudyDate, "Study Date"},
	{tag.MagneticFieldStrength, "Magnetic Field Strength"},
	{tag.ManufacturerModelName, "Manufacturer's Model Name"},
	{tag.InstitutionName, "Institution Name"},
	{tag.AccessionNumber, "Accession Number"},
	{tag.StudyInstanceUID, "Study Instance UID"},
	{tag.SeriesNumber, "Series Number"},
	{tag.SeriesDescription, "Series Description"},
	{tag.SeriesInstanceUID, "Series Instance UID"},
	{tag.NumberOfSlices, "Number of Slices"},
	{tag.AcquisitionMatrix, "Acquisition Matrix"},
	{tag.PixelSpacing, "Pixel Spacing"},
	{tag.SpacingBetweenSlices, "Spacing Between Slices"},
	{tag.SliceThickness, "Slice Thickness"},
	{tag.RepetitionTime, "Repetition Time"},
	{tag.EchoTime, "Echo Time"},
	{tag.EchoNumbers, "Echo Number(s)"},
	{tag.EchoTrainLength, "Echo Train Length"},
	{tag.InversionTime, "Inversion Time"},
	{tag.FlipAngle, "Flip Angle"},
	{tag.ImageType, "Image Type"},
	{tag.AcquisitionDuration, "Acquisition Duration"},
	// Philips private tag, no dictionary entry.
	{tag.Tag{Group: 0x2001, Element: 0x101B}, "Prepulse Delay"},
}

// ColumnNames returns the TSV header row for the summary table.
func ColumnNames() []string {
	names := make([]string, len(Fields))
	for i, f := range Fields {
		names[i] = f.Name
	}
	return names
}
