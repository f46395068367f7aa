package models

// SeriesKey identifies one acquisition within the summary table. Rows are
// deduplicated on the (study UID, series description) pair.
type SeriesKey struct {
	StudyInstanceUID  string
	SeriesDescription string
}

// Patient groups studies found during a DICOMDIR scan, keyed by
// Study Instance UID.
type Patient struct {
	ID      string
	Studies map[string]*Study
}

// Study groups series, keyed by Series Instance UID.
type Study struct {
	UID    string
	Series map[string]*Series
}

// Series lists the source paths of its images.
type Series struct {
	UID   string
	Files []string
}
