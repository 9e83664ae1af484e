package entity

import "time"

// UploadMeta describes the upload a dataset came from.
type UploadMeta struct {
	ID          string
	Filename    string
	RecordCount int
	UploadedAt  time.Time
}

// Dataset is the latest accepted upload of a user. The zero Dataset means
// nothing was uploaded yet.
type Dataset struct {
	Meta    UploadMeta
	Records []Record
}

// Empty reports whether the dataset has never been filled.
func (d Dataset) Empty() bool {
	return d.Meta.ID == ""
}
