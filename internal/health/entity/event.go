package entity

import "time"

// DatasetReplacedEvent is published after a user's dataset was overwritten.
type DatasetReplacedEvent struct {
	EventID     string
	Username    string
	UploadID    string
	Filename    string
	RecordCount int
	// Previous is the record count of the dataset that got overwritten.
	Previous   int
	OccurredAt time.Time
}
