package storage

import "time"

// Meta describes how and when a snapshot was written.
type Meta struct {
	Storage   string    `json:"storage"`
	Version   int       `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// PersistRecord is the on-disk form of one contact.
type PersistRecord struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday string   `json:"birthday,omitempty"` // DD.MM.YYYY
}

// Snapshot is the whole address book as written to disk.
type Snapshot struct {
	Meta    Meta            `json:"_meta"`
	Records []PersistRecord `json:"records"`
}
