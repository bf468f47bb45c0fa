package storage

import "time"

// Version describes one stored revision of a key.
type Version struct {
	ID      int64
	Key     string
	Size    int
	SavedAt time.Time
}
