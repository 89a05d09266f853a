package repository

import "time"

// Entry is one confirmed picker value.
type Entry struct {
	ID        string
	Kind      string
	Value     string
	CreatedAt time.Time
}
