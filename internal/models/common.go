package models

import "time"

// Timestamps are the shared created/updated columns.
type Timestamps struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
