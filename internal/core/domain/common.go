package domain

import "time"

// Timestamps carries the creation/update instants shared by most entities.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
