package types

import "time"

// Trip is the scoping entity; every link and photo belongs to exactly one trip.
type Trip struct {
	ID        int64     `json:"trip_id"`
	Name      string    `json:"name"`
	StartDate string    `json:"start_date,omitempty"` // YYYY-MM-DD, optional
	EndDate   string    `json:"end_date,omitempty"`   // YYYY-MM-DD, optional
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
