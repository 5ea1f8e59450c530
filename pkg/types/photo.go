package types

import "time"

// Photo is the record resolved by GetPhotosForEntity. The core only reads
// photos; upload and storage of the image bytes live outside this module.
type Photo struct {
	ID        int64     `json:"photo_id"`
	TripID    int64     `json:"trip_id"`
	FileName  string    `json:"file_name"`
	Caption   string    `json:"caption,omitempty"`
	TakenAt   string    `json:"taken_at,omitempty"` // RFC 3339, optional
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
