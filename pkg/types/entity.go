// Entity type vocabulary and polymorphic entity references.
package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// EntityType tags the kind of trip entity a link endpoint refers to.
// The set is closed; every switch over EntityType must handle all members
// and reject anything else with ErrInvalidEntityType.
type EntityType string

const (
	EntityTypeLocation       EntityType = "LOCATION"
	EntityTypeActivity       EntityType = "ACTIVITY"
	EntityTypeLodging        EntityType = "LODGING"
	EntityTypeTransportation EntityType = "TRANSPORTATION"
	EntityTypePhoto          EntityType = "PHOTO"
	EntityTypePhotoAlbum     EntityType = "PHOTO_ALBUM"
	EntityTypeJournalEntry   EntityType = "JOURNAL_ENTRY"
)

// EntityTypes lists all valid entity types for enumeration.
var EntityTypes = []EntityType{
	EntityTypeLocation,
	EntityTypeActivity,
	EntityTypeLodging,
	EntityTypeTransportation,
	EntityTypePhoto,
	EntityTypePhotoAlbum,
	EntityTypeJournalEntry,
}

// Valid reports whether t is a member of the closed entity type set.
func (t EntityType) Valid() bool {
	switch t {
	case EntityTypeLocation, EntityTypeActivity, EntityTypeLodging,
		EntityTypeTransportation, EntityTypePhoto, EntityTypePhotoAlbum,
		EntityTypeJournalEntry:
		return true
	default:
		return false
	}
}

// ParseEntityType converts a string tag to an EntityType.
// Matching is case-insensitive; returns ErrInvalidEntityType for unknown tags.
func ParseEntityType(s string) (EntityType, error) {
	t := EntityType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidEntityType, s)
	}
	return t, nil
}

// EntityRef identifies a trip entity by type tag plus numeric id. It is not
// a database foreign key; the referenced table varies by type and referential
// existence is the owning manager's responsibility.
type EntityRef struct {
	Type EntityType `json:"entity_type"`
	ID   int64      `json:"entity_id"`
}

// Validate checks the ref has a known type and a positive id.
func (r EntityRef) Validate() error {
	if !r.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidEntityType, r.Type)
	}
	if r.ID <= 0 {
		return ErrInvalidID
	}
	return nil
}

// String renders the ref as "TYPE:id", the composite key form used by
// summaries and the CLI.
func (r EntityRef) String() string {
	return string(r.Type) + ":" + strconv.FormatInt(r.ID, 10)
}

// ParseEntityRef parses a "TYPE:id" string into an EntityRef.
func ParseEntityRef(s string) (EntityRef, error) {
	typePart, idPart, ok := strings.Cut(s, ":")
	if !ok {
		return EntityRef{}, fmt.Errorf("%w: ref %q must be TYPE:ID", ErrInvalidData, s)
	}
	t, err := ParseEntityType(typePart)
	if err != nil {
		return EntityRef{}, err
	}
	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || id <= 0 {
		return EntityRef{}, fmt.Errorf("%w: ref %q has invalid id", ErrInvalidID, s)
	}
	return EntityRef{Type: t, ID: id}, nil
}

// Entity reference and vocabulary errors.
var (
	ErrInvalidEntityType = errors.New("invalid entity type")
	ErrInvalidID         = errors.New("invalid entity ID")
	ErrInvalidData       = errors.New("invalid entity data")
)
