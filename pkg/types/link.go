// EntityLink represents directed edges between heterogeneous trip entities.
package types

import "time"

// Relationship labels. The column is free text so callers may introduce
// their own labels; these are the ones the application itself writes.
const (
	RelationshipRelated = "RELATED"  // default when omitted
	RelationshipTakenAt = "TAKEN_AT" // photo → place it was taken
)

// EntityLink is a directed edge in the trip entity graph. An edge is unique
// per trip on (source_type, source_id, target_type, target_id); relationship
// is not part of the identity. The four endpoint fields are immutable after
// creation; only Relationship and Notes may be updated.
type EntityLink struct {
	// ID is the surrogate key, assigned by the store on creation.
	ID int64 `json:"link_id"`

	// TripID scopes the link; links are never visible across trips.
	TripID int64 `json:"trip_id"`

	// SourceType and SourceID identify the origin entity.
	SourceType EntityType `json:"source_type"`
	SourceID   int64      `json:"source_id"`

	// TargetType and TargetID identify the destination entity.
	TargetType EntityType `json:"target_type"`
	TargetID   int64      `json:"target_id"`

	// Relationship labels the semantic nature of the edge.
	Relationship string `json:"relationship"`

	// Notes is optional free text.
	Notes string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Source returns the origin endpoint as an EntityRef.
func (l *EntityLink) Source() EntityRef {
	return EntityRef{Type: l.SourceType, ID: l.SourceID}
}

// Target returns the destination endpoint as an EntityRef.
func (l *EntityLink) Target() EntityRef {
	return EntityRef{Type: l.TargetType, ID: l.TargetID}
}

// Other returns the endpoint opposite to the given entity. Used by the
// summary aggregator, which counts by the far side's type regardless of
// direction.
func (l *EntityLink) Other(entity EntityRef) EntityRef {
	if l.SourceType == entity.Type && l.SourceID == entity.ID {
		return l.Target()
	}
	return l.Source()
}

// LinkUpdate carries the mutable fields of a link. Nil fields are left
// unchanged.
type LinkUpdate struct {
	Relationship *string `json:"relationship,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// EntityLinks groups the links for one entity by direction relative to it.
type EntityLinks struct {
	// From holds links where the entity is the source.
	From []*EntityLink `json:"from"`

	// To holds links where the entity is the target.
	To []*EntityLink `json:"to"`
}
