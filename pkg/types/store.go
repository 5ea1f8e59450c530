// Store interfaces for backend-agnostic access to trip data.
// Callers attach a Store to a data directory, use the typed accessors, and
// detach when done.
package types

import "errors"

// Store is the persistence boundary of the tripgraph core. Accessors return
// ErrStoreDetached when called before Attach or after Detach.
type Store interface {
	// Attach connects the store to the backend described by config.
	// Creates the data directory if it does not exist.
	// Returns ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach flushes pending writes and releases backend resources.
	// Idempotent: multiple calls succeed.
	Detach() error

	// Links returns the link table accessor.
	Links() (LinkStore, error)

	// Photos returns the photo table accessor.
	Photos() (PhotoStore, error)

	// Trips returns the trip table accessor.
	Trips() (TripStore, error)
}

// LinkStore is durable CRUD plus traversal for EntityLink rows, scoped by
// trip on every operation.
type LinkStore interface {
	// CreateLink persists a new directed edge. Returns ErrDuplicateLink if
	// the (source, target) edge already exists in the trip, and
	// ErrInvalidEntityType if either endpoint type is outside the vocabulary.
	CreateLink(tripID int64, source, target EntityRef, relationship, notes string) (*EntityLink, error)

	// GetLink retrieves a link by surrogate id within a trip.
	// Returns ErrNotFound if absent.
	GetLink(tripID, linkID int64) (*EntityLink, error)

	// UpdateLink modifies relationship and/or notes of an existing link.
	// The endpoint fields are immutable. Returns ErrNotFound if no link with
	// that id exists in the trip.
	UpdateLink(tripID, linkID int64, update LinkUpdate) (*EntityLink, error)

	// DeleteLink removes the edge identified by its composite key. Deleting
	// an edge that does not exist is a silent no-op.
	DeleteLink(tripID int64, source, target EntityRef) error

	// DeleteLinkByID removes a link by surrogate id.
	// Returns ErrNotFound if absent.
	DeleteLinkByID(tripID, linkID int64) error

	// DeleteAllLinksForEntity removes every link where the entity appears as
	// source or target and returns the number removed. Entity managers call
	// this before deleting the entity itself.
	DeleteAllLinksForEntity(tripID int64, entity EntityRef) (int, error)

	// LinksFrom returns links where the entity is the source, optionally
	// narrowed to a target type. Pass "" for no narrowing.
	LinksFrom(tripID int64, source EntityRef, targetType EntityType) ([]*EntityLink, error)

	// LinksTo returns links where the entity is the target, optionally
	// narrowed to a source type. Pass "" for no narrowing.
	LinksTo(tripID int64, target EntityRef, sourceType EntityType) ([]*EntityLink, error)

	// LinksByTargetType returns every link in the trip whose target is of
	// the given type.
	LinksByTargetType(tripID int64, targetType EntityType) ([]*EntityLink, error)

	// LinksForTrip returns every link in the trip in insertion order.
	// The summary aggregator groups this single result set in memory.
	LinksForTrip(tripID int64) ([]*EntityLink, error)
}

// PhotoStore resolves photo ids to photo records. GetPhotosForEntity treats
// it as an external collaborator: ids without a matching row are silently
// omitted from the result.
type PhotoStore interface {
	AddPhoto(photo *Photo) (*Photo, error)
	GetPhoto(tripID, photoID int64) (*Photo, error)
	GetPhotosByIDs(tripID int64, photoIDs []int64) ([]*Photo, error)
	ListPhotos(tripID int64) ([]*Photo, error)
	DeletePhoto(tripID, photoID int64) error
}

// TripStore manages the scoping entity.
type TripStore interface {
	AddTrip(trip *Trip) (*Trip, error)
	GetTrip(tripID int64) (*Trip, error)
	ListTrips() ([]*Trip, error)

	// DeleteTrip removes the trip together with its links and photos.
	DeleteTrip(tripID int64) error
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)

// Row-level operation errors.
var (
	ErrNotFound      = errors.New("entity not found")
	ErrDuplicateLink = errors.New("link already exists")
)
