// Package linkgraph is the entity link graph service: single-link CRUD,
// directional traversal, bulk creation with partial-failure accounting, and
// trip-wide link summaries. Entity managers are its callers; the link and
// photo stores are its only persistence dependencies.
package linkgraph

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/atlasfolio/tripgraph/pkg/types"
)

// isDuplicate reports whether err means the edge already exists.
func isDuplicate(err error) bool {
	return errors.Is(err, types.ErrDuplicateLink)
}

// Service exposes the link graph operations over a LinkStore and a
// PhotoStore. It is stateless between calls; all state lives in the store.
type Service struct {
	links  types.LinkStore
	photos types.PhotoStore
	log    zerolog.Logger
}

// NewService creates a link graph service. The photo store may be nil when
// photo resolution is not needed; GetPhotosForEntity then returns empty
// lists.
func NewService(links types.LinkStore, photos types.PhotoStore, log zerolog.Logger) *Service {
	return &Service{
		links:  links,
		photos: photos,
		log:    log.With().Str("component", "linkgraph").Logger(),
	}
}

// CreateLink creates a single directed edge. An empty relationship defaults
// to RELATED. Surfaces ErrDuplicateLink and ErrInvalidEntityType to the
// caller, which decides whether a failed link after a successful entity
// create is fatal or a "saved but failed to link" warning.
func (s *Service) CreateLink(tripID int64, source, target types.EntityRef, relationship, notes string) (*types.EntityLink, error) {
	link, err := s.links.CreateLink(tripID, source, target, relationship, notes)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Int64("trip", tripID).Stringer("source", source).Stringer("target", target).Msg("link created")
	return link, nil
}

// UpdateLink modifies relationship and/or notes of an existing link. The
// endpoints are immutable; re-pointing a link is delete plus create.
func (s *Service) UpdateLink(tripID, linkID int64, update types.LinkUpdate) (*types.EntityLink, error) {
	return s.links.UpdateLink(tripID, linkID, update)
}

// DeleteLink removes an edge by composite key. A missing edge is a silent
// no-op, so callers can treat "make sure this edge is gone" as one call.
func (s *Service) DeleteLink(tripID int64, source, target types.EntityRef) error {
	return s.links.DeleteLink(tripID, source, target)
}

// DeleteLinkByID removes a link by surrogate id; ErrNotFound if absent.
func (s *Service) DeleteLinkByID(tripID, linkID int64) error {
	return s.links.DeleteLinkByID(tripID, linkID)
}

// DeleteAllLinksForEntity removes every link touching the entity and returns
// how many were removed. Entity managers must call this on every
// entity-delete path; links are never cascaded automatically, so a skipped
// call leaves orphaned edges behind.
func (s *Service) DeleteAllLinksForEntity(tripID int64, entity types.EntityRef) (int, error) {
	n, err := s.links.DeleteAllLinksForEntity(tripID, entity)
	if err != nil {
		return 0, fmt.Errorf("deleting links for %s: %w", entity, err)
	}
	if n > 0 {
		s.log.Debug().Int64("trip", tripID).Stringer("entity", entity).Int("deleted", n).Msg("entity links removed")
	}
	return n, nil
}
