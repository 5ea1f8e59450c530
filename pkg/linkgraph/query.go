// Query engine: directional and merged lookups over the link graph.
package linkgraph

import (
	"github.com/atlasfolio/tripgraph/pkg/types"
)

// GetLinksFrom returns links where the entity is the source. targetType ""
// means no narrowing.
func (s *Service) GetLinksFrom(tripID int64, source types.EntityRef, targetType types.EntityType) ([]*types.EntityLink, error) {
	return s.links.LinksFrom(tripID, source, targetType)
}

// GetLinksTo returns links where the entity is the target. sourceType ""
// means no narrowing.
func (s *Service) GetLinksTo(tripID int64, target types.EntityRef, sourceType types.EntityType) ([]*types.EntityLink, error) {
	return s.links.LinksTo(tripID, target, sourceType)
}

// GetAllLinksForEntity merges both directions for one entity, tagged by
// direction relative to it. Exactly two store queries regardless of how many
// links the entity has.
func (s *Service) GetAllLinksForEntity(tripID int64, entity types.EntityRef) (*types.EntityLinks, error) {
	from, err := s.links.LinksFrom(tripID, entity, "")
	if err != nil {
		return nil, err
	}
	to, err := s.links.LinksTo(tripID, entity, "")
	if err != nil {
		return nil, err
	}
	return &types.EntityLinks{From: from, To: to}, nil
}

// GetLinksByTargetType returns every link in the trip pointing at entities
// of the given type.
func (s *Service) GetLinksByTargetType(tripID int64, targetType types.EntityType) ([]*types.EntityLink, error) {
	return s.links.LinksByTargetType(tripID, targetType)
}

// GetPhotosForEntity finds all PHOTO endpoints connected to the entity in
// either direction and resolves them to photo records. The link queries are
// authoritative; photo resolution is an external collaborator, so a failing
// or partial resolution degrades to a shorter (possibly empty) photo list
// rather than an error.
func (s *Service) GetPhotosForEntity(tripID int64, entity types.EntityRef) ([]*types.Photo, error) {
	out, err := s.links.LinksFrom(tripID, entity, types.EntityTypePhoto)
	if err != nil {
		return nil, err
	}
	in, err := s.links.LinksTo(tripID, entity, types.EntityTypePhoto)
	if err != nil {
		return nil, err
	}

	seen := make(map[int64]bool)
	photoIDs := make([]int64, 0, len(out)+len(in))
	for _, l := range out {
		if !seen[l.TargetID] {
			seen[l.TargetID] = true
			photoIDs = append(photoIDs, l.TargetID)
		}
	}
	for _, l := range in {
		if !seen[l.SourceID] {
			seen[l.SourceID] = true
			photoIDs = append(photoIDs, l.SourceID)
		}
	}

	if len(photoIDs) == 0 || s.photos == nil {
		return []*types.Photo{}, nil
	}

	photos, err := s.photos.GetPhotosByIDs(tripID, photoIDs)
	if err != nil {
		s.log.Warn().Err(err).Int64("trip", tripID).Stringer("entity", entity).
			Int("photo_ids", len(photoIDs)).Msg("photo resolution failed, returning empty list")
		return []*types.Photo{}, nil
	}
	return photos, nil
}
