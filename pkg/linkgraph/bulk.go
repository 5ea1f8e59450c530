// Bulk operator: batched link creation with partial-failure accounting.
// One failing item must never abort the hundreds that succeed; callers
// inspect counts, not errors, to learn how a batch went.
package linkgraph

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/atlasfolio/tripgraph/pkg/types"
)

// opID generates a UUID v7 identifying one bulk run in results and logs.
func opID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// BulkCreateLinks creates links from one source to many targets with the
// same relationship. Each target is attempted independently: duplicates are
// skipped, invalid targets are logged and skipped, and Created counts only
// newly inserted rows. Re-running a partially-succeeded batch is safe.
func (s *Service) BulkCreateLinks(tripID int64, source types.EntityRef, targets []types.EntityRef, relationship string) (*types.BulkCreateResult, error) {
	if err := source.Validate(); err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}

	result := &types.BulkCreateResult{OperationID: opID()}
	for _, target := range targets {
		_, err := s.links.CreateLink(tripID, source, target, relationship, "")
		switch {
		case err == nil:
			result.Created++
		case isDuplicate(err):
			// Already exists: a no-op, not a failure.
		default:
			s.log.Warn().Err(err).Str("op", result.OperationID).
				Stringer("source", source).Stringer("target", target).
				Msg("bulk create: target skipped")
		}
	}

	s.log.Info().Str("op", result.OperationID).Int64("trip", tripID).
		Stringer("source", source).Int("targets", len(targets)).
		Int("created", result.Created).Msg("bulk create finished")
	return result, nil
}

// BulkLinkPhotos links many photos to one target, the "attach these N
// selected photos to this location" flow. Returns only the created count;
// use ImportPhotoLinks when the caller needs per-item accounting.
func (s *Service) BulkLinkPhotos(tripID int64, photoIDs []int64, target types.EntityRef, relationship string) (*types.BulkCreateResult, error) {
	imported, err := s.ImportPhotoLinks(tripID, photoIDs, target, relationship)
	if err != nil {
		return nil, err
	}
	return &types.BulkCreateResult{
		OperationID: imported.OperationID,
		Created:     imported.Created,
	}, nil
}

// ImportPhotoLinks attempts to link every photo id to the target and reports
// partial-failure accounting. The contract per call: attempt every item,
// never abort the batch, and return counts plus one human-readable message
// per failure so the caller can report "linked 240 of 250" and retry only
// the failed subset. Already-linked photos count as successful, so re-runs
// after a partial failure are idempotent. Large batches should be chunked by
// the caller to stay under request timeout ceilings; this call offers
// per-chunk accounting, not cross-chunk transactions.
func (s *Service) ImportPhotoLinks(tripID int64, photoIDs []int64, target types.EntityRef, relationship string) (*types.PhotoLinkResult, error) {
	if err := target.Validate(); err != nil {
		return nil, fmt.Errorf("target: %w", err)
	}
	if relationship == "" {
		relationship = types.RelationshipTakenAt
	}

	result := &types.PhotoLinkResult{OperationID: opID()}
	for _, photoID := range photoIDs {
		source := types.EntityRef{Type: types.EntityTypePhoto, ID: photoID}
		_, err := s.links.CreateLink(tripID, source, target, relationship, "")
		switch {
		case err == nil:
			result.Successful++
			result.Created++
			result.PhotoIDs = append(result.PhotoIDs, photoID)
		case isDuplicate(err):
			result.Successful++
		default:
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("photo %d: %v", photoID, err))
		}
	}

	evt := s.log.Info()
	if result.Failed > 0 {
		evt = s.log.Warn()
	}
	evt.Str("op", result.OperationID).Int64("trip", tripID).Stringer("target", target).
		Int("photos", len(photoIDs)).Int("successful", result.Successful).
		Int("failed", result.Failed).Int("created", result.Created).
		Msg("photo link import finished")
	return result, nil
}
