// Read-side traversal of the link graph. Ordering is insertion order
// (link_id ASC) everywhere; callers needing sorted output sort client-side.
package sqlite

import (
	"fmt"

	"github.com/atlasfolio/tripgraph/pkg/types"
)

// LinksFrom returns links where the entity is the source, optionally
// narrowed to a target type.
func (lt *linksTable) LinksFrom(tripID int64, source types.EntityRef, targetType types.EntityType) ([]*types.EntityLink, error) {
	if tripID <= 0 {
		return nil, types.ErrInvalidID
	}
	if err := source.Validate(); err != nil {
		return nil, err
	}

	query := "SELECT " + linkColumns + " FROM entity_links WHERE trip_id = ? AND source_type = ? AND source_id = ?"
	args := []any{tripID, source.Type, source.ID}

	if targetType != "" {
		if !targetType.Valid() {
			return nil, fmt.Errorf("%w: %q", types.ErrInvalidEntityType, targetType)
		}
		query += " AND target_type = ?"
		args = append(args, targetType)
	}
	query += " ORDER BY link_id"

	return scanLinks(lt.backend.db, query, args...)
}

// LinksTo returns links where the entity is the target, optionally narrowed
// to a source type.
func (lt *linksTable) LinksTo(tripID int64, target types.EntityRef, sourceType types.EntityType) ([]*types.EntityLink, error) {
	if tripID <= 0 {
		return nil, types.ErrInvalidID
	}
	if err := target.Validate(); err != nil {
		return nil, err
	}

	query := "SELECT " + linkColumns + " FROM entity_links WHERE trip_id = ? AND target_type = ? AND target_id = ?"
	args := []any{tripID, target.Type, target.ID}

	if sourceType != "" {
		if !sourceType.Valid() {
			return nil, fmt.Errorf("%w: %q", types.ErrInvalidEntityType, sourceType)
		}
		query += " AND source_type = ?"
		args = append(args, sourceType)
	}
	query += " ORDER BY link_id"

	return scanLinks(lt.backend.db, query, args...)
}

// LinksByTargetType returns every link in the trip whose target is of the
// given type, for trip-wide views like "everything pointing at photos".
func (lt *linksTable) LinksByTargetType(tripID int64, targetType types.EntityType) ([]*types.EntityLink, error) {
	if tripID <= 0 {
		return nil, types.ErrInvalidID
	}
	if !targetType.Valid() {
		return nil, fmt.Errorf("%w: %q", types.ErrInvalidEntityType, targetType)
	}

	return scanLinks(lt.backend.db,
		"SELECT "+linkColumns+" FROM entity_links WHERE trip_id = ? AND target_type = ? ORDER BY link_id",
		tripID, targetType,
	)
}

// LinksForTrip returns every link in the trip. The summary aggregator groups
// this single result set in memory instead of issuing per-entity queries.
func (lt *linksTable) LinksForTrip(tripID int64) ([]*types.EntityLink, error) {
	if tripID <= 0 {
		return nil, types.ErrInvalidID
	}

	return scanLinks(lt.backend.db,
		"SELECT "+linkColumns+" FROM entity_links WHERE trip_id = ? ORDER BY link_id",
		tripID,
	)
}
