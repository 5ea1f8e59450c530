// Link store: durable CRUD for entity_links rows, scoped by trip.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/atlasfolio/tripgraph/pkg/types"
)

// Table names shared by accessors, JSONL snapshots and the loader.
const (
	tripsTableName  = "trips"
	photosTableName = "photos"
	linksTableName  = "entity_links"
)

var _ types.LinkStore = (*linksTable)(nil)

type linksTable struct {
	backend *Backend
}

// linkColumns is the canonical column order for entity_links scans.
const linkColumns = "link_id, trip_id, source_type, source_id, target_type, target_id, relationship, notes, created_at, updated_at"

// CreateLink persists a new directed edge. The uniqueness key is
// (trip_id, source_type, source_id, target_type, target_id); relationship is
// not part of the edge identity, so a second create with a different
// relationship still fails with ErrDuplicateLink.
func (lt *linksTable) CreateLink(tripID int64, source, target types.EntityRef, relationship, notes string) (*types.EntityLink, error) {
	if tripID <= 0 {
		return nil, types.ErrInvalidID
	}
	if err := source.Validate(); err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}
	if err := target.Validate(); err != nil {
		return nil, fmt.Errorf("target: %w", err)
	}
	if relationship == "" {
		relationship = types.RelationshipRelated
	}

	// Fast-path duplicate check. The unique index remains the authority
	// under concurrent writers; the insert below maps its violation too.
	var dupID int64
	err := lt.backend.db.QueryRow(
		"SELECT link_id FROM entity_links WHERE trip_id = ? AND source_type = ? AND source_id = ? AND target_type = ? AND target_id = ?",
		tripID, source.Type, source.ID, target.Type, target.ID,
	).Scan(&dupID)
	if err == nil {
		return nil, types.ErrDuplicateLink
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("checking link uniqueness: %w", err)
	}

	// Truncate to seconds so the returned struct matches the RFC3339
	// representation stored in the row.
	now := time.Now().UTC().Truncate(time.Second)
	nowStr := now.Format(time.RFC3339)

	res, err := lt.backend.db.Exec(
		"INSERT INTO entity_links (trip_id, source_type, source_id, target_type, target_id, relationship, notes, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		tripID, source.Type, source.ID, target.Type, target.ID, relationship, nullableString(notes), nowStr, nowStr,
	)
	if err != nil {
		if isUniqueConstraintErr(err) {
			// Lost the race against a concurrent create of the same edge.
			return nil, types.ErrDuplicateLink
		}
		return nil, fmt.Errorf("inserting link: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading link id: %w", err)
	}

	if err := lt.backend.persistAfterWrite(linksTableName); err != nil {
		return nil, fmt.Errorf("persisting entity_links.jsonl: %w", err)
	}

	return &types.EntityLink{
		ID:           id,
		TripID:       tripID,
		SourceType:   source.Type,
		SourceID:     source.ID,
		TargetType:   target.Type,
		TargetID:     target.ID,
		Relationship: relationship,
		Notes:        notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// GetLink retrieves a link by surrogate id within a trip.
func (lt *linksTable) GetLink(tripID, linkID int64) (*types.EntityLink, error) {
	if tripID <= 0 || linkID <= 0 {
		return nil, types.ErrInvalidID
	}

	row := lt.backend.db.QueryRow(
		"SELECT "+linkColumns+" FROM entity_links WHERE trip_id = ? AND link_id = ?",
		tripID, linkID,
	)
	link, err := hydrateLink(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting link %d: %w", linkID, err)
	}
	return link, nil
}

// UpdateLink modifies relationship and/or notes. The four endpoint fields
// are immutable; changing source or target is delete plus create.
func (lt *linksTable) UpdateLink(tripID, linkID int64, update types.LinkUpdate) (*types.EntityLink, error) {
	link, err := lt.GetLink(tripID, linkID)
	if err != nil {
		return nil, err
	}

	if update.Relationship != nil {
		rel := *update.Relationship
		if rel == "" {
			rel = types.RelationshipRelated
		}
		link.Relationship = rel
	}
	if update.Notes != nil {
		link.Notes = *update.Notes
	}
	link.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	_, err = lt.backend.db.Exec(
		"UPDATE entity_links SET relationship = ?, notes = ?, updated_at = ? WHERE trip_id = ? AND link_id = ?",
		link.Relationship, nullableString(link.Notes), link.UpdatedAt.Format(time.RFC3339), tripID, linkID,
	)
	if err != nil {
		return nil, fmt.Errorf("updating link %d: %w", linkID, err)
	}

	if err := lt.backend.persistAfterWrite(linksTableName); err != nil {
		return nil, fmt.Errorf("persisting entity_links.jsonl: %w", err)
	}

	return link, nil
}

// DeleteLink removes the edge identified by its composite key. Deleting an
// edge that does not exist succeeds silently: the net effect, "the edge does
// not exist", holds either way.
func (lt *linksTable) DeleteLink(tripID int64, source, target types.EntityRef) error {
	if tripID <= 0 {
		return types.ErrInvalidID
	}
	if err := source.Validate(); err != nil {
		return fmt.Errorf("source: %w", err)
	}
	if err := target.Validate(); err != nil {
		return fmt.Errorf("target: %w", err)
	}

	res, err := lt.backend.db.Exec(
		"DELETE FROM entity_links WHERE trip_id = ? AND source_type = ? AND source_id = ? AND target_type = ? AND target_id = ?",
		tripID, source.Type, source.ID, target.Type, target.ID,
	)
	if err != nil {
		return fmt.Errorf("deleting link: %w", err)
	}

	if n, _ := res.RowsAffected(); n > 0 {
		if err := lt.backend.persistAfterWrite(linksTableName); err != nil {
			return fmt.Errorf("persisting entity_links.jsonl: %w", err)
		}
	}
	return nil
}

// DeleteLinkByID removes a link by surrogate id. Unlike the composite-key
// path, an absent id is an error: callers pass ids they previously read back.
func (lt *linksTable) DeleteLinkByID(tripID, linkID int64) error {
	if tripID <= 0 || linkID <= 0 {
		return types.ErrInvalidID
	}

	res, err := lt.backend.db.Exec(
		"DELETE FROM entity_links WHERE trip_id = ? AND link_id = ?",
		tripID, linkID,
	)
	if err != nil {
		return fmt.Errorf("deleting link %d: %w", linkID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("counting deleted links: %w", err)
	}
	if n == 0 {
		return types.ErrNotFound
	}

	if err := lt.backend.persistAfterWrite(linksTableName); err != nil {
		return fmt.Errorf("persisting entity_links.jsonl: %w", err)
	}
	return nil
}

// DeleteAllLinksForEntity removes every link where the entity appears as
// source or target. Returns the number removed so entity managers can log
// the cascade before deleting their own row.
func (lt *linksTable) DeleteAllLinksForEntity(tripID int64, entity types.EntityRef) (int, error) {
	if tripID <= 0 {
		return 0, types.ErrInvalidID
	}
	if err := entity.Validate(); err != nil {
		return 0, err
	}

	res, err := lt.backend.db.Exec(
		"DELETE FROM entity_links WHERE trip_id = ? AND ((source_type = ? AND source_id = ?) OR (target_type = ? AND target_id = ?))",
		tripID, entity.Type, entity.ID, entity.Type, entity.ID,
	)
	if err != nil {
		return 0, fmt.Errorf("deleting links for %s: %w", entity, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting deleted links: %w", err)
	}

	if n > 0 {
		if err := lt.backend.persistAfterWrite(linksTableName); err != nil {
			return 0, fmt.Errorf("persisting entity_links.jsonl: %w", err)
		}
	}
	return int(n), nil
}

// nullableString maps "" to NULL so optional text columns stay NULL-clean.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// isUniqueConstraintErr reports whether err is a SQLite unique index
// violation. modernc.org/sqlite surfaces these as generic errors carrying
// the constraint message.
func isUniqueConstraintErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// hydrateLink converts a single SQLite row into a *types.EntityLink.
func hydrateLink(row *sql.Row) (*types.EntityLink, error) {
	var l types.EntityLink
	var notes sql.NullString
	var createdAt, updatedAt string
	if err := row.Scan(&l.ID, &l.TripID, &l.SourceType, &l.SourceID, &l.TargetType, &l.TargetID, &l.Relationship, &notes, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	l.Notes = notes.String
	var err error
	if l.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if l.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &l, nil
}

// hydrateLinkFromRows converts a row from sql.Rows into a *types.EntityLink.
func hydrateLinkFromRows(rows *sql.Rows) (*types.EntityLink, error) {
	var l types.EntityLink
	var notes sql.NullString
	var createdAt, updatedAt string
	if err := rows.Scan(&l.ID, &l.TripID, &l.SourceType, &l.SourceID, &l.TargetType, &l.TargetID, &l.Relationship, &notes, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	l.Notes = notes.String
	var err error
	if l.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if l.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &l, nil
}

// scanLinks runs a query and hydrates every row.
func scanLinks(db *sql.DB, query string, args ...any) ([]*types.EntityLink, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying links: %w", err)
	}
	defer rows.Close()

	links := []*types.EntityLink{}
	for rows.Next() {
		link, err := hydrateLinkFromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating link: %w", err)
		}
		links = append(links, link)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating links: %w", err)
	}
	return links, nil
}
