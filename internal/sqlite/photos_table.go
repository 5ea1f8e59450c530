// Photo table accessor. GetPhotosForEntity resolves photo ids through this
// accessor; ids without a matching row are silently omitted.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/atlasfolio/tripgraph/pkg/types"
)

var _ types.PhotoStore = (*photosTable)(nil)

type photosTable struct {
	backend *Backend
}

// photoColumns is the canonical column order for photos scans.
const photoColumns = "photo_id, trip_id, file_name, caption, taken_at, created_at, updated_at"

// AddPhoto registers a photo record for a trip. The id is assigned by the
// store; image bytes live outside this module.
func (pt *photosTable) AddPhoto(photo *types.Photo) (*types.Photo, error) {
	if photo == nil || photo.TripID <= 0 {
		return nil, types.ErrInvalidData
	}
	if photo.FileName == "" {
		return nil, types.ErrInvalidData
	}

	now := time.Now().UTC().Truncate(time.Second)
	nowStr := now.Format(time.RFC3339)

	res, err := pt.backend.db.Exec(
		"INSERT INTO photos (trip_id, file_name, caption, taken_at, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		photo.TripID, photo.FileName, nullableString(photo.Caption), nullableString(photo.TakenAt), nowStr, nowStr,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting photo: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading photo id: %w", err)
	}

	if err := pt.backend.persistAfterWrite(photosTableName); err != nil {
		return nil, fmt.Errorf("persisting photos.jsonl: %w", err)
	}

	created := *photo
	created.ID = id
	created.CreatedAt = now
	created.UpdatedAt = now
	return &created, nil
}

// GetPhoto retrieves a photo by id within a trip.
func (pt *photosTable) GetPhoto(tripID, photoID int64) (*types.Photo, error) {
	if tripID <= 0 || photoID <= 0 {
		return nil, types.ErrInvalidID
	}

	row := pt.backend.db.QueryRow(
		"SELECT "+photoColumns+" FROM photos WHERE trip_id = ? AND photo_id = ?",
		tripID, photoID,
	)
	photo, err := hydratePhoto(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting photo %d: %w", photoID, err)
	}
	return photo, nil
}

// GetPhotosByIDs resolves a batch of photo ids in one query. Ids with no
// matching row in the trip are omitted from the result, not errors.
func (pt *photosTable) GetPhotosByIDs(tripID int64, photoIDs []int64) ([]*types.Photo, error) {
	if tripID <= 0 {
		return nil, types.ErrInvalidID
	}
	if len(photoIDs) == 0 {
		return []*types.Photo{}, nil
	}

	placeholders := make([]string, len(photoIDs))
	args := make([]any, 0, len(photoIDs)+1)
	args = append(args, tripID)
	for i, id := range photoIDs {
		placeholders[i] = "?"
		args = append(args, id)
	}

	query := fmt.Sprintf(
		"SELECT %s FROM photos WHERE trip_id = ? AND photo_id IN (%s) ORDER BY photo_id",
		photoColumns, strings.Join(placeholders, ", "),
	)
	return scanPhotos(pt.backend.db, query, args...)
}

// ListPhotos returns every photo in the trip in insertion order.
func (pt *photosTable) ListPhotos(tripID int64) ([]*types.Photo, error) {
	if tripID <= 0 {
		return nil, types.ErrInvalidID
	}
	return scanPhotos(pt.backend.db,
		"SELECT "+photoColumns+" FROM photos WHERE trip_id = ? ORDER BY photo_id",
		tripID,
	)
}

// DeletePhoto removes a photo by id. Returns ErrNotFound if absent. Link
// cleanup is the caller's job via DeleteAllLinksForEntity, mirroring every
// other entity manager.
func (pt *photosTable) DeletePhoto(tripID, photoID int64) error {
	if tripID <= 0 || photoID <= 0 {
		return types.ErrInvalidID
	}

	res, err := pt.backend.db.Exec(
		"DELETE FROM photos WHERE trip_id = ? AND photo_id = ?",
		tripID, photoID,
	)
	if err != nil {
		return fmt.Errorf("deleting photo %d: %w", photoID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("counting deleted photos: %w", err)
	}
	if n == 0 {
		return types.ErrNotFound
	}

	if err := pt.backend.persistAfterWrite(photosTableName); err != nil {
		return fmt.Errorf("persisting photos.jsonl: %w", err)
	}
	return nil
}

// hydratePhoto converts a single SQLite row into a *types.Photo.
func hydratePhoto(row *sql.Row) (*types.Photo, error) {
	var p types.Photo
	var caption, takenAt sql.NullString
	var createdAt, updatedAt string
	if err := row.Scan(&p.ID, &p.TripID, &p.FileName, &caption, &takenAt, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	p.Caption = caption.String
	p.TakenAt = takenAt.String
	var err error
	if p.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &p, nil
}

// scanPhotos runs a query and hydrates every row.
func scanPhotos(db *sql.DB, query string, args ...any) ([]*types.Photo, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying photos: %w", err)
	}
	defer rows.Close()

	photos := []*types.Photo{}
	for rows.Next() {
		var p types.Photo
		var caption, takenAt sql.NullString
		var createdAt, updatedAt string
		if err := rows.Scan(&p.ID, &p.TripID, &p.FileName, &caption, &takenAt, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("hydrating photo: %w", err)
		}
		p.Caption = caption.String
		p.TakenAt = takenAt.String
		if p.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		if p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
			return nil, fmt.Errorf("parsing updated_at: %w", err)
		}
		photos = append(photos, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating photos: %w", err)
	}
	return photos, nil
}
