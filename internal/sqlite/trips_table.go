// Trip table accessor. The trip owns its whole scope, so DeleteTrip is the
// one place cascade lives inside the store.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/atlasfolio/tripgraph/pkg/types"
)

var _ types.TripStore = (*tripsTable)(nil)

type tripsTable struct {
	backend *Backend
}

// tripColumns is the canonical column order for trips scans.
const tripColumns = "trip_id, name, start_date, end_date, created_at, updated_at"

// AddTrip creates a trip. The id is assigned by the store.
func (tt *tripsTable) AddTrip(trip *types.Trip) (*types.Trip, error) {
	if trip == nil || trip.Name == "" {
		return nil, types.ErrInvalidData
	}

	now := time.Now().UTC().Truncate(time.Second)
	nowStr := now.Format(time.RFC3339)

	res, err := tt.backend.db.Exec(
		"INSERT INTO trips (name, start_date, end_date, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		trip.Name, nullableString(trip.StartDate), nullableString(trip.EndDate), nowStr, nowStr,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting trip: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading trip id: %w", err)
	}

	if err := tt.backend.persistAfterWrite(tripsTableName); err != nil {
		return nil, fmt.Errorf("persisting trips.jsonl: %w", err)
	}

	created := *trip
	created.ID = id
	created.CreatedAt = now
	created.UpdatedAt = now
	return &created, nil
}

// GetTrip retrieves a trip by id.
func (tt *tripsTable) GetTrip(tripID int64) (*types.Trip, error) {
	if tripID <= 0 {
		return nil, types.ErrInvalidID
	}

	row := tt.backend.db.QueryRow(
		"SELECT "+tripColumns+" FROM trips WHERE trip_id = ?",
		tripID,
	)
	trip, err := hydrateTrip(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting trip %d: %w", tripID, err)
	}
	return trip, nil
}

// ListTrips returns all trips in insertion order.
func (tt *tripsTable) ListTrips() ([]*types.Trip, error) {
	return scanTrips(tt.backend.db, "SELECT "+tripColumns+" FROM trips ORDER BY trip_id")
}

// DeleteTrip removes the trip and everything scoped to it: links and photos.
// Returns ErrNotFound if the trip does not exist.
func (tt *tripsTable) DeleteTrip(tripID int64) error {
	if tripID <= 0 {
		return types.ErrInvalidID
	}

	tx, err := tt.backend.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec("DELETE FROM trips WHERE trip_id = ?", tripID)
	if err != nil {
		return fmt.Errorf("deleting trip %d: %w", tripID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("counting deleted trips: %w", err)
	}
	if n == 0 {
		return types.ErrNotFound
	}

	if _, err := tx.Exec("DELETE FROM entity_links WHERE trip_id = ?", tripID); err != nil {
		return fmt.Errorf("deleting trip links: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM photos WHERE trip_id = ?", tripID); err != nil {
		return fmt.Errorf("deleting trip photos: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing trip deletion: %w", err)
	}

	for _, table := range []string{tripsTableName, linksTableName, photosTableName} {
		if err := tt.backend.persistAfterWrite(table); err != nil {
			return fmt.Errorf("persisting %s snapshot: %w", table, err)
		}
	}
	return nil
}

// hydrateTrip converts a single SQLite row into a *types.Trip.
func hydrateTrip(row *sql.Row) (*types.Trip, error) {
	var t types.Trip
	var startDate, endDate sql.NullString
	var createdAt, updatedAt string
	if err := row.Scan(&t.ID, &t.Name, &startDate, &endDate, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	t.StartDate = startDate.String
	t.EndDate = endDate.String
	var err error
	if t.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if t.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &t, nil
}

// scanTrips runs a query and hydrates every row.
func scanTrips(db *sql.DB, query string, args ...any) ([]*types.Trip, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying trips: %w", err)
	}
	defer rows.Close()

	trips := []*types.Trip{}
	for rows.Next() {
		var t types.Trip
		var startDate, endDate sql.NullString
		var createdAt, updatedAt string
		if err := rows.Scan(&t.ID, &t.Name, &startDate, &endDate, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("hydrating trip: %w", err)
		}
		t.StartDate = startDate.String
		t.EndDate = endDate.String
		if t.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		if t.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
			return nil, fmt.Errorf("parsing updated_at: %w", err)
		}
		trips = append(trips, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating trips: %w", err)
	}
	return trips, nil
}
