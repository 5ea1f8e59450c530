// JSONL loading for startup.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
)

// jsonlTableMapping maps JSONL filenames to their SQLite tables and column
// lists. Trips load first so the link and photo rows land in a populated
// scope, though nothing enforces it at the schema level.
var jsonlTableMapping = []struct {
	file    string
	table   string
	columns []string
}{
	{"trips.jsonl", "trips", []string{"trip_id", "name", "start_date", "end_date", "created_at", "updated_at"}},
	{"photos.jsonl", "photos", []string{"photo_id", "trip_id", "file_name", "caption", "taken_at", "created_at", "updated_at"}},
	{"entity_links.jsonl", "entity_links", []string{"link_id", "trip_id", "source_type", "source_id", "target_type", "target_id", "relationship", "notes", "created_at", "updated_at"}},
}

// loadAllJSONL reads each JSONL file from dataDir and inserts records into
// the corresponding SQLite tables. Loading is transactional: all succeed or
// the database remains empty. Malformed lines and rows violating constraints
// are skipped; unknown fields in records are silently ignored, so snapshots
// written by newer versions still load.
func loadAllJSONL(db *sql.DB, dataDir string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	for _, mapping := range jsonlTableMapping {
		path := filepath.Join(dataDir, mapping.file)
		records, err := readJSONL(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", mapping.file, err)
		}

		if len(records) == 0 {
			continue
		}

		if err := insertRecords(tx, mapping.table, mapping.columns, records); err != nil {
			return fmt.Errorf("loading %s into %s: %w", mapping.file, mapping.table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing load transaction: %w", err)
	}

	return nil
}

// insertRecords inserts parsed JSONL records into a SQLite table. Only the
// listed columns are extracted; extra fields do not cause errors.
func insertRecords(tx *sql.Tx, table string, columns []string, records []json.RawMessage) error {
	placeholders := make([]string, len(columns))
	for i := range placeholders {
		placeholders[i] = "?"
	}
	insertSQL := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		table,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
	)

	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		return fmt.Errorf("preparing insert for %s: %w", table, err)
	}
	defer stmt.Close()

	for _, rec := range records {
		var obj map[string]any
		if err := json.Unmarshal(rec, &obj); err != nil {
			// Skip malformed records.
			continue
		}

		args := make([]any, len(columns))
		for i, col := range columns {
			val, ok := obj[col]
			if !ok {
				args[i] = nil
				continue
			}
			switch v := val.(type) {
			case float64:
				// JSON numbers arrive as float64; the id and trip columns
				// are integers.
				args[i] = int64(v)
			case map[string]any, []any:
				b, err := json.Marshal(v)
				if err != nil {
					args[i] = nil
					continue
				}
				args[i] = string(b)
			default:
				args[i] = val
			}
		}

		if _, err := stmt.Exec(args...); err != nil {
			// Skip records that violate constraints, duplicate edges included.
			continue
		}
	}

	return nil
}
