// JSONL read/write helpers with atomic persistence. Each table snapshots to
// one JSONL file in the data directory; a write replaces the whole file via
// the temp-file, fsync, rename pattern.
package sqlite

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// jsonlFiles maps table names to their JSONL snapshot files.
var jsonlFiles = map[string]string{
	tripsTableName:  "trips.jsonl",
	photosTableName: "photos.jsonl",
	linksTableName:  "entity_links.jsonl",
}

// readJSONL reads a JSONL file and returns each non-empty, parseable line as
// a json.RawMessage. Malformed lines are skipped.
func readJSONL(path string) ([]json.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var records []json.RawMessage
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if !json.Valid(line) {
			continue
		}
		cp := make([]byte, len(line))
		copy(cp, line)
		records = append(records, json.RawMessage(cp))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return records, nil
}

// writeJSONL atomically writes records to a JSONL file using the temp-file,
// fsync, rename pattern.
func writeJSONL(path string, records []json.RawMessage) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	for _, rec := range records {
		if _, err := w.Write(rec); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing record: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing newline: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// initJSONLFiles creates empty JSONL files for any that are missing, so a
// fresh data directory is immediately usable and git-trackable.
func (b *Backend) initJSONLFiles(dataDir string) error {
	for _, file := range jsonlFiles {
		path := filepath.Join(dataDir, file)
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("stat %s: %w", file, err)
		}
		if err := writeJSONL(path, nil); err != nil {
			return fmt.Errorf("init %s: %w", file, err)
		}
	}
	return nil
}

// persistTableJSONL snapshots one table from SQLite to its JSONL file.
func persistTableJSONL(b *Backend, tableName string) error {
	file, ok := jsonlFiles[tableName]
	if !ok {
		return fmt.Errorf("no JSONL file for table %q", tableName)
	}

	records, err := dumpTable(b, tableName)
	if err != nil {
		return fmt.Errorf("dumping %s: %w", tableName, err)
	}

	path := filepath.Join(b.config.DataDir, file)
	if err := writeJSONL(path, records); err != nil {
		return fmt.Errorf("persisting %s: %w", file, err)
	}
	return nil
}

// dumpTable marshals every row of a table into JSONL records using the
// table's hydrate helper, so snapshot and query shapes never diverge.
func dumpTable(b *Backend, tableName string) ([]json.RawMessage, error) {
	var entities []any

	switch tableName {
	case linksTableName:
		links, err := scanLinks(b.db, "SELECT "+linkColumns+" FROM entity_links ORDER BY link_id")
		if err != nil {
			return nil, err
		}
		for _, l := range links {
			entities = append(entities, l)
		}
	case photosTableName:
		photos, err := scanPhotos(b.db, "SELECT "+photoColumns+" FROM photos ORDER BY photo_id")
		if err != nil {
			return nil, err
		}
		for _, p := range photos {
			entities = append(entities, p)
		}
	case tripsTableName:
		trips, err := scanTrips(b.db, "SELECT "+tripColumns+" FROM trips ORDER BY trip_id")
		if err != nil {
			return nil, err
		}
		for _, t := range trips {
			entities = append(entities, t)
		}
	default:
		return nil, fmt.Errorf("unknown table %q", tableName)
	}

	records := make([]json.RawMessage, 0, len(entities))
	for _, e := range entities {
		rec, err := json.Marshal(e)
		if err != nil {
			return nil, fmt.Errorf("marshaling record: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}
