// Package sqlite implements the SQLite storage backend for tripgraph.
// SQLite serves as the query engine; JSONL files in the data directory are
// the source of truth and are reloaded on every Attach.
package sqlite

// Schema DDL. Entity link endpoints are plain (type, id) column pairs, not
// foreign keys: the referenced table varies by type tag, and referential
// existence is validated by the owning entity's manager, not the store.
const (
	createTrips = `CREATE TABLE trips (
    trip_id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    start_date TEXT,
    end_date TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createPhotos = `CREATE TABLE photos (
    photo_id INTEGER PRIMARY KEY AUTOINCREMENT,
    trip_id INTEGER NOT NULL,
    file_name TEXT NOT NULL,
    caption TEXT,
    taken_at TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createEntityLinks = `CREATE TABLE entity_links (
    link_id INTEGER PRIMARY KEY AUTOINCREMENT,
    trip_id INTEGER NOT NULL,
    source_type TEXT NOT NULL,
    source_id INTEGER NOT NULL,
    target_type TEXT NOT NULL,
    target_id INTEGER NOT NULL,
    relationship TEXT NOT NULL,
    notes TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`
)

// Index DDL. The unique index is the duplicate-edge guard under concurrent
// writers; the two lookup indexes keep directional queries non-scanning.
const (
	idxEntityLinksUnique = `CREATE UNIQUE INDEX idx_entity_links_unique
    ON entity_links(trip_id, source_type, source_id, target_type, target_id);`
	idxEntityLinksSource = `CREATE INDEX idx_entity_links_source
    ON entity_links(trip_id, source_type, source_id);`
	idxEntityLinksTarget = `CREATE INDEX idx_entity_links_target
    ON entity_links(trip_id, target_type, target_id);`
	idxPhotosTrip = `CREATE INDEX idx_photos_trip ON photos(trip_id);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createTrips,
	createPhotos,
	createEntityLinks,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxEntityLinksUnique,
	idxEntityLinksSource,
	idxEntityLinksTarget,
	idxPhotosTrip,
}
