// Backend lifecycle: attach, detach, JSONL sync strategies.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/atlasfolio/tripgraph/pkg/types"
)

// Backend implements the Store interface using SQLite as the query engine
// and JSONL files as the source of truth.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	log      zerolog.Logger

	links  *linksTable
	photos *photosTable
	trips  *tripsTable

	// JSONL sync strategy state.
	syncStrategy  string
	batchSize     int
	batchInterval time.Duration
	pendingWrites []pendingWrite
	batchTimer    *time.Timer
	batchMu       sync.Mutex // protects pendingWrites and batchTimer
}

// pendingWrite is a deferred JSONL snapshot write, used by the on_close and
// batch sync strategies.
type pendingWrite struct {
	tableName string
	persist   func() error
}

// NewBackend creates a new SQLite backend instance. The backend is not
// attached; call Attach with a Config to initialize.
func NewBackend(log zerolog.Logger) *Backend {
	return &Backend{log: log}
}

// Links returns the link table accessor.
// Returns ErrStoreDetached if the backend is not attached.
func (b *Backend) Links() (types.LinkStore, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	return b.links, nil
}

// Photos returns the photo table accessor.
func (b *Backend) Photos() (types.PhotoStore, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	return b.photos, nil
}

// Trips returns the trip table accessor.
func (b *Backend) Trips() (types.TripStore, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	return b.trips, nil
}

// Attach initializes the backend with the given configuration. Creates
// DataDir if it does not exist, rebuilds the SQLite schema, and loads the
// JSONL files. Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	// The SQLite file is disposable; JSONL is the source of truth. Rebuild
	// from scratch so schema changes never need migrations.
	dbPath := filepath.Join(dataDir, "tripgraph.db")
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("creating indexes: %w", err)
		}
	}

	b.db = db
	b.config = config

	b.syncStrategy = config.SQLite.GetSyncStrategy()
	b.batchSize = config.SQLite.GetBatchSize()
	b.batchInterval = time.Duration(config.SQLite.GetBatchInterval()) * time.Second
	b.pendingWrites = nil

	if err := b.initJSONLFiles(dataDir); err != nil {
		db.Close()
		return err
	}

	if err := loadAllJSONL(db, dataDir); err != nil {
		db.Close()
		return fmt.Errorf("load JSONL: %w", err)
	}

	b.attached = true

	b.links = &linksTable{backend: b}
	b.photos = &photosTable{backend: b}
	b.trips = &tripsTable{backend: b}

	if b.syncStrategy == types.SyncBatch && b.batchInterval > 0 {
		b.startBatchTimer()
	}

	b.log.Debug().Str("data_dir", dataDir).Str("sync", b.syncStrategy).Msg("backend attached")

	return nil
}

// Detach releases all resources held by the backend. For on_close and batch
// sync strategies, flushes all pending JSONL writes before closing.
// Idempotent; after Detach all accessors return ErrStoreDetached.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil // idempotent
	}

	b.stopBatchTimer()

	if err := b.flushPendingWritesLocked(); err != nil {
		return fmt.Errorf("flush pending writes: %w", err)
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}

	b.attached = false
	b.links = nil
	b.photos = nil
	b.trips = nil

	return nil
}

// persistAfterWrite persists a table's JSONL snapshot according to the sync
// strategy: immediately, or queued for a later flush.
func (b *Backend) persistAfterWrite(tableName string) error {
	if b.syncStrategy == types.SyncImmediate || b.syncStrategy == "" {
		return persistTableJSONL(b, tableName)
	}
	b.queueWrite(tableName, func() error {
		return persistTableJSONL(b, tableName)
	})
	return nil
}

// queueWrite adds a deferred JSONL write. For the batch strategy the queue
// flushes synchronously once it reaches the configured size.
func (b *Backend) queueWrite(tableName string, persist func() error) {
	b.batchMu.Lock()
	defer b.batchMu.Unlock()

	b.pendingWrites = append(b.pendingWrites, pendingWrite{
		tableName: tableName,
		persist:   persist,
	})

	if b.syncStrategy == types.SyncBatch && b.batchSize > 0 && len(b.pendingWrites) >= b.batchSize {
		if err := b.flushPendingWritesBatchLocked(); err != nil {
			b.log.Warn().Err(err).Msg("batch flush failed")
		}
	}
}

// flushPendingWritesLocked flushes all pending writes to JSONL files.
// The caller must hold b.mu.
func (b *Backend) flushPendingWritesLocked() error {
	b.batchMu.Lock()
	defer b.batchMu.Unlock()
	return b.flushPendingWritesBatchLocked()
}

// flushPendingWritesBatchLocked executes all pending writes. Each table is
// flushed once, since every write snapshots the whole table.
// The caller must hold b.batchMu.
func (b *Backend) flushPendingWritesBatchLocked() error {
	if len(b.pendingWrites) == 0 {
		return nil
	}

	flushed := make(map[string]bool)
	for _, pw := range b.pendingWrites {
		if flushed[pw.tableName] {
			continue
		}
		if err := pw.persist(); err != nil {
			return fmt.Errorf("flush %s: %w", pw.tableName, err)
		}
		flushed[pw.tableName] = true
	}

	b.pendingWrites = nil
	return nil
}

// startBatchTimer starts the batch interval timer for periodic flushes.
func (b *Backend) startBatchTimer() {
	b.batchMu.Lock()
	defer b.batchMu.Unlock()

	if b.batchTimer != nil {
		return // already running
	}

	b.batchTimer = time.AfterFunc(b.batchInterval, func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		if !b.attached {
			return
		}

		if err := b.flushPendingWritesLocked(); err != nil {
			b.log.Warn().Err(err).Msg("interval flush failed")
		}

		b.batchMu.Lock()
		if b.batchTimer != nil && b.attached {
			b.batchTimer.Reset(b.batchInterval)
		}
		b.batchMu.Unlock()
	})
}

// stopBatchTimer stops the batch interval timer if running.
func (b *Backend) stopBatchTimer() {
	b.batchMu.Lock()
	defer b.batchMu.Unlock()

	if b.batchTimer != nil {
		b.batchTimer.Stop()
		b.batchTimer = nil
	}
}
