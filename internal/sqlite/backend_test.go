// Tests for the SQLite backend lifecycle.
package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/atlasfolio/tripgraph/pkg/types"
)

// testBackend attaches a backend on a temp dir and registers cleanup.
func testBackend(t *testing.T) *Backend {
	t.Helper()
	b := NewBackend(zerolog.Nop())
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}
	if err := b.Attach(config); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	t.Cleanup(func() { b.Detach() })
	return b
}

func TestBackend_Attach(t *testing.T) {
	tmpDir := t.TempDir()

	b := NewBackend(zerolog.Nop())
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: tmpDir,
	}

	err := b.Attach(config)
	if err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	defer b.Detach()

	// Verify database file created
	dbPath := filepath.Join(tmpDir, "tripgraph.db")
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("tripgraph.db not created")
	}

	// Verify empty JSONL files created
	for _, file := range []string{"trips.jsonl", "photos.jsonl", "entity_links.jsonl"} {
		if _, err := os.Stat(filepath.Join(tmpDir, file)); os.IsNotExist(err) {
			t.Errorf("%s not created", file)
		}
	}

	// Verify double attach fails
	err = b.Attach(config)
	if err != types.ErrAlreadyAttached {
		t.Errorf("expected ErrAlreadyAttached, got %v", err)
	}
}

func TestBackend_AttachInvalidConfig(t *testing.T) {
	b := NewBackend(zerolog.Nop())

	if err := b.Attach(types.Config{}); err != types.ErrBackendEmpty {
		t.Errorf("expected ErrBackendEmpty, got %v", err)
	}

	err := b.Attach(types.Config{Backend: "postgres", DataDir: t.TempDir()})
	if err != types.ErrBackendUnknown {
		t.Errorf("expected ErrBackendUnknown, got %v", err)
	}

	err = b.Attach(types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
		SQLite:  types.SQLiteConfig{SyncStrategy: "eventually"},
	})
	if err != types.ErrSyncStrategyUnknown {
		t.Errorf("expected ErrSyncStrategyUnknown, got %v", err)
	}
}

func TestBackend_Detach(t *testing.T) {
	b := NewBackend(zerolog.Nop())
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}
	if err := b.Attach(config); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}

	if err := b.Detach(); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}

	// Verify idempotent
	if err := b.Detach(); err != nil {
		t.Errorf("second Detach should not error, got %v", err)
	}

	// Verify accessors fail after detach
	if _, err := b.Links(); err != types.ErrStoreDetached {
		t.Errorf("expected ErrStoreDetached from Links, got %v", err)
	}
	if _, err := b.Photos(); err != types.ErrStoreDetached {
		t.Errorf("expected ErrStoreDetached from Photos, got %v", err)
	}
	if _, err := b.Trips(); err != types.ErrStoreDetached {
		t.Errorf("expected ErrStoreDetached from Trips, got %v", err)
	}
}

func TestBackend_Accessors(t *testing.T) {
	b := testBackend(t)

	if links, err := b.Links(); err != nil || links == nil {
		t.Errorf("Links() = (%v, %v)", links, err)
	}
	if photos, err := b.Photos(); err != nil || photos == nil {
		t.Errorf("Photos() = (%v, %v)", photos, err)
	}
	if trips, err := b.Trips(); err != nil || trips == nil {
		t.Errorf("Trips() = (%v, %v)", trips, err)
	}
}

func TestBackend_SyncOnClose(t *testing.T) {
	tmpDir := t.TempDir()

	b := NewBackend(zerolog.Nop())
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: tmpDir,
		SQLite:  types.SQLiteConfig{SyncStrategy: types.SyncOnClose},
	}
	if err := b.Attach(config); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}

	links, err := b.Links()
	if err != nil {
		t.Fatalf("Links failed: %v", err)
	}
	_, err = links.CreateLink(1,
		types.EntityRef{Type: types.EntityTypePhoto, ID: 2},
		types.EntityRef{Type: types.EntityTypeLocation, ID: 1},
		types.RelationshipTakenAt, "")
	if err != nil {
		t.Fatalf("CreateLink failed: %v", err)
	}

	// on_close defers the JSONL write until Detach.
	records, err := readJSONL(filepath.Join(tmpDir, "entity_links.jsonl"))
	if err != nil {
		t.Fatalf("readJSONL failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected 0 records before Detach, got %d", len(records))
	}

	if err := b.Detach(); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}

	records, err = readJSONL(filepath.Join(tmpDir, "entity_links.jsonl"))
	if err != nil {
		t.Fatalf("readJSONL failed: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected 1 record after Detach, got %d", len(records))
	}
}

func TestBackend_SyncBatchFlushesAtSize(t *testing.T) {
	tmpDir := t.TempDir()

	b := NewBackend(zerolog.Nop())
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: tmpDir,
		SQLite: types.SQLiteConfig{
			SyncStrategy:  types.SyncBatch,
			BatchSize:     2,
			BatchInterval: 3600, // effectively never; size triggers the flush
		},
	}
	if err := b.Attach(config); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	defer b.Detach()

	links, err := b.Links()
	if err != nil {
		t.Fatalf("Links failed: %v", err)
	}

	photo := types.EntityRef{Type: types.EntityTypePhoto, ID: 1}
	for i := int64(1); i <= 2; i++ {
		_, err := links.CreateLink(1, photo,
			types.EntityRef{Type: types.EntityTypeLocation, ID: i}, "", "")
		if err != nil {
			t.Fatalf("CreateLink %d failed: %v", i, err)
		}
	}

	records, err := readJSONL(filepath.Join(tmpDir, "entity_links.jsonl"))
	if err != nil {
		t.Fatalf("readJSONL failed: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("expected 2 records after batch flush, got %d", len(records))
	}
}
