package types

import (
	"errors"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	valid := Config{Backend: BackendSQLite, DataDir: "/tmp/data"}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	if err := (Config{}).Validate(); !errors.Is(err, ErrBackendEmpty) {
		t.Errorf("expected ErrBackendEmpty, got %v", err)
	}

	if err := (Config{Backend: "postgres"}).Validate(); !errors.Is(err, ErrBackendUnknown) {
		t.Errorf("expected ErrBackendUnknown, got %v", err)
	}

	bad := Config{Backend: BackendSQLite, SQLite: SQLiteConfig{SyncStrategy: "eventually"}}
	if err := bad.Validate(); !errors.Is(err, ErrSyncStrategyUnknown) {
		t.Errorf("expected ErrSyncStrategyUnknown, got %v", err)
	}

	for _, strategy := range []string{"", SyncImmediate, SyncOnClose, SyncBatch} {
		c := Config{Backend: BackendSQLite, SQLite: SQLiteConfig{SyncStrategy: strategy}}
		if err := c.Validate(); err != nil {
			t.Errorf("strategy %q rejected: %v", strategy, err)
		}
	}
}

func TestSQLiteConfig_Defaults(t *testing.T) {
	var c SQLiteConfig
	if got := c.GetSyncStrategy(); got != SyncImmediate {
		t.Errorf("GetSyncStrategy() = %q, want immediate", got)
	}
	if got := c.GetBatchSize(); got != 50 {
		t.Errorf("GetBatchSize() = %d, want 50", got)
	}
	if got := c.GetBatchInterval(); got != 5 {
		t.Errorf("GetBatchInterval() = %d, want 5", got)
	}

	c = SQLiteConfig{SyncStrategy: SyncBatch, BatchSize: 200, BatchInterval: 30}
	if c.GetSyncStrategy() != SyncBatch || c.GetBatchSize() != 200 || c.GetBatchInterval() != 30 {
		t.Errorf("explicit values not returned: %+v", c)
	}
}
