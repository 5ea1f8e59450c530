package types

import "errors"

// Config holds backend selection and parameters for Store.Attach.
type Config struct {
	Backend string       `json:"backend" yaml:"backend"`
	DataDir string       `json:"data_dir" yaml:"data_dir"`
	SQLite  SQLiteConfig `json:"sqlite" yaml:"sqlite"`
}

// Supported backend names.
const (
	BackendSQLite = "sqlite"
)

// JSONL sync strategies. SQLite is the query engine; JSONL files in DataDir
// are the source of truth. The strategy controls when mutations are written
// back to JSONL.
const (
	SyncImmediate = "immediate" // persist after every write (default)
	SyncOnClose   = "on_close"  // persist once on Detach
	SyncBatch     = "batch"     // persist every BatchSize writes or BatchInterval seconds
)

// SQLiteConfig holds backend tuning parameters.
type SQLiteConfig struct {
	SyncStrategy  string `json:"sync_strategy" yaml:"sync_strategy"`
	BatchSize     int    `json:"batch_size" yaml:"batch_size"`
	BatchInterval int    `json:"batch_interval" yaml:"batch_interval"` // seconds
}

// GetSyncStrategy returns the configured strategy, defaulting to immediate.
func (c SQLiteConfig) GetSyncStrategy() string {
	if c.SyncStrategy == "" {
		return SyncImmediate
	}
	return c.SyncStrategy
}

// GetBatchSize returns the configured batch size, defaulting to 50.
func (c SQLiteConfig) GetBatchSize() int {
	if c.BatchSize <= 0 {
		return 50
	}
	return c.BatchSize
}

// GetBatchInterval returns the configured flush interval in seconds,
// defaulting to 5.
func (c SQLiteConfig) GetBatchInterval() int {
	if c.BatchInterval <= 0 {
		return 5
	}
	return c.BatchInterval
}

// Config validation errors.
var (
	ErrBackendEmpty        = errors.New("backend must not be empty")
	ErrBackendUnknown      = errors.New("unknown backend")
	ErrSyncStrategyUnknown = errors.New("unknown sync strategy")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSQLite: true,
}

// knownSyncStrategies lists the sync strategies that Validate accepts.
var knownSyncStrategies = map[string]bool{
	"":            true, // defaults to immediate
	SyncImmediate: true,
	SyncOnClose:   true,
	SyncBatch:     true,
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if !knownSyncStrategies[c.SQLite.SyncStrategy] {
		return ErrSyncStrategyUnknown
	}
	return nil
}
