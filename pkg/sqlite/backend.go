// Package sqlite provides the public API for the SQLite tripgraph backend.
// It exposes the factory function while keeping implementation details
// internal.
package sqlite

import (
	"github.com/rs/zerolog"

	"github.com/atlasfolio/tripgraph/internal/sqlite"
	"github.com/atlasfolio/tripgraph/pkg/types"
)

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	backend := sqlite.NewBackend(log)
//	err := backend.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".tripgraph",
//	})
//	defer backend.Detach()
func NewBackend(log zerolog.Logger) types.Store {
	return sqlite.NewBackend(log)
}
