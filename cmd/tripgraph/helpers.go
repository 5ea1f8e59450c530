// Shared helpers for tripgraph CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/atlasfolio/tripgraph/internal/sqlite"
	"github.com/atlasfolio/tripgraph/pkg/linkgraph"
	"github.com/atlasfolio/tripgraph/pkg/types"
)

// cliLogger returns the logger used by the backend and service. Warnings and
// errors go to stderr; the command's own output stays on stdout.
func cliLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.WarnLevel).With().Timestamp().Logger()
}

// attachBackend resolves the data directory, creates a SQLite backend, and
// attaches it. The caller must defer backend.Detach().
func attachBackend() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
		SQLite: types.SQLiteConfig{
			SyncStrategy: configSyncStrategy,
		},
	}

	backend := sqlite.NewBackend(cliLogger())
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}

	return backend, nil
}

// newService builds the link graph service over an attached backend.
func newService(backend *sqlite.Backend) (*linkgraph.Service, error) {
	links, err := backend.Links()
	if err != nil {
		return nil, err
	}
	photos, err := backend.Photos()
	if err != nil {
		return nil, err
	}
	return linkgraph.NewService(links, photos, cliLogger()), nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// formatLink renders one link for human output.
func formatLink(l *types.EntityLink) string {
	s := fmt.Sprintf("#%d  %s -> %s  [%s]", l.ID, l.Source(), l.Target(), l.Relationship)
	if l.Notes != "" {
		s += "  " + l.Notes
	}
	return s
}
