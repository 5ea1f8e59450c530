// Root command for the tripgraph CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/atlasfolio/tripgraph/internal/paths"
	"github.com/atlasfolio/tripgraph/pkg/tripgraph"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

// configSyncStrategy holds the sqlite.sync_strategy value from config.yaml.
var configSyncStrategy string

var rootCmd = &cobra.Command{
	Use:     "tripgraph",
	Short:   "Tripgraph manages the entity link graph of a travel itinerary",
	Version: tripgraph.Version,
	Long: `Tripgraph stores trips, photos, and the links that connect trip
entities (locations, activities, lodging, transportation, photos, albums,
journal entries) to one another. Links are kept in SQLite for querying and
in JSONL files as the git-friendly source of truth.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configSyncStrategy = cfg.GetString(cfgKeySyncStrategy)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.tripgraph-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(tripCmd)
	rootCmd.AddCommand(photoCmd)
	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(summaryCmd)
}

// resolveDataDir returns the data directory path following the precedence:
// --data-dir flag > config.yaml data_dir > TRIPGRAPH_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > TRIPGRAPH_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
