// Init command: create the config and data directories.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the tripgraph config and data directories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Attaching creates the data directory, the schema, and empty JSONL
		// files; config.yaml was created by PersistentPreRunE.
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		dataDir, err := resolveDataDir()
		if err != nil {
			return err
		}
		fmt.Println("Initialized tripgraph data directory:", dataDir)
		return nil
	},
}
