// Version command for the tripgraph CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atlasfolio/tripgraph/pkg/tripgraph"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the tripgraph version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("tripgraph", tripgraph.Version)
	},
}
