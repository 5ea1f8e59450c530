// Link bulk command: one source, many targets.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atlasfolio/tripgraph/pkg/types"
)

var linkBulkCmd = &cobra.Command{
	Use:   "bulk --trip N --from TYPE:ID TARGET [TARGET...]",
	Short: "Link one source to many targets",
	Long: `Creates links from one source entity to every TARGET (TYPE:ID).
Targets are attempted independently: duplicates are skipped and the created
count reflects only new links.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := types.ParseEntityRef(flagBulkFrom)
		if err != nil {
			return err
		}

		targets := make([]types.EntityRef, 0, len(args))
		for _, arg := range args {
			target, err := types.ParseEntityRef(arg)
			if err != nil {
				return err
			}
			targets = append(targets, target)
		}

		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		svc, err := newService(backend)
		if err != nil {
			return err
		}

		result, err := svc.BulkCreateLinks(flagLinkTrip, source, targets, flagBulkRel)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(result)
		}
		fmt.Printf("Created %d of %d link(s) from %s (op %s)\n",
			result.Created, len(targets), source, result.OperationID)
		return nil
	},
}

var (
	flagBulkFrom string
	flagBulkRel  string
)

func init() {
	linkBulkCmd.Flags().StringVar(&flagBulkFrom, "from", "", "source entity as TYPE:ID (required)")
	linkBulkCmd.Flags().StringVar(&flagBulkRel, "rel", "", "relationship label (default RELATED)")
	linkBulkCmd.MarkFlagRequired("from")
}
