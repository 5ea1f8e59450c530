// Link delete commands: by id, by composite key, and entity-wide cleanup.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/atlasfolio/tripgraph/pkg/types"
)

var linkDeleteCmd = &cobra.Command{
	Use:   "delete [LINK_ID] --trip N [--from TYPE:ID --to TYPE:ID]",
	Short: "Delete a link by id or by its endpoints",
	Long: `With a LINK_ID argument, deletes that link and fails if it does not
exist. With --from and --to, deletes the edge between the two entities; a
missing edge is not an error.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		svc, err := newService(backend)
		if err != nil {
			return err
		}

		if len(args) == 1 {
			linkID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("%w: link id %q", types.ErrInvalidID, args[0])
			}
			if err := svc.DeleteLinkByID(flagLinkTrip, linkID); err != nil {
				return err
			}
			fmt.Printf("Deleted link %d\n", linkID)
			return nil
		}

		if flagLinkFrom == "" || flagLinkTo == "" {
			return fmt.Errorf("%w: pass a LINK_ID or both --from and --to", types.ErrInvalidData)
		}
		source, err := types.ParseEntityRef(flagLinkFrom)
		if err != nil {
			return err
		}
		target, err := types.ParseEntityRef(flagLinkTo)
		if err != nil {
			return err
		}
		if err := svc.DeleteLink(flagLinkTrip, source, target); err != nil {
			return err
		}
		fmt.Printf("Deleted link %s -> %s\n", source, target)
		return nil
	},
}

var linkClearCmd = &cobra.Command{
	Use:   "clear --trip N --entity TYPE:ID",
	Short: "Delete every link touching an entity",
	Long: `Removes all links where the entity appears as source or target.
Entity managers run this before deleting the entity itself, so no orphaned
edges are left behind.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entity, err := types.ParseEntityRef(flagClearEntity)
		if err != nil {
			return err
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

		n, err := svc.DeleteAllLinksForEntity(flagLinkTrip, entity)
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %d link(s) for %s\n", n, entity)
		return nil
	},
}

var flagClearEntity string

func init() {
	linkDeleteCmd.Flags().StringVar(&flagLinkFrom, "from", "", "source entity as TYPE:ID")
	linkDeleteCmd.Flags().StringVar(&flagLinkTo, "to", "", "target entity as TYPE:ID")

	linkClearCmd.Flags().StringVar(&flagClearEntity, "entity", "", "entity as TYPE:ID (required)")
	linkClearCmd.MarkFlagRequired("entity")
}
