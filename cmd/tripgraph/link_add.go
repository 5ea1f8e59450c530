// Link add command: create a single edge.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atlasfolio/tripgraph/pkg/types"
)

var linkAddCmd = &cobra.Command{
	Use:   "add --trip N --from TYPE:ID --to TYPE:ID",
	Short: "Create a link between two entities",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := types.ParseEntityRef(flagLinkFrom)
		if err != nil {
			return err
		}
		target, err := types.ParseEntityRef(flagLinkTo)
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

		link, err := svc.CreateLink(flagLinkTrip, source, target, flagLinkRel, flagLinkNotes)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(link)
		}
		fmt.Println("Created", formatLink(link))
		return nil
	},
}

func init() {
	linkAddCmd.Flags().StringVar(&flagLinkFrom, "from", "", "source entity as TYPE:ID (required)")
	linkAddCmd.Flags().StringVar(&flagLinkTo, "to", "", "target entity as TYPE:ID (required)")
	linkAddCmd.Flags().StringVar(&flagLinkRel, "rel", "", "relationship label (default RELATED)")
	linkAddCmd.Flags().StringVar(&flagLinkNotes, "notes", "", "free-text notes")
	linkAddCmd.MarkFlagRequired("from")
	linkAddCmd.MarkFlagRequired("to")
}
