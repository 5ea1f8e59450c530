// Link update command: change relationship or notes of an existing link.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/atlasfolio/tripgraph/pkg/types"
)

var linkUpdateCmd = &cobra.Command{
	Use:   "update LINK_ID --trip N [--rel LABEL] [--notes TEXT]",
	Short: "Update a link's relationship or notes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		linkID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: link id %q", types.ErrInvalidID, args[0])
		}

		var update types.LinkUpdate
		if cmd.Flags().Changed("rel") {
			update.Relationship = &flagLinkRel
		}
		if cmd.Flags().Changed("notes") {
			update.Notes = &flagLinkNotes
		}
		if update.Relationship == nil && update.Notes == nil {
			return fmt.Errorf("%w: nothing to update, pass --rel or --notes", types.ErrInvalidData)
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

		link, err := svc.UpdateLink(flagLinkTrip, linkID, update)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(link)
		}
		fmt.Println("Updated", formatLink(link))
		return nil
	},
}

func init() {
	linkUpdateCmd.Flags().StringVar(&flagLinkRel, "rel", "", "new relationship label")
	linkUpdateCmd.Flags().StringVar(&flagLinkNotes, "notes", "", "new notes")
}
