// Link command group and shared flags.
package main

import (
	"github.com/spf13/cobra"
)

// Flags shared by link subcommands.
var (
	flagLinkTrip  int64
	flagLinkFrom  string
	flagLinkTo    string
	flagLinkRel   string
	flagLinkNotes string
)

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Manage entity links",
	Long: `Manage the directed links connecting trip entities. Endpoints are
written as TYPE:ID, e.g. PHOTO:2 or LOCATION:1. Valid types: LOCATION,
ACTIVITY, LODGING, TRANSPORTATION, PHOTO, PHOTO_ALBUM, JOURNAL_ENTRY.`,
}

func init() {
	linkCmd.PersistentFlags().Int64Var(&flagLinkTrip, "trip", 0, "trip id (required)")
	linkCmd.MarkPersistentFlagRequired("trip")

	linkCmd.AddCommand(linkAddCmd)
	linkCmd.AddCommand(linkListCmd)
	linkCmd.AddCommand(linkUpdateCmd)
	linkCmd.AddCommand(linkDeleteCmd)
	linkCmd.AddCommand(linkClearCmd)
	linkCmd.AddCommand(linkBulkCmd)
	linkCmd.AddCommand(linkPhotosCmd)
}
