// Photo commands: add, list.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atlasfolio/tripgraph/pkg/types"
)

var (
	flagPhotoTrip    int64
	flagPhotoCaption string
	flagPhotoTaken   string
)

var photoCmd = &cobra.Command{
	Use:   "photo",
	Short: "Manage photo records",
}

var photoAddCmd = &cobra.Command{
	Use:   "add FILE_NAME",
	Short: "Register a photo for a trip",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		photos, err := backend.Photos()
		if err != nil {
			return err
		}

		photo, err := photos.AddPhoto(&types.Photo{
			TripID:   flagPhotoTrip,
			FileName: args[0],
			Caption:  flagPhotoCaption,
			TakenAt:  flagPhotoTaken,
		})
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(photo)
		}
		fmt.Printf("Added photo %d: %s\n", photo.ID, photo.FileName)
		return nil
	},
}

var photoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List photos in a trip",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		photos, err := backend.Photos()
		if err != nil {
			return err
		}

		all, err := photos.ListPhotos(flagPhotoTrip)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(all)
		}
		for _, p := range all {
			fmt.Printf("%d  %s", p.ID, p.FileName)
			if p.Caption != "" {
				fmt.Printf("  %q", p.Caption)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	photoCmd.PersistentFlags().Int64Var(&flagPhotoTrip, "trip", 0, "trip id (required)")
	photoCmd.MarkPersistentFlagRequired("trip")
	photoAddCmd.Flags().StringVar(&flagPhotoCaption, "caption", "", "photo caption")
	photoAddCmd.Flags().StringVar(&flagPhotoTaken, "taken", "", "when the photo was taken (RFC 3339)")

	photoCmd.AddCommand(photoAddCmd)
	photoCmd.AddCommand(photoListCmd)
}
