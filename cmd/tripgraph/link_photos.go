// Link photos command: attach many photos to one target, chunked.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/atlasfolio/tripgraph/pkg/types"
)

var (
	flagPhotosTo    string
	flagPhotosRel   string
	flagPhotosChunk int
)

var linkPhotosCmd = &cobra.Command{
	Use:   "photos --trip N --to TYPE:ID PHOTO_ID [PHOTO_ID...]",
	Short: "Link many photos to one entity",
	Long: `Links the given photo ids to the target entity. Large batches are
processed in chunks (default 250) to stay under timeout ceilings; each chunk
reports its own accounting, photos that are already linked count as
successful, and one failing photo never aborts the rest.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := types.ParseEntityRef(flagPhotosTo)
		if err != nil {
			return err
		}

		photoIDs := make([]int64, 0, len(args))
		for _, arg := range args {
			for _, field := range strings.Split(arg, ",") {
				if field == "" {
					continue
				}
				id, err := strconv.ParseInt(field, 10, 64)
				if err != nil {
					return fmt.Errorf("%w: photo id %q", types.ErrInvalidID, field)
				}
				photoIDs = append(photoIDs, id)
			}
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

		chunk := flagPhotosChunk
		if chunk <= 0 {
			chunk = 250
		}

		total := &types.PhotoLinkResult{}
		for start := 0; start < len(photoIDs); start += chunk {
			end := min(start+chunk, len(photoIDs))
			result, err := svc.ImportPhotoLinks(flagLinkTrip, photoIDs[start:end], target, flagPhotosRel)
			if err != nil {
				return err
			}
			total.OperationID = result.OperationID
			total.Successful += result.Successful
			total.Failed += result.Failed
			total.Created += result.Created
			total.Errors = append(total.Errors, result.Errors...)
			total.PhotoIDs = append(total.PhotoIDs, result.PhotoIDs...)
		}

		if flagJSON {
			return printJSON(total)
		}
		fmt.Printf("Linked %d of %d photo(s) to %s (%d new, %d failed)\n",
			total.Successful, len(photoIDs), target, total.Created, total.Failed)
		for _, msg := range total.Errors {
			fmt.Println("  failed:", msg)
		}
		return nil
	},
}

func init() {
	linkPhotosCmd.Flags().StringVar(&flagPhotosTo, "to", "", "target entity as TYPE:ID (required)")
	linkPhotosCmd.Flags().StringVar(&flagPhotosRel, "rel", "", "relationship label (default TAKEN_AT)")
	linkPhotosCmd.Flags().IntVar(&flagPhotosChunk, "chunk", 250, "photos per chunk")
	linkPhotosCmd.MarkFlagRequired("to")
}
