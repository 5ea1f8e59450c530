// Link list command: directional and merged lookups.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atlasfolio/tripgraph/pkg/types"
)

var (
	flagListEntity     string
	flagListTargetType string
)

var linkListCmd = &cobra.Command{
	Use:   "list --trip N [--entity TYPE:ID] [--target-type TYPE]",
	Short: "List links for an entity or a whole trip",
	Long: `With --entity, lists the entity's links in both directions. With
--target-type alone, lists every link in the trip pointing at entities of
that type. With neither, lists all links in the trip.`,
	Args: cobra.NoArgs,
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

		if flagListEntity != "" {
			entity, err := types.ParseEntityRef(flagListEntity)
			if err != nil {
				return err
			}
			all, err := svc.GetAllLinksForEntity(flagLinkTrip, entity)
			if err != nil {
				return err
			}
			if flagJSON {
				return printJSON(all)
			}
			for _, l := range all.From {
				fmt.Println("out ", formatLink(l))
			}
			for _, l := range all.To {
				fmt.Println("in  ", formatLink(l))
			}
			return nil
		}

		var links []*types.EntityLink
		if flagListTargetType != "" {
			targetType, err := types.ParseEntityType(flagListTargetType)
			if err != nil {
				return err
			}
			links, err = svc.GetLinksByTargetType(flagLinkTrip, targetType)
			if err != nil {
				return err
			}
		} else {
			linkStore, err := backend.Links()
			if err != nil {
				return err
			}
			links, err = linkStore.LinksForTrip(flagLinkTrip)
			if err != nil {
				return err
			}
		}

		if flagJSON {
			return printJSON(links)
		}
		for _, l := range links {
			fmt.Println(formatLink(l))
		}
		return nil
	},
}

func init() {
	linkListCmd.Flags().StringVar(&flagListEntity, "entity", "", "entity as TYPE:ID")
	linkListCmd.Flags().StringVar(&flagListTargetType, "target-type", "", "filter by target entity type")
}
