// Summary command: per-entity link counts for a whole trip.
package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var flagSummaryTrip int64

var summaryCmd = &cobra.Command{
	Use:   "summary --trip N",
	Short: "Show link counts for every entity in a trip",
	Args:  cobra.NoArgs,
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

		summary, err := svc.GetTripLinkSummary(flagSummaryTrip)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(summary)
		}

		keys := make([]string, 0, len(summary))
		for key := range summary {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			es := summary[key]
			fmt.Printf("%s  total=%d", key, es.TotalLinks)
			counts := make([]string, 0, len(es.LinkCounts))
			for otherType, n := range es.LinkCounts {
				counts = append(counts, fmt.Sprintf("%s=%d", otherType, n))
			}
			sort.Strings(counts)
			for _, c := range counts {
				fmt.Printf("  %s", c)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	summaryCmd.Flags().Int64Var(&flagSummaryTrip, "trip", 0, "trip id (required)")
	summaryCmd.MarkFlagRequired("trip")
}
