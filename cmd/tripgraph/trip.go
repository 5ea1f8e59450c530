// Trip commands: add, list, delete.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/atlasfolio/tripgraph/pkg/types"
)

var (
	flagTripStart string
	flagTripEnd   string
)

var tripCmd = &cobra.Command{
	Use:   "trip",
	Short: "Manage trips",
}

var tripAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Create a trip",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		trips, err := backend.Trips()
		if err != nil {
			return err
		}

		trip, err := trips.AddTrip(&types.Trip{
			Name:      args[0],
			StartDate: flagTripStart,
			EndDate:   flagTripEnd,
		})
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(trip)
		}
		fmt.Printf("Created trip %d: %s\n", trip.ID, trip.Name)
		return nil
	},
}

var tripListCmd = &cobra.Command{
	Use:   "list",
	Short: "List trips",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		trips, err := backend.Trips()
		if err != nil {
			return err
		}

		all, err := trips.ListTrips()
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(all)
		}
		for _, trip := range all {
			fmt.Printf("%d  %s", trip.ID, trip.Name)
			if trip.StartDate != "" {
				fmt.Printf("  (%s - %s)", trip.StartDate, trip.EndDate)
			}
			fmt.Println()
		}
		return nil
	},
}

var tripDeleteCmd = &cobra.Command{
	Use:   "delete TRIP_ID",
	Short: "Delete a trip and everything scoped to it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tripID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: trip id %q", types.ErrInvalidID, args[0])
		}

		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		trips, err := backend.Trips()
		if err != nil {
			return err
		}

		if err := trips.DeleteTrip(tripID); err != nil {
			return err
		}
		fmt.Printf("Deleted trip %d\n", tripID)
		return nil
	},
}

func init() {
	tripAddCmd.Flags().StringVar(&flagTripStart, "start", "", "start date (YYYY-MM-DD)")
	tripAddCmd.Flags().StringVar(&flagTripEnd, "end", "", "end date (YYYY-MM-DD)")

	tripCmd.AddCommand(tripAddCmd)
	tripCmd.AddCommand(tripListCmd)
	tripCmd.AddCommand(tripDeleteCmd)
}
