package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newListTripsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list-trips",
		Short: "List trips",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()

			start := time.Now()
			trips, err := opts.client.LoadTrips(ctx)
			logResult("list-trips", start, err)
			if err != nil {
				return err
			}

			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), orEmpty(trips))
			}
			return printTrips(cmd.OutOrStdout(), trips)
		},
	}
}

func newGetTripCmd(opts *rootOptions) *cobra.Command {
	var tripID string

	cmd := &cobra.Command{
		Use:   "get-trip",
		Short: "Show a trip and its flights",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Debug().Str("trip_id", tripID).Msg("loading trip details")

			ctx, cancel := commandContext(cmd)
			defer cancel()

			start := time.Now()
			trip, err := opts.client.LoadTripDetails(ctx, tripID)
			logResult("get-trip", start, err)
			if err != nil {
				return err
			}

			if opts.asJSON {
				trip.Flights = orEmpty(trip.Flights)
				return printJSON(cmd.OutOrStdout(), trip)
			}
			return printFullTrip(cmd.OutOrStdout(), trip)
		},
	}

	cmd.Flags().StringVar(&tripID, "trip-id", "", "Trip ID (required)")
	_ = cmd.MarkFlagRequired("trip-id")

	return cmd
}

func newRenameTripCmd(opts *rootOptions) *cobra.Command {
	var tripID, name string

	cmd := &cobra.Command{
		Use:   "rename-trip",
		Short: "Rename a trip",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Debug().Str("trip_id", tripID).Str("name", name).Msg("renaming trip")

			ctx, cancel := commandContext(cmd)
			defer cancel()

			start := time.Now()
			err := opts.client.RenameTrip(ctx, tripID, name)
			logResult("rename-trip", start, err)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Trip renamed: %s -> %s\n", tripID, name)
			return nil
		},
	}

	cmd.Flags().StringVar(&tripID, "trip-id", "", "Trip ID (required)")
	cmd.Flags().StringVar(&name, "name", "", "New trip name (required)")
	_ = cmd.MarkFlagRequired("trip-id")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
