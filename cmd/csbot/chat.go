package main

import (
	"fmt"
	"time"

	"github.com/flightai/csbot/client"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newChatHistoryCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "chat-history",
		Short: "Print the conversation history",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()

			start := time.Now()
			msgs, err := opts.client.LoadChatHistory(ctx)
			logResult("chat-history", start, err)
			if err != nil {
				return err
			}

			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), orEmpty(msgs))
			}
			printMessages(cmd.OutOrStdout(), msgs)
			return nil
		},
	}
}

// overview is the landing view of the chat UI: trips and history together.
type overview struct {
	Trips    []client.Trip    `json:"trips"`
	Messages []client.Message `json:"messages"`
}

func newOverviewCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Load trips and chat history concurrently",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()

			var ov overview
			start := time.Now()
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				trips, err := opts.client.LoadTrips(gctx)
				ov.Trips = trips
				return err
			})
			g.Go(func() error {
				msgs, err := opts.client.LoadChatHistory(gctx)
				ov.Messages = msgs
				return err
			})
			err := g.Wait()
			logResult("overview", start, err)
			if err != nil {
				return err
			}

			log.Debug().Int("trips", len(ov.Trips)).Int("messages", len(ov.Messages)).Msg("overview loaded")
			out := cmd.OutOrStdout()
			if opts.asJSON {
				ov.Trips, ov.Messages = orEmpty(ov.Trips), orEmpty(ov.Messages)
				return printJSON(out, ov)
			}
			fmt.Fprintf(out, "Trips (%d)\n", len(ov.Trips))
			if err := printTrips(out, ov.Trips); err != nil {
				return err
			}
			fmt.Fprintf(out, "\nMessages (%d)\n", len(ov.Messages))
			printMessages(out, ov.Messages)
			return nil
		},
	}
}
