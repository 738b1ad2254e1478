package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/flightai/csbot/client"
	"github.com/flightai/csbot/internal/config"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const defaultCommandTimeout = 15 * time.Second

// rootOptions carries the global flags and the client built from them.
type rootOptions struct {
	serviceURL string
	token      string
	debug      bool
	asJSON     bool

	client *client.Client
}

func main() {
	// A missing .env is normal; real environment variables still apply.
	_ = godotenv.Load()

	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:          "csbot",
		Short:        "csbot talks to the FlightAI customer-service backend",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.InitLoggerTo(cmd.ErrOrStderr())

			// Set log level based on debug flag
			if opts.debug {
				config.SetLogLevel(zerolog.DebugLevel)
				log.Debug().Msg("debug logging enabled")
			} else {
				config.SetLogLevel(config.LevelFromEnv())
			}

			cfg, err := client.LoadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("service-url") {
				cfg.BaseURL = opts.serviceURL
			}
			if cmd.Flags().Changed("token") {
				cfg.BearerToken = opts.token
			}
			cfg.Debug = cfg.Debug || opts.debug

			c, err := client.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("configure client: %w", err)
			}
			opts.client = c
			log.Debug().Str("service_url", c.BaseURL()).Msg("client ready")
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.serviceURL, "service-url", "http://localhost:8000", "Base URL of the customer-service backend (overrides CSBOT_BASE_URL)")
	rootCmd.PersistentFlags().StringVar(&opts.token, "token", "", "Bearer token (overrides CSBOT_BEARER_TOKEN)")
	rootCmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "Enable verbose debug output")
	rootCmd.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "Print results as JSON")

	// Sub-commands
	rootCmd.AddCommand(newChatHistoryCmd(opts))
	rootCmd.AddCommand(newListTripsCmd(opts))
	rootCmd.AddCommand(newGetTripCmd(opts))
	rootCmd.AddCommand(newRenameTripCmd(opts))
	rootCmd.AddCommand(newOverviewCmd(opts))
	rootCmd.AddCommand(newListQuestionsCmd(opts))
	rootCmd.AddCommand(newUpdateQuestionCmd(opts))
	rootCmd.AddCommand(newSyncKBCmd(opts))
	rootCmd.AddCommand(newSyncStatusCmd(opts))

	return rootCmd
}

// commandContext bounds a single backend call.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), defaultCommandTimeout)
}

// logResult records how a backend call went.
func logResult(op string, start time.Time, err error) {
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Str("op", op).Dur("elapsed", elapsed).Msg("call failed")
		return
	}
	log.Debug().Str("op", op).Dur("elapsed", elapsed).Msg("call completed")
}
