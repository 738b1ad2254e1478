package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/flightai/csbot/client"
	"github.com/flightai/csbot/internal/config"
	"github.com/flightai/csbot/mcp/internal/handlers"
	"github.com/flightai/csbot/mcp/internal/health"
	"github.com/kelseyhightower/envconfig"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"
)

// Config holds the MCP server settings, read from MCP_-prefixed variables.
// Backend settings come from client.Config (CSBOT_*).
type Config struct {
	Addr            string        `envconfig:"ADDR" default:":11546"`
	ServerName      string        `envconfig:"SERVER_NAME" default:"csbot-mcp-server"`
	ServerVersion   string        `envconfig:"SERVER_VERSION" default:"0.1.0"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	HTTPReadTimeout time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"5s"`
	HTTPIdleTimeout time.Duration `envconfig:"HTTP_IDLE_TIMEOUT" default:"120s"`
	HeartbeatPeriod time.Duration `envconfig:"HEARTBEAT_INTERVAL" default:"30s"`
	HealthInterval  time.Duration `envconfig:"HEALTH_INTERVAL" default:"30s"`
	HealthTimeout   time.Duration `envconfig:"HEALTH_TIMEOUT" default:"5s"`
	ForceStdio      bool          `envconfig:"STDIO"`
	ForceHTTP       bool          `envconfig:"HTTP"`
}

// LoadConfig parses MCP_* environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("MCP", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if cfg.HealthInterval <= 0 {
		return nil, fmt.Errorf("MCP_HEALTH_INTERVAL must be > 0, got %s", cfg.HealthInterval)
	}
	return &cfg, nil
}

type toolRegisterer interface {
	RegisterTools(s *server.MCPServer) error
}

// NewServer builds an MCP server with every tool registered against c.
func NewServer(name, version string, c *client.Client) (*server.MCPServer, error) {
	s := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(true),
	)

	for _, h := range []struct {
		name    string
		handler toolRegisterer
	}{
		{"chat", handlers.NewChatHandler(c)},
		{"trip", handlers.NewTripHandler(c)},
	} {
		if err := h.handler.RegisterTools(s); err != nil {
			return nil, fmt.Errorf("register %s tools: %w", h.name, err)
		}
	}
	return s, nil
}

// RunMCPServer starts the MCP server and blocks until it stops.
func RunMCPServer() error {
	config.InitLogger()
	config.SetLogLevel(config.LevelFromEnv())

	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	clientCfg, err := client.LoadConfig()
	if err != nil {
		return err
	}
	csbot, err := client.NewFromConfig(clientCfg)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create client")
		return err
	}
	log.Info().Str("service_url", csbot.BaseURL()).Msg("Client created")

	s, err := NewServer(cfg.ServerName, cfg.ServerVersion, csbot)
	if err != nil {
		return err
	}

	if cfg.shouldUseStdio() {
		// Stdio transport (for desktop hosts, launched processes)
		log.Info().Msg("Starting csbot MCP server (stdio transport)")
		return server.ServeStdio(s)
	}
	return serveHTTP(cfg, s, csbot)
}

func serveHTTP(cfg *Config, s *server.MCPServer, csbot *client.Client) error {
	log.Info().Str("addr", cfg.Addr).Msg("Starting csbot MCP server (Streamable HTTP)")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	checker := health.NewBackendChecker(log.Logger, func(ctx context.Context) error {
		_, err := csbot.LoadTrips(ctx)
		return err
	}, cfg.HealthTimeout)
	go checker.Start(ctx, cfg.HealthInterval)

	streamSrv := server.NewStreamableHTTPServer(
		s,
		server.WithEndpointPath("/mcp"),
		server.WithHeartbeatInterval(cfg.HeartbeatPeriod),
	)
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      newRouter(streamSrv, checker),
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: 0, // No deadline - required for SSE streaming
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	shutdownComplete := make(chan struct{})
	go func() {
		defer close(shutdownComplete)
		<-ctx.Done()
		log.Info().Msg("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error during HTTP server shutdown")
		}
		if err := streamSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error during MCP server shutdown")
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}

	<-shutdownComplete
	log.Info().Msg("MCP server shutdown complete")
	return nil
}

// shouldUseStdio determines whether to use stdio transport based on environment
func (c *Config) shouldUseStdio() bool {
	if c.ForceStdio {
		return true
	}
	if c.ForceHTTP {
		return false
	}

	// Auto-detect: Use stdio if stdin is not a terminal (launched by another process)
	if fileInfo, err := os.Stdin.Stat(); err == nil {
		return (fileInfo.Mode() & os.ModeCharDevice) == 0
	}
	return false
}
