package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/divvun/zulip-buildkite-bot/internal/api"
	"github.com/divvun/zulip-buildkite-bot/internal/config"
	ws "github.com/divvun/zulip-buildkite-bot/internal/websocket"
	"github.com/divvun/zulip-buildkite-bot/internal/zulip"
	"github.com/spf13/cobra"
)

var (
	servePort        int
	serveZulipServer string
	serveZulipEmail  string
	serveZulipAPIKey string
	serveZulipStream string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the webhook server",
	Long: `Starts the HTTP server that receives Buildkite webhooks on POST /webhook
and posts notifications to Zulip.

Required environment variables:
  ZULIP_SERVER_URL     Zulip server base URL (e.g. https://chat.example.org)
  ZULIP_BOT_EMAIL      bot account email
  ZULIP_BOT_API_KEY    bot API key
  ZULIP_STREAM         default stream for notifications

Optional:
  PORT                 listen port (default 3000)`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0,
		"HTTP port to listen on (default 3000, overrides config)")
	serveCmd.Flags().StringVar(&serveZulipServer, "zulip-server-url", "",
		"Zulip server base URL (overrides ZULIP_SERVER_URL)")
	serveCmd.Flags().StringVar(&serveZulipEmail, "zulip-bot-email", "",
		"bot account email (overrides ZULIP_BOT_EMAIL)")
	serveCmd.Flags().StringVar(&serveZulipAPIKey, "zulip-bot-api-key", "",
		"bot API key (overrides ZULIP_BOT_API_KEY)")
	serveCmd.Flags().StringVar(&serveZulipStream, "zulip-stream", "",
		"default stream for notifications (overrides ZULIP_STREAM)")
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveZulipServer != "" {
		cfg.ZulipServerURL = serveZulipServer
	}
	if serveZulipEmail != "" {
		cfg.ZulipBotEmail = serveZulipEmail
	}
	if serveZulipAPIKey != "" {
		cfg.ZulipBotAPIKey = serveZulipAPIKey
	}
	if serveZulipStream != "" {
		cfg.ZulipStream = serveZulipStream
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	client := zulip.NewClient(cfg.ZulipServerURL, cfg.ZulipBotEmail, cfg.ZulipBotAPIKey)
	hub := ws.NewHub(logger)

	router := api.NewRouter(client, cfg.ZulipStream, hub, logger)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server starting", "port", cfg.Port, "stream", cfg.ZulipStream)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
