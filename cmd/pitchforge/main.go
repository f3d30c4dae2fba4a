package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pitchforge/pitchforge/internal/api"
	"github.com/pitchforge/pitchforge/internal/bridge"
	"github.com/pitchforge/pitchforge/internal/config"
	"github.com/pitchforge/pitchforge/internal/extract"
	"github.com/pitchforge/pitchforge/internal/fetcher"
	"github.com/pitchforge/pitchforge/internal/salescopy"
	"github.com/pitchforge/pitchforge/internal/scrape"
)

var (
	cfgFile  string
	verbose  bool
	port     int
	withCopy bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pitchforge",
		Short: "Pitchforge — product page scraper with sales-copy generation",
		Long: `Pitchforge scrapes e-commerce product pages into a canonical record
and turns it into templated sales copy.

Features:
  • Multi-tier extraction: Python bridge preferred, per-site extractors, generic fallback
  • Headless-browser rendering for client-rendered storefronts
  • Ordered CSS/XPath selector fallback per field
  • Templated headline, description, benefits, and call-to-action
  • JSON API with CORS and interactive docs`,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(scrapeCmd())
	rootCmd.AddCommand(configCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// serveCmd creates the "serve" subcommand.
func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the scraping API server",
		RunE:  runServe,
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listening port (overrides config)")
	return cmd
}

// runServe executes the serve command.
func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if port > 0 {
		cfg.Server.Port = port
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := setupLogger(cfg)
	orch := buildOrchestrator(cfg, logger)
	srv := api.NewServer(cfg, orch, logger)

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("shutdown error", "error", err)
		}
	}()

	logger.Info("starting pitchforge",
		"port", cfg.Server.Port,
		"bridge_enabled", cfg.Bridge.Enabled,
	)
	fmt.Printf("🚀 Pitchforge running on port %d\n", cfg.Server.Port)
	fmt.Printf("📡 Scraping endpoint: http://localhost:%d/scrape?url=<product-url>\n", cfg.Server.Port)

	return srv.Start()
}

// scrapeCmd creates the "scrape" subcommand for one-off scrapes.
func scrapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape [url]",
		Short: "Scrape a single product URL and print the result as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runScrape,
	}
	cmd.Flags().BoolVar(&withCopy, "copy", false, "also generate sales copy")
	return cmd
}

// runScrape executes the scrape command.
func runScrape(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := setupLogger(cfg)
	orch := buildOrchestrator(cfg, logger)

	product, err := orch.Scrape(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	out := map[string]any{"product": product}
	if withCopy {
		out["copy"] = salescopy.Generate(product)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// buildOrchestrator wires fetchers, extractors, and the optional bridge.
func buildOrchestrator(cfg *config.Config, logger *slog.Logger) *scrape.Orchestrator {
	static := fetcher.NewStatic(cfg, logger)
	browser := fetcher.NewBrowser(cfg, logger)
	registry := extract.NewDefaultRegistry(browser, static, logger)

	var br scrape.Bridge
	if cfg.Bridge.Enabled {
		br = bridge.New(cfg, logger)
	}

	return scrape.New(registry, br, logger)
}

// configCmd creates the "config" subcommand for inspecting configuration.
func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			fmt.Printf("Server:\n")
			fmt.Printf("  Port:               %d\n", cfg.Server.Port)
			fmt.Printf("  Allowed Origins:    %v\n", cfg.Server.AllowedOrigins)
			fmt.Printf("  Docs Enabled:       %v\n", cfg.Server.DocsEnabled)
			fmt.Printf("\nFetcher:\n")
			fmt.Printf("  Request Timeout:    %s\n", cfg.Fetcher.RequestTimeout)
			fmt.Printf("  Max Body Size:      %d bytes\n", cfg.Fetcher.MaxBodySize)
			fmt.Printf("  Follow Redirects:   %v\n", cfg.Fetcher.FollowRedirects)
			fmt.Printf("\nBrowser:\n")
			fmt.Printf("  Navigation Timeout: %s\n", cfg.Browser.NavigationTimeout)
			fmt.Printf("  Headless:           %v\n", cfg.Browser.Headless)
			fmt.Printf("  Stealth:            %v\n", cfg.Browser.Stealth)
			fmt.Printf("\nBridge:\n")
			fmt.Printf("  Enabled:            %v\n", cfg.Bridge.Enabled)
			fmt.Printf("  Python Binary:      %s\n", cfg.Bridge.PythonBin)
			fmt.Printf("  Script Dir:         %s\n", cfg.Bridge.ScriptDir)
			fmt.Printf("  Probe Timeout:      %s\n", cfg.Bridge.ProbeTimeout)
			fmt.Printf("  Invoke Timeout:     %s\n", cfg.Bridge.InvokeTimeout)
			return nil
		},
	}
}

// versionCmd creates the "version" subcommand.
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Pitchforge %s\n", config.Version)
		},
	}
}

// setupLogger creates a structured logger from config, with the verbose
// flag forcing debug level.
func setupLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if verbose {
		level = slog.LevelDebug
	}

	out := os.Stderr
	if cfg.Logging.Output == "stdout" {
		out = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Logging.Format == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}
	return slog.New(handler)
}
