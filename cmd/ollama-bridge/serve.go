package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"ollama-bridge/pkg/cli"
	"ollama-bridge/pkg/config"
	"ollama-bridge/pkg/server"
	"ollama-bridge/pkg/telemetry/health"
	"ollama-bridge/pkg/telemetry/metrics"
)

var serveFlags struct {
	host         string
	port         int
	defaultModel string
	logLevel     string
	logFormat    string
	dryRun       bool
}

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"run"},
	Short:   "Start the bridge HTTP server",
	Long: `Start the OpenAI-compatible HTTP server.

Settings are read from the configuration file, then from environment
variables (OLLAMA_HOST, DEFAULT_MODEL, PORT and the BRIDGE_* family), then
from flags.

Examples:
  # Start with defaults
  ollama-bridge serve

  # Point at a remote Ollama and change the port
  ollama-bridge serve --ollama-host http://gpu-box:11434 --port 9000

  # Validate config without starting the server
  ollama-bridge serve --config config.yaml --dry-run`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveFlags.host, "host", "", "override listen host")
	serveCmd.Flags().IntVarP(&serveFlags.port, "port", "p", 0, "override listen port")
	serveCmd.Flags().StringVar(&serveFlags.defaultModel, "default-model", "", "override the model used when a request names none")
	serveCmd.Flags().StringVar(&serveFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	serveCmd.Flags().StringVar(&serveFlags.logFormat, "log-format", "", "override log format (json, text)")
	serveCmd.Flags().BoolVar(&serveFlags.dryRun, "dry-run", false, "validate config without starting server")
}

// applyServeFlags copies the serve flags that were set onto cfg.
func applyServeFlags(cfg *config.Config) {
	if serveFlags.host != "" {
		cfg.Proxy.Host = serveFlags.host
	}
	if serveFlags.port != 0 {
		cfg.Proxy.Port = serveFlags.port
	}
	if serveFlags.defaultModel != "" {
		cfg.Backend.DefaultModel = serveFlags.defaultModel
	}
	if serveFlags.logLevel != "" {
		cfg.Telemetry.Logging.Level = serveFlags.logLevel
	}
	if serveFlags.logFormat != "" {
		cfg.Telemetry.Logging.Format = serveFlags.logFormat
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(applyServeFlags)
	if err != nil {
		return err
	}

	logger, err := setupLogging(cfg)
	if err != nil {
		return err
	}

	if serveFlags.dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Configuration valid")
		return nil
	}

	printBanner(cmd, cfg)

	client := newBackendClient(cfg, logger)
	defer client.Close()

	var collector *metrics.Collector
	if cfg.Telemetry.Metrics.Enabled {
		collector = metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	prober := health.NewProber(client, cfg.Backend.ProbeSchedule, collector)
	if err := prober.Start(ctx); err != nil {
		slog.Warn("failed to start backend probe", "error", err)
	} else {
		defer prober.Stop()
		if next := prober.NextRun(); next != nil {
			slog.Debug("backend probe scheduled", "next_run", next)
		}
	}

	srv := server.NewServer(cfg, client, collector)
	if err := srv.Start(ctx); err != nil {
		return cli.NewCommandError("serve", err)
	}
	return nil
}

func printBanner(cmd *cobra.Command, cfg *config.Config) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Ollama Bridge v%s\n", Version)
	if cfgFile != "" {
		fmt.Fprintf(out, "Loading configuration from: %s\n", cfgFile)
	}
	fmt.Fprintf(out, "✓ Ollama backend: %s (default model %s)\n", cfg.Backend.Host, cfg.Backend.DefaultModel)
	fmt.Fprintf(out, "✓ Listening on %s\n", cfg.Proxy.ListenAddress())
	if cfg.Telemetry.Metrics.Enabled && cfg.Telemetry.Metrics.Path != "" {
		fmt.Fprintf(out, "✓ Metrics endpoint: %s\n", cfg.Telemetry.Metrics.Path)
	}
	fmt.Fprintln(out, "\nPress Ctrl+C to stop")
}
