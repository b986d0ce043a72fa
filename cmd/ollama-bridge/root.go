package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"ollama-bridge/pkg/cli"
	"ollama-bridge/pkg/config"
	"ollama-bridge/pkg/ollama"
	"ollama-bridge/pkg/telemetry/logging"
)

// defaultConfigFile is read when present; its absence is not an error.
const defaultConfigFile = "config.yaml"

var (
	// Global flags
	cfgFile    string
	ollamaHost string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "ollama-bridge",
	Short: "OpenAI-compatible HTTP API in front of Ollama",
	Long: `Ollama Bridge lets tools written for the OpenAI API use models served by a
local Ollama instance.

It translates OpenAI chat completion, text completion and model listing
requests into Ollama API calls, and converts Ollama's newline-delimited
streaming output into OpenAI server-sent events.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", defaultConfigFile, "config file path")
	rootCmd.PersistentFlags().StringVar(&ollamaHost, "ollama-host", "", "override the Ollama base URL")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// loadConfig reads the configuration file and environment, then applies the
// persistent flag overrides. Command-specific overrides are applied by
// apply, which may be nil. The result is validated after all overrides.
func loadConfig(apply func(*config.Config)) (*config.Config, error) {
	path := resolveConfigPath(cfgFile, rootCmd.PersistentFlags().Changed("config"))
	cfg, err := config.LoadConfigWithEnvOverrides(path)
	if err != nil {
		return nil, cli.NewConfigError("", err.Error())
	}

	if ollamaHost != "" {
		cfg.Backend.Host = ollamaHost
	}
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}
	if apply != nil {
		apply(cfg)
	}

	if err := config.Validate(cfg); err != nil {
		return nil, cli.NewConfigError("", err.Error())
	}
	return cfg, nil
}

// resolveConfigPath drops the default config path when that file does not
// exist, so the bridge runs on defaults and environment alone. A path the
// user named explicitly is always kept.
func resolveConfigPath(path string, explicit bool) string {
	if explicit || path != defaultConfigFile {
		return path
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return ""
	}
	return path
}

// setupLogging installs the configured logger as the slog default.
func setupLogging(cfg *config.Config) (*slog.Logger, error) {
	logger, err := logging.New(logging.Config{
		Level:     cfg.Telemetry.Logging.Level,
		Format:    cfg.Telemetry.Logging.Format,
		AddSource: cfg.Telemetry.Logging.AddSource,
	})
	if err != nil {
		return nil, cli.NewConfigError("telemetry.logging", err.Error())
	}
	slog.SetDefault(logger)
	return logger, nil
}

// newBackendClient builds the Ollama client from the backend settings.
func newBackendClient(cfg *config.Config, logger *slog.Logger) *ollama.Client {
	return ollama.NewClient(ollama.ClientConfig{
		BaseURL:             cfg.Backend.Host,
		RequestTimeout:      cfg.Backend.RequestTimeout,
		HealthTimeout:       cfg.Backend.HealthTimeout,
		StreamIdleTimeout:   cfg.Backend.StreamIdleTimeout,
		MaxIdleConns:        cfg.Backend.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.Backend.MaxIdleConnsPerHost,
		IdleConnTimeout:     cfg.Backend.IdleConnTimeout,
		Logger:              logger.With("component", "ollama.client"),
	})
}
