package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"ollama-bridge/pkg/cli"
	"ollama-bridge/pkg/ollama"
)

var checkFlags struct {
	output string
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the Ollama backend is reachable",
	Long: `Ping the configured Ollama server once and list its models.

The command exits non-zero when the backend cannot be reached.

Examples:
  ollama-bridge check
  ollama-bridge check --ollama-host http://gpu-box:11434 --output json`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkFlags.output, "output", "o", "text", "output format (text, json)")
}

// checkResult is the outcome of a one-shot backend check.
type checkResult struct {
	Backend   string   `json:"backend"`
	Healthy   bool     `json:"healthy"`
	LatencyMS int64    `json:"latency_ms"`
	Models    []string `json:"models,omitempty"`
	Error     string   `json:"error,omitempty"`
}

func (r checkResult) String() string {
	if !r.Healthy {
		return fmt.Sprintf("✗ Ollama at %s is not available: %s", r.Backend, r.Error)
	}
	s := fmt.Sprintf("✓ Ollama at %s is reachable (%dms, %d models)", r.Backend, r.LatencyMS, len(r.Models))
	if len(r.Models) > 0 {
		s += "\n  " + strings.Join(r.Models, "\n  ")
	}
	return s
}

func runCheck(cmd *cobra.Command, args []string) error {
	formatter, err := cli.NewFormatter(cli.OutputFormat(checkFlags.output))
	if err != nil {
		return err
	}

	cfg, err := loadConfig(nil)
	if err != nil {
		return err
	}
	logger, err := setupLogging(cfg)
	if err != nil {
		return err
	}

	ctx, stop := cli.SetupSignalHandler(cmd.Context())
	defer stop()

	client := newBackendClient(cfg, logger)
	defer client.Close()

	result := checkBackend(ctx, client)
	if err := formatter.FormatTo(cmd.OutOrStdout(), result); err != nil {
		return err
	}
	if !result.Healthy {
		return cli.NewCommandError("check", fmt.Errorf("backend unavailable: %s", result.Error))
	}
	return nil
}

// checkBackend pings the backend and, when it answers, fetches its model
// names.
func checkBackend(ctx context.Context, client *ollama.Client) checkResult {
	result := checkResult{Backend: client.BaseURL()}

	start := time.Now()
	err := client.Ping(ctx)
	result.LatencyMS = time.Since(start).Milliseconds()
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Healthy = true

	tags, err := client.Tags(ctx)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	for _, m := range tags.Models {
		result.Models = append(result.Models, m.Name)
	}
	return result
}
