package main

import (
	"strings"

	"github.com/spf13/cobra"

	"ollama-bridge/pkg/cli"
	"ollama-bridge/pkg/proxy"
	"ollama-bridge/pkg/proxy/types"
)

var modelsFlags struct {
	output string
}

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the backend's models as the bridge reports them",
	Long: `Fetch the model list from Ollama and print it in the same shape the
bridge serves on /v1/models.

Examples:
  ollama-bridge models
  ollama-bridge models --output json`,
	RunE: runModels,
}

func init() {
	rootCmd.AddCommand(modelsCmd)

	modelsCmd.Flags().StringVarP(&modelsFlags.output, "output", "o", "text", "output format (text, json)")
}

// modelListing renders a models response one ID per line in text mode.
type modelListing struct {
	*types.ModelList
}

func (l modelListing) String() string {
	ids := make([]string, 0, len(l.Data))
	for _, m := range l.Data {
		ids = append(ids, m.ID)
	}
	return strings.Join(ids, "\n")
}

func runModels(cmd *cobra.Command, args []string) error {
	formatter, err := cli.NewFormatter(cli.OutputFormat(modelsFlags.output))
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

	tags, err := client.Tags(ctx)
	if err != nil {
		return cli.NewCommandError("models", err)
	}

	listing := modelListing{ModelList: proxy.FormatModelList(tags)}
	if cli.OutputFormat(modelsFlags.output) == cli.FormatJSON {
		return formatter.FormatTo(cmd.OutOrStdout(), listing.ModelList)
	}
	return formatter.FormatTo(cmd.OutOrStdout(), listing)
}
