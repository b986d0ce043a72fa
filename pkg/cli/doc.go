/*
Package cli provides helpers shared by the ollama-bridge commands.

Output Formatting:

Commands that report results, such as check and models, support text and
JSON output:

	formatter, err := cli.NewFormatter(cli.FormatJSON)
	if err != nil {
		return err
	}
	if err := formatter.FormatTo(cmd.OutOrStdout(), result); err != nil {
		return err
	}

Text output prints the value with %v, so result types implement
fmt.Stringer to control their rendering.

Signal Handling:

For one-shot commands that should stop on SIGINT/SIGTERM:

	ctx, stop := cli.SetupSignalHandler(context.Background())
	defer stop()
*/
package cli
