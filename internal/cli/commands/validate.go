package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/flightcheck/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a flightcheck configuration file without running anything.

Checks:
  - YAML syntax
  - Log level and format
  - Webhook URLs and triggers
  - Default input existence (warning only)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := commandContext(cmd.Context())
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(out, "\nConfiguration valid!\n")
	fmt.Fprintf(out, "  Store:         %s\n", cfg.StorePath)
	fmt.Fprintf(out, "  Default input: %s\n", cfg.DefaultInput)
	fmt.Fprintf(out, "  Export suffix: %s\n", cfg.ExportSuffix)
	fmt.Fprintf(out, "  Strict tokens: %t\n", cfg.StrictTokens)
	fmt.Fprintf(out, "  Log:           %s/%s\n", cfg.Log.Level, cfg.Log.Format)
	fmt.Fprintf(out, "  Server:        %s\n", cfg.Server.Address)
	fmt.Fprintf(out, "  Webhooks:      %d\n", len(cfg.Webhooks))

	for i, wh := range cfg.Webhooks {
		name := wh.Name
		if name == "" {
			name = wh.URL
		}
		fmt.Fprintf(out, "    %d. [%s] %s\n", i+1, wh.Trigger, name)
	}

	if _, err := os.Stat(cfg.DefaultInput); err != nil {
		fmt.Fprintf(out, "\nWarning: default input %s is not readable: %v\n", cfg.DefaultInput, err)
	}

	return nil
}
