package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Show the record format with examples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := envFrom(commandContext(cmd.Context()))
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			printRules(cmd.OutOrStdout(), env.Config.StorePath)
			return nil
		},
	}
}
