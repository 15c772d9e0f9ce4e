package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/flightcheck/pkg/wizard"
)

// NewGuideCommand creates the guide command.
func NewGuideCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "guide",
		Short: "Build a record step by step",
		Long: `Build a record by answering one question per field.

Each answer is checked as soon as it is entered. Type q at any prompt to
cancel. A finished record is appended to the store.`,
		Args: cobra.NoArgs,
		RunE: runGuide,
	}
}

func runGuide(cmd *cobra.Command, _ []string) error {
	env, err := envFrom(commandContext(cmd.Context()))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	w := wizard.New(cmd.InOrStdin(), cmd.OutOrStdout(), env.Painter())
	_, err = guidedEntry(cmd.OutOrStdout(), env, w, nil)
	return err
}
