package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/flightcheck/pkg/store"
)

// NewViewCommand creates the view command.
func NewViewCommand() *cobra.Command {
	var maxLines int

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Print a file as-is",
		Long: `Print the start of a file without validating it.

Defaults to the configured default input (data.txt).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := envFrom(commandContext(cmd.Context()))
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			path := env.Config.DefaultInput
			if len(args) == 1 {
				path = args[0]
			}
			if maxLines <= 0 {
				maxLines = env.Config.ViewMaxLines
			}
			return viewFile(cmd.OutOrStdout(), path, maxLines)
		},
	}

	cmd.Flags().IntVarP(&maxLines, "lines", "n", 0, "Maximum lines to print (default from config, 200)")
	return cmd
}

func viewFile(w io.Writer, path string, maxLines int) error {
	lines, truncated, err := store.Head(path, maxLines)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", path, err)
	}

	fmt.Fprintln(w, "---- File content ----")
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
	if truncated {
		fmt.Fprintf(w, "... (file long; only first %d lines shown)\n", maxLines)
	}
	return nil
}
