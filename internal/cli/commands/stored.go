package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/flightcheck/pkg/store"
)

// NewStoredCommand creates the stored command.
func NewStoredCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stored",
		Short: "Show saved records",
		Long:  "Show every record saved by check --save, guide or the menu, numbered from 1.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := envFrom(commandContext(cmd.Context()))
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			return showStored(cmd.OutOrStdout(), env)
		},
	}
}

func showStored(w io.Writer, env *Env) error {
	st := env.Store()
	paint := env.Painter()

	fmt.Fprintf(w, "Stored values (%s):\n", st.Path())
	entries, err := st.Entries()
	if errors.Is(err, store.ErrNoEntries) {
		fmt.Fprintln(w, paint.Yellow("  No saved answers yet. Try check --save or guide first."))
		return nil
	}
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(w, paint.Yellow("  (file is empty)"))
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(w, "  %d) %s\n", e.Num, e.Line)
	}
	return nil
}
