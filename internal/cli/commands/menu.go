package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/ccollicutt/flightcheck/internal/ctxlog"
	"github.com/ccollicutt/flightcheck/pkg/analyzer"
	"github.com/ccollicutt/flightcheck/pkg/output"
	"github.com/ccollicutt/flightcheck/pkg/session"
	"github.com/ccollicutt/flightcheck/pkg/wizard"
)

const menuBanner = `========================================
   FLIGHT CHECKER KID FRIENDLY MODE
========================================`

const menuOptions = `[1] Quick check (one-line input)
[2] Guided mode (kid friendly)
[3] Display stored record
[4] Read & display file (raw)
[5] Analyze file (batch validation + export)
[6] Help / examples
[7] Exit
`

// NewMenuCommand creates the menu command.
func NewMenuCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Interactive menu",
		Long: `Run the interactive menu: check a line, build one step by step, look at
saved records, view or analyze a file.

The menu ends on option 7 or at end of input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := commandContext(cmd.Context())
			env, err := envFrom(ctx)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			m := newMenu(env, cmd.InOrStdin(), cmd.OutOrStdout())
			return m.run(ctx)
		},
	}
}

// menu holds the state of one interactive session. All input goes through
// one scanner so nothing read ahead is lost between prompts.
type menu struct {
	env     *Env
	in      *bufio.Scanner
	out     io.Writer
	paint   output.Painter
	session *session.Session
	ansi    bool
}

func newMenu(env *Env, in io.Reader, out io.Writer) *menu {
	ansi := false
	if f, ok := out.(*os.File); ok {
		ansi = isatty.IsTerminal(f.Fd())
	}
	return &menu{
		env:     env,
		in:      bufio.NewScanner(in),
		out:     out,
		paint:   env.Painter(),
		session: session.New(),
		ansi:    ansi,
	}
}

// prompt prints p and reads one line. ok is false at end of input.
func (m *menu) prompt(p string) (string, bool) {
	fmt.Fprint(m.out, p)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimRight(m.in.Text(), "\r"), true
}

func (m *menu) pause() bool {
	fmt.Fprintln(m.out)
	_, ok := m.prompt("Press Enter to continue...")
	return ok
}

func (m *menu) run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	for {
		if m.ansi {
			fmt.Fprint(m.out, "\033[2J\033[H")
		}
		fmt.Fprintln(m.out, m.paint.Cyan(menuBanner))
		fmt.Fprint(m.out, menuOptions+"\n")

		opt, ok := m.prompt("Choose option: ")
		if !ok {
			fmt.Fprintln(m.out)
			return m.in.Err()
		}
		opt = strings.TrimSpace(opt)
		if opt == "" {
			continue
		}
		logger.Debug("menu option", "option", opt)

		var err error
		switch opt {
		case "1":
			err = m.quickCheck()
		case "2":
			_, err = guidedEntry(m.out, m.env, wizard.NewFromScanner(m.in, m.out, m.paint), m.session)
		case "3":
			err = m.displayStored()
		case "4":
			err = m.viewFile()
		case "5":
			err = m.analyze(ctx)
		case "6":
			fmt.Fprintln(m.out)
			printRules(m.out, m.env.Config.StorePath)
			fmt.Fprintln(m.out, "\nUse Guided Mode if you are unsure. Type 'q' while answering to cancel.")
		case "7":
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.out, "Unknown option.")
		}
		if errors.Is(err, errNotSaved) {
			logger.Warn("record not saved", "store", m.env.Config.StorePath, "error", err)
			err = nil
		}
		if err != nil {
			return err
		}

		if !m.pause() {
			return m.in.Err()
		}
	}
}

func (m *menu) quickCheck() error {
	fmt.Fprintln(m.out, "\nEnter record now (or type 'cancel'):")
	line, ok := m.prompt("> ")
	if !ok || line == "cancel" {
		return nil
	}

	result := m.env.Parser().Check(line)
	if !result.Valid() {
		fmt.Fprintln(m.out, m.paint.Red("Invalid: "+result.Err.Reason))
		return nil
	}
	fmt.Fprintln(m.out, m.paint.Green("Record valid."))
	return saveRecord(m.out, m.env, result.Record, m.session)
}

func (m *menu) displayStored() error {
	fmt.Fprintln(m.out, "\nLast record this session:")
	if rec, ok := m.session.Last(); ok {
		printRecord(m.out, rec)
	} else {
		fmt.Fprintln(m.out, m.paint.Yellow("  (no stored record)"))
	}
	fmt.Fprintln(m.out)
	return showStored(m.out, m.env)
}

func (m *menu) askPath(p string) (string, bool) {
	path, ok := m.prompt(fmt.Sprintf(p, m.env.Config.DefaultInput))
	if !ok {
		return "", false
	}
	path = strings.TrimSpace(path)
	if path == "" {
		path = m.env.Config.DefaultInput
	}
	return path, true
}

func (m *menu) viewFile() error {
	path, ok := m.askPath("Enter path (default %s): ")
	if !ok {
		return nil
	}
	fmt.Fprintln(m.out)
	if err := viewFile(m.out, path, m.env.Config.ViewMaxLines); err != nil {
		fmt.Fprintln(m.out, m.paint.Red("Cannot open: "+path))
	}
	return nil
}

func (m *menu) analyze(ctx context.Context) error {
	path, ok := m.askPath("Enter path to analyze (default %s): ")
	if !ok {
		return nil
	}

	report, err := analyzePath(ctx, m.env, path, false)
	if errors.Is(err, analyzer.ErrFileAccess) {
		reportAccessError(m.out, m.env, path, err)
		return nil
	}
	if err != nil {
		return err
	}
	logAnalysis(ctx, report)

	text := output.NewTextFormatter(output.FormatOptions{
		MaxErrors: m.env.Config.MaxErrorsShown,
		Color:     m.env.Color,
	})
	if err := text.Format(ctx, report, m.out); err != nil {
		return err
	}

	if len(report.ValidRecords) == 0 {
		return nil
	}
	ans, ok := m.prompt("\nExport valid records to CSV? (y/N): ")
	if !ok || !strings.HasPrefix(strings.ToLower(strings.TrimSpace(ans)), "y") {
		return nil
	}
	exportPath, err := exportReport(m.env, path, report)
	if err != nil {
		fmt.Fprintln(m.out, m.paint.Red(fmt.Sprintf("Could not export: %v", err)))
		return nil
	}
	fmt.Fprintf(m.out, "Wrote %d records to %s\n", len(report.ValidRecords), exportPath)
	return nil
}
