package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/ccollicutt/flightcheck/pkg/config"
	"github.com/ccollicutt/flightcheck/pkg/output"
	"github.com/ccollicutt/flightcheck/pkg/record"
	"github.com/ccollicutt/flightcheck/pkg/store"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// Exit codes.
const (
	ExitOK      = 0
	ExitInvalid = 1 // invalid input found
	ExitError   = 2 // configuration, file access or runtime error
)

// Env is the state shared by all commands of one invocation.
type Env struct {
	Config *config.Config
	Color  bool
}

type envKey struct{}

// WithEnv stores env in ctx.
func WithEnv(ctx context.Context, env *Env) context.Context {
	return context.WithValue(ctx, envKey{}, env)
}

// envFrom returns the invocation's Env, falling back to defaults when a
// command runs without the root command.
func envFrom(ctx context.Context) (*Env, error) {
	if env, ok := ctx.Value(envKey{}).(*Env); ok && env != nil {
		return env, nil
	}
	cfg, err := config.Load(ctx, "")
	if err != nil {
		return nil, err
	}
	return &Env{Config: cfg}, nil
}

// ColorEnabled reports whether w is a terminal and colors were not disabled.
func ColorEnabled(w io.Writer, disabled bool) bool {
	if disabled || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// Parser returns the record parser configured for this invocation.
func (e *Env) Parser() record.Parser {
	return record.Parser{Strict: e.Config.StrictTokens}
}

// Store returns the configured record store.
func (e *Env) Store() *store.Store {
	return store.New(e.Config.StorePath)
}

// Painter returns the color painter for this invocation.
func (e *Env) Painter() output.Painter {
	return output.NewPainter(e.Color)
}

func commandContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

// quickRules is the short reminder of the accepted line format.
const quickRules = `Quick rules and examples:
 1) Time: 09:25:30 or 092530 (24-hour clock).
 2) Flight: start with a letter, up to 10 letters/numbers.
 3) Computer: 3 letters/numbers, avoid I or O in last two spots.
Sample line: 09:25:30 ABC123 XYZ
`

func printRules(w io.Writer, storePath string) {
	fmt.Fprint(w, quickRules)
	fmt.Fprintf(w, "Saved good answers go to %s so you can see them later.\n", storePath)
}

func printRecord(w io.Writer, rec record.Record) {
	fmt.Fprintf(w, "  Time: %s\n", rec.Time())
	fmt.Fprintf(w, "  Flight: %s\n", rec.Flight())
	fmt.Fprintf(w, "  Computer: %s\n", rec.Computer())
}
