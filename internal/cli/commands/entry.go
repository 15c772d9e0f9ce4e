package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/ccollicutt/flightcheck/pkg/record"
	"github.com/ccollicutt/flightcheck/pkg/session"
	"github.com/ccollicutt/flightcheck/pkg/wizard"
)

// guidedEntry runs the wizard and saves the record it produces. sess may be
// nil. It reports whether a record was saved.
func guidedEntry(w io.Writer, env *Env, wiz *wizard.Wizard, sess *session.Session) (bool, error) {
	paint := env.Painter()

	rec, ok, err := wiz.Run()
	if err != nil {
		return false, err
	}
	fmt.Fprintln(w)
	if !ok {
		fmt.Fprintln(w, paint.Yellow("Canceled guided entry."))
		return false, nil
	}

	fmt.Fprintln(w, paint.Green("Nice! Record is ready."))
	fmt.Fprintf(w, "It looks like: %s\n", rec)
	return true, saveRecord(w, env, rec, sess)
}

// errNotSaved marks a store append failure. The message for the user has
// already been printed when it is returned.
var errNotSaved = errors.New("record not saved")

// saveRecord appends rec to the store and remembers it in sess.
func saveRecord(w io.Writer, env *Env, rec record.Record, sess *session.Session) error {
	if sess != nil {
		sess.Remember(rec)
	}
	st := env.Store()
	if err := st.Append(rec); err != nil {
		fmt.Fprintln(w, env.Painter().Red(fmt.Sprintf("Could not open %s to save the entry.", st.Path())))
		return fmt.Errorf("%w: %w", errNotSaved, err)
	}
	fmt.Fprintf(w, "Saved to %s\n", st.Path())
	return nil
}
