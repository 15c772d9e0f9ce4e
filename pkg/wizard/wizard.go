// Package wizard builds a record by asking for one field at a time.
package wizard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ccollicutt/flightcheck/pkg/output"
	"github.com/ccollicutt/flightcheck/pkg/record"
)

// Wizard runs the guided question/answer flow.
type Wizard struct {
	in    *bufio.Scanner
	out   io.Writer
	paint output.Painter
}

// New creates a wizard reading answers from in and writing prompts to out.
func New(in io.Reader, out io.Writer, paint output.Painter) *Wizard {
	return NewFromScanner(bufio.NewScanner(in), out, paint)
}

// NewFromScanner creates a wizard sharing an existing line scanner, so a
// caller that also reads from the same input does not lose buffered lines.
func NewFromScanner(in *bufio.Scanner, out io.Writer, paint output.Painter) *Wizard {
	return &Wizard{in: in, out: out, paint: paint}
}

// errCanceled ends the flow without a record.
var errCanceled = errors.New("canceled")

// Run asks for each field until it is valid. Typing q at any prompt, or
// reaching the end of input, cancels: ok is false and no record is produced.
func (w *Wizard) Run() (rec record.Record, ok bool, err error) {
	fmt.Fprintln(w.out, "Guided mode, we will build the line together.")

	hour, err := w.askNumber("Hour", 0, 23)
	if err != nil {
		return cancelOr(err)
	}
	minute, err := w.askNumber("Minute", 0, 59)
	if err != nil {
		return cancelOr(err)
	}
	second, err := w.askNumber("Second", 0, 59)
	if err != nil {
		return cancelOr(err)
	}
	flight, err := w.askField("Flight ID (start with a letter): ", record.ValidateFlightID)
	if err != nil {
		return cancelOr(err)
	}
	computer, err := w.askField("Computer ID (3 letters/numbers, no I or O in last two): ", record.ValidateComputerID)
	if err != nil {
		return cancelOr(err)
	}

	clock := record.Clock{Hour: hour, Minute: minute, Second: second}
	rec, err = record.ParseLine(strings.Join([]string{clock.String(), flight, computer}, " "))
	if err != nil {
		return record.Record{}, false, fmt.Errorf("building record: %w", err)
	}
	return rec, true, nil
}

func cancelOr(err error) (record.Record, bool, error) {
	if errors.Is(err, errCanceled) {
		return record.Record{}, false, nil
	}
	return record.Record{}, false, err
}

// readLine returns the next answer, or errCanceled on q or end of input.
func (w *Wizard) readLine() (string, error) {
	if !w.in.Scan() {
		if err := w.in.Err(); err != nil {
			return "", fmt.Errorf("reading answer: %w", err)
		}
		return "", errCanceled
	}
	text := strings.TrimSpace(w.in.Text())
	if text == "q" || text == "Q" {
		return "", errCanceled
	}
	return text, nil
}

func (w *Wizard) askNumber(label string, lo, hi int) (int, error) {
	for {
		fmt.Fprintf(w.out, "%s (%d-%d, or 'q' to cancel): ", label, lo, hi)
		text, err := w.readLine()
		if err != nil {
			return 0, err
		}
		if text == "" {
			continue
		}
		v, err := strconv.Atoi(text)
		if err != nil {
			fmt.Fprintln(w.out, w.paint.Red("Type numbers only."))
			continue
		}
		if v < lo || v > hi {
			fmt.Fprintln(w.out, w.paint.Red(fmt.Sprintf("Please stay between %d and %d.", lo, hi)))
			continue
		}
		return v, nil
	}
}

func (w *Wizard) askField(prompt string, validate func(string) error) (string, error) {
	for {
		fmt.Fprint(w.out, prompt)
		text, err := w.readLine()
		if err != nil {
			return "", err
		}
		if strings.ContainsAny(text, " \t,") {
			fmt.Fprintln(w.out, w.paint.Red("Try again: use a single word without spaces or commas"))
			continue
		}
		if err := validate(text); err != nil {
			fmt.Fprintln(w.out, w.paint.Red("Try again: "+err.Error()))
			continue
		}
		return text, nil
	}
}
