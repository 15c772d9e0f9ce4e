// Package record parses and validates flight check records.
//
// A record line has the shape "<TIME> <FLIGHT> <COMPUTER>", where the pieces
// may be separated by spaces or commas and TIME is HH:MM:SS or HHMMSS.
package record

import (
	"encoding/json"
	"errors"
	"strings"
)

// Record is a validated flight check entry.
// The zero value is not a valid record; records come from Parse.
type Record struct {
	clock    Clock
	flight   string
	computer string
}

// Clock returns the time of day of the record.
func (r Record) Clock() Clock { return r.clock }

// Time returns the canonical HH:MM:SS form of the record's time.
func (r Record) Time() string { return r.clock.String() }

// Flight returns the flight identifier as it was entered.
func (r Record) Flight() string { return r.flight }

// Computer returns the computer identifier as it was entered.
func (r Record) Computer() string { return r.computer }

// Fields returns time, flight and computer in canonical order.
func (r Record) Fields() []string {
	return []string{r.Time(), r.flight, r.computer}
}

// String renders the record as "HH:MM:SS FLIGHT COMPUTER", the form used for
// display and for the persisted store. Parsing it yields an equal record.
func (r Record) String() string {
	return strings.Join(r.Fields(), " ")
}

type recordJSON struct {
	Time     string `json:"time"`
	Flight   string `json:"flight"`
	Computer string `json:"computer"`
}

// MarshalJSON encodes the record with its canonical time.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordJSON{Time: r.Time(), Flight: r.flight, Computer: r.computer})
}

// UnmarshalJSON decodes and re-validates a record.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw recordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseLine(strings.Join([]string{raw.Time, raw.Flight, raw.Computer}, " "))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Outcome is the result of checking one line: either a record or a rejection.
type Outcome struct {
	Record Record
	Err    *ParseError
}

// Valid reports whether the line produced a record.
func (o Outcome) Valid() bool {
	return o.Err == nil
}

// Parser turns lines into records.
type Parser struct {
	// Strict rejects lines with more than three pieces instead of ignoring
	// the extras.
	Strict bool
}

// ParseLine parses a line with the default lenient parser.
func ParseLine(line string) (Record, error) {
	return Parser{}.Parse(line)
}

// Tokens splits line into its pieces. Spaces and commas both separate
// pieces and runs of separators count as one.
func Tokens(line string) []string {
	return strings.Fields(strings.ReplaceAll(line, ",", " "))
}

// Parse validates line and returns the record it describes.
// Any returned error is a *ParseError.
func (p Parser) Parse(line string) (Record, error) {
	s := strings.TrimSpace(line)
	if s == "" {
		return Record{}, reject(KindEmptyInput, ReasonEmptyLine)
	}

	tokens := Tokens(s)
	if len(tokens) < 3 {
		return Record{}, reject(KindMalformedShape, ReasonWrongShape)
	}
	if p.Strict && len(tokens) > 3 {
		return Record{}, reject(KindMalformedShape, ReasonTooManyPieces)
	}

	clock, err := ParseClock(tokens[0])
	if err != nil {
		return Record{}, err
	}
	if err := ValidateFlightID(tokens[1]); err != nil {
		return Record{}, err
	}
	if err := ValidateComputerID(tokens[2]); err != nil {
		return Record{}, err
	}

	return Record{clock: clock, flight: tokens[1], computer: tokens[2]}, nil
}

// Check parses line and folds the result into an Outcome.
func (p Parser) Check(line string) Outcome {
	rec, err := p.Parse(line)
	if err == nil {
		return Outcome{Record: rec}
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		pe = &ParseError{Kind: KindMalformedShape, Reason: err.Error()}
	}
	return Outcome{Err: pe}
}
