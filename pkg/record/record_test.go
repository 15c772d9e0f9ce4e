package record

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseLine_Valid(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		want  string
		clock Clock
	}{
		{"colon form", "09:25:30 ABC123 XYZ", "09:25:30 ABC123 XYZ", Clock{9, 25, 30}},
		{"compact with commas", "092530,ABC123,XY1", "09:25:30 ABC123 XY1", Clock{9, 25, 30}},
		{"surrounding whitespace", "  \t23:59:59   Z9   a12 \r\n", "23:59:59 Z9 a12", Clock{23, 59, 59}},
		{"mixed separators", "000000, f1 ,A12", "00:00:00 f1 A12", Clock{0, 0, 0}},
		{"extra pieces ignored", "09:25:30 ABC123 XYZ trailing junk", "09:25:30 ABC123 XYZ", Clock{9, 25, 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := ParseLine(tt.line)
			if err != nil {
				t.Fatalf("ParseLine(%q) error = %v", tt.line, err)
			}
			if rec.String() != tt.want {
				t.Errorf("String() = %q, want %q", rec.String(), tt.want)
			}
			if rec.Clock() != tt.clock {
				t.Errorf("Clock() = %+v, want %+v", rec.Clock(), tt.clock)
			}
		})
	}
}

func TestParseLine_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		kind   Kind
		reason string
	}{
		{"empty", "", KindEmptyInput, ReasonEmptyLine},
		{"whitespace", " \t ", KindEmptyInput, ReasonEmptyLine},
		{"only commas", ",,,", KindMalformedShape, ReasonWrongShape},
		{"two pieces", "09:25:30 ABC", KindMalformedShape, ReasonWrongShape},
		{"bad time shape", "9:25:30 ABC XYZ", KindInvalidTime, ReasonTimeShape},
		{"five digits", "09253 ABC XYZ", KindInvalidTime, ReasonTimeShape},
		{"seven digits", "0925301 ABC XYZ", KindInvalidTime, ReasonTimeShape},
		{"mixed separators in time", "09:2530 ABC XYZ", KindInvalidTime, ReasonTimeShape},
		{"hour out of range", "25:00:00 ABC XYZ", KindInvalidTime, ReasonTimeRange},
		{"minute out of range", "126000 ABC XYZ", KindInvalidTime, ReasonTimeRange},
		{"second out of range", "12:00:60 ABC XYZ", KindInvalidTime, ReasonTimeRange},
		{"flight starts with digit", "09:25:30 1BC XYZ", KindInvalidFlightID, ReasonFlightFirstChar},
		{"flight too long", "09:25:30 ABCDEFGHIJK XYZ", KindInvalidFlightID, ReasonFlightTooLong},
		{"computer too short", "09:25:30 ABC XY", KindInvalidComputerID, ReasonComputerLength},
		{"computer ambiguous", "09:25:30 ABC A1O", KindInvalidComputerID, ReasonComputerAmbiguous},
		{"time checked before flight", "99:99:99 1BC A1O", KindInvalidTime, ReasonTimeRange},
		{"flight checked before computer", "09:25:30 1BC A1O", KindInvalidFlightID, ReasonFlightFirstChar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLine(tt.line)
			if err == nil {
				t.Fatalf("ParseLine(%q) succeeded, want %q", tt.line, tt.reason)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error type = %T, want *ParseError", err)
			}
			if pe.Kind != tt.kind {
				t.Errorf("Kind = %s, want %s", pe.Kind, tt.kind)
			}
			if pe.Reason != tt.reason {
				t.Errorf("Reason = %q, want %q", pe.Reason, tt.reason)
			}
		})
	}
}

func TestParser_Strict(t *testing.T) {
	p := Parser{Strict: true}

	if _, err := p.Parse("09:25:30 ABC123 XYZ"); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	_, err := p.Parse("09:25:30 ABC123 XYZ extra")
	if err == nil || err.Error() != ReasonTooManyPieces {
		t.Errorf("Parse() error = %v, want %q", err, ReasonTooManyPieces)
	}

	_, err = p.Parse("09:25:30 ABC123")
	if err == nil || err.Error() != ReasonWrongShape {
		t.Errorf("Parse() error = %v, want %q", err, ReasonWrongShape)
	}
}

func TestParseLine_FormatEquivalence(t *testing.T) {
	a, err := ParseLine("07:05:09 QF12 K9Z")
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseLine("070509,QF12,K9Z")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("records differ: %v vs %v", a, b)
	}
	if a.Time() != "07:05:09" {
		t.Errorf("Time() = %q, want %q", a.Time(), "07:05:09")
	}
}

func TestParseLine_Deterministic(t *testing.T) {
	lines := []string{"09:25:30 ABC123 XYZ", "25:00:00 ABC XYZ", "", "1 2"}
	for _, line := range lines {
		first := Parser{}.Check(line)
		for i := 0; i < 3; i++ {
			again := Parser{}.Check(line)
			if again.Record != first.Record {
				t.Errorf("Check(%q) record changed between calls", line)
			}
			if (again.Err == nil) != (first.Err == nil) {
				t.Fatalf("Check(%q) validity changed between calls", line)
			}
			if again.Err != nil && *again.Err != *first.Err {
				t.Errorf("Check(%q) error changed: %v vs %v", line, again.Err, first.Err)
			}
		}
	}
}

func TestRecord_RoundTrip(t *testing.T) {
	inputs := []string{
		"09:25:30 ABC123 XYZ",
		"000001,a,b12",
		"235959 FLIGHT0001 Z99",
	}
	for _, in := range inputs {
		rec, err := ParseLine(in)
		if err != nil {
			t.Fatalf("ParseLine(%q) error = %v", in, err)
		}
		again, err := ParseLine(rec.String())
		if err != nil {
			t.Fatalf("re-parse of %q error = %v", rec.String(), err)
		}
		if again != rec {
			t.Errorf("round trip of %q: got %v, want %v", in, again, rec)
		}
	}
}

func TestRecord_PreservesCase(t *testing.T) {
	rec, err := ParseLine("10:00:00 abc x12")
	if err != nil {
		t.Fatal(err)
	}
	if rec.Flight() != "abc" || rec.Computer() != "x12" {
		t.Errorf("got flight=%q computer=%q, want original case", rec.Flight(), rec.Computer())
	}
}

func TestRecord_JSON(t *testing.T) {
	rec, err := ParseLine("092530 ABC123 XY1")
	if err != nil {
		t.Fatal(err)
	}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"time":"09:25:30","flight":"ABC123","computer":"XY1"}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}

	var back Record
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back != rec {
		t.Errorf("Unmarshal() = %v, want %v", back, rec)
	}

	if err := json.Unmarshal([]byte(`{"time":"25:00:00","flight":"A","computer":"XYZ"}`), &back); err == nil {
		t.Error("Unmarshal() of out-of-range time succeeded")
	}
}

func TestOutcome(t *testing.T) {
	ok := Parser{}.Check("09:25:30 ABC123 XYZ")
	if !ok.Valid() {
		t.Fatalf("Valid() = false, err = %v", ok.Err)
	}

	bad := Parser{}.Check("09:25:30 1BC XYZ")
	if bad.Valid() {
		t.Fatal("Valid() = true for invalid line")
	}
	if bad.Err.Reason != ReasonFlightFirstChar {
		t.Errorf("Reason = %q, want %q", bad.Err.Reason, ReasonFlightFirstChar)
	}
	if bad.Record != (Record{}) {
		t.Error("invalid outcome carries a record")
	}
}

func TestTokens(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"09:25:30 ABC123 XYZ", []string{"09:25:30", "ABC123", "XYZ"}},
		{"092530,ABC123,XY1", []string{"092530", "ABC123", "XY1"}},
		{" a ,, b  c ", []string{"a", "b", "c"}},
		{",,,", nil},
	}

	for _, tt := range tests {
		got := Tokens(tt.line)
		if len(got) != len(tt.want) {
			t.Fatalf("Tokens(%q) = %q, want %q", tt.line, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Tokens(%q)[%d] = %q, want %q", tt.line, i, got[i], tt.want[i])
			}
		}
	}
}
