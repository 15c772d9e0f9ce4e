package record

// Kind classifies why a line was rejected.
type Kind string

const (
	KindEmptyInput        Kind = "empty_input"
	KindMalformedShape    Kind = "malformed_shape"
	KindInvalidTime       Kind = "invalid_time"
	KindInvalidFlightID   Kind = "invalid_flight_id"
	KindInvalidComputerID Kind = "invalid_computer_id"
)

// Rejection reasons. These strings are shown to users verbatim.
const (
	ReasonEmptyLine         = "empty line"
	ReasonWrongShape        = "expected 3 pieces: time flight computer"
	ReasonTooManyPieces     = "too many pieces: expected time flight computer"
	ReasonTimeShape         = "time should look like 09:25:30 or 092530"
	ReasonTimeRange         = "time out of range"
	ReasonFlightMissing     = "flight id missing"
	ReasonFlightFirstChar   = "flight id must start with a letter"
	ReasonFlightTooLong     = "flight id too long (max 10)"
	ReasonComputerLength    = "computer id must be exactly 3 characters"
	ReasonComputerCharset   = "computer id must be letters/numbers"
	ReasonComputerAmbiguous = "avoid letter I or O in last two spots"
)

// ParseError describes a rejected line or identifier.
// Error returns the human-readable reason unchanged.
type ParseError struct {
	Kind   Kind
	Reason string
}

func (e *ParseError) Error() string {
	return e.Reason
}

func reject(kind Kind, reason string) *ParseError {
	return &ParseError{Kind: kind, Reason: reason}
}
