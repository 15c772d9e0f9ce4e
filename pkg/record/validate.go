package record

import "strings"

// MaxFlightIDLength is the longest accepted flight identifier.
const MaxFlightIDLength = 10

// ComputerIDLength is the exact length of a computer identifier.
const ComputerIDLength = 3

// ValidateFlightID checks a flight identifier.
// It must be non-empty, start with an ASCII letter and be at most
// MaxFlightIDLength characters long. Remaining characters are not restricted.
func ValidateFlightID(s string) error {
	if s == "" {
		return reject(KindInvalidFlightID, ReasonFlightMissing)
	}
	if !isASCIILetter(s[0]) {
		return reject(KindInvalidFlightID, ReasonFlightFirstChar)
	}
	if len(s) > MaxFlightIDLength {
		return reject(KindInvalidFlightID, ReasonFlightTooLong)
	}
	return nil
}

// ValidateComputerID checks a computer identifier.
// It must be exactly three ASCII letters or digits, and the last two must not
// be I or O in either case.
func ValidateComputerID(s string) error {
	if len(s) != ComputerIDLength {
		return reject(KindInvalidComputerID, ReasonComputerLength)
	}
	for i := 0; i < len(s); i++ {
		if !isASCIIAlphanumeric(s[i]) {
			return reject(KindInvalidComputerID, ReasonComputerCharset)
		}
	}
	if strings.ContainsAny(strings.ToUpper(s[1:]), "IO") {
		return reject(KindInvalidComputerID, ReasonComputerAmbiguous)
	}
	return nil
}

func isASCIILetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isASCIIAlphanumeric(c byte) bool {
	return isASCIILetter(c) || (c >= '0' && c <= '9')
}
