package record

import (
	"fmt"
	"regexp"
	"strconv"
)

// Clock is a time of day with second precision.
type Clock struct {
	Hour   int
	Minute int
	Second int
}

// Valid reports whether every field is inside its range.
func (c Clock) Valid() bool {
	return c.Hour >= 0 && c.Hour <= 23 &&
		c.Minute >= 0 && c.Minute <= 59 &&
		c.Second >= 0 && c.Second <= 59
}

// String renders the canonical zero-padded HH:MM:SS form.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

// TimeFormat is one accepted shape for the time token.
type TimeFormat struct {
	Name    string
	Example string
	pattern *regexp.Regexp
}

// Match extracts hour, minute and second from token.
// The returned clock is not range checked.
func (f *TimeFormat) Match(token string) (Clock, bool) {
	m := f.pattern.FindStringSubmatch(token)
	if len(m) != 4 {
		return Clock{}, false
	}
	// Groups are exactly two ASCII digits, Atoi cannot fail.
	h, _ := strconv.Atoi(m[1])
	mi, _ := strconv.Atoi(m[2])
	s, _ := strconv.Atoi(m[3])
	return Clock{Hour: h, Minute: mi, Second: s}, true
}

// Ordered by priority; the first match wins.
var timeFormats = []*TimeFormat{
	{
		Name:    "colon",
		Example: "09:25:30",
		pattern: regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})$`),
	},
	{
		Name:    "compact",
		Example: "092530",
		pattern: regexp.MustCompile(`^(\d{2})(\d{2})(\d{2})$`),
	},
}

// TimeFormats returns the accepted time shapes in the order they are tried.
func TimeFormats() []*TimeFormat {
	out := make([]*TimeFormat, len(timeFormats))
	copy(out, timeFormats)
	return out
}

// DetectTimeFormat returns the first format matching token, or nil.
func DetectTimeFormat(token string) *TimeFormat {
	for _, f := range timeFormats {
		if _, ok := f.Match(token); ok {
			return f
		}
	}
	return nil
}

// ParseClock parses a time token in any accepted shape and range checks it.
func ParseClock(token string) (Clock, error) {
	for _, f := range timeFormats {
		c, ok := f.Match(token)
		if !ok {
			continue
		}
		if !c.Valid() {
			return Clock{}, reject(KindInvalidTime, ReasonTimeRange)
		}
		return c, nil
	}
	return Clock{}, reject(KindInvalidTime, ReasonTimeShape)
}
