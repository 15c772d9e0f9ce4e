// Package session holds per-caller state between core operations.
package session

import (
	"sync"

	"github.com/ccollicutt/flightcheck/pkg/record"
)

// Session remembers the last record its owner accepted.
// The zero value is ready to use.
type Session struct {
	mu   sync.Mutex
	last *record.Record
}

// New creates an empty session.
func New() *Session {
	return &Session{}
}

// Remember stores rec as the most recent record.
func (s *Session) Remember(rec record.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = &rec
}

// Last returns the most recent record and whether there is one.
func (s *Session) Last() (record.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return record.Record{}, false
	}
	return *s.last, true
}
