// Package ids provides identifier generation for newly created records.
package ids

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator produces unique, stable identifiers for new records.
type Generator interface {
	NewID() string
}

// UUID generates random UUIDv4 identifiers.
type UUID struct{}

// NewID returns a new random UUID string.
func (UUID) NewID() string {
	return uuid.NewString()
}

// Sequence is a deterministic generator for tests.
type Sequence struct {
	Prefix string
	n      int
}

// NewID returns prefix-1, prefix-2, ... on successive calls.
func (s *Sequence) NewID() string {
	s.n++
	return fmt.Sprintf("%s-%d", s.Prefix, s.n)
}
