// Package ident provides injectable ID generation so extraction output can
// be made deterministic in tests.
package ident

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator produces unique identifiers within one extraction run.
type Generator interface {
	NewID(prefix string) string
}

// UUID generates random identifiers. This is the production default.
type UUID struct{}

func (UUID) NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// Sequence generates sequential identifiers. Intended for tests, where
// extraction output must be reproducible.
type Sequence struct {
	n int
}

func (s *Sequence) NewID(prefix string) string {
	s.n++
	return fmt.Sprintf("%s-%04d", prefix, s.n)
}
