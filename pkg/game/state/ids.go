package state

import (
	"fmt"

	"github.com/google/uuid"
)

// IDSource hands out seat identifiers
type IDSource interface {
	NewID() string
}

// UUIDSource issues random UUIDs
type UUIDSource struct{}

// NewID returns a fresh random UUID string
func (UUIDSource) NewID() string {
	return uuid.New().String()
}

// SequenceSource issues prefix0, prefix1, ... in order
type SequenceSource struct {
	Prefix string
	next   int
}

// NewSequenceSource creates a sequential source with the given prefix
func NewSequenceSource(prefix string) *SequenceSource {
	return &SequenceSource{Prefix: prefix}
}

// NewID returns the next identifier in the sequence
func (s *SequenceSource) NewID() string {
	id := fmt.Sprintf("%s%d", s.Prefix, s.next)
	s.next++
	return id
}
