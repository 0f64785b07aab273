package domain

import "go.uber.org/atomic"

// Sequence issues monotonically increasing transaction numbers so that two
// confirmations generated within the same clock tick never collide.
// It is injected into accounts instead of living as hidden package state,
// which lets tests reset it deterministically.
type Sequence struct {
	n atomic.Uint64
}

// NewSequence creates a Sequence starting at zero.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next returns the next transaction number. Safe for concurrent use.
func (s *Sequence) Next() uint64 {
	return s.n.Inc()
}

// Reset rewinds the counter to zero. Intended for tests.
func (s *Sequence) Reset() {
	s.n.Store(0)
}

// SharedSequence is the process-wide default used by accounts that do not
// inject their own Sequence.
var SharedSequence = NewSequence()
