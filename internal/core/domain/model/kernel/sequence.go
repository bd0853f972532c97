package kernel

import "sync/atomic"

// Sequence hands out strictly increasing integer identifiers starting at 1.
// A Sequence is never reset: the composition root owns one instance for the
// whole process lifetime, and tests create their own to stay isolated.
//
// Next is atomic, so a Sequence shared between goroutines still yields
// unique values.
//
// Example:
//
//	ids := kernel.NewSequence()
//	ids.Next() // 1
//	ids.Next() // 2
type Sequence struct {
	last atomic.Int64
}

// NewSequence creates a Sequence whose first Next call returns 1.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next returns the next identifier.
func (s *Sequence) Next() int {
	return int(s.last.Add(1))
}

// Last returns the most recently issued identifier, or 0 if none was issued yet.
func (s *Sequence) Last() int {
	return int(s.last.Load())
}
