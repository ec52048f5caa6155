package message

import (
	types "github.com/cbc-casper/casper/consensus-types/primitives"
)

// Sequence issues strictly increasing message ids. It is not safe for
// concurrent use; the arena serializes access to it.
type Sequence struct {
	next types.MessageID
}

// NewSequence returns a sequence whose first id is first.
func NewSequence(first uint64) *Sequence {
	return &Sequence{next: types.MessageID(first)}
}

// Next consumes and returns the next id.
func (s *Sequence) Next() (types.MessageID, error) {
	if s.next.IsNone() {
		return types.NoMessage, ErrSequenceExhausted
	}
	id := s.next
	s.next++
	return id, nil
}

// Peek returns the id the next call to Next would issue.
func (s *Sequence) Peek() types.MessageID {
	return s.next
}
