// Package message holds the CBC Casper message model and the arena that owns
// every message of a run.
package message

import (
	"fmt"

	types "github.com/cbc-casper/casper/consensus-types/primitives"
)

// Message is an immutable vote for a block. A message is itself a block: its
// estimate is the parent it builds upon and its justification is everything
// the sender had observed when creating it.
type Message struct {
	id            types.MessageID
	sender        types.Validator
	estimate      types.MessageID
	justification []types.MessageID
}

// New builds a message outside of any arena, for readers that keep messages
// elsewhere. The justification is copied, sorted and deduplicated. New does
// not check the references; Arena.Append does.
func New(id types.MessageID, sender types.Validator, estimate types.MessageID, justification []types.MessageID) *Message {
	return &Message{
		id:            id,
		sender:        sender,
		estimate:      estimate,
		justification: dedupe(justification),
	}
}

// ID of the message.
func (m *Message) ID() types.MessageID {
	return m.id
}

// Sender of the message.
func (m *Message) Sender() types.Validator {
	return m.sender
}

// Estimate is the id of the parent block, or types.NoMessage for genesis.
func (m *Message) Estimate() types.MessageID {
	return m.estimate
}

// HasEstimate is false only for the genesis block.
func (m *Message) HasEstimate() bool {
	return !m.estimate.IsNone()
}

// Justification returns a copy of the observed message ids in ascending order.
func (m *Message) Justification() []types.MessageID {
	cpy := make([]types.MessageID, len(m.justification))
	copy(cpy, m.justification)
	return cpy
}

// Justifies reports whether id is part of the justification.
func (m *Message) Justifies(id types.MessageID) bool {
	// justification is sorted ascending.
	for _, j := range m.justification {
		if j == id {
			return true
		}
		if j > id {
			return false
		}
	}
	return false
}

// IsGenesis reports whether this is the genesis block.
func (m *Message) IsGenesis() bool {
	return !m.HasEstimate()
}

func (m *Message) String() string {
	return fmt.Sprintf("Message id: %s, sender: %s, estimate: %s", m.id, m.sender, m.estimate)
}
