package message

import (
	"sync"

	"github.com/cbc-casper/casper/config/params"
	types "github.com/cbc-casper/casper/consensus-types/primitives"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// Arena owns every message of a run. Messages reference each other only by
// id, and an id is resolvable for as long as the arena lives.
type Arena struct {
	lock     sync.RWMutex
	seq      *Sequence
	messages []*Message
	byID     map[types.MessageID]*Message
	genesis  types.MessageID
}

// NewArena returns an empty arena whose sequence starts at cfg.FirstMessageID.
// A nil cfg selects the active config.
func NewArena(cfg *params.EstimatorConfig) *Arena {
	if cfg == nil {
		cfg = params.ActiveEstimatorConfig()
	}
	return &Arena{
		seq:     NewSequence(cfg.FirstMessageID),
		byID:    make(map[types.MessageID]*Message),
		genesis: types.NoMessage,
	}
}

// CreateGenesis stores the unique genesis block, consuming one id.
func (a *Arena) CreateGenesis() (*Message, error) {
	a.lock.Lock()
	defer a.lock.Unlock()

	if !a.genesis.IsNone() {
		return nil, ErrGenesisExists
	}
	id, err := a.seq.Next()
	if err != nil {
		return nil, err
	}
	m := &Message{
		id:            id,
		sender:        types.GenesisSender,
		estimate:      types.NoMessage,
		justification: []types.MessageID{},
	}
	a.insert(m)
	a.genesis = id
	messagesCreatedCount.WithLabelValues("genesis").Inc()
	log.WithField("id", id).Debug("Created genesis block")
	return m, nil
}

// Append stores a new message built on estimate, consuming one id. Every
// referenced id must already be stored, which keeps references pointing
// strictly backwards in creation order.
func (a *Arena) Append(sender types.Validator, estimate types.MessageID, justification []types.MessageID) (*Message, error) {
	a.lock.Lock()
	defer a.lock.Unlock()

	m, err := a.newMessage(sender, estimate, justification)
	if err != nil {
		rejectedMessagesCount.Inc()
		return nil, err
	}
	a.insert(m)
	messagesCreatedCount.WithLabelValues("message").Inc()
	log.WithFields(logrus.Fields{
		"id":       m.id,
		"sender":   sender,
		"estimate": estimate,
		"observed": len(m.justification),
	}).Debug("Created message")
	return m, nil
}

// newMessage validates the references and assigns an id. Requires a.lock.
func (a *Arena) newMessage(sender types.Validator, estimate types.MessageID, justification []types.MessageID) (*Message, error) {
	if a.genesis.IsNone() {
		return nil, ErrNoGenesis
	}
	if sender.IsGenesisSender() {
		return nil, types.ErrReservedValidator
	}
	if len(justification) == 0 {
		return nil, ErrEmptyJustification
	}
	j := dedupe(justification)
	for _, id := range j {
		if _, ok := a.byID[id]; !ok {
			return nil, errors.Wrapf(ErrUnknownMessage, "justification references message %s", id)
		}
	}
	if _, ok := a.byID[estimate]; !ok {
		return nil, errors.Wrapf(ErrUnknownMessage, "estimate references message %s", estimate)
	}
	if estimate != a.genesis && !slices.Contains(j, estimate) {
		return nil, errors.Wrapf(ErrEstimateNotJustified, "estimate %s", estimate)
	}
	id, err := a.seq.Next()
	if err != nil {
		return nil, err
	}
	return &Message{
		id:            id,
		sender:        sender,
		estimate:      estimate,
		justification: j,
	}, nil
}

func (a *Arena) insert(m *Message) {
	a.messages = append(a.messages, m)
	a.byID[m.id] = m
}

// Message returns the stored message with the given id.
func (a *Arena) Message(id types.MessageID) (*Message, error) {
	a.lock.RLock()
	defer a.lock.RUnlock()
	m, ok := a.byID[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownMessage, "message %s", id)
	}
	return m, nil
}

// HasMessage reports whether id is stored in the arena.
func (a *Arena) HasMessage(id types.MessageID) bool {
	a.lock.RLock()
	defer a.lock.RUnlock()
	_, ok := a.byID[id]
	return ok
}

// Resolve looks up every id, dropping duplicates. The result is ordered by id.
func (a *Arena) Resolve(ids []types.MessageID) ([]*Message, error) {
	a.lock.RLock()
	defer a.lock.RUnlock()
	unique := dedupe(ids)
	msgs := make([]*Message, len(unique))
	for i, id := range unique {
		m, ok := a.byID[id]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownMessage, "message %s", id)
		}
		msgs[i] = m
	}
	return msgs, nil
}

// Genesis returns the genesis block.
func (a *Arena) Genesis() (*Message, error) {
	a.lock.RLock()
	defer a.lock.RUnlock()
	if a.genesis.IsNone() {
		return nil, ErrNoGenesis
	}
	return a.byID[a.genesis], nil
}

// Len is the number of stored messages.
func (a *Arena) Len() int {
	a.lock.RLock()
	defer a.lock.RUnlock()
	return len(a.messages)
}

// Messages returns every stored message in creation order.
func (a *Arena) Messages() []*Message {
	a.lock.RLock()
	defer a.lock.RUnlock()
	msgs := make([]*Message, len(a.messages))
	copy(msgs, a.messages)
	return msgs
}

func dedupe(ids []types.MessageID) []types.MessageID {
	cpy := make([]types.MessageID, len(ids))
	copy(cpy, ids)
	slices.Sort(cpy)
	return slices.Compact(cpy)
}
