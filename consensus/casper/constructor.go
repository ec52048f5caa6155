// Package casper ties the message arena and the GHOST estimator together so
// validators can create messages on top of their current estimate.
package casper

import (
	"context"

	"github.com/cbc-casper/casper/config/params"
	types "github.com/cbc-casper/casper/consensus-types/primitives"
	"github.com/cbc-casper/casper/consensus/forkchoice"
	"github.com/cbc-casper/casper/consensus/message"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.opencensus.io/trace"
)

// Protocol creates messages in one arena.
type Protocol struct {
	arena *message.Arena
	fc    *forkchoice.ForkChoice
}

// New returns a protocol with an empty arena. A nil cfg selects the active
// config.
func New(cfg *params.EstimatorConfig) *Protocol {
	if cfg == nil {
		cfg = params.ActiveEstimatorConfig()
	}
	arena := message.NewArena(cfg)
	return &Protocol{
		arena: arena,
		fc:    forkchoice.New(arena, cfg),
	}
}

// Arena returns the message store.
func (p *Protocol) Arena() *message.Arena {
	return p.arena
}

// ForkChoice returns the estimator bound to the arena.
func (p *Protocol) ForkChoice() *forkchoice.ForkChoice {
	return p.fc
}

// CreateGenesis stores the genesis block.
func (p *Protocol) CreateGenesis() (*message.Message, error) {
	return p.arena.CreateGenesis()
}

// CreateMessage builds the message sender sends after observing
// justification. Its estimate is the fork choice over the justification,
// and exactly one id is consumed when it succeeds.
func (p *Protocol) CreateMessage(
	ctx context.Context,
	sender types.Validator,
	justification []types.MessageID,
	genesis types.MessageID,
	weights types.Weights,
) (*message.Message, error) {
	ctx, span := trace.StartSpan(ctx, "casper.CreateMessage")
	defer span.End()
	span.AddAttributes(trace.Int64Attribute("sender", int64(sender)))

	if sender.IsGenesisSender() {
		rejectedMessageCount.Inc()
		return nil, errors.Wrapf(types.ErrReservedValidator, "sender %s", sender)
	}
	head, err := p.fc.Estimate(ctx, justification, genesis, weights)
	if err != nil {
		rejectedMessageCount.Inc()
		return nil, errors.Wrap(err, "could not compute estimate")
	}
	m, err := p.arena.Append(sender, head.ID(), justification)
	if err != nil {
		rejectedMessageCount.Inc()
		return nil, errors.Wrap(err, "could not store message")
	}
	createdMessageCount.Inc()
	log.WithFields(logrus.Fields{
		"id":       m.ID(),
		"sender":   sender,
		"estimate": head.ID(),
	}).Debug("Created message on estimate")
	return m, nil
}

// Graph renders the justification with the scores of every message.
func (p *Protocol) Graph(
	ctx context.Context,
	justification []types.MessageID,
	genesis types.MessageID,
	weights types.Weights,
) (string, error) {
	return p.fc.Graph(ctx, justification, genesis, weights)
}
