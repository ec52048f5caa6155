// Package forkchoice implements the GHOST estimator over CBC Casper messages:
// starting at genesis, repeatedly descend into the child whose subtree carries
// the most weight of validators' latest messages.
package forkchoice

import (
	"github.com/cbc-casper/casper/config/params"
	types "github.com/cbc-casper/casper/consensus-types/primitives"
	"github.com/cbc-casper/casper/consensus/message"
)

// MessageReader gives read access to immutable messages by id. Every
// estimate it serves must name a message with a smaller id.
type MessageReader interface {
	Message(id types.MessageID) (*message.Message, error)
	Resolve(ids []types.MessageID) ([]*message.Message, error)
}

// ForkChoice computes estimates over the messages of one reader.
type ForkChoice struct {
	dag   MessageReader
	cfg   *params.EstimatorConfig
	cache *chainCache
}

// New returns a fork choice bound to dag. A nil cfg selects the active config.
func New(dag MessageReader, cfg *params.EstimatorConfig) *ForkChoice {
	if cfg == nil {
		cfg = params.ActiveEstimatorConfig()
	}
	return &ForkChoice{
		dag:   dag,
		cfg:   cfg.Copy(),
		cache: newChainCache(cfg.ScoreCacheSize),
	}
}
