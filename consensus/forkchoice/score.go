package forkchoice

import (
	"context"

	types "github.com/cbc-casper/casper/consensus-types/primitives"
	"github.com/cbc-casper/casper/consensus/message"
	"github.com/pkg/errors"
	"go.opencensus.io/trace"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Score returns the total weight of validators whose latest message has block
// on its estimate chain. Only the single chain of designated parents counts;
// a block that a message merely observed through its justification does not.
//
// Every validator in latest must have a weight. A missing weight means the
// index was not built by LatestMessages and is reported as
// ErrUnknownValidatorWeight.
func (f *ForkChoice) Score(
	ctx context.Context,
	block types.MessageID,
	weights types.Weights,
	latest map[types.Validator]*message.Message,
) (types.Weight, error) {
	ctx, span := trace.StartSpan(ctx, "forkchoice.Score")
	defer span.End()
	span.AddAttributes(trace.Int64Attribute("block", int64(block)))

	// Validators are visited in ascending order so floating point
	// accumulation, and therefore tie breaking, is reproducible.
	validators := maps.Keys(latest)
	slices.Sort(validators)

	score := types.Weight(0)
	for _, v := range validators {
		w, ok := weights[v]
		if !ok {
			return 0, errors.Wrapf(ErrUnknownValidatorWeight, "validator %d", v)
		}
		onChain, err := f.onEstimateChain(ctx, latest[v], block)
		if err != nil {
			return 0, err
		}
		if onChain {
			score += w
		}
	}
	return score, nil
}

// onEstimateChain walks from `from` along estimate links and reports whether
// the walk reaches block before running past genesis.
//
// Example, with estimate links pointing left:
//
//	      /- C - E
//	A - B - D
//
// onEstimateChain(E, B) = true, onEstimateChain(E, D) = false.
func (f *ForkChoice) onEstimateChain(ctx context.Context, from *message.Message, block types.MessageID) (bool, error) {
	if from == nil {
		return false, errNilMessage
	}
	if onChain, ok := f.cache.get(from.ID(), block); ok {
		return onChain, nil
	}
	current := from
	onChain := false
	for steps := uint64(0); ; steps++ {
		if current.ID() == block {
			onChain = true
			break
		}
		if !current.HasEstimate() {
			break
		}
		if err := f.checkStep(current, steps); err != nil {
			return false, errors.Wrapf(err, "estimate chain of message %s", from.ID())
		}
		if err := ctx.Err(); err != nil {
			return false, err
		}
		parent, err := f.dag.Message(current.Estimate())
		if err != nil {
			return false, errors.Wrapf(err, "could not get estimate of message %s", current.ID())
		}
		current = parent
	}
	f.cache.add(from.ID(), block, onChain)
	return onChain, nil
}
