package forkchoice

import (
	"context"

	types "github.com/cbc-casper/casper/consensus-types/primitives"
	"github.com/cbc-casper/casper/consensus/message"
	"github.com/pkg/errors"
	"go.opencensus.io/trace"
)

// Chain returns the estimate chain of head, starting at genesis.
func (f *ForkChoice) Chain(ctx context.Context, head types.MessageID) ([]*message.Message, error) {
	ctx, span := trace.StartSpan(ctx, "forkchoice.Chain")
	defer span.End()

	current, err := f.dag.Message(head)
	if err != nil {
		return nil, err
	}
	chain := []*message.Message{current}
	for steps := uint64(0); current.HasEstimate(); steps++ {
		if err := f.checkStep(current, steps); err != nil {
			return nil, errors.Wrapf(err, "estimate chain of message %s", head)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		current, err = f.dag.Message(current.Estimate())
		if err != nil {
			return nil, err
		}
		chain = append(chain, current)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain, nil
}

// checkStep guards one step from current to its estimate. Estimates always
// name an older message, so a walk along them reaches genesis unless some
// estimate fails to decrease the id.
func (f *ForkChoice) checkStep(current *message.Message, steps uint64) error {
	if current.Estimate() >= current.ID() {
		return errors.Wrapf(ErrUnboundedDescent, "message %s has estimate %s", current.ID(), current.Estimate())
	}
	if f.exceedsCap(steps) {
		return errors.Wrapf(ErrUnboundedDescent, "reached %d steps", steps)
	}
	return nil
}

func (f *ForkChoice) exceedsCap(steps uint64) bool {
	return f.cfg.MaxDescentSteps > 0 && steps >= f.cfg.MaxDescentSteps
}
