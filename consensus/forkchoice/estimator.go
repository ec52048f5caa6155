package forkchoice

import (
	"context"

	types "github.com/cbc-casper/casper/consensus-types/primitives"
	"github.com/cbc-casper/casper/consensus/message"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.opencensus.io/trace"
	"golang.org/x/sync/errgroup"
)

// Estimate applies the GHOST rule to the justification and returns the head
// block a new message should build upon.
//
// Starting at genesis, the children of the current block within the
// justification are scored and the descent moves into the heaviest one, with
// ties going to the smaller id. The block without children is the estimate.
// When no weighted validator has a message in the justification every score
// is zero, and the descent follows the smallest id at each level.
func (f *ForkChoice) Estimate(
	ctx context.Context,
	justification []types.MessageID,
	genesis types.MessageID,
	weights types.Weights,
) (*message.Message, error) {
	ctx, span := trace.StartSpan(ctx, "forkchoice.Estimate")
	defer span.End()
	calledEstimateCount.Inc()

	head, steps, err := f.estimate(ctx, justification, genesis, weights)
	if err != nil {
		failedEstimateCount.Inc()
		return nil, err
	}
	descentSteps.Observe(float64(steps))
	span.AddAttributes(
		trace.Int64Attribute("head", int64(head.ID())),
		trace.Int64Attribute("steps", int64(steps)),
	)
	log.WithFields(logrus.Fields{
		"head":     head.ID(),
		"steps":    steps,
		"observed": len(justification),
	}).Debug("Computed estimate")
	return head, nil
}

// Head is Estimate returning only the id of the head block.
func (f *ForkChoice) Head(
	ctx context.Context,
	justification []types.MessageID,
	genesis types.MessageID,
	weights types.Weights,
) (types.MessageID, error) {
	head, err := f.Estimate(ctx, justification, genesis, weights)
	if err != nil {
		return types.NoMessage, err
	}
	return head.ID(), nil
}

func (f *ForkChoice) estimate(
	ctx context.Context,
	justification []types.MessageID,
	genesis types.MessageID,
	weights types.Weights,
) (*message.Message, uint64, error) {
	if err := weights.Validate(); err != nil {
		return nil, 0, err
	}
	g, err := f.dag.Message(genesis)
	if err != nil {
		return nil, 0, errors.Wrapf(ErrInvalidGenesis, "%v", err)
	}
	if g.HasEstimate() {
		return nil, 0, errors.Wrapf(ErrInvalidGenesis, "message %s has an estimate", genesis)
	}
	msgs, err := f.dag.Resolve(justification)
	if err != nil {
		return nil, 0, errors.Wrap(err, "could not resolve justification")
	}

	latest := LatestMessages(msgs, weights)
	children := childrenByEstimate(msgs)

	b := g
	for steps := uint64(0); ; steps++ {
		candidates := children[b.ID()]
		if len(candidates) == 0 {
			return b, steps, nil
		}
		// Every step enters a different message of the justification.
		if steps > uint64(len(msgs)) || f.exceedsCap(steps) {
			return nil, steps, errors.Wrapf(ErrUnboundedDescent, "stopped at message %s", b.ID())
		}
		if err := ctx.Err(); err != nil {
			return nil, steps, err
		}
		scores, err := f.scoreChildren(ctx, candidates, weights, latest)
		if err != nil {
			return nil, steps, err
		}
		b = bestChild(candidates, scores)
	}
}

// childrenByEstimate groups messages by their estimate. msgs is ordered by
// id, so every group is too.
func childrenByEstimate(msgs []*message.Message) map[types.MessageID][]*message.Message {
	children := make(map[types.MessageID][]*message.Message)
	for _, m := range msgs {
		if !m.HasEstimate() {
			continue
		}
		children[m.Estimate()] = append(children[m.Estimate()], m)
	}
	return children
}

// scoreChildren scores every candidate. Scores are independent reads of
// immutable messages, so wide forks are scored concurrently.
func (f *ForkChoice) scoreChildren(
	ctx context.Context,
	candidates []*message.Message,
	weights types.Weights,
	latest map[types.Validator]*message.Message,
) ([]types.Weight, error) {
	scoredChildrenCount.Add(float64(len(candidates)))
	scores := make([]types.Weight, len(candidates))

	threshold := f.cfg.ParallelScoreThreshold
	if threshold <= 0 || len(candidates) < threshold {
		for i, c := range candidates {
			s, err := f.Score(ctx, c.ID(), weights, latest)
			if err != nil {
				return nil, err
			}
			scores[i] = s
		}
		return scores, nil
	}

	eg, ctx := errgroup.WithContext(ctx)
	for i, c := range candidates {
		i, c := i, c
		eg.Go(func() error {
			s, err := f.Score(ctx, c.ID(), weights, latest)
			if err != nil {
				return err
			}
			scores[i] = s
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}

// bestChild picks the highest score, breaking ties by the smaller id.
func bestChild(candidates []*message.Message, scores []types.Weight) *message.Message {
	best := 0
	for i := 1; i < len(candidates); i++ {
		if scores[i] > scores[best] ||
			(scores[i] == scores[best] && candidates[i].ID() < candidates[best].ID()) {
			best = i
		}
	}
	return candidates[best]
}
