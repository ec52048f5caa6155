package forkchoice

import (
	"context"
	"testing"

	"github.com/cbc-casper/casper/config/params"
	types "github.com/cbc-casper/casper/consensus-types/primitives"
	"github.com/cbc-casper/casper/consensus/message"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// testDAG builds messages the way a validator would: estimate first, then
// store the message on top of it.
type testDAG struct {
	t       testing.TB
	arena   *message.Arena
	fc      *ForkChoice
	genesis *message.Message
	weights types.Weights
}

func setup(t testing.TB, cfg *params.EstimatorConfig, weights types.Weights) *testDAG {
	arena := message.NewArena(cfg)
	g, err := arena.CreateGenesis()
	require.NoError(t, err)
	return &testDAG{
		t:       t,
		arena:   arena,
		fc:      New(arena, cfg),
		genesis: g,
		weights: weights,
	}
}

// equalWeights gives validators 1..n a weight of 1.
func equalWeights(n int) types.Weights {
	w := make(types.Weights, n)
	for i := 1; i <= n; i++ {
		w[types.Validator(i)] = 1
	}
	return w
}

func (d *testDAG) build(sender types.Validator, justification ...*message.Message) *message.Message {
	ids := ids(justification...)
	head, err := d.fc.Estimate(context.Background(), ids, d.genesis.ID(), d.weights)
	require.NoError(d.t, err)
	m, err := d.arena.Append(sender, head.ID(), ids)
	require.NoError(d.t, err)
	return m
}

// place stores a message with an explicit estimate, bypassing the estimator.
func (d *testDAG) place(sender types.Validator, estimate *message.Message, justification ...*message.Message) *message.Message {
	m, err := d.arena.Append(sender, estimate.ID(), ids(append(justification, estimate)...))
	require.NoError(d.t, err)
	return m
}

func ids(msgs ...*message.Message) []types.MessageID {
	out := make([]types.MessageID, len(msgs))
	for i, m := range msgs {
		out[i] = m.ID()
	}
	return out
}

// mapReader serves hand built messages, including ones that break the arena's
// invariants.
type mapReader map[types.MessageID]*message.Message

func newMapReader(msgs ...*message.Message) mapReader {
	r := make(mapReader)
	for _, m := range msgs {
		r[m.ID()] = m
	}
	return r
}

func (r mapReader) Message(id types.MessageID) (*message.Message, error) {
	m, ok := r[id]
	if !ok {
		return nil, errors.Wrapf(message.ErrUnknownMessage, "message %s", id)
	}
	return m, nil
}

func (r mapReader) Resolve(ids []types.MessageID) ([]*message.Message, error) {
	seen := make(map[types.MessageID]*message.Message)
	for _, id := range ids {
		m, err := r.Message(id)
		if err != nil {
			return nil, err
		}
		seen[id] = m
	}
	keys := maps.Keys(seen)
	slices.Sort(keys)
	out := make([]*message.Message, len(keys))
	for i, id := range keys {
		out[i] = seen[id]
	}
	return out, nil
}
