package forkchoice

import (
	"context"
	"fmt"

	types "github.com/cbc-casper/casper/consensus-types/primitives"
	"github.com/cbc-casper/casper/consensus/message"
	"github.com/emicklei/dot"
	"go.opencensus.io/trace"
)

// Graph renders the justification as a Graphviz digraph. Every message is a
// box labelled with its id, sender and score, edges point from a message to
// its estimate, and the chain leading to the estimate is coloured green.
func (f *ForkChoice) Graph(
	ctx context.Context,
	justification []types.MessageID,
	genesis types.MessageID,
	weights types.Weights,
) (string, error) {
	ctx, span := trace.StartSpan(ctx, "forkchoice.Graph")
	defer span.End()

	head, err := f.Estimate(ctx, justification, genesis, weights)
	if err != nil {
		return "", err
	}
	canonical, err := f.Chain(ctx, head.ID())
	if err != nil {
		return "", err
	}
	onCanonical := make(map[types.MessageID]bool, len(canonical))
	for _, m := range canonical {
		onCanonical[m.ID()] = true
	}

	msgs, err := f.dag.Resolve(append([]types.MessageID{genesis}, justification...))
	if err != nil {
		return "", err
	}
	latest := LatestMessages(msgs, weights)

	graph := dot.NewGraph(dot.Directed)
	graph.Attr("rankdir", "RL")
	graph.Attr("labeljust", "l")

	nodes := make(map[types.MessageID]dot.Node, len(msgs))
	node := func(m *message.Message, observed bool) (dot.Node, error) {
		if n, ok := nodes[m.ID()]; ok {
			return n, nil
		}
		score, err := f.Score(ctx, m.ID(), weights, latest)
		if err != nil {
			return dot.Node{}, err
		}
		label := fmt.Sprintf("id: %s\n sender: %s\n score: %g", m.ID(), m.Sender(), float64(score))
		n := graph.Node(m.ID().String()).Box().Attr("label", label)
		if !observed {
			n = n.Attr("style", "dashed")
		}
		if onCanonical[m.ID()] {
			n = n.Attr("color", "green")
		}
		nodes[m.ID()] = n
		return n, nil
	}

	for _, m := range msgs {
		if _, err := node(m, true); err != nil {
			return "", err
		}
	}
	for _, m := range msgs {
		if !m.HasEstimate() {
			continue
		}
		parent, err := f.dag.Message(m.Estimate())
		if err != nil {
			return "", err
		}
		// The estimate may lie outside the justification when callers hand
		// in a causally incomplete set; draw it anyway.
		parentNode, err := node(parent, false)
		if err != nil {
			return "", err
		}
		graph.Edge(nodes[m.ID()], parentNode)
	}
	return graph.String(), nil
}
