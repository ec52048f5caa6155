package forkchoice

import (
	"context"
	"fmt"
	"testing"

	"github.com/cbc-casper/casper/config/params"
	"github.com/cbc-casper/casper/consensus/message"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func Benchmark_Estimate(b *testing.B) {
	steps := []int{100, 500, 1000}

	ctx := context.Background()
	for i := range steps {
		for _, cfg := range []*params.EstimatorConfig{params.MinimalEstimatorConfig(), params.DefaultEstimatorConfig()} {
			b.Run(fmt.Sprintf("%s_messages_%d", cfg.ConfigName, steps[i]), func(b *testing.B) {
				d := setup(b, cfg, equalWeights(fuzzValidators))
				r := rand.New(rand.NewSource(0))
				msgs := []*message.Message{d.genesis}
				for j := 0; j < steps[i]; j++ {
					// Each validator observes a recent window, keeping forks alive.
					from := 0
					if len(msgs) > 20 {
						from = len(msgs) - 20
					}
					msgs = append(msgs, d.place(randomValidator(r), msgs[from+r.Intn(len(msgs)-from)]))
				}
				justification := ids(msgs...)
				b.ResetTimer()
				for j := 0; j < b.N; j++ {
					_, err := d.fc.Estimate(ctx, justification, d.genesis.ID(), d.weights)
					require.NoError(b, err)
				}
			})
		}
	}
}
