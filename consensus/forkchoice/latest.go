package forkchoice

import (
	types "github.com/cbc-casper/casper/consensus-types/primitives"
	"github.com/cbc-casper/casper/consensus/message"
)

// LatestMessages maps every weighted validator to its newest message in the
// justification. Senders missing from weights are ignored, and validators
// without a message are absent from the result.
func LatestMessages(justification []*message.Message, weights types.Weights) map[types.Validator]*message.Message {
	latest := make(map[types.Validator]*message.Message)
	for _, m := range justification {
		if m == nil {
			continue
		}
		if _, ok := weights[m.Sender()]; !ok {
			continue
		}
		// Ids are unique, so the newest message is unambiguous.
		if cur, ok := latest[m.Sender()]; !ok || m.ID() > cur.ID() {
			latest[m.Sender()] = m
		}
	}
	return latest
}
