package types

import (
	"fmt"
	"math"
)

// NoMessage marks an absent message reference, e.g. the estimate of the
// genesis block. Sequences never issue it.
const NoMessage = MessageID(math.MaxUint64)

// MessageID is the identity of a message. Ids are issued in creation order,
// so a smaller id always belongs to an older message.
type MessageID uint64

// IsNone reports whether the id is the NoMessage sentinel.
func (id MessageID) IsNone() bool {
	return id == NoMessage
}

// String returns the decimal id, or "none" for the sentinel.
func (id MessageID) String() string {
	if id.IsNone() {
		return "none"
	}
	return fmt.Sprintf("%d", uint64(id))
}
