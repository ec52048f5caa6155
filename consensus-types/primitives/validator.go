package types

import (
	"fmt"
)

// GenesisSender is the synthetic author of the genesis block. It is never
// assigned to a real validator.
const GenesisSender = Validator(0)

// Validator identifies a message author.
type Validator uint64

// IsGenesisSender reports whether v is the reserved genesis author.
func (v Validator) IsGenesisSender() bool {
	return v == GenesisSender
}

// String returns the decimal form of the validator id.
func (v Validator) String() string {
	return fmt.Sprintf("%d", uint64(v))
}
