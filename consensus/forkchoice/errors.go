package forkchoice

import "github.com/pkg/errors"

var ErrInvalidGenesis = errors.New("invalid genesis reference")
var ErrUnknownValidatorWeight = errors.New("validator in latest message index has no weight")
var ErrUnboundedDescent = errors.New("descent exceeded the maximum number of steps")
var errNilMessage = errors.New("nil message")
