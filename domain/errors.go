package domain

import "errors"

// ErrNotFound is wrapped by repositories when a referenced record does not
// resolve. Callers map it to a 404 without retrying.
var ErrNotFound = errors.New("record not found")

// ErrPaymentUnverified means a payment event could not be confirmed as
// genuinely completed against the processor. It must never be treated as
// success, regardless of what the redirect claimed.
var ErrPaymentUnverified = errors.New("payment could not be verified with processor")

// PreconditionError is an expected business rejection ("nothing to pay",
// "already paid", "monthly limit reached"). The message is user-facing.
type PreconditionError struct {
	Code    string
	Message string
	Amount  float64
}

func (e *PreconditionError) Error() string {
	return e.Message
}

// AsPrecondition unwraps err into a PreconditionError if it is one.
func AsPrecondition(err error) (*PreconditionError, bool) {
	var pe *PreconditionError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
