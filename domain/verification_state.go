package domain

import "fmt"

// verificationTransitions is the authoritative admin-approval state machine.
// Only verified restaurants participate in slider ranking.
var verificationTransitions = map[VerificationStatus][]VerificationStatus{
	VerificationPending:      {VerificationManualReview, VerificationVerified, VerificationRejected},
	VerificationManualReview: {VerificationVerified, VerificationRejected},
	VerificationRejected:     {VerificationManualReview},
	VerificationVerified:     {},
}

func ValidVerificationStatus(s VerificationStatus) bool {
	_, ok := verificationTransitions[s]
	return ok
}

// CanTransitionVerification reports whether from -> to is an allowed move.
func CanTransitionVerification(from, to VerificationStatus) error {
	for _, next := range verificationTransitions[from] {
		if next == to {
			return nil
		}
	}
	return &PreconditionError{
		Code:    "INVALID_TRANSITION",
		Message: fmt.Sprintf("cannot move verification status from %s to %s", from, to),
	}
}
