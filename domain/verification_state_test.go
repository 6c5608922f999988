package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionVerification(t *testing.T) {
	allowed := []struct{ from, to VerificationStatus }{
		{VerificationPending, VerificationVerified},
		{VerificationPending, VerificationManualReview},
		{VerificationPending, VerificationRejected},
		{VerificationManualReview, VerificationVerified},
		{VerificationManualReview, VerificationRejected},
		{VerificationRejected, VerificationManualReview},
	}
	for _, tr := range allowed {
		assert.NoError(t, CanTransitionVerification(tr.from, tr.to), "%s -> %s", tr.from, tr.to)
	}

	denied := []struct{ from, to VerificationStatus }{
		{VerificationVerified, VerificationPending},
		{VerificationVerified, VerificationRejected},
		{VerificationRejected, VerificationVerified},
		{VerificationPending, VerificationPending},
	}
	for _, tr := range denied {
		err := CanTransitionVerification(tr.from, tr.to)
		assert.Error(t, err, "%s -> %s", tr.from, tr.to)

		pe, ok := AsPrecondition(err)
		assert.True(t, ok)
		assert.Equal(t, "INVALID_TRANSITION", pe.Code)
	}
}

func TestValidVerificationStatus(t *testing.T) {
	assert.True(t, ValidVerificationStatus(VerificationPending))
	assert.True(t, ValidVerificationStatus(VerificationVerified))
	assert.False(t, ValidVerificationStatus("approved"))
}
