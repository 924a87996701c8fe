package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	model "pesantrenku_backend/internals/features/school/courses/model"
)

var now = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func TestEvaluateAccess_BlockedTakesPriority(t *testing.T) {
	// grant valid dengan expiry di masa depan pun tetap blocked
	future := now.AddDate(0, 1, 0)
	grant := &model.CourseGrantModel{CourseGrantExpiresAt: &future}

	res := EvaluateAccess(true, strPtr("Fee defaulter"), grant, now)
	assert.Equal(t, AccessBlocked, res.Decision)
	assert.Equal(t, "Fee defaulter", res.Reason)
}

func TestEvaluateAccess_BlockedWithoutReason(t *testing.T) {
	res := EvaluateAccess(true, nil, nil, now)
	assert.Equal(t, AccessBlocked, res.Decision)
	assert.NotEmpty(t, res.Reason)
}

func TestEvaluateAccess_NotEnrolled(t *testing.T) {
	res := EvaluateAccess(false, nil, nil, now)
	assert.Equal(t, AccessNotEnrolled, res.Decision)
}

func TestEvaluateAccess_ExpiredGrant(t *testing.T) {
	past := now.AddDate(0, -1, 0)
	grant := &model.CourseGrantModel{CourseGrantExpiresAt: &past}

	res := EvaluateAccess(false, nil, grant, now)
	assert.Equal(t, AccessBlocked, res.Decision)
	assert.Equal(t, "access expired", res.Reason)
}

func TestEvaluateAccess_Granted(t *testing.T) {
	t.Run("grant tanpa expiry", func(t *testing.T) {
		res := EvaluateAccess(false, nil, &model.CourseGrantModel{}, now)
		assert.Equal(t, AccessGranted, res.Decision)
	})

	t.Run("grant dengan expiry masa depan", func(t *testing.T) {
		future := now.AddDate(0, 1, 0)
		res := EvaluateAccess(false, nil, &model.CourseGrantModel{CourseGrantExpiresAt: &future}, now)
		assert.Equal(t, AccessGranted, res.Decision)
	})
}

// Skenario unblock: setelah flag blokir dicabut, gate kembali granted
// tanpa re-cek standing fee (override admin penuh).
func TestEvaluateAccess_UnblockRestoresAccess(t *testing.T) {
	grant := &model.CourseGrantModel{}

	blocked := EvaluateAccess(true, strPtr("Fee defaulter"), grant, now)
	assert.Equal(t, AccessBlocked, blocked.Decision)

	unblocked := EvaluateAccess(false, nil, grant, now)
	assert.Equal(t, AccessGranted, unblocked.Decision)
}
