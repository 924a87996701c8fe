// file: internals/features/school/courses/service/access_gate_service.go
package service

import (
	"time"

	model "pesantrenku_backend/internals/features/school/courses/model"
)

type AccessDecision string

const (
	AccessGranted     AccessDecision = "granted"
	AccessBlocked     AccessDecision = "blocked"
	AccessNotEnrolled AccessDecision = "not_enrolled"
)

type AccessResult struct {
	Decision AccessDecision `json:"decision"`
	Reason   string         `json:"reason,omitempty"`
}

// EvaluateAccess = satu-satunya titik keputusan akses course.
// Urutan cek:
//  1. flag blokir eksplisit admin — prioritas di atas segalanya,
//     termasuk grant yang masih valid
//  2. tidak ada grant/enrollment → not_enrolled
//  3. grant kedaluwarsa (dievaluasi lazy, tanpa background sweep) → blocked
//  4. sisanya → granted
func EvaluateAccess(accessBlocked bool, blockReason *string, grant *model.CourseGrantModel, now time.Time) AccessResult {
	if accessBlocked {
		reason := "akses diblokir admin"
		if blockReason != nil && *blockReason != "" {
			reason = *blockReason
		}
		return AccessResult{Decision: AccessBlocked, Reason: reason}
	}
	if grant == nil {
		return AccessResult{Decision: AccessNotEnrolled}
	}
	if grant.CourseGrantExpiresAt != nil && now.After(*grant.CourseGrantExpiresAt) {
		return AccessResult{Decision: AccessBlocked, Reason: "access expired"}
	}
	return AccessResult{Decision: AccessGranted}
}
