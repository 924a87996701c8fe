// file: internals/features/lembaga/students/dto/student_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "pesantrenku_backend/internals/features/lembaga/students/model"
)

/* ================== REQUESTS ================== */

// Create santri berbayar + provisioning kredensial login
type CreateStudentRequest struct {
	StudentName          string `json:"student_name"            validate:"required,min=2,max=100"`
	StudentEmail         string `json:"student_email"           validate:"required,email"`
	StudentPassword      string `json:"student_password"        validate:"required,min=8"`
	StudentMonthlyFeeIDR int    `json:"student_monthly_fee_idr" validate:"required,gt=0"`
}

// Block akses — alasan wajib
type BlockStudentRequest struct {
	Reason string `json:"reason" validate:"required,min=3,max=500"`
}

// Unblock — catatan opsional
type UnblockStudentRequest struct {
	Note *string `json:"note" validate:"omitempty,max=500"`
}

/* ================== RESPONSES ================== */

type StudentResponse struct {
	StudentID            uuid.UUID         `json:"student_id"`
	StudentName          string            `json:"student_name"`
	StudentEmail         string            `json:"student_email"`
	StudentMonthlyFeeIDR int               `json:"student_monthly_fee_idr"`
	StudentIsActive      bool              `json:"student_is_active"`
	StudentAccessBlocked bool              `json:"student_access_blocked"`
	StudentBlockReason   *string           `json:"student_block_reason,omitempty"`
	StudentBlockedAt     *time.Time        `json:"student_blocked_at,omitempty"`
	StudentStanding      m.StudentStanding `json:"student_standing"`
	StudentCreatedAt     time.Time         `json:"student_created_at"`
}

func FromStudentModel(x m.StudentModel, standing m.StudentStanding) StudentResponse {
	return StudentResponse{
		StudentID:            x.StudentID,
		StudentName:          x.StudentName,
		StudentEmail:         x.StudentEmail,
		StudentMonthlyFeeIDR: x.StudentMonthlyFeeIDR,
		StudentIsActive:      x.StudentIsActive,
		StudentAccessBlocked: x.StudentAccessBlocked,
		StudentBlockReason:   x.StudentBlockReason,
		StudentBlockedAt:     x.StudentBlockedAt,
		StudentStanding:      standing,
		StudentCreatedAt:     x.StudentCreatedAt,
	}
}
