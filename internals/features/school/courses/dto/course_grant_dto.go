// file: internals/features/school/courses/dto/course_grant_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "pesantrenku_backend/internals/features/school/courses/model"
)

/* ================== REQUESTS ================== */

type CreateCourseGrantRequest struct {
	CourseGrantStudentID uuid.UUID  `json:"course_grant_student_id" validate:"required"`
	CourseGrantCourseID  uuid.UUID  `json:"course_grant_course_id"  validate:"required"`
	CourseGrantExpiresAt *time.Time `json:"course_grant_expires_at" validate:"omitempty"`
	CourseGrantNotes     *string    `json:"course_grant_notes"      validate:"omitempty,max=500"`
}

func (r CreateCourseGrantRequest) ToModel(grantedBy uuid.UUID) *m.CourseGrantModel {
	return &m.CourseGrantModel{
		CourseGrantStudentID: r.CourseGrantStudentID,
		CourseGrantCourseID:  r.CourseGrantCourseID,
		CourseGrantGrantedAt: time.Now(),
		CourseGrantExpiresAt: r.CourseGrantExpiresAt,
		CourseGrantGrantedBy: &grantedBy,
		CourseGrantNotes:     r.CourseGrantNotes,
	}
}

/* ================== RESPONSES ================== */

type CourseGrantResponse struct {
	CourseGrantID        uuid.UUID  `json:"course_grant_id"`
	CourseGrantStudentID uuid.UUID  `json:"course_grant_student_id"`
	CourseGrantCourseID  uuid.UUID  `json:"course_grant_course_id"`
	CourseGrantGrantedAt time.Time  `json:"course_grant_granted_at"`
	CourseGrantExpiresAt *time.Time `json:"course_grant_expires_at,omitempty"`
	CourseGrantNotes     *string    `json:"course_grant_notes,omitempty"`
}

func FromCourseGrantModel(x m.CourseGrantModel) CourseGrantResponse {
	return CourseGrantResponse{
		CourseGrantID:        x.CourseGrantID,
		CourseGrantStudentID: x.CourseGrantStudentID,
		CourseGrantCourseID:  x.CourseGrantCourseID,
		CourseGrantGrantedAt: x.CourseGrantGrantedAt,
		CourseGrantExpiresAt: x.CourseGrantExpiresAt,
		CourseGrantNotes:     x.CourseGrantNotes,
	}
}

func FromCourseGrantModels(rows []m.CourseGrantModel) []CourseGrantResponse {
	out := make([]CourseGrantResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromCourseGrantModel(r))
	}
	return out
}
