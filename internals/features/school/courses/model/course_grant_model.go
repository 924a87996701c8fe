// file: internals/features/school/courses/model/course_grant_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CourseGrantModel = hak akses eksplisit satu santri ke satu course.
// Berdiri sendiri dari standing SPP: grant manual admin dan enrollment
// berbasis fee sama-sama direkam di sini. Expiry dievaluasi lazy saat
// akses, tidak ada background sweep.
type CourseGrantModel struct {
	// PK
	CourseGrantID uuid.UUID `gorm:"column:course_grant_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_grant_id"`

	// FK → students(student_id); course_id opaque (katalog course di service lain)
	CourseGrantStudentID uuid.UUID `gorm:"column:course_grant_student_id;type:uuid;not null;index:ix_course_grant_student;uniqueIndex:uq_course_grant_student_course,priority:1" json:"course_grant_student_id"`
	CourseGrantCourseID  uuid.UUID `gorm:"column:course_grant_course_id;type:uuid;not null;index:ix_course_grant_course;uniqueIndex:uq_course_grant_student_course,priority:2" json:"course_grant_course_id"`

	CourseGrantGrantedAt time.Time  `gorm:"column:course_grant_granted_at;not null;default:now()" json:"course_grant_granted_at"`
	CourseGrantExpiresAt *time.Time `gorm:"column:course_grant_expires_at" json:"course_grant_expires_at,omitempty"`
	CourseGrantGrantedBy *uuid.UUID `gorm:"column:course_grant_granted_by;type:uuid" json:"course_grant_granted_by,omitempty"`
	CourseGrantNotes     *string    `gorm:"column:course_grant_notes;type:text" json:"course_grant_notes,omitempty"`

	// Timestamps
	CourseGrantCreatedAt time.Time      `gorm:"column:course_grant_created_at;autoCreateTime" json:"course_grant_created_at"`
	CourseGrantUpdatedAt *time.Time     `gorm:"column:course_grant_updated_at;autoUpdateTime" json:"course_grant_updated_at,omitempty"`
	CourseGrantDeletedAt gorm.DeletedAt `gorm:"column:course_grant_deleted_at;index" json:"-"`
}

func (CourseGrantModel) TableName() string { return "course_grants" }
