// file: internals/features/lembaga/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — standing santri (derived, tidak otoritatif di DB)
// =========================================================

type StudentStanding string

const (
	StudentStandingActive    StudentStanding = "active"
	StudentStandingDefaulter StudentStanding = "defaulter"
	StudentStandingSuspended StudentStanding = "suspended"
)

// =========================================================
// MODEL
// =========================================================

// StudentModel = santri jalur berbayar: akses course digate oleh SPP bulanan.
// Tidak pernah dihapus, hanya dinonaktifkan (is_active=false / soft delete).
type StudentModel struct {
	// PK
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`

	// Identitas login (provisioning oleh admin saat create)
	StudentName         string `gorm:"column:student_name;type:varchar(100);not null" json:"student_name"`
	StudentEmail        string `gorm:"column:student_email;type:varchar(255);not null;uniqueIndex:uq_student_email" json:"student_email"`
	StudentPasswordHash string `gorm:"column:student_password_hash;type:text;not null" json:"-"`

	// SPP bulanan
	StudentMonthlyFeeIDR int  `gorm:"column:student_monthly_fee_idr;not null;check:student_monthly_fee_idr >= 0" json:"student_monthly_fee_idr"`
	StudentIsActive      bool `gorm:"column:student_is_active;not null;default:true;index:ix_student_active" json:"student_is_active"`

	// Blokir eksplisit oleh admin — prioritas di atas standing fee
	StudentAccessBlocked bool       `gorm:"column:student_access_blocked;not null;default:false" json:"student_access_blocked"`
	StudentBlockReason   *string    `gorm:"column:student_block_reason;type:text" json:"student_block_reason,omitempty"`
	StudentBlockedAt     *time.Time `gorm:"column:student_blocked_at" json:"student_blocked_at,omitempty"`
	StudentBlockedBy     *uuid.UUID `gorm:"column:student_blocked_by;type:uuid" json:"student_blocked_by,omitempty"`

	// Snapshot profil dari service lain (foto, alamat, dsb) — opaque
	StudentProfileMeta datatypes.JSON `gorm:"column:student_profile_meta;type:jsonb" json:"student_profile_meta,omitempty"`

	// Timestamps
	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt *time.Time     `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at,omitempty"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"-"`
}

func (StudentModel) TableName() string { return "students" }
