// file: internals/features/finance/fees/model/fee_record_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — status tagihan bulanan
// =========================================================

type FeeRecordStatus string

const (
	FeeRecordStatusPending FeeRecordStatus = "pending"
	FeeRecordStatusPartial FeeRecordStatus = "partial"
	FeeRecordStatusPaid    FeeRecordStatus = "paid"
	FeeRecordStatusOverdue FeeRecordStatus = "overdue"
)

// =========================================================
// MODEL
// =========================================================

// FeeRecordModel = kewajiban SPP satu santri untuk satu periode (bulan, tahun).
// Satu santri hanya boleh punya satu record per periode (unique composite).
type FeeRecordModel struct {
	// PK
	FeeRecordID uuid.UUID `gorm:"column:fee_record_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_record_id"`

	// FK → students(student_id)
	FeeRecordStudentID uuid.UUID `gorm:"column:fee_record_student_id;type:uuid;not null;index:ix_fee_record_student;uniqueIndex:uq_fee_record_period,priority:1" json:"fee_record_student_id"`

	// Periode
	FeeRecordMonth int16 `gorm:"column:fee_record_month;type:smallint;not null;uniqueIndex:uq_fee_record_period,priority:2" json:"fee_record_month"` // 1..12
	FeeRecordYear  int16 `gorm:"column:fee_record_year;type:smallint;not null;uniqueIndex:uq_fee_record_period,priority:3"  json:"fee_record_year"`  // 2000..2100

	// Nominal
	FeeRecordAmountDueIDR  int `gorm:"column:fee_record_amount_due_idr;not null;check:fee_record_amount_due_idr >= 0" json:"fee_record_amount_due_idr"`
	FeeRecordAmountPaidIDR int `gorm:"column:fee_record_amount_paid_idr;not null;default:0;check:fee_record_amount_paid_idr >= 0" json:"fee_record_amount_paid_idr"`

	// Status tersimpan — harus selalu konsisten dengan derivasi
	// (amount_paid, amount_due, due_date, now); satu-satunya jalur mutasi
	// amount_paid adalah approval di service.
	FeeRecordStatus  FeeRecordStatus `gorm:"column:fee_record_status;type:varchar(20);not null;default:'pending';index:ix_fee_record_status" json:"fee_record_status"`
	FeeRecordDueDate time.Time       `gorm:"column:fee_record_due_date;type:date;not null" json:"fee_record_due_date"`

	// Timestamps
	FeeRecordCreatedAt time.Time      `gorm:"column:fee_record_created_at;autoCreateTime" json:"fee_record_created_at"`
	FeeRecordUpdatedAt *time.Time     `gorm:"column:fee_record_updated_at;autoUpdateTime" json:"fee_record_updated_at,omitempty"`
	FeeRecordDeletedAt gorm.DeletedAt `gorm:"column:fee_record_deleted_at;index"          json:"-"`
}

func (FeeRecordModel) TableName() string { return "fee_records" }

// Sisa tagihan yang belum terbayar.
func (m FeeRecordModel) RemainingIDR() int {
	r := m.FeeRecordAmountDueIDR - m.FeeRecordAmountPaidIDR
	if r < 0 {
		return 0
	}
	return r
}
