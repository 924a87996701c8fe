// file: internals/features/finance/fees/model/payment_request_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — status & metode pembayaran
// =========================================================

type PaymentRequestStatus string

const (
	PaymentRequestStatusPending  PaymentRequestStatus = "pending"
	PaymentRequestStatusApproved PaymentRequestStatus = "approved"
	PaymentRequestStatusRejected PaymentRequestStatus = "rejected"
)

type PaymentMethod string

const (
	PaymentMethodBankTransfer PaymentMethod = "transfer_bank"
	PaymentMethodQRIS         PaymentMethod = "qris"
	PaymentMethodCash         PaymentMethod = "tunai"
)

// =========================================================
// MODEL
// =========================================================

// PaymentRequestModel = klaim pembayaran dari santri terhadap satu fee record,
// menunggu verifikasi manual admin. Sekali direview (approved/rejected) record
// ini immutable; hanya satu request pending per fee record (partial unique index).
type PaymentRequestModel struct {
	// PK
	PaymentRequestID uuid.UUID `gorm:"column:payment_request_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_request_id"`

	// FK → fee_records(fee_record_id)
	// Partial unique: hanya satu baris 'pending' per fee record.
	PaymentRequestFeeRecordID uuid.UUID `gorm:"column:payment_request_fee_record_id;type:uuid;not null;index:ix_payment_request_fee_record;uniqueIndex:uq_payment_request_pending,where:payment_request_status = 'pending'" json:"payment_request_fee_record_id"`

	// FK → students(student_id) — pemilik klaim
	PaymentRequestStudentID uuid.UUID `gorm:"column:payment_request_student_id;type:uuid;not null;index:ix_payment_request_student" json:"payment_request_student_id"`

	// Isi klaim
	PaymentRequestAmountIDR      int           `gorm:"column:payment_request_amount_idr;not null;check:payment_request_amount_idr > 0" json:"payment_request_amount_idr"`
	PaymentRequestMethod         PaymentMethod `gorm:"column:payment_request_method;type:varchar(30);not null" json:"payment_request_method"`
	PaymentRequestTransactionRef string        `gorm:"column:payment_request_transaction_ref;type:varchar(100);not null" json:"payment_request_transaction_ref"`

	// URL bukti transfer (hasil upload service, opaque bagi service ini)
	PaymentRequestProofURL string `gorm:"column:payment_request_proof_url;type:text;not null" json:"payment_request_proof_url"`

	// Status & review
	PaymentRequestStatus       PaymentRequestStatus `gorm:"column:payment_request_status;type:varchar(20);not null;default:'pending';index:ix_payment_request_status" json:"payment_request_status"`
	PaymentRequestStudentNote  *string              `gorm:"column:payment_request_student_note;type:text" json:"payment_request_student_note,omitempty"`
	PaymentRequestAdminRemarks *string              `gorm:"column:payment_request_admin_remarks;type:text" json:"payment_request_admin_remarks,omitempty"`
	PaymentRequestRejectReason *string              `gorm:"column:payment_request_reject_reason;type:text" json:"payment_request_reject_reason,omitempty"`
	PaymentRequestReviewedBy   *uuid.UUID           `gorm:"column:payment_request_reviewed_by;type:uuid" json:"payment_request_reviewed_by,omitempty"`
	PaymentRequestReviewedAt   *time.Time           `gorm:"column:payment_request_reviewed_at" json:"payment_request_reviewed_at,omitempty"`

	// Timestamps
	PaymentRequestSubmittedAt time.Time      `gorm:"column:payment_request_submitted_at;autoCreateTime" json:"payment_request_submitted_at"`
	PaymentRequestUpdatedAt   *time.Time     `gorm:"column:payment_request_updated_at;autoUpdateTime" json:"payment_request_updated_at,omitempty"`
	PaymentRequestDeletedAt   gorm.DeletedAt `gorm:"column:payment_request_deleted_at;index" json:"-"`
}

func (PaymentRequestModel) TableName() string { return "payment_requests" }
