// file: internals/features/finance/fees/service/payment_submit_service.go
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "pesantrenku_backend/internals/features/finance/fees/model"
)

type SubmitPaymentInput struct {
	FeeRecordID    uuid.UUID
	StudentID      uuid.UUID
	AmountIDR      int
	Method         model.PaymentMethod
	TransactionRef string
	ProofURL       string
	StudentNote    *string
}

// SubmitPaymentRequest mencatat klaim pembayaran santri dalam status pending.
// Tidak menyentuh amount_paid — itu hanya terjadi saat approval.
// Guard "maksimal satu pending per fee record" ditegakkan oleh partial unique
// index di DB, bukan sekadar validasi aplikasi sebelum insert.
func SubmitPaymentRequest(db *gorm.DB, in SubmitPaymentInput) (*model.PaymentRequestModel, error) {
	var req *model.PaymentRequestModel

	err := db.Transaction(func(tx *gorm.DB) error {
		// Lock row tagihan supaya cek lunas & sisa konsisten dengan insert-nya
		var fee model.FeeRecordModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("fee_record_id = ? AND fee_record_student_id = ?", in.FeeRecordID, in.StudentID).
			First(&fee).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFeeRecordNotFound
			}
			return err
		}

		now := time.Now()
		if DeriveFeeStatus(fee.FeeRecordAmountPaidIDR, fee.FeeRecordAmountDueIDR, fee.FeeRecordDueDate, now) == model.FeeRecordStatusPaid {
			return ErrAlreadyPaid
		}
		if in.AmountIDR <= 0 || in.AmountIDR > fee.RemainingIDR() {
			return ErrAmountExceedsRemaining
		}

		m := model.PaymentRequestModel{
			PaymentRequestFeeRecordID:    in.FeeRecordID,
			PaymentRequestStudentID:      in.StudentID,
			PaymentRequestAmountIDR:      in.AmountIDR,
			PaymentRequestMethod:         in.Method,
			PaymentRequestTransactionRef: in.TransactionRef,
			PaymentRequestProofURL:       in.ProofURL,
			PaymentRequestStatus:         model.PaymentRequestStatusPending,
			PaymentRequestStudentNote:    in.StudentNote,
		}
		if err := tx.Create(&m).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicatePendingRequest
			}
			return err
		}
		req = &m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

// isUniqueViolation: deteksi pelanggaran unique constraint dari Postgres.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
