// file: internals/features/finance/fees/service/approval_service.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "pesantrenku_backend/internals/features/finance/fees/model"
)

type ReviewResult struct {
	Request   model.PaymentRequestModel `json:"payment_request"`
	FeeRecord model.FeeRecordModel      `json:"fee_record"`
}

// ApprovePaymentRequest: transisi pending → approved, maksimal sekali.
// Guard-nya conditional update keyed pada status saat ini (compare-and-swap
// dari 'pending'), bukan read-modify-write — dua approve bersamaan pada
// request yang sama tidak mungkin mengkredit ledger dua kali.
// Dalam transaksi yang sama: amount_paid dikredit & status tagihan diturunkan ulang.
func ApprovePaymentRequest(db *gorm.DB, requestID, adminID uuid.UUID, adminRemarks *string) (*ReviewResult, error) {
	var out ReviewResult

	err := db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		res := tx.Model(&model.PaymentRequestModel{}).
			Where("payment_request_id = ? AND payment_request_status = ?", requestID, model.PaymentRequestStatusPending).
			Updates(map[string]interface{}{
				"payment_request_status":        model.PaymentRequestStatusApproved,
				"payment_request_reviewed_by":   adminID,
				"payment_request_reviewed_at":   now,
				"payment_request_admin_remarks": adminRemarks,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return classifyMissedUpdate(tx, requestID)
		}

		var req model.PaymentRequestModel
		if err := tx.Where("payment_request_id = ?", requestID).First(&req).Error; err != nil {
			return err
		}

		// Kredit amount_paid di SQL (monoton naik, dibatasi amount_due)
		if err := tx.Model(&model.FeeRecordModel{}).
			Where("fee_record_id = ?", req.PaymentRequestFeeRecordID).
			Update("fee_record_amount_paid_idr", gorm.Expr(
				"LEAST(fee_record_amount_due_idr, fee_record_amount_paid_idr + ?)",
				req.PaymentRequestAmountIDR,
			)).Error; err != nil {
			return err
		}

		var fee model.FeeRecordModel
		if err := tx.Where("fee_record_id = ?", req.PaymentRequestFeeRecordID).First(&fee).Error; err != nil {
			return err
		}
		if RefreshFeeStatus(&fee, now) {
			if err := tx.Model(&model.FeeRecordModel{}).
				Where("fee_record_id = ?", fee.FeeRecordID).
				Update("fee_record_status", fee.FeeRecordStatus).Error; err != nil {
				return err
			}
		}

		out = ReviewResult{Request: req, FeeRecord: fee}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RejectPaymentRequest: transisi pending → rejected, maksimal sekali.
// Fee record tidak disentuh; tagihan kembali bebas menerima request baru.
func RejectPaymentRequest(db *gorm.DB, requestID, adminID uuid.UUID, reason string, adminRemarks *string) (*model.PaymentRequestModel, error) {
	var req model.PaymentRequestModel

	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.PaymentRequestModel{}).
			Where("payment_request_id = ? AND payment_request_status = ?", requestID, model.PaymentRequestStatusPending).
			Updates(map[string]interface{}{
				"payment_request_status":        model.PaymentRequestStatusRejected,
				"payment_request_reject_reason": reason,
				"payment_request_reviewed_by":   adminID,
				"payment_request_reviewed_at":   time.Now(),
				"payment_request_admin_remarks": adminRemarks,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return classifyMissedUpdate(tx, requestID)
		}
		return tx.Where("payment_request_id = ?", requestID).First(&req).Error
	})
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// classifyMissedUpdate: RowsAffected==0 bisa berarti request tidak ada
// atau sudah direview — bedakan supaya error ke caller presisi.
func classifyMissedUpdate(tx *gorm.DB, requestID uuid.UUID) error {
	var exists model.PaymentRequestModel
	if err := tx.Select("payment_request_id").
		Where("payment_request_id = ?", requestID).
		First(&exists).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPaymentRequestNotFound
		}
		return err
	}
	return ErrAlreadyReviewed
}
