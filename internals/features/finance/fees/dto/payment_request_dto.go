// file: internals/features/finance/fees/dto/payment_request_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "pesantrenku_backend/internals/features/finance/fees/model"
)

/* ================== REQUESTS ================== */

// Submit klaim pembayaran (santri). proof_url wajib sudah berupa URL hasil
// upload service — service ini tidak menerima file.
type SubmitPaymentRequest struct {
	AmountIDR      int             `json:"amount_idr"       validate:"required,gt=0"`
	Method         m.PaymentMethod `json:"method"           validate:"required,oneof=transfer_bank qris tunai"`
	TransactionRef string          `json:"transaction_ref"  validate:"required,max=100"`
	ProofURL       string          `json:"proof_url"        validate:"required,url"`
	StudentNote    *string         `json:"student_note"     validate:"omitempty,max=500"`
}

// Approve (admin) — remarks opsional
type ApprovePaymentRequest struct {
	AdminRemarks *string `json:"admin_remarks" validate:"omitempty,max=500"`
}

// Reject (admin) — alasan wajib
type RejectPaymentRequest struct {
	Reason       string  `json:"reason"        validate:"required,min=3,max=500"`
	AdminRemarks *string `json:"admin_remarks" validate:"omitempty,max=500"`
}

/* ================== RESPONSES ================== */

type PaymentRequestResponse struct {
	PaymentRequestID             uuid.UUID              `json:"payment_request_id"`
	PaymentRequestFeeRecordID    uuid.UUID              `json:"payment_request_fee_record_id"`
	PaymentRequestStudentID      uuid.UUID              `json:"payment_request_student_id"`
	PaymentRequestAmountIDR      int                    `json:"payment_request_amount_idr"`
	PaymentRequestMethod         m.PaymentMethod        `json:"payment_request_method"`
	PaymentRequestTransactionRef string                 `json:"payment_request_transaction_ref"`
	PaymentRequestProofURL       string                 `json:"payment_request_proof_url"`
	PaymentRequestStatus         m.PaymentRequestStatus `json:"payment_request_status"`
	PaymentRequestStudentNote    *string                `json:"payment_request_student_note,omitempty"`
	PaymentRequestAdminRemarks   *string                `json:"payment_request_admin_remarks,omitempty"`
	PaymentRequestRejectReason   *string                `json:"payment_request_reject_reason,omitempty"`
	PaymentRequestReviewedBy     *uuid.UUID             `json:"payment_request_reviewed_by,omitempty"`
	PaymentRequestReviewedAt     *time.Time             `json:"payment_request_reviewed_at,omitempty"`
	PaymentRequestSubmittedAt    time.Time              `json:"payment_request_submitted_at"`
}

func FromPaymentRequestModel(x m.PaymentRequestModel) PaymentRequestResponse {
	return PaymentRequestResponse{
		PaymentRequestID:             x.PaymentRequestID,
		PaymentRequestFeeRecordID:    x.PaymentRequestFeeRecordID,
		PaymentRequestStudentID:      x.PaymentRequestStudentID,
		PaymentRequestAmountIDR:      x.PaymentRequestAmountIDR,
		PaymentRequestMethod:         x.PaymentRequestMethod,
		PaymentRequestTransactionRef: x.PaymentRequestTransactionRef,
		PaymentRequestProofURL:       x.PaymentRequestProofURL,
		PaymentRequestStatus:         x.PaymentRequestStatus,
		PaymentRequestStudentNote:    x.PaymentRequestStudentNote,
		PaymentRequestAdminRemarks:   x.PaymentRequestAdminRemarks,
		PaymentRequestRejectReason:   x.PaymentRequestRejectReason,
		PaymentRequestReviewedBy:     x.PaymentRequestReviewedBy,
		PaymentRequestReviewedAt:     x.PaymentRequestReviewedAt,
		PaymentRequestSubmittedAt:    x.PaymentRequestSubmittedAt,
	}
}

func FromPaymentRequestModels(rows []m.PaymentRequestModel) []PaymentRequestResponse {
	out := make([]PaymentRequestResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromPaymentRequestModel(r))
	}
	return out
}

// Response review (approve): request + fee record hasil kredit
type ReviewResponse struct {
	PaymentRequest PaymentRequestResponse `json:"payment_request"`
	FeeRecord      FeeRecordResponse      `json:"fee_record"`
}
