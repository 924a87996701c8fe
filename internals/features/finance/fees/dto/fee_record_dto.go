// file: internals/features/finance/fees/dto/fee_record_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "pesantrenku_backend/internals/features/finance/fees/model"
	svc "pesantrenku_backend/internals/features/finance/fees/service"
)

/* ================== REQUESTS ================== */

// Generate tagihan bulanan (month/year opsional, default bulan berjalan)
type GenerateFeesRequest struct {
	Month *int `json:"month" validate:"omitempty,gte=1,lte=12"`
	Year  *int `json:"year"  validate:"omitempty,gte=2000,lte=2100"`
}

// List / Query params (admin)
type ListFeeRecordQuery struct {
	StudentID *uuid.UUID         `query:"student_id" validate:"omitempty"`
	Month     *int               `query:"month"      validate:"omitempty,gte=1,lte=12"`
	Year      *int               `query:"year"       validate:"omitempty,gte=2000,lte=2100"`
	Status    *m.FeeRecordStatus `query:"status"     validate:"omitempty,oneof=pending partial paid overdue"`
}

/* ================== RESPONSES ================== */

type FeeRecordResponse struct {
	FeeRecordID            uuid.UUID         `json:"fee_record_id"`
	FeeRecordStudentID     uuid.UUID         `json:"fee_record_student_id"`
	FeeRecordMonth         int16             `json:"fee_record_month"`
	FeeRecordYear          int16             `json:"fee_record_year"`
	FeeRecordAmountDueIDR  int               `json:"fee_record_amount_due_idr"`
	FeeRecordAmountPaidIDR int               `json:"fee_record_amount_paid_idr"`
	FeeRecordRemainingIDR  int               `json:"fee_record_remaining_idr"`
	FeeRecordStatus        m.FeeRecordStatus `json:"fee_record_status"`
	FeeRecordDueDate       time.Time         `json:"fee_record_due_date"`
	FeeRecordCreatedAt     time.Time         `json:"fee_record_created_at"`
	FeeRecordUpdatedAt     *time.Time        `json:"fee_record_updated_at,omitempty"`
}

func FromFeeRecordModel(x m.FeeRecordModel) FeeRecordResponse {
	return FeeRecordResponse{
		FeeRecordID:            x.FeeRecordID,
		FeeRecordStudentID:     x.FeeRecordStudentID,
		FeeRecordMonth:         x.FeeRecordMonth,
		FeeRecordYear:          x.FeeRecordYear,
		FeeRecordAmountDueIDR:  x.FeeRecordAmountDueIDR,
		FeeRecordAmountPaidIDR: x.FeeRecordAmountPaidIDR,
		FeeRecordRemainingIDR:  x.RemainingIDR(),
		FeeRecordStatus:        x.FeeRecordStatus,
		FeeRecordDueDate:       x.FeeRecordDueDate,
		FeeRecordCreatedAt:     x.FeeRecordCreatedAt,
		FeeRecordUpdatedAt:     x.FeeRecordUpdatedAt,
	}
}

func FromFeeRecordModels(rows []m.FeeRecordModel) []FeeRecordResponse {
	out := make([]FeeRecordResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromFeeRecordModel(r))
	}
	return out
}

// Riwayat fee santri + agregat (endpoint "fee saya")
type MyFeeHistoryResponse struct {
	Items  []FeeRecordResponse `json:"items"`
	Totals svc.FeeTotals       `json:"totals"`
}
