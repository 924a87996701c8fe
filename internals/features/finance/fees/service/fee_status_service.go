// file: internals/features/finance/fees/service/fee_status_service.go
package service

import (
	"time"

	studentModel "pesantrenku_backend/internals/features/lembaga/students/model"

	model "pesantrenku_backend/internals/features/finance/fees/model"
)

// DeriveFeeStatus menurunkan status tagihan murni dari fieldnya.
// Urutan cek WAJIB dipertahankan: paid → partial → overdue → pending.
// Konsekuensinya bayaran parsial yang lewat jatuh tempo tetap 'partial',
// bukan 'overdue' (overdue hanya untuk yang belum bayar sama sekali).
func DeriveFeeStatus(amountPaid, amountDue int, dueDate, now time.Time) model.FeeRecordStatus {
	switch {
	case amountPaid >= amountDue:
		return model.FeeRecordStatusPaid
	case amountPaid > 0:
		return model.FeeRecordStatusPartial
	case now.After(dueDate):
		return model.FeeRecordStatusOverdue
	default:
		return model.FeeRecordStatusPending
	}
}

// RefreshFeeStatus menyamakan status tersimpan dengan derivasinya.
// Return true kalau berubah (perlu persist).
func RefreshFeeStatus(m *model.FeeRecordModel, now time.Time) bool {
	derived := DeriveFeeStatus(m.FeeRecordAmountPaidIDR, m.FeeRecordAmountDueIDR, m.FeeRecordDueDate, now)
	if m.FeeRecordStatus == derived {
		return false
	}
	m.FeeRecordStatus = derived
	return true
}

// ComputeStanding menurunkan standing santri:
// blokir eksplisit → suspended; ada tagihan overdue → defaulter; sisanya active.
// Dihitung on demand supaya tidak pernah basi.
func ComputeStanding(accessBlocked bool, records []model.FeeRecordModel, now time.Time) studentModel.StudentStanding {
	if accessBlocked {
		return studentModel.StudentStandingSuspended
	}
	for _, r := range records {
		if DeriveFeeStatus(r.FeeRecordAmountPaidIDR, r.FeeRecordAmountDueIDR, r.FeeRecordDueDate, now) == model.FeeRecordStatusOverdue {
			return studentModel.StudentStandingDefaulter
		}
	}
	return studentModel.StudentStandingActive
}

// FeeTotals = agregat riwayat tagihan untuk response "fee saya".
type FeeTotals struct {
	TotalDueIDR         int `json:"total_due_idr"`
	TotalPaidIDR        int `json:"total_paid_idr"`
	TotalOutstandingIDR int `json:"total_outstanding_idr"`
	OverdueCount        int `json:"overdue_count"`
}

func ComputeFeeTotals(records []model.FeeRecordModel, now time.Time) FeeTotals {
	var t FeeTotals
	for _, r := range records {
		t.TotalDueIDR += r.FeeRecordAmountDueIDR
		t.TotalPaidIDR += r.FeeRecordAmountPaidIDR
		t.TotalOutstandingIDR += r.RemainingIDR()
		if DeriveFeeStatus(r.FeeRecordAmountPaidIDR, r.FeeRecordAmountDueIDR, r.FeeRecordDueDate, now) == model.FeeRecordStatusOverdue {
			t.OverdueCount++
		}
	}
	return t
}
