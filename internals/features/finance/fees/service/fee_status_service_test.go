package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	model "pesantrenku_backend/internals/features/finance/fees/model"
	studentModel "pesantrenku_backend/internals/features/lembaga/students/model"
)

var (
	dueDate = time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	before  = dueDate.AddDate(0, 0, -3)
	after   = dueDate.AddDate(0, 0, 3)
)

func TestDeriveFeeStatus(t *testing.T) {
	tests := []struct {
		name string
		paid int
		due  int
		now  time.Time
		want model.FeeRecordStatus
	}{
		{"belum bayar, belum jatuh tempo", 0, 5000, before, model.FeeRecordStatusPending},
		{"belum bayar, lewat jatuh tempo", 0, 5000, after, model.FeeRecordStatusOverdue},
		{"bayar sebagian", 2000, 5000, before, model.FeeRecordStatusPartial},
		{"lunas", 5000, 5000, before, model.FeeRecordStatusPaid},
		{"lunas lewat jatuh tempo tetap paid", 5000, 5000, after, model.FeeRecordStatusPaid},
		{"bayar lebih tetap paid", 6000, 5000, before, model.FeeRecordStatusPaid},
		{"tepat di due date belum overdue", 0, 5000, dueDate, model.FeeRecordStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveFeeStatus(tt.paid, tt.due, dueDate, tt.now)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Urutan derivasi: partial menang atas overdue. Bayaran sebagian yang
// lewat jatuh tempo tetap 'partial', bukan 'overdue'.
func TestDeriveFeeStatus_PartialWinsOverOverdue(t *testing.T) {
	got := DeriveFeeStatus(2000, 5000, dueDate, after)
	assert.Equal(t, model.FeeRecordStatusPartial, got)
}

func TestRefreshFeeStatus(t *testing.T) {
	rec := model.FeeRecordModel{
		FeeRecordAmountDueIDR:  5000,
		FeeRecordAmountPaidIDR: 0,
		FeeRecordStatus:        model.FeeRecordStatusPending,
		FeeRecordDueDate:       dueDate,
	}

	changed := RefreshFeeStatus(&rec, before)
	assert.False(t, changed)
	assert.Equal(t, model.FeeRecordStatusPending, rec.FeeRecordStatus)

	changed = RefreshFeeStatus(&rec, after)
	assert.True(t, changed)
	assert.Equal(t, model.FeeRecordStatusOverdue, rec.FeeRecordStatus)

	// idempoten: refresh ulang tidak mengubah lagi
	changed = RefreshFeeStatus(&rec, after)
	assert.False(t, changed)
}

func TestComputeStanding(t *testing.T) {
	unpaid := model.FeeRecordModel{
		FeeRecordAmountDueIDR: 5000,
		FeeRecordDueDate:      dueDate,
	}
	paid := model.FeeRecordModel{
		FeeRecordAmountDueIDR:  5000,
		FeeRecordAmountPaidIDR: 5000,
		FeeRecordDueDate:       dueDate,
	}
	partial := model.FeeRecordModel{
		FeeRecordAmountDueIDR:  5000,
		FeeRecordAmountPaidIDR: 2000,
		FeeRecordDueDate:       dueDate,
	}

	t.Run("blokir eksplisit selalu suspended", func(t *testing.T) {
		got := ComputeStanding(true, []model.FeeRecordModel{paid}, before)
		assert.Equal(t, studentModel.StudentStandingSuspended, got)
	})

	t.Run("ada tagihan overdue jadi defaulter", func(t *testing.T) {
		got := ComputeStanding(false, []model.FeeRecordModel{paid, unpaid}, after)
		assert.Equal(t, studentModel.StudentStandingDefaulter, got)
	})

	t.Run("partial lewat due date bukan defaulter", func(t *testing.T) {
		got := ComputeStanding(false, []model.FeeRecordModel{partial}, after)
		assert.Equal(t, studentModel.StudentStandingActive, got)
	})

	t.Run("semua lunas active", func(t *testing.T) {
		got := ComputeStanding(false, []model.FeeRecordModel{paid}, after)
		assert.Equal(t, studentModel.StudentStandingActive, got)
	})

	t.Run("tanpa riwayat fee active", func(t *testing.T) {
		got := ComputeStanding(false, nil, after)
		assert.Equal(t, studentModel.StudentStandingActive, got)
	})
}

func TestComputeFeeTotals(t *testing.T) {
	records := []model.FeeRecordModel{
		{FeeRecordAmountDueIDR: 5000, FeeRecordAmountPaidIDR: 5000, FeeRecordDueDate: dueDate},
		{FeeRecordAmountDueIDR: 5000, FeeRecordAmountPaidIDR: 2000, FeeRecordDueDate: dueDate},
		{FeeRecordAmountDueIDR: 5000, FeeRecordAmountPaidIDR: 0, FeeRecordDueDate: dueDate},
	}

	totals := ComputeFeeTotals(records, after)
	assert.Equal(t, 15000, totals.TotalDueIDR)
	assert.Equal(t, 7000, totals.TotalPaidIDR)
	assert.Equal(t, 8000, totals.TotalOutstandingIDR)
	assert.Equal(t, 1, totals.OverdueCount) // hanya yang belum bayar sama sekali
}

func TestRemainingIDR(t *testing.T) {
	rec := model.FeeRecordModel{FeeRecordAmountDueIDR: 5000, FeeRecordAmountPaidIDR: 2000}
	assert.Equal(t, 3000, rec.RemainingIDR())

	// tidak pernah negatif
	rec.FeeRecordAmountPaidIDR = 6000
	assert.Equal(t, 0, rec.RemainingIDR())
}
