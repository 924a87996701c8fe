package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	m "pesantrenku_backend/internals/features/finance/fees/model"
)

func TestSubmitPaymentRequest_Validation(t *testing.T) {
	v := validator.New()

	valid := SubmitPaymentRequest{
		AmountIDR:      5000,
		Method:         m.PaymentMethodBankTransfer,
		TransactionRef: "TRX-20260115-001",
		ProofURL:       "https://cdn.example.com/proofs/abc.jpg",
	}
	assert.NoError(t, v.Struct(valid))

	t.Run("nominal nol ditolak", func(t *testing.T) {
		r := valid
		r.AmountIDR = 0
		assert.Error(t, v.Struct(r))
	})

	t.Run("nominal negatif ditolak", func(t *testing.T) {
		r := valid
		r.AmountIDR = -100
		assert.Error(t, v.Struct(r))
	})

	t.Run("metode di luar enum ditolak", func(t *testing.T) {
		r := valid
		r.Method = "pulsa"
		assert.Error(t, v.Struct(r))
	})

	t.Run("proof_url harus URL", func(t *testing.T) {
		r := valid
		r.ProofURL = "bukan-url"
		assert.Error(t, v.Struct(r))
	})

	t.Run("transaction_ref wajib", func(t *testing.T) {
		r := valid
		r.TransactionRef = ""
		assert.Error(t, v.Struct(r))
	})
}

func TestRejectPaymentRequest_ReasonRequired(t *testing.T) {
	v := validator.New()

	assert.Error(t, v.Struct(RejectPaymentRequest{}))
	assert.Error(t, v.Struct(RejectPaymentRequest{Reason: "ab"})) // terlalu pendek
	assert.NoError(t, v.Struct(RejectPaymentRequest{Reason: "Bukti transfer buram"}))
}

func TestGenerateFeesRequest_Validation(t *testing.T) {
	v := validator.New()

	// kosong = default bulan berjalan, valid
	assert.NoError(t, v.Struct(GenerateFeesRequest{}))

	bad := 13
	assert.Error(t, v.Struct(GenerateFeesRequest{Month: &bad}))

	year := 1999
	assert.Error(t, v.Struct(GenerateFeesRequest{Year: &year}))
}
