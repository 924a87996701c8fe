// file: internals/features/finance/fees/service/errors.go
package service

import "errors"

// Kondisi-kondisi yang expected & recoverable — controller memetakan ke
// HTTP status + error_code, tidak pernah fatal untuk proses.
var (
	ErrFeeRecordNotFound       = errors.New("fee record tidak ditemukan")
	ErrPaymentRequestNotFound  = errors.New("payment request tidak ditemukan")
	ErrAlreadyPaid             = errors.New("tagihan sudah lunas")
	ErrDuplicatePendingRequest = errors.New("masih ada payment request pending untuk tagihan ini")
	ErrAlreadyReviewed         = errors.New("payment request sudah direview")
	ErrAmountExceedsRemaining  = errors.New("nominal melebihi sisa tagihan")
)
