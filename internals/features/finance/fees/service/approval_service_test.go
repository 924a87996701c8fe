// file: internals/features/finance/fees/service/approval_service_test.go
package service

import (
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "pesantrenku_backend/internals/features/finance/fees/model"
)

// Approve yang sukses: conditional update keyed status pending, kredit
// amount_paid lewat LEAST, lalu status tagihan diturunkan ulang — semuanya
// dalam satu transaksi.
func TestApprovePaymentRequest_CreditsOnce(t *testing.T) {
	db, mock := newMockDB(t)

	requestID := uuid.New()
	adminID := uuid.New()
	feeID := uuid.New()
	studentID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "payment_requests" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "payment_requests"`).
		WillReturnRows(paymentRequestRows(requestID, feeID, studentID, 5000, "approved"))
	// kredit dibatasi amount_due di SQL, bukan di aplikasi
	mock.ExpectExec(`UPDATE "fee_records" SET "fee_record_amount_paid_idr"=LEAST\(fee_record_amount_due_idr`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "fee_records"`).
		WillReturnRows(feeRecordRows(feeID, studentID, 5000, 5000, "pending", dueDate))
	// paid != pending tersimpan → ada transisi status
	mock.ExpectExec(`UPDATE "fee_records" SET "fee_record_status"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	out, err := ApprovePaymentRequest(db, requestID, adminID, nil)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentRequestStatusApproved, out.Request.PaymentRequestStatus)
	assert.Equal(t, model.FeeRecordStatusPaid, out.FeeRecord.FeeRecordStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Approve kedua pada request yang sama: conditional update tidak kena baris
// (status sudah bukan pending) → ErrAlreadyReviewed, dan fee_records TIDAK
// pernah disentuh lagi — kredit hanya terjadi sekali.
func TestApprovePaymentRequest_SecondApproveAlreadyReviewed(t *testing.T) {
	db, mock := newMockDB(t)

	requestID := uuid.New()
	adminID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "payment_requests" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT "payment_request_id" FROM "payment_requests"`).
		WillReturnRows(sqlmock.NewRows([]string{"payment_request_id"}).AddRow(requestID.String()))
	mock.ExpectRollback()

	out, err := ApprovePaymentRequest(db, requestID, adminID, nil)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Request tidak ada sama sekali → ErrPaymentRequestNotFound, bukan ErrAlreadyReviewed.
func TestApprovePaymentRequest_NotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "payment_requests" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT "payment_request_id" FROM "payment_requests"`).
		WillReturnRows(sqlmock.NewRows([]string{"payment_request_id"}))
	mock.ExpectRollback()

	out, err := ApprovePaymentRequest(db, uuid.New(), uuid.New(), nil)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrPaymentRequestNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Reject yang sukses tidak menyentuh fee_records sama sekali.
func TestRejectPaymentRequest_LeavesFeeUntouched(t *testing.T) {
	db, mock := newMockDB(t)

	requestID := uuid.New()
	adminID := uuid.New()
	feeID := uuid.New()
	studentID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "payment_requests" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "payment_requests"`).
		WillReturnRows(paymentRequestRows(requestID, feeID, studentID, 5000, "rejected"))
	mock.ExpectCommit()

	req, err := RejectPaymentRequest(db, requestID, adminID, "Bukti transfer buram", nil)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentRequestStatusRejected, req.PaymentRequestStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Reject pada request yang sudah direview → ErrAlreadyReviewed.
func TestRejectPaymentRequest_AlreadyReviewed(t *testing.T) {
	db, mock := newMockDB(t)

	requestID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "payment_requests" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT "payment_request_id" FROM "payment_requests"`).
		WillReturnRows(sqlmock.NewRows([]string{"payment_request_id"}).AddRow(requestID.String()))
	mock.ExpectRollback()

	req, err := RejectPaymentRequest(db, requestID, uuid.New(), "Bukti transfer buram", nil)
	assert.Nil(t, req)
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
