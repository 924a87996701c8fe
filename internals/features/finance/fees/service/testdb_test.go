// file: internals/features/finance/fees/service/testdb_test.go
package service

import (
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// DB GORM di atas koneksi sqlmock — SQL yang dikeluarkan service bisa
// di-assert (urutan statement, rows affected) tanpa Postgres sungguhan.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func feeRecordRows(id, studentID uuid.UUID, due, paid int, status string, dueAt time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"fee_record_id", "fee_record_student_id",
		"fee_record_month", "fee_record_year",
		"fee_record_amount_due_idr", "fee_record_amount_paid_idr",
		"fee_record_status", "fee_record_due_date",
	}).AddRow(id.String(), studentID.String(), 1, 2026, due, paid, status, dueAt)
}

func paymentRequestRows(id, feeID, studentID uuid.UUID, amount int, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"payment_request_id", "payment_request_fee_record_id", "payment_request_student_id",
		"payment_request_amount_idr", "payment_request_method",
		"payment_request_transaction_ref", "payment_request_proof_url",
		"payment_request_status",
	}).AddRow(id.String(), feeID.String(), studentID.String(), amount,
		"transfer_bank", "TRX-001", "https://cdn.example.com/bukti.jpg", status)
}
