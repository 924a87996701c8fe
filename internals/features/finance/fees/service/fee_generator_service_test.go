package service

import (
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Validasi periode terjadi sebelum akses DB.
func TestGenerateMonthlyFees_InvalidPeriod(t *testing.T) {
	_, err := GenerateMonthlyFees(nil, 0, 2026, 10)
	assert.Error(t, err)

	_, err = GenerateMonthlyFees(nil, 13, 2026, 10)
	assert.Error(t, err)

	_, err = GenerateMonthlyFees(nil, 1, 1999, 10)
	assert.Error(t, err)

	_, err = GenerateMonthlyFees(nil, 1, 2101, 10)
	assert.Error(t, err)
}

// Generate dua kali untuk periode yang sama: run kedua tidak membuat baris
// baru — ON CONFLICT DO NOTHING pada unique (student, month, year).
func TestGenerateMonthlyFees_SecondRunSkipsExisting(t *testing.T) {
	db, mock := newMockDB(t)

	s1 := uuid.NewString()
	s2 := uuid.NewString()
	studentRows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"student_id", "student_monthly_fee_idr", "student_is_active"}).
			AddRow(s1, 150000, true).
			AddRow(s2, 200000, true)
	}

	// Run pertama: tiap insert mengembalikan baris baru.
	mock.ExpectQuery(`SELECT \* FROM "students"`).WillReturnRows(studentRows())
	mock.ExpectQuery(`INSERT INTO "fee_records".*ON CONFLICT.*DO NOTHING`).
		WillReturnRows(sqlmock.NewRows([]string{"fee_record_id"}).AddRow(uuid.NewString()))
	mock.ExpectQuery(`INSERT INTO "fee_records".*ON CONFLICT.*DO NOTHING`).
		WillReturnRows(sqlmock.NewRows([]string{"fee_record_id"}).AddRow(uuid.NewString()))

	res, err := GenerateMonthlyFees(db, 1, 2026, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Created)
	assert.Equal(t, 0, res.Skipped)

	// Run kedua, periode sama: conflict → tidak ada RETURNING → skipped.
	mock.ExpectQuery(`SELECT \* FROM "students"`).WillReturnRows(studentRows())
	mock.ExpectQuery(`INSERT INTO "fee_records"`).
		WillReturnRows(sqlmock.NewRows([]string{"fee_record_id"}))
	mock.ExpectQuery(`INSERT INTO "fee_records"`).
		WillReturnRows(sqlmock.NewRows([]string{"fee_record_id"}))

	res, err = GenerateMonthlyFees(db, 1, 2026, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Created)
	assert.Equal(t, 2, res.Skipped)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Gagal insert untuk satu santri tidak menggagalkan batch.
func TestGenerateMonthlyFees_FailureDoesNotAbortBatch(t *testing.T) {
	db, mock := newMockDB(t)

	s1 := uuid.NewString()
	s2 := uuid.NewString()
	mock.ExpectQuery(`SELECT \* FROM "students"`).
		WillReturnRows(sqlmock.NewRows([]string{"student_id", "student_monthly_fee_idr", "student_is_active"}).
			AddRow(s1, 150000, true).
			AddRow(s2, 200000, true))
	mock.ExpectQuery(`INSERT INTO "fee_records"`).
		WillReturnError(errors.New("pq: connection reset by peer"))
	mock.ExpectQuery(`INSERT INTO "fee_records"`).
		WillReturnRows(sqlmock.NewRows([]string{"fee_record_id"}).AddRow(uuid.NewString()))

	res, err := GenerateMonthlyFees(db, 1, 2026, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, 1, res.Created)
	require.Len(t, res.Students, 2)
	assert.Equal(t, GenerateOutcomeFailed, res.Students[0].Outcome)
	assert.Equal(t, GenerateOutcomeCreated, res.Students[1].Outcome)
	assert.NoError(t, mock.ExpectationsWereMet())
}
