// file: internals/features/finance/fees/service/fee_generator_service.go
package service

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "pesantrenku_backend/internals/features/finance/fees/model"
	studentModel "pesantrenku_backend/internals/features/lembaga/students/model"
)

// Hasil generate per santri: created / skipped (sudah ada) / failed.
type GenerateOutcome string

const (
	GenerateOutcomeCreated GenerateOutcome = "created"
	GenerateOutcomeSkipped GenerateOutcome = "skipped"
	GenerateOutcomeFailed  GenerateOutcome = "failed"
)

type GenerateStudentResult struct {
	StudentID uuid.UUID       `json:"student_id"`
	Outcome   GenerateOutcome `json:"outcome"`
	Error     string          `json:"error,omitempty"`
}

type GenerateResult struct {
	Month    int                     `json:"month"`
	Year     int                     `json:"year"`
	DueDate  time.Time               `json:"due_date"`
	Created  int                     `json:"created"`
	Skipped  int                     `json:"skipped"`
	Failed   int                     `json:"failed"`
	Students []GenerateStudentResult `json:"students"`
}

// GenerateMonthlyFees membuat fee record (month, year) untuk semua santri
// berbayar yang aktif. Idempoten: insert per santri pakai ON CONFLICT
// DO NOTHING pada unique (student, month, year) — dipanggil dua kali
// (tombol diklik ulang, request diretry) tidak pernah menduplikasi.
// Gagal untuk satu santri tidak menggagalkan batch.
func GenerateMonthlyFees(db *gorm.DB, month, year, dueDay int) (GenerateResult, error) {
	if month < 1 || month > 12 {
		return GenerateResult{}, fmt.Errorf("bulan %d tidak valid", month)
	}
	if year < 2000 || year > 2100 {
		return GenerateResult{}, fmt.Errorf("tahun %d tidak valid", year)
	}
	if dueDay < 1 || dueDay > 28 {
		dueDay = 10
	}
	dueDate := time.Date(year, time.Month(month), dueDay, 0, 0, 0, 0, time.UTC)

	var students []studentModel.StudentModel
	if err := db.
		Where("student_is_active = ? AND student_monthly_fee_idr > 0", true).
		Order("student_created_at ASC").
		Find(&students).Error; err != nil {
		return GenerateResult{}, err
	}

	res := GenerateResult{
		Month:    month,
		Year:     year,
		DueDate:  dueDate,
		Students: make([]GenerateStudentResult, 0, len(students)),
	}

	for _, s := range students {
		rec := model.FeeRecordModel{
			FeeRecordStudentID:     s.StudentID,
			FeeRecordMonth:         int16(month),
			FeeRecordYear:          int16(year),
			FeeRecordAmountDueIDR:  s.StudentMonthlyFeeIDR,
			FeeRecordAmountPaidIDR: 0,
			FeeRecordStatus:        model.FeeRecordStatusPending,
			FeeRecordDueDate:       dueDate,
		}

		// Atomic "insert if absent": biarkan unique constraint yang memutuskan,
		// bukan check-then-insert (race antar dua invocation generator).
		tx := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "fee_record_student_id"},
				{Name: "fee_record_month"},
				{Name: "fee_record_year"},
			},
			DoNothing: true,
		}).Create(&rec)

		out := GenerateStudentResult{StudentID: s.StudentID}
		switch {
		case tx.Error != nil:
			log.Printf("[ERROR] generate SPP %d/%d student=%s: %v", month, year, s.StudentID, tx.Error)
			out.Outcome = GenerateOutcomeFailed
			out.Error = tx.Error.Error()
			res.Failed++
		case tx.RowsAffected == 0:
			out.Outcome = GenerateOutcomeSkipped
			res.Skipped++
		default:
			out.Outcome = GenerateOutcomeCreated
			res.Created++
		}
		res.Students = append(res.Students, out)
	}

	return res, nil
}
