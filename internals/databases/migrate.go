// file: internals/databases/migrate.go
package database

import (
	"log"
	"os"

	feeModel "pesantrenku_backend/internals/features/finance/fees/model"
	studentModel "pesantrenku_backend/internals/features/lembaga/students/model"
	courseModel "pesantrenku_backend/internals/features/school/courses/model"
)

// AutoMigrate opsional (DB_AUTOMIGRATE=true) — di production skema
// dikelola migration terpisah. Constraint yang ditegakkan di sini:
//   - unique (student, month, year) di fee_records → generator idempoten
//   - partial unique pending di payment_requests → satu pending per tagihan
func MigrateIfRequested() {
	if os.Getenv("DB_AUTOMIGRATE") != "true" {
		return
	}
	log.Println("🛠 AutoMigrate dijalankan...")
	if err := DB.AutoMigrate(
		&studentModel.StudentModel{},
		&feeModel.FeeRecordModel{},
		&feeModel.PaymentRequestModel{},
		&courseModel.CourseGrantModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ AutoMigrate selesai.")
}
