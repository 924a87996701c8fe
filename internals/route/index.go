// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeRoutes "pesantrenku_backend/internals/features/finance/fees/routes"
	studentRoutes "pesantrenku_backend/internals/features/lembaga/students/routes"
	courseRoutes "pesantrenku_backend/internals/features/school/courses/routes"
	authMw "pesantrenku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	api := app.Group("/api", authMw.AuthMiddleware())

	// 🛡️ Admin — generate tagihan, review pembayaran, blokir akses
	admin := api.Group("/a",
		authMw.OnlyRoles("Hanya admin yang boleh mengakses fitur ini", "admin", "dkm"),
	)
	studentRoutes.StudentAdminRoutes(admin, db)
	feeRoutes.FeeAdminRoutes(admin, db)
	courseRoutes.CourseGrantAdminRoutes(admin, db)

	// 🎓 Santri — fee saya, submit pembayaran, cek akses course
	user := api.Group("/u",
		authMw.OnlyRoles("Fitur ini khusus akun santri", "student"),
	)
	feeRoutes.FeeUserRoutes(user, db)
	courseRoutes.CourseAccessUserRoutes(user, db)
}
