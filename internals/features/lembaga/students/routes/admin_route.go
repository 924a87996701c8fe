// internals/features/lembaga/students/routes/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentCtl "pesantrenku_backend/internals/features/lembaga/students/controller"
)

func StudentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := studentCtl.NewStudentAdminController(db)

	students := r.Group("/students")
	students.Post("/", ctl.Create)
	students.Get("/", ctl.List)
	students.Post("/:id/block", ctl.Block)
	students.Post("/:id/unblock", ctl.Unblock)
	students.Post("/:id/deactivate", ctl.Deactivate)
}
