// internals/features/school/courses/routes/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseCtl "pesantrenku_backend/internals/features/school/courses/controller"
)

func CourseGrantAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := courseCtl.NewCourseGrantAdminController(db)

	grants := r.Group("/course-grants")
	grants.Post("/", ctl.Create)
	grants.Get("/", ctl.List)
	grants.Delete("/:id", ctl.Delete)
}
