// internals/features/school/courses/routes/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseCtl "pesantrenku_backend/internals/features/school/courses/controller"
)

func CourseAccessUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := courseCtl.NewUserCourseAccessController(db)

	r.Get("/courses/:courseId/access", ctl.CheckMyAccess)
}
