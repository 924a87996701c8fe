// file: internals/features/school/courses/controller/user_course_access_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	studentModel "pesantrenku_backend/internals/features/lembaga/students/model"
	model "pesantrenku_backend/internals/features/school/courses/model"
	service "pesantrenku_backend/internals/features/school/courses/service"
	helper "pesantrenku_backend/internals/helpers"
)

type UserCourseAccessController struct {
	DB *gorm.DB
}

func NewUserCourseAccessController(db *gorm.DB) *UserCourseAccessController {
	return &UserCourseAccessController{DB: db}
}

/* ======================== CEK AKSES ======================== */
// GET /api/u/courses/:courseId/access — dikonsumsi course-content delivery
// pada setiap percobaan akses.
func (h *UserCourseAccessController) CheckMyAccess(c *fiber.Ctx) error {
	studentID, err := helper.GetStudentIDFromToken(c)
	if err != nil {
		return err
	}
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Course ID tidak valid")
	}

	var student studentModel.StudentModel
	if err := h.DB.Where("student_id = ?", studentID).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Santri tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var grant *model.CourseGrantModel
	var row model.CourseGrantModel
	err = h.DB.
		Where("course_grant_student_id = ? AND course_grant_course_id = ?", studentID, courseID).
		First(&row).Error
	switch {
	case err == nil:
		grant = &row
	case errors.Is(err, gorm.ErrRecordNotFound):
		grant = nil
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	result := service.EvaluateAccess(student.StudentAccessBlocked, student.StudentBlockReason, grant, time.Now())
	return helper.JsonOK(c, "OK", result)
}
