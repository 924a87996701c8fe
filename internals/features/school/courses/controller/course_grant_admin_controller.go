// file: internals/features/school/courses/controller/course_grant_admin_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "pesantrenku_backend/internals/features/school/courses/dto"
	model "pesantrenku_backend/internals/features/school/courses/model"
	helper "pesantrenku_backend/internals/helpers"
)

type CourseGrantAdminController struct {
	DB *gorm.DB
}

func NewCourseGrantAdminController(db *gorm.DB) *CourseGrantAdminController {
	return &CourseGrantAdminController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/a/course-grants
func (h *CourseGrantAdminController) Create(c *fiber.Ctx) error {
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateCourseGrantRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(adminID)
	if err := h.DB.Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Santri sudah punya grant untuk course ini")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat course grant")
	}

	return helper.JsonCreated(c, "Course grant berhasil dibuat", dto.FromCourseGrantModel(*m))
}

/* ======================== LIST ======================== */
// GET /api/a/course-grants?student_id=
func (h *CourseGrantAdminController) List(c *fiber.Ctx) error {
	base := h.DB.Model(&model.CourseGrantModel{})

	if v := strings.TrimSpace(c.Query("student_id")); v != "" {
		studentID, err := uuid.Parse(v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "student_id tidak valid")
		}
		base = base.Where("course_grant_student_id = ?", studentID)
	}

	var rows []model.CourseGrantModel
	if err := base.Order("course_grant_granted_at DESC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromCourseGrantModels(rows))
}

/* ======================== DELETE (SOFT) ======================== */
// DELETE /api/a/course-grants/:id
func (h *CourseGrantAdminController) Delete(c *fiber.Ctx) error {
	grantID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := h.DB.Where("course_grant_id = ?", grantID).Delete(&model.CourseGrantModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
	}

	return helper.JsonOK(c, "Course grant dicabut", fiber.Map{"id": grantID})
}
