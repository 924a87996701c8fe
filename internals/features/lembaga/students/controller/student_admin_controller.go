// file: internals/features/lembaga/students/controller/student_admin_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/configs"
	feeModel "pesantrenku_backend/internals/features/finance/fees/model"
	feeService "pesantrenku_backend/internals/features/finance/fees/service"
	dto "pesantrenku_backend/internals/features/lembaga/students/dto"
	model "pesantrenku_backend/internals/features/lembaga/students/model"
	helper "pesantrenku_backend/internals/helpers"
)

type StudentAdminController struct {
	DB *gorm.DB
}

func NewStudentAdminController(db *gorm.DB) *StudentAdminController {
	return &StudentAdminController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/a/students — buat santri berbayar + provisioning kredensial
func (h *StudentAdminController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.StudentPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	m := model.StudentModel{
		StudentName:          strings.TrimSpace(req.StudentName),
		StudentEmail:         strings.ToLower(strings.TrimSpace(req.StudentEmail)),
		StudentPasswordHash:  string(hashed),
		StudentMonthlyFeeIDR: req.StudentMonthlyFeeIDR,
		StudentIsActive:      true,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Email sudah terdaftar")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat santri")
	}

	return helper.JsonCreated(c, "Santri berhasil dibuat", dto.FromStudentModel(m, model.StudentStandingActive))
}

/* ======================== LIST ======================== */
// GET /api/a/students — santri berbayar + standing + status blokir
func (h *StudentAdminController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.StudentModel{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var students []model.StudentModel
	if err := base.
		Order("student_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&students).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	// Standing dihitung on demand dari riwayat fee (tidak disimpan → tidak basi)
	now := time.Now()
	out := make([]dto.StudentResponse, 0, len(students))
	for _, s := range students {
		var fees []feeModel.FeeRecordModel
		if err := h.DB.Where("fee_record_student_id = ?", s.StudentID).Find(&fees).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		standing := feeService.ComputeStanding(s.StudentAccessBlocked, fees, now)
		out = append(out, dto.FromStudentModel(s, standing))
	}

	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage, len(out))
	return helper.JsonList(c, "OK", out, &pg)
}

/* ======================== BLOCK ======================== */
// POST /api/a/students/:id/block — set flag blokir eksplisit (alasan wajib)
func (h *StudentAdminController) Block(c *fiber.Ctx) error {
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.BlockStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"reason": {"alasan blokir wajib diisi (3..500 karakter)"},
		})
	}

	now := time.Now()
	res := h.DB.Model(&model.StudentModel{}).
		Where("student_id = ?", studentID).
		Updates(map[string]interface{}{
			"student_access_blocked": true,
			"student_block_reason":   req.Reason,
			"student_blocked_at":     now,
			"student_blocked_by":     adminID,
		})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Santri tidak ditemukan")
	}

	return h.respondWithStudent(c, studentID, "Akses santri diblokir")
}

/* ======================== UNBLOCK ======================== */
// POST /api/a/students/:id/unblock — clear flag blokir.
// Default: override admin penuh, TANPA re-cek standing fee (perilaku lama).
// Kalau FEE_UNBLOCK_REQUIRE_SETTLED=true, unblock ditolak selama masih
// ada tagihan overdue.
func (h *StudentAdminController) Unblock(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UnblockStudentRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
		}
	}

	if configs.UnblockRequireSettled {
		var fees []feeModel.FeeRecordModel
		if err := h.DB.Where("fee_record_student_id = ?", studentID).Find(&fees).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if feeService.ComputeStanding(false, fees, time.Now()) == model.StudentStandingDefaulter {
			return helper.JsonErrorCode(c, fiber.StatusConflict, "STILL_DEFAULTER",
				"Santri masih menunggak SPP; lunasi dulu sebelum unblock")
		}
	}

	res := h.DB.Model(&model.StudentModel{}).
		Where("student_id = ?", studentID).
		Updates(map[string]interface{}{
			"student_access_blocked": false,
			"student_block_reason":   gorm.Expr("NULL"),
			"student_blocked_at":     gorm.Expr("NULL"),
			"student_blocked_by":     gorm.Expr("NULL"),
		})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Santri tidak ditemukan")
	}

	return h.respondWithStudent(c, studentID, "Akses santri dibuka kembali")
}

/* ======================== DEACTIVATE ======================== */
// POST /api/a/students/:id/deactivate — santri tidak pernah dihapus,
// hanya dinonaktifkan (keluar dari batch generate SPP berikutnya).
func (h *StudentAdminController) Deactivate(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := h.DB.Model(&model.StudentModel{}).
		Where("student_id = ?", studentID).
		Update("student_is_active", false)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Santri tidak ditemukan")
	}

	return h.respondWithStudent(c, studentID, "Santri dinonaktifkan")
}

// Ambil ulang + hitung standing terkini untuk response
func (h *StudentAdminController) respondWithStudent(c *fiber.Ctx, studentID uuid.UUID, message string) error {
	var s model.StudentModel
	if err := h.DB.Where("student_id = ?", studentID).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Santri tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var fees []feeModel.FeeRecordModel
	if err := h.DB.Where("fee_record_student_id = ?", s.StudentID).Find(&fees).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	standing := feeService.ComputeStanding(s.StudentAccessBlocked, fees, time.Now())

	return helper.JsonUpdated(c, message, dto.FromStudentModel(s, standing))
}
