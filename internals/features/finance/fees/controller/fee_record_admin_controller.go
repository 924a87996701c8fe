// file: internals/features/finance/fees/controller/fee_record_admin_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/configs"
	dto "pesantrenku_backend/internals/features/finance/fees/dto"
	model "pesantrenku_backend/internals/features/finance/fees/model"
	service "pesantrenku_backend/internals/features/finance/fees/service"
	helper "pesantrenku_backend/internals/helpers"
)

type FeeRecordController struct {
	DB *gorm.DB
}

func NewFeeRecordController(db *gorm.DB) *FeeRecordController {
	return &FeeRecordController{DB: db}
}

/* ======================= GENERATE ======================= */
// POST /api/a/fee-records/generate
func (h *FeeRecordController) Generate(c *fiber.Ctx) error {
	var req dto.GenerateFeesRequest
	// body boleh kosong → default bulan berjalan
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
		}
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	now := time.Now()
	month := int(now.Month())
	year := now.Year()
	if req.Month != nil {
		month = *req.Month
	}
	if req.Year != nil {
		year = *req.Year
	}

	res, err := service.GenerateMonthlyFees(h.DB, month, year, configs.FeeDueDay)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return helper.JsonOK(c, "Generate tagihan SPP selesai", res)
}

/* ======================== LIST ======================== */
// GET /api/a/fee-records?student_id=&month=&year=&status=&page=&per_page=
func (h *FeeRecordController) List(c *fiber.Ctx) error {
	var q dto.ListFeeRecordQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := validator.New().Struct(q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	paging := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.FeeRecordModel{})
	if q.StudentID != nil {
		base = base.Where("fee_record_student_id = ?", *q.StudentID)
	}
	if q.Month != nil {
		base = base.Where("fee_record_month = ?", *q.Month)
	}
	if q.Year != nil {
		base = base.Where("fee_record_year = ?", *q.Year)
	}
	if q.Status != nil {
		base = base.Where("fee_record_status = ?", *q.Status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.FeeRecordModel
	if err := base.
		Order("fee_record_year DESC, fee_record_month DESC, fee_record_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	// Status di response selalu hasil derivasi terkini (pending bisa
	// sudah jadi overdue tanpa ada transisi tersimpan).
	now := time.Now()
	for i := range rows {
		service.RefreshFeeStatus(&rows[i], now)
	}

	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage, len(rows))
	return helper.JsonList(c, "OK", dto.FromFeeRecordModels(rows), &pg)
}

/* ======================== GET BY ID ======================== */
// GET /api/a/fee-records/:id
func (h *FeeRecordController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.FeeRecordModel
	if err := h.DB.Where("fee_record_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	service.RefreshFeeStatus(&row, time.Now())

	return helper.JsonOK(c, "OK", dto.FromFeeRecordModel(row))
}
