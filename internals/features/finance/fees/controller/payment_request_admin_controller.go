// file: internals/features/finance/fees/controller/payment_request_admin_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "pesantrenku_backend/internals/features/finance/fees/dto"
	model "pesantrenku_backend/internals/features/finance/fees/model"
	service "pesantrenku_backend/internals/features/finance/fees/service"
	helper "pesantrenku_backend/internals/helpers"
)

type PaymentRequestAdminController struct {
	DB *gorm.DB
}

func NewPaymentRequestAdminController(db *gorm.DB) *PaymentRequestAdminController {
	return &PaymentRequestAdminController{DB: db}
}

/* ======================== LIST PENDING ======================== */
// GET /api/a/payment-requests/pending
func (h *PaymentRequestAdminController) ListPending(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.PaymentRequestModel{}).
		Where("payment_request_status = ?", model.PaymentRequestStatusPending)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.PaymentRequestModel
	if err := base.
		Order("payment_request_submitted_at ASC"). // antrian review: yang paling lama duluan
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage, len(rows))
	return helper.JsonList(c, "OK", dto.FromPaymentRequestModels(rows), &pg)
}

/* ======================== APPROVE ======================== */
// POST /api/a/payment-requests/:id/approve
func (h *PaymentRequestAdminController) Approve(c *fiber.Ctx) error {
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.ApprovePaymentRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
		}
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	res, err := service.ApprovePaymentRequest(h.DB, requestID, adminID, req.AdminRemarks)
	if err != nil {
		return mapReviewError(c, err)
	}

	return helper.JsonUpdated(c, "Pembayaran disetujui", dto.ReviewResponse{
		PaymentRequest: dto.FromPaymentRequestModel(res.Request),
		FeeRecord:      dto.FromFeeRecordModel(res.FeeRecord),
	})
}

/* ======================== REJECT ======================== */
// POST /api/a/payment-requests/:id/reject
func (h *PaymentRequestAdminController) Reject(c *fiber.Ctx) error {
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.RejectPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"reason": {"alasan penolakan wajib diisi (3..500 karakter)"},
		})
	}

	row, err := service.RejectPaymentRequest(h.DB, requestID, adminID, req.Reason, req.AdminRemarks)
	if err != nil {
		return mapReviewError(c, err)
	}

	return helper.JsonUpdated(c, "Pembayaran ditolak", dto.FromPaymentRequestModel(*row))
}

// mapReviewError memetakan error service → HTTP + error_code yang presisi.
func mapReviewError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrPaymentRequestNotFound):
		return helper.JsonErrorCode(c, fiber.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, service.ErrAlreadyReviewed):
		return helper.JsonErrorCode(c, fiber.StatusConflict, "ALREADY_REVIEWED", err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}
