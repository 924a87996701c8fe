// file: internals/features/finance/fees/controller/user_fee_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "pesantrenku_backend/internals/features/finance/fees/dto"
	model "pesantrenku_backend/internals/features/finance/fees/model"
	service "pesantrenku_backend/internals/features/finance/fees/service"
	helper "pesantrenku_backend/internals/helpers"
)

type UserFeeController struct {
	DB *gorm.DB
}

func NewUserFeeController(db *gorm.DB) *UserFeeController {
	return &UserFeeController{DB: db}
}

/* ======================== FEE SAYA ======================== */
// GET /api/u/fees/me
func (h *UserFeeController) MyFeeHistory(c *fiber.Ctx) error {
	studentID, err := helper.GetStudentIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []model.FeeRecordModel
	if err := h.DB.
		Where("fee_record_student_id = ?", studentID).
		Order("fee_record_year DESC, fee_record_month DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	now := time.Now()
	// Status yang dikirim ke santri selalu hasil derivasi terkini
	// (tagihan bisa jadi overdue tanpa ada transisi tersimpan).
	for i := range rows {
		service.RefreshFeeStatus(&rows[i], now)
	}

	return helper.JsonOK(c, "OK", dto.MyFeeHistoryResponse{
		Items:  dto.FromFeeRecordModels(rows),
		Totals: service.ComputeFeeTotals(rows, now),
	})
}

/* ======================== SUBMIT PEMBAYARAN ======================== */
// POST /api/u/fees/:feeRecordId/payments
func (h *UserFeeController) SubmitPayment(c *fiber.Ctx) error {
	studentID, err := helper.GetStudentIDFromToken(c)
	if err != nil {
		return err
	}
	feeRecordID, err := uuid.Parse(c.Params("feeRecordId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Fee record ID tidak valid")
	}

	var req dto.SubmitPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	row, err := service.SubmitPaymentRequest(h.DB, service.SubmitPaymentInput{
		FeeRecordID:    feeRecordID,
		StudentID:      studentID,
		AmountIDR:      req.AmountIDR,
		Method:         req.Method,
		TransactionRef: req.TransactionRef,
		ProofURL:       req.ProofURL,
		StudentNote:    req.StudentNote,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFeeRecordNotFound):
			return helper.JsonErrorCode(c, fiber.StatusNotFound, "NOT_FOUND", err.Error())
		case errors.Is(err, service.ErrAlreadyPaid):
			return helper.JsonErrorCode(c, fiber.StatusConflict, "ALREADY_PAID", err.Error())
		case errors.Is(err, service.ErrDuplicatePendingRequest):
			return helper.JsonErrorCode(c, fiber.StatusConflict, "DUPLICATE_PENDING_REQUEST", err.Error())
		case errors.Is(err, service.ErrAmountExceedsRemaining):
			return helper.JsonErrorCode(c, fiber.StatusBadRequest, "AMOUNT_EXCEEDS_REMAINING", err.Error())
		default:
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}

	return helper.JsonCreated(c, "Bukti pembayaran terkirim, menunggu verifikasi admin", dto.FromPaymentRequestModel(*row))
}

/* ======================== PAYMENT REQUEST SAYA ======================== */
// GET /api/u/payments/me
func (h *UserFeeController) MyPaymentRequests(c *fiber.Ctx) error {
	studentID, err := helper.GetStudentIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []model.PaymentRequestModel
	if err := h.DB.
		Where("payment_request_student_id = ?", studentID).
		Order("payment_request_submitted_at DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromPaymentRequestModels(rows))
}
