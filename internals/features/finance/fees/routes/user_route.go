// internals/features/finance/fees/routes/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeCtl "pesantrenku_backend/internals/features/finance/fees/controller"
	"pesantrenku_backend/internals/middlewares"
)

func FeeUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := feeCtl.NewUserFeeController(db)

	r.Get("/fees/me", ctl.MyFeeHistory)
	r.Post("/fees/:feeRecordId/payments", middlewares.PaymentSubmitRateLimiter(), ctl.SubmitPayment)
	r.Get("/payments/me", ctl.MyPaymentRequests)
}
