// internals/features/finance/fees/routes/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeCtl "pesantrenku_backend/internals/features/finance/fees/controller"
	"pesantrenku_backend/internals/middlewares"
)

func FeeAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := feeCtl.NewFeeRecordController(db)
	payCtl := feeCtl.NewPaymentRequestAdminController(db)

	fees := r.Group("/fee-records")
	fees.Post("/generate", middlewares.FeeGenerateRateLimiter(), ctl.Generate)
	fees.Get("/", ctl.List)
	fees.Get("/:id", ctl.GetByID)

	pay := r.Group("/payment-requests")
	pay.Get("/pending", payCtl.ListPending)
	pay.Post("/:id/approve", payCtl.Approve)
	pay.Post("/:id/reject", payCtl.Reject)
}
