// file: internals/features/finance/fees/controller/fee_record_admin_controller_test.go
package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// :id yang bukan UUID harus ditolak 400 sebelum query jalan — DB sengaja nil,
// kalau handler sampai menyentuhnya test ini panic.
func TestFeeRecordGetByID_InvalidID(t *testing.T) {
	app := fiber.New()
	ctl := NewFeeRecordController(nil)
	app.Get("/fee-records/:id", ctl.GetByID)

	req := httptest.NewRequest(fiber.MethodGet, "/fee-records/bukan-uuid", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
