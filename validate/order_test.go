package validate

import (
	"bytes"
	"net/http/httptest"
	"testing"
	"time"

	"shop_manager/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func postJSON(app *fiber.App, path, body string) int {
	req := httptest.NewRequest("POST", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req)
	return resp.StatusCode
}

func putJSON(app *fiber.App, path, body string) int {
	req := httptest.NewRequest("PUT", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req)
	return resp.StatusCode
}

func Test_CreateOrder_RejectsEmptyProducts(t *testing.T) {
	app := fiber.New()
	app.Post("/order/create", CreateOrder(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	status := postJSON(app, "/order/create", `{"iduser":1,"products":[]}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status = postJSON(app, "/order/create", `{"products":[{"idproduct":1,"quantity":2}]}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status = postJSON(app, "/order/create", `{"iduser":1,"products":[{"idproduct":1,"quantity":0}]}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func Test_CreateOrder_PassesTypedInput(t *testing.T) {
	app := fiber.New()
	var got model.CreateOrderInput
	app.Post("/order/create", CreateOrder(), func(c *fiber.Ctx) error {
		got = c.Locals("inputCreateOrder").(model.CreateOrderInput)
		return c.SendStatus(fiber.StatusCreated)
	})

	status := postJSON(app, "/order/create",
		`{"iduser":7,"idpromotion":3,"products":[{"idproduct":1,"quantity":2,"size":"L"}]}`)

	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, uint(7), got.UserId)
	assert.NotNil(t, got.PromotionId)
	assert.Equal(t, uint(3), *got.PromotionId)
	assert.Equal(t, "L", got.Products[0].Size)
}

func Test_CreateOrder_NullPromotionStaysNil(t *testing.T) {
	app := fiber.New()
	var got model.CreateOrderInput
	app.Post("/order/create", CreateOrder(), func(c *fiber.Ctx) error {
		got = c.Locals("inputCreateOrder").(model.CreateOrderInput)
		return c.SendStatus(fiber.StatusCreated)
	})

	status := postJSON(app, "/order/create",
		`{"iduser":7,"idpromotion":null,"products":[{"idproduct":1,"quantity":2}]}`)

	assert.Equal(t, fiber.StatusCreated, status)
	assert.Nil(t, got.PromotionId)
}

func Test_UpdateOrderStatus_Validation(t *testing.T) {
	app := fiber.New()
	app.Put("/order/update-status/:orderId", UpdateOrderStatus("orderId"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("PUT", "/order/update-status/abc", bytes.NewBufferString(`{"status":"confirmed"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	req = httptest.NewRequest("PUT", "/order/update-status/1", bytes.NewBufferString(`{"status":"shipped"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, _ = app.Test(req)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	req = httptest.NewRequest("PUT", "/order/update-status/1", bytes.NewBufferString(`{"status":"confirmed"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, _ = app.Test(req)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func Test_RevenueRange_ParsesDates(t *testing.T) {
	app := fiber.New()
	var from, to time.Time
	app.Post("/order/revenue", RevenueRange(), func(c *fiber.Ctx) error {
		from = c.Locals("inputFromDate").(time.Time)
		to = c.Locals("inputToDate").(time.Time)
		return c.SendStatus(fiber.StatusOK)
	})

	status := postJSON(app, "/order/revenue", `{"fromDate":"2025-01-01","toDate":"2025-01-31"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 2025, from.Year())
	assert.Equal(t, time.January, to.Month())
	assert.Equal(t, 31, to.Day())

	// đảo ngược khoảng thời gian bị từ chối
	status = postJSON(app, "/order/revenue", `{"fromDate":"2025-02-01","toDate":"2025-01-01"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status = postJSON(app, "/order/revenue", `{"fromDate":"01/01/2025","toDate":"2025-01-31"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}
