package validate

import (
	"testing"

	"shop_manager/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func Test_Register_RejectsShortPassword(t *testing.T) {
	app := fiber.New()
	app.Post("/user/register", Register(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	status := postJSON(app, "/user/register", `{"username":"nguyenvana","password":"123"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func Test_Register_RejectsBadEmail(t *testing.T) {
	app := fiber.New()
	app.Post("/user/register", Register(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	status := postJSON(app, "/user/register", `{"username":"nguyenvana","password":"123456","email":"khong-phai-email"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func Test_Register_PassesTypedInput(t *testing.T) {
	app := fiber.New()
	var got model.RegisterInput
	app.Post("/user/register", Register(), func(c *fiber.Ctx) error {
		got = c.Locals("inputRegister").(model.RegisterInput)
		return c.SendStatus(fiber.StatusCreated)
	})

	status := postJSON(app, "/user/register",
		`{"username":"nguyenvana","password":"123456","email":"a@b.vn","fullname":"Nguyễn Văn A","numberphone":"0901234567"}`)

	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "nguyenvana", got.Username)
	assert.Equal(t, "Nguyễn Văn A", got.Fullname)
	assert.Equal(t, "0901234567", got.Numberphone)
}

func Test_ChangePassword_RequiresAllFields(t *testing.T) {
	app := fiber.New()
	app.Put("/user/change-password", ChangePassword(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := putJSON(app, "/user/change-password", `{"username":"nguyenvana","oldPassword":"123456"}`)
	assert.Equal(t, fiber.StatusBadRequest, req)

	req = putJSON(app, "/user/change-password", `{"username":"nguyenvana","oldPassword":"123456","newPassword":"654321"}`)
	assert.Equal(t, fiber.StatusOK, req)
}
