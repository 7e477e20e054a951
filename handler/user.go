package handler

import (
	"errors"
	"strings"

	"shop_manager/constants"
	"shop_manager/database"
	"shop_manager/helper"
	"shop_manager/model"
	"shop_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func Register(c *fiber.Ctx) error {
	db := database.DB

	// Lấy input từ locals (đã validate ở middleware)
	registerInput, ok := c.Locals("inputRegister").(model.RegisterInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	existingUser, err := helper.GetUserByUsername(registerInput.Username)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if existingUser != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": constants.USERNAME_EXISTS,
			"result":  false,
		})
	}

	hash, err := helper.HashPassword(registerInput.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}

	newUser := new(model.User)
	copier.Copy(&newUser, &registerInput)
	newUser.Password = hash

	if err := db.Create(&newUser).Error; err != nil {
		// pre-check ở trên vẫn có thể thua race, unique index chặn nốt
		if strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": constants.USERNAME_EXISTS,
				"result":  false,
			})
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": constants.REGISTER_SUCCESS,
		"result":  true,
	})
}

func Login(c *fiber.Ctx) error {
	loginInput := new(model.LoginInput)

	if err := c.BodyParser(loginInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
	}

	// Manual validation
	if loginInput.Username == "" || loginInput.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, errors.New("username and password are required"))
	}

	userModel, err := helper.GetUserByUsername(loginInput.Username)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if userModel == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": constants.USERNAME_NOT_EXISTS,
			"result":  false,
		})
	}

	if !helper.CheckPasswordHash(loginInput.Password, userModel.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": constants.INVALID_PASSWORD,
			"result":  false,
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": constants.LOGIN_SUCCESS,
		"user":    userModel,
		"result":  true,
	})
}

func ChangePassword(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("inputChangePassword").(model.ChangePasswordInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	userModel, err := helper.GetUserByUsername(input.Username)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if userModel == nil {
		return c.Status(fiber.StatusNotFound).SendString(constants.USERNAME_NOT_EXISTS)
	}

	if !helper.CheckPasswordHash(input.OldPassword, userModel.Password) {
		return c.Status(fiber.StatusUnauthorized).SendString(constants.INVALID_OLD_PASSWORD)
	}

	newPasswordHash, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}

	userModel.Password = newPasswordHash
	if err := db.Save(&userModel).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(fiber.StatusOK).SendString(constants.CHANGE_PASSWORD_SUCCESS)
}

func ChangeInfo(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("inputChangeInfo").(model.ChangeInfoInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	userModel, err := helper.GetUserByUsername(input.Username)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if userModel == nil {
		return c.Status(fiber.StatusNotFound).SendString(constants.USERNAME_NOT_EXISTS)
	}

	if !helper.CheckPasswordHash(input.Password, userModel.Password) {
		return c.Status(fiber.StatusUnauthorized).SendString(constants.INVALID_PASSWORD)
	}

	userModel.Email = input.Email
	userModel.Fullname = input.Fullname
	userModel.Numberphone = input.Numberphone
	if err := db.Save(&userModel).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(fiber.StatusOK).SendString(constants.CHANGE_INFO_SUCCESS)
}
