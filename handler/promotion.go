package handler

import (
	"errors"

	"shop_manager/constants"
	"shop_manager/database"
	"shop_manager/model"
	"shop_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetPromotions(c *fiber.Ctx) error {
	db := database.DB

	condition := db.Model(&model.Promotion{})
	if status := c.Query("status"); status != "" {
		condition = condition.Where("status = ?", status)
	}

	var promotions model.Promotions
	if err := condition.Order("id ASC").Find(&promotions).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, promotions)
}

func GetPromotionById(c *fiber.Ctx) error {
	promotionId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var promotion model.Promotion
	if err := database.DB.First(&promotion, promotionId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_PROMOTION, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, promotion)
}

func CreatePromotion(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputCreatePromotion").(model.CreatePromotionInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	newPromotion := new(model.Promotion)
	copier.Copy(&newPromotion, &input)
	newPromotion.Status = constants.PROMOTION_STATUS_ACTIVE

	if err := db.Create(&newPromotion).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, newPromotion)
}

func EditPromotion(c *fiber.Ctx) error {
	db := database.DB
	promotionId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("inputEditPromotion").(model.EditPromotionInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var promotion model.Promotion
	if err := db.First(&promotion, promotionId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_PROMOTION, err)
	}

	updateMap := map[string]interface{}{}

	if input.Name != nil {
		updateMap["name"] = *input.Name
	}
	if input.DiscountType != nil {
		updateMap["discount_type"] = *input.DiscountType
	}
	if input.DiscountValue != nil {
		updateMap["discount_value"] = *input.DiscountValue
	}
	if input.OrderValueCondition != nil {
		updateMap["order_value_condition"] = *input.OrderValueCondition
	}
	if input.EndDate != nil {
		updateMap["end_date"] = *input.EndDate
	}

	if len(updateMap) == 0 {
		return utils.SuccessResponse(c, fiber.StatusOK, promotion)
	}

	if err := db.Model(&promotion).Updates(updateMap).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cập nhật thất bại", err)
	}

	db.First(&promotion, promotionId)

	return utils.SuccessResponse(c, fiber.StatusOK, promotion)
}

func DeletePromotions(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputDelete").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	if err := db.Delete(&model.Promotion{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, input.IDs)
}
