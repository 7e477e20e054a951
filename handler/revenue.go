package handler

import (
	"errors"
	"time"

	"shop_manager/constants"
	"shop_manager/database"
	"shop_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// GetRevenue tổng doanh thu toàn thời gian của các đơn đã xác nhận
func GetRevenue(c *fiber.Ctx) error {
	db := database.DB

	var totalRevenue float64
	err := db.Raw(`
        SELECT COALESCE(SUM(discounted_price), 0)
        FROM orders
        WHERE status = ?
    `, constants.ORDER_STATUS_CONFIRMED).Scan(&totalRevenue).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"totalRevenue": totalRevenue,
		"result":       true,
	})
}

// GetRevenueByMonth doanh thu đơn đã xác nhận nhóm theo tháng (1-12), tăng dần
func GetRevenueByMonth(c *fiber.Ctx) error {
	db := database.DB

	type MonthRevenue struct {
		Month        int     `json:"month"`
		TotalRevenue float64 `json:"totalRevenue"`
	}

	var revenueByMonth []MonthRevenue
	err := db.Raw(`
        SELECT EXTRACT(MONTH FROM created_at)::int AS month,
               COALESCE(SUM(discounted_price), 0) AS total_revenue
        FROM orders
        WHERE status = ?
        GROUP BY 1
        ORDER BY 1 ASC
    `, constants.ORDER_STATUS_CONFIRMED).Scan(&revenueByMonth).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"revenueByMonth": revenueByMonth,
		"result":         true,
	})
}

// GetRevenueByRange doanh thu đơn đã giao trong khoảng [fromDate, toDate]
func GetRevenueByRange(c *fiber.Ctx) error {
	db := database.DB

	fromDate, ok := c.Locals("inputFromDate").(time.Time)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	toDate, ok := c.Locals("inputToDate").(time.Time)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var totalRevenue float64
	err := db.Raw(`
        SELECT COALESCE(SUM(COALESCE(discounted_price, original_price)), 0)
        FROM orders
        WHERE status = ?
          AND created_at BETWEEN ? AND ?
    `, constants.ORDER_STATUS_DELIVERED, fromDate, toDate).Scan(&totalRevenue).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"totalRevenue": totalRevenue,
		"result":       true,
	})
}
