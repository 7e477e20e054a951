package handler

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log"

	"shop_manager/constants"
	"shop_manager/database"
	"shop_manager/helper"
	"shop_manager/model"
	"shop_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateOrder tạo đơn hàng cùng các dòng sản phẩm và tính giá.
// Mỗi dòng được ghi ngay khi xử lý; nếu một sản phẩm không tồn tại giữa
// chừng thì các dòng đã ghi và tồn kho đã trừ KHÔNG được hoàn tác
// (hành vi gốc của hệ thống, xem DESIGN.md).
func CreateOrder(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("inputCreateOrder").(model.CreateOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var promotion *model.Promotion
	if input.PromotionId != nil {
		var p model.Promotion
		if err := db.First(&p, *input.PromotionId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(fiber.StatusOK).JSON(fiber.Map{
					"message": constants.NOT_FOUND_PROMOTION,
					"result":  false,
				})
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		promotion = &p
	}

	newOrder := model.Order{
		PublicCode:  helper.GenerateOrderCode(),
		UserId:      input.UserId,
		PromotionId: input.PromotionId,
		Status:      constants.ORDER_STATUS_PENDING,
	}
	if err := db.Create(&newOrder).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	totalOriginalPrice := float64(0)

	// Tạo các đơn hàng nhỏ và tính tổng giá trị
	for _, item := range input.Products {
		var productInfo model.Product
		if err := db.First(&productInfo, item.ProductId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// các suborder đã ghi trước đó vẫn giữ nguyên
				db.Delete(&newOrder)
				return c.Status(fiber.StatusOK).JSON(fiber.Map{
					"message": fmt.Sprintf("Không tìm thấy sản phẩm với id %d", item.ProductId),
					"result":  false,
				})
			}
			db.Delete(&newOrder)
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		subOrder := model.SubOrder{
			OrderId:   newOrder.ID,
			ProductId: item.ProductId,
			Price:     productInfo.Price,
			Quantity:  item.Quantity,
			Size:      item.Size,
		}
		if err := db.Create(&subOrder).Error; err != nil {
			db.Delete(&newOrder)
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
		}

		totalOriginalPrice += productInfo.Price * float64(item.Quantity)

		// update lượt bán và số lượng của sản phẩm
		productInfo.SoldCount += item.Quantity
		productInfo.Quantity -= item.Quantity
		if err := db.Save(&productInfo).Error; err != nil {
			db.Delete(&newOrder)
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	newOrder.OriginalPrice = totalOriginalPrice

	discountedPrice, applied := helper.ApplyPromotion(totalOriginalPrice, promotion)
	newOrder.DiscountedPrice = &discountedPrice
	if !applied {
		newOrder.PromotionId = nil
	}

	if err := db.Save(&newOrder).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	db.Preload("User").Preload("Promotion").First(&newOrder, newOrder.ID)

	if newOrder.User != nil && newOrder.User.Email != "" {
		sendOrderConfirmation(&newOrder)
	}

	PublishOrderEvent(newOrder.UserId, OrderEvent{
		OrderId:    newOrder.ID,
		PublicCode: newOrder.PublicCode,
		Status:     newOrder.Status,
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": constants.ORDER_CREATED,
		"order":   newOrder,
		"result":  true,
	})
}

func sendOrderConfirmation(order *model.Order) {
	var subOrders model.SubOrders
	if err := database.DB.Preload("Product").Where("order_id = ?", order.ID).Find(&subOrders).Error; err != nil {
		log.Printf("Lỗi tải suborder cho email đơn hàng %s: %v", order.PublicCode, err)
		return
	}

	items := make([]utils.OrderConfirmationItem, 0, len(subOrders))
	for _, so := range subOrders {
		name := ""
		if so.Product != nil {
			name = so.Product.Name
		}
		items = append(items, utils.OrderConfirmationItem{
			Name:     name,
			Size:     so.Size,
			Quantity: so.Quantity,
			Price:    so.Price,
		})
	}

	discounted := order.OriginalPrice
	if order.DiscountedPrice != nil {
		discounted = *order.DiscountedPrice
	}

	utils.SendOrderConfirmationEmail(order.User.Email, utils.OrderConfirmationData{
		OrderCode:       order.PublicCode,
		Fullname:        order.User.Fullname,
		Items:           items,
		OriginalPrice:   order.OriginalPrice,
		DiscountedPrice: discounted,
	})
}

func GetAllOrders(c *fiber.Ctx) error {
	var orders model.Orders
	if err := database.DB.
		Preload("User").
		Preload("Promotion").
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"orders": orders,
		"result": true,
	})
}

func GetOrdersByUser(c *fiber.Ctx) error {
	userId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var orders model.Orders
	if err := database.DB.
		Preload("User").
		Preload("Promotion").
		Where("user_id = ?", userId).
		Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"orders": orders,
		"result": true,
	})
}

func GetSubOrders(c *fiber.Ctx) error {
	orderId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var subOrders model.SubOrders
	if err := database.DB.
		Preload("Product").
		Where("order_id = ?", orderId).
		Find(&subOrders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"subOrders": subOrders,
		"result":    true,
	})
}

func UpdateOrderStatus(c *fiber.Ctx) error {
	db := database.DB

	orderId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("inputUpdateOrderStatus").(model.UpdateOrderStatusInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var order model.Order
	if err := db.First(&order, orderId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": constants.NOT_FOUND_ORDER,
				"result":  false,
			})
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	order.Status = input.Status
	if err := db.Save(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	PublishOrderEvent(order.UserId, OrderEvent{
		OrderId:    order.ID,
		PublicCode: order.PublicCode,
		Status:     order.Status,
	})

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": constants.ORDER_STATUS_UPDATED,
		"order":   order,
		"result":  true,
	})
}

func GetOrderDetail(c *fiber.Ctx) error {
	orderCode := c.Params("publicCode")

	var order model.Order
	if err := database.DB.
		Preload("User").
		Preload("Promotion").
		Where("public_code = ?", orderCode).
		First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_ORDER, err)
	}

	var subOrders model.SubOrders
	if err := database.DB.
		Preload("Product").
		Where("order_id = ?", order.ID).
		Find(&subOrders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	qrBase64 := ""
	qrBytes, err := utils.GenerateQRCode(order.PublicCode, 400)
	if err != nil {
		log.Printf("Lỗi tạo QR cho đơn hàng %s: %v", order.PublicCode, err)
	} else {
		qrBase64 = "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"order":     order,
		"subOrders": subOrders,
		"qrCode":    qrBase64,
		"result":    true,
	})
}
