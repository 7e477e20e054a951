package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"shop_manager/constants"
	"shop_manager/database"
	"shop_manager/helper"
	"shop_manager/model"
	"shop_manager/utils"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetProducts(c *fiber.Ctx) error {
	filterInput := new(model.FilterProduct)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}
	db := database.DB

	condition := db.Model(&model.Product{})
	if filterInput.SearchKey != "" {
		condition = condition.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filterInput.SearchKey)+"%")
	}
	if filterInput.Active != nil {
		condition = condition.Where("active = ?", filterInput.Active)
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var products model.Products
	condition.Order("id ASC").Find(&products)
	response := &model.ResponseCustom{
		Rows:       products,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetTopSellingProducts(c *fiber.Ctx) error {
	var products model.Products
	if err := database.DB.
		Where("active = ?", true).
		Order("sold_count DESC").
		Limit(10).
		Find(&products).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, products)
}

func GetProductById(c *fiber.Ctx) error {
	productId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var product model.Product
	if err := database.DB.First(&product, productId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_PRODUCT, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

func CreateProduct(c *fiber.Ctx) error {
	db := database.DB
	productInput, ok := c.Locals("inputCreateProduct").(model.CreateProductInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	newProduct := new(model.Product)
	copier.Copy(&newProduct, &productInput)
	newProduct.Slug = helper.GenerateUniqueProductSlug(db, productInput.Name)
	newProduct.Active = true

	if err := db.Create(&newProduct).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, newProduct)
}

func EditProduct(c *fiber.Ctx) error {
	db := database.DB
	productId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("inputEditProduct").(model.EditProductInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var product model.Product
	if err := db.First(&product, productId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_PRODUCT, err)
	}

	updateMap := map[string]interface{}{}

	if input.Name != nil {
		updateMap["name"] = *input.Name
		updateMap["slug"] = helper.GenerateUniqueProductSlug(db, *input.Name)
	}
	if input.Description != nil {
		updateMap["description"] = *input.Description
	}
	if input.Price != nil {
		updateMap["price"] = *input.Price
	}
	if input.Quantity != nil {
		updateMap["quantity"] = *input.Quantity
	}
	if input.Active != nil {
		updateMap["active"] = *input.Active
	}

	if len(updateMap) == 0 {
		return utils.SuccessResponse(c, fiber.StatusOK, product)
	}

	if err := db.Model(&product).Updates(updateMap).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cập nhật thất bại", err)
	}

	// Reload để trả về dữ liệu mới
	db.First(&product, productId)

	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

func DeleteProducts(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputDelete").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	if err := db.Delete(&model.Product{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, input.IDs)
}

// UploadProductImage tải ảnh sản phẩm lên Cloudinary và lưu secure URL
func UploadProductImage(c *fiber.Ctx) error {
	db := database.DB
	productId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var product model.Product
	if err := db.First(&product, productId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_PRODUCT, err)
	}

	imageFile, err := c.FormFile("image")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Thiếu file ảnh", err)
	}

	f, err := imageFile.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	defer f.Close()

	cld := helper.InitCloudinary()
	uploadResult, err := cld.Upload.Upload(context.Background(), f, uploader.UploadParams{
		Folder:       "products",
		PublicID:     fmt.Sprintf("product_%d_%d", product.ID, time.Now().Unix()),
		ResourceType: "image",
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể tải ảnh lên Cloudinary", err)
	}

	product.ImageUrl = &uploadResult.SecureURL
	if err := db.Save(&product).Error; err != nil {
		// ảnh đã lên Cloudinary nhưng DB lỗi, dọn lại
		cld.Upload.Destroy(context.Background(), uploader.DestroyParams{PublicID: uploadResult.PublicID})
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, product)
}
