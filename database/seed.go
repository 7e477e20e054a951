package database

import (
	"log"
	"time"

	"shop_manager/constants"
	"shop_manager/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func parseDate(dateStr string) *time.Time {
	t, _ := time.Parse("2006-01-02", dateStr)
	return &t
}

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("123456cn"), 10)
	HashPassword := string(bytes)
	if err != nil {
		HashPassword = "123456cn"
	}
	users := []model.User{
		{Username: "Administration", Password: HashPassword, Fullname: "Quản trị viên", Email: "admin@shop.local"},
	}

	for _, user := range users {
		// Tạo mới nếu không tồn tại
		if err := db.Where(model.User{Username: user.Username}).FirstOrCreate(&user).Error; err != nil {
			log.Println("failed to seed data for user:", user.Username, "error:", err)
		}
	}

	products := []model.Product{
		{Name: "Áo thun cổ tròn", Slug: "ao-thun-co-tron", Price: 150000, Quantity: 100},
		{Name: "Quần jean nam", Slug: "quan-jean-nam", Price: 350000, Quantity: 50},
		{Name: "Áo khoác gió", Slug: "ao-khoac-gio", Price: 450000, Quantity: 30},
	}
	for _, product := range products {
		if err := db.Where(model.Product{Slug: product.Slug}).FirstOrCreate(&product).Error; err != nil {
			log.Println("failed to seed data for product:", product.Name, "error:", err)
		}
	}

	promotions := []model.Promotion{
		{
			Name:                "Giảm 10% đơn từ 300k",
			DiscountType:        constants.DISCOUNT_TYPE_PERCENT,
			DiscountValue:       10,
			OrderValueCondition: 300000,
			StartDate:           parseDate("2025-01-01"),
			EndDate:             parseDate("2025-12-31"),
			Status:              constants.PROMOTION_STATUS_ACTIVE,
		},
		{
			Name:                "Giảm thẳng 50k đơn từ 500k",
			DiscountType:        constants.DISCOUNT_TYPE_FIXED,
			DiscountValue:       50000,
			OrderValueCondition: 500000,
			StartDate:           parseDate("2025-01-01"),
			EndDate:             parseDate("2025-12-31"),
			Status:              constants.PROMOTION_STATUS_ACTIVE,
		},
	}
	for _, promotion := range promotions {
		if err := db.Where(model.Promotion{Name: promotion.Name}).FirstOrCreate(&promotion).Error; err != nil {
			log.Println("failed to seed data for promotion:", promotion.Name, "error:", err)
		}
	}
}
