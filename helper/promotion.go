package helper

import (
	"log"
	"time"

	"shop_manager/constants"
	"shop_manager/database"
	"shop_manager/model"

	"github.com/robfig/cron/v3"
)

var promotionScheduler *cron.Cron

func StartPromotionScheduler() {
	promotionScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	// Chạy mỗi 5 phút
	_, err := promotionScheduler.AddFunc("*/5 * * * *", expirePromotions)
	if err != nil {
		log.Printf("Lỗi khởi tạo scheduler: %v", err)
		return
	}

	promotionScheduler.Start()
	log.Println("Scheduler khuyến mãi đã khởi động (mỗi 5 phút)")
}

func expirePromotions() {
	now := time.Now()
	result := database.DB.Model(&model.Promotion{}).
		Where("status = ? AND end_date IS NOT NULL AND end_date < ?", constants.PROMOTION_STATUS_ACTIVE, now).
		Update("status", constants.PROMOTION_STATUS_EXPIRED)

	if result.Error != nil {
		log.Printf("Lỗi cập nhật khuyến mãi: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Đã cập nhật %d khuyến mãi thành 'expired'", result.RowsAffected)
	}
}

// Dừng scheduler khi tắt server
func StopPromotionScheduler() {
	if promotionScheduler != nil {
		promotionScheduler.Stop()
		log.Println("Scheduler khuyến mãi đã dừng")
	}
}
