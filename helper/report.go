package helper

import (
	"log"
	"time"

	"shop_manager/constants"
	"shop_manager/database"

	"github.com/go-co-op/gocron/v2"
)

var reportScheduler gocron.Scheduler

// LogDailySalesReport ghi log số đơn và doanh thu của ngày hôm trước.
func LogDailySalesReport() {
	log.Println("[CRON] LogDailySalesReport triggered")

	db := database.DB
	loc := time.FixedZone("ICT", 7*3600)
	today := time.Now().In(loc).Truncate(24 * time.Hour)
	yesterdayStart := today.AddDate(0, 0, -1)

	var report struct {
		Orders  int64
		Revenue float64
	}

	err := db.Raw(`
        SELECT COUNT(*) AS orders,
               COALESCE(SUM(COALESCE(discounted_price, original_price)), 0) AS revenue
        FROM orders
        WHERE status = ?
          AND created_at >= ? AND created_at < ?
    `, constants.ORDER_STATUS_CONFIRMED, yesterdayStart, today).Scan(&report).Error

	if err != nil {
		log.Printf("Lỗi khi tổng hợp báo cáo ngày: %v", err)
		return
	}

	log.Printf("Báo cáo ngày %s: %d đơn xác nhận, doanh thu %.2f",
		yesterdayStart.Format("02/01/2006"), report.Orders, report.Revenue)
}

func StartDailyReportScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("ICT", 7*3600)),
	)
	if err != nil {
		log.Fatal(err)
	}

	reportScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(LogDailySalesReport),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Daily report scheduler started (00:05 ICT)")
}
