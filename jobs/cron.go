package jobs

import (
	"log"

	"phongtro/config"
	"phongtro/services"

	"github.com/robfig/cron/v3"
)

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron) error {
	// Chạy lúc 0h mỗi ngày: tính lại rating phòng từ review nhúng
	_, err := c.AddFunc("0 0 * * *", func() {
		if err := services.RecomputeRoomRatings(config.DB); err != nil {
			log.Printf("Lỗi khi tính lại rating phòng: %v", err)
			return
		}
		if err := services.DeleteFromRedis(config.Ctx, config.RedisClient, services.CacheKeyRooms); err != nil {
			log.Printf("Lỗi khi xóa cache phòng sau khi tính rating: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
