package services

import (
	"log"

	"phongtro/models"

	"gorm.io/gorm"
)

// MeanRating tính điểm trung bình từ danh sách đánh giá nhúng
func MeanRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum float64
	for _, r := range reviews {
		sum += r.Rating
	}
	return sum / float64(len(reviews))
}

// RecomputeRoomRatings đồng bộ lại cột rating của mọi phòng từ danh
// sách review nhúng. Chạy định kỳ vì rating chỉ mang tính hiển thị và
// client có thể ghi lệch.
func RecomputeRoomRatings(db *gorm.DB) error {
	var rooms []models.Room
	if err := db.Find(&rooms).Error; err != nil {
		return err
	}

	for _, room := range rooms {
		reviews, err := room.DecodeReviews()
		if err != nil {
			log.Printf("Bỏ qua danh sách review hỏng của phòng %d: %v", room.ID, err)
			continue
		}
		mean := MeanRating(reviews)
		if mean == room.Rating {
			continue
		}
		if err := db.Model(&models.Room{}).Where("id = ?", room.ID).Update("rating", mean).Error; err != nil {
			log.Printf("Lỗi cập nhật rating phòng %d: %v", room.ID, err)
		}
	}
	return nil
}
