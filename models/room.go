package models

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

type Room struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name"`
	Price       int             `json:"price"` // VND/tháng
	Area        string          `json:"area"`  // nhãn quận/huyện
	Location    string          `json:"location"`
	AreaSize    int             `json:"areaSize"` // m²
	MaxPeople   int             `json:"maxPeople"`
	Rating      float64         `json:"rating"` // 0–5
	Img         string          `json:"img"`
	Images      json.RawMessage `json:"images" gorm:"type:json"`
	Video       string          `json:"video,omitempty"`
	Poster      string          `json:"poster,omitempty"`
	Amenities   json.RawMessage `json:"amenities" gorm:"type:json"`
	OwnerName   string          `json:"ownerName"`
	OwnerPhone  string          `json:"ownerPhone"`
	OwnerAvatar string          `json:"ownerAvatar"`
	IsFeatured  bool            `json:"isFeatured"`
	Views       int             `json:"views"`
	Reviews     datatypes.JSON  `json:"reviews" gorm:"type:json"`
	Bookings    datatypes.JSON  `json:"bookings" gorm:"type:json"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Review là một đánh giá nhúng trong Room.Reviews
type Review struct {
	User    string  `json:"user"`
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}

func (r *Room) ValidateRating() error {
	if r.Rating < 0 || r.Rating > 5 {
		return fmt.Errorf("invalid rating: %f, must be between 0 and 5", r.Rating)
	}
	return nil
}

// DecodeReviews giải mã danh sách đánh giá nhúng
func (r *Room) DecodeReviews() ([]Review, error) {
	if len(r.Reviews) == 0 {
		return nil, nil
	}
	var reviews []Review
	if err := json.Unmarshal(r.Reviews, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// DecodeAmenities giải mã danh sách tiện ích nhúng
func (r *Room) DecodeAmenities() []string {
	if len(r.Amenities) == 0 {
		return nil
	}
	var amenities []string
	if err := json.Unmarshal(r.Amenities, &amenities); err != nil {
		return nil
	}
	return amenities
}

// DecodeBookings giải mã danh sách đặt phòng nhúng
func (r *Room) DecodeBookings() ([]Booking, error) {
	if len(r.Bookings) == 0 {
		return nil, nil
	}
	var bookings []Booking
	if err := json.Unmarshal(r.Bookings, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
