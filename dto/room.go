package dto

import (
	"encoding/json"
	"time"
)

// Owner là thông tin chủ phòng lồng trong response
type Owner struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Avatar string `json:"avatar"`
}

// RoomRequest là DTO cho request tạo/sửa phòng từ form quản trị
type RoomRequest struct {
	Name       string          `json:"name" binding:"required"`
	Price      int             `json:"price" binding:"required"`
	Area       string          `json:"area" binding:"required"`
	Location   string          `json:"location"`
	AreaSize   int             `json:"areaSize"`
	MaxPeople  int             `json:"maxPeople"`
	Rating     float64         `json:"rating"`
	Img        string          `json:"img"`
	Images     json.RawMessage `json:"images"`
	Video      string          `json:"video"`
	Poster     string          `json:"poster"`
	Amenities  json.RawMessage `json:"amenities"`
	Owner      Owner           `json:"owner"`
	IsFeatured bool            `json:"isFeatured"`
}

// RoomResponse là DTO rút gọn cho danh sách phòng
type RoomResponse struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Price      int       `json:"price"`
	Area       string    `json:"area"`
	Location   string    `json:"location"`
	AreaSize   int       `json:"areaSize"`
	MaxPeople  int       `json:"maxPeople"`
	Rating     float64   `json:"rating"`
	Img        string    `json:"img"`
	IsFeatured bool      `json:"isFeatured"`
	Views      int       `json:"views"`
	Owner      Owner     `json:"owner"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// RoomDetail là DTO cho trang chi tiết phòng
type RoomDetail struct {
	ID         uint            `json:"id"`
	Name       string          `json:"name"`
	Price      int             `json:"price"`
	Area       string          `json:"area"`
	Location   string          `json:"location"`
	AreaSize   int             `json:"areaSize"`
	MaxPeople  int             `json:"maxPeople"`
	Rating     float64         `json:"rating"`
	Img        string          `json:"img"`
	Images     json.RawMessage `json:"images"`
	Video      string          `json:"video,omitempty"`
	Poster     string          `json:"poster,omitempty"`
	Amenities  json.RawMessage `json:"amenities"`
	Owner      Owner           `json:"owner"`
	IsFeatured bool            `json:"isFeatured"`
	Views      int             `json:"views"`
	Reviews    json.RawMessage `json:"reviews"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// ScoredRoom gắn điểm phù hợp cho kết quả tìm kiếm gần đúng
type ScoredRoom struct {
	Room  RoomResponse `json:"room"`
	Score int          `json:"score"`
}
