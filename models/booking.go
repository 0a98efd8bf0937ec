package models

import (
	"strconv"
	"time"
)

// Booking nằm nhúng trong Room.Bookings, không có bảng riêng.
// Form quản trị chỉ điền thông tin định danh (name/phone/email/img);
// wizard đặt phòng điền thêm ngày ở và số người.
type Booking struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Img       string    `json:"img,omitempty"` // giấy tờ tùy thân upload hoặc URL dán vào
	Checkin   string    `json:"checkin,omitempty"`
	Checkout  string    `json:"checkout,omitempty"`
	People    int       `json:"people,omitempty"`
	Note      string    `json:"note,omitempty"`
	RoomID    uint      `json:"roomId,omitempty"` // denormalize khi gộp bảng admin
	RoomName  string    `json:"roomName,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewBookingID sinh id từ timestamp hiện tại. Có thể trùng khi hai
// booking tạo trong cùng một mili giây; không có cơ chế chống trùng.
func NewBookingID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}
