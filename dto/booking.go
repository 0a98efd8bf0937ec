package dto

// BookingForm là form đặt phòng của wizard (có ngày ở và số người)
type BookingForm struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Checkin  string `json:"checkin"`  // 2006-01-02
	Checkout string `json:"checkout"` // 2006-01-02
	People   int    `json:"people"`
	Note     string `json:"note"`
	Img      string `json:"img"`
}

// AdminBookingForm là form booking ở bảng quản trị, chỉ có thông tin
// định danh, không có ngày ở. Hai form cùng ghi vào một shape Booking.
type AdminBookingForm struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
	Img    string `json:"img"`
	RoomID uint   `json:"roomId"`
}

// WizardStateResponse là trạng thái wizard trả cho client
type WizardStateResponse struct {
	Step        int    `json:"step"`
	TotalDays   int    `json:"totalDays,omitempty"`
	TotalPrice  int    `json:"totalPrice,omitempty"`
	BookingCode string `json:"bookingCode,omitempty"`
}
