package validator

import (
	"fmt"
	"regexp"
	"time"

	"phongtro/constants"
	"phongtro/dto"

	playground "github.com/go-playground/validator/v10"
)

var validate = playground.New()

var phoneRegex = regexp.MustCompile(`^0\d{9}$`)

const maxNoteLength = 200

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

// isValidPhone kiểm tra số điện thoại hợp lệ: 0 + 9 chữ số
func isValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// ValidateBookingForm kiểm tra form đặt phòng của wizard. Trả về map
// lỗi theo từng trường; map rỗng nghĩa là hợp lệ. Mọi quy tắc ở đây
// trùng với quy tắc phía client — server là bản sao có hiệu lực thật.
func ValidateBookingForm(form dto.BookingForm, maxPeople int) map[string]string {
	fieldErrors := make(map[string]string)

	if form.Name == "" {
		fieldErrors["name"] = "Vui lòng nhập họ tên"
	}
	if form.Phone == "" {
		fieldErrors["phone"] = "Vui lòng nhập số điện thoại"
	} else if !isValidPhone(form.Phone) {
		fieldErrors["phone"] = "Số điện thoại không hợp lệ"
	}
	if form.Email == "" {
		fieldErrors["email"] = "Vui lòng nhập email"
	} else if !isValidEmail(form.Email) {
		fieldErrors["email"] = "Email không hợp lệ"
	}

	if form.Checkin == "" {
		fieldErrors["checkin"] = "Vui lòng chọn ngày nhận phòng"
	}
	if form.Checkout == "" {
		fieldErrors["checkout"] = "Vui lòng chọn ngày trả phòng"
	}

	if form.Checkin != "" && form.Checkout != "" {
		checkin, errIn := time.Parse("2006-01-02", form.Checkin)
		checkout, errOut := time.Parse("2006-01-02", form.Checkout)
		if errIn != nil {
			fieldErrors["checkin"] = "Ngày nhận phòng không hợp lệ"
		}
		if errOut != nil {
			fieldErrors["checkout"] = "Ngày trả phòng không hợp lệ"
		}
		if errIn == nil && errOut == nil {
			today := time.Now().Truncate(24 * time.Hour)
			if checkin.Before(today) {
				fieldErrors["checkin"] = "Ngày nhận phòng không thể là ngày trong quá khứ"
			}
			if !checkout.After(checkin) {
				fieldErrors["checkout"] = "Ngày trả phòng phải sau ngày nhận phòng"
			}
		}
	}

	if maxPeople < 1 {
		maxPeople = 1
	}
	if form.People < 1 || form.People > maxPeople {
		fieldErrors["people"] = fmt.Sprintf("Số người phải từ 1 đến %d", maxPeople)
	}

	if len([]rune(form.Note)) > maxNoteLength {
		fieldErrors["note"] = fmt.Sprintf("Ghi chú tối đa %d ký tự", maxNoteLength)
	}

	return fieldErrors
}

// ValidateAdminBookingForm kiểm tra form booking ở bảng quản trị —
// form này chỉ thu thập thông tin định danh, không có ngày ở.
func ValidateAdminBookingForm(form dto.AdminBookingForm) map[string]string {
	fieldErrors := make(map[string]string)

	if form.Name == "" || form.Phone == "" || form.Email == "" || form.RoomID == 0 {
		fieldErrors["form"] = "Vui lòng nhập đủ họ tên, số điện thoại, email, phòng."
		return fieldErrors
	}
	if !isValidPhone(form.Phone) {
		fieldErrors["phone"] = "Số điện thoại không hợp lệ"
	}
	if !isValidEmail(form.Email) {
		fieldErrors["email"] = "Email không hợp lệ"
	}
	return fieldErrors
}

// ValidateRoom kiểm tra form tạo/sửa phòng
func ValidateRoom(req dto.RoomRequest) map[string]string {
	fieldErrors := make(map[string]string)

	if req.Name == "" {
		fieldErrors["name"] = "Tên phòng không được để trống"
	}
	if req.Price <= 0 {
		fieldErrors["price"] = "Giá phòng phải lớn hơn 0"
	}
	if req.Area == "" {
		fieldErrors["area"] = "Khu vực không được để trống"
	}
	if req.MaxPeople < 1 {
		fieldErrors["maxPeople"] = "Số người tối đa phải lớn hơn 0"
	}
	if req.Rating < 0 || req.Rating > 5 {
		fieldErrors["rating"] = "Đánh giá phải nằm trong khoảng 0 đến 5"
	}
	return fieldErrors
}

// ValidateUser kiểm tra form tạo/sửa user. Khi tạo mới thì mật khẩu là
// bắt buộc và tối thiểu 6 ký tự; khi sửa, bỏ trống nghĩa là giữ nguyên.
func ValidateUser(req dto.UserRequest, isCreate bool) map[string]string {
	fieldErrors := make(map[string]string)

	if req.Name == "" {
		fieldErrors["name"] = "Tên không được để trống"
	}
	if req.Email == "" {
		fieldErrors["email"] = "Email không được để trống"
	} else if !isValidEmail(req.Email) {
		fieldErrors["email"] = "Email không hợp lệ"
	}
	if isCreate && req.Password == "" {
		fieldErrors["password"] = "Mật khẩu không được để trống"
	}
	if req.Password != "" && len(req.Password) < 6 {
		fieldErrors["password"] = "Mật khẩu phải có ít nhất 6 ký tự"
	}
	if req.Role < constants.RoleUser || req.Role > constants.RoleModerator {
		fieldErrors["role"] = "Role không hợp lệ"
	}
	if req.Status < constants.UserStatusInactive || req.Status > constants.UserStatusBanned {
		fieldErrors["status"] = "Trạng thái không hợp lệ"
	}
	return fieldErrors
}
