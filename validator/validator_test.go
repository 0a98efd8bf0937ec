package validator

import (
	"strings"
	"testing"
	"time"

	"phongtro/dto"
)

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func validForm() dto.BookingForm {
	return dto.BookingForm{
		Name:     "Nguyễn Văn A",
		Phone:    "0912345678",
		Email:    "a@example.com",
		Checkin:  futureDate(1),
		Checkout: futureDate(4),
		People:   2,
	}
}

func TestValidateBookingFormOK(t *testing.T) {
	if errs := ValidateBookingForm(validForm(), 3); len(errs) != 0 {
		t.Fatalf("form hợp lệ không được có lỗi: %v", errs)
	}
}

func TestValidateBookingFormPhone(t *testing.T) {
	cases := []struct {
		phone string
		valid bool
	}{
		{"0912345678", true},
		{"0123456789", true},
		{"912345678", false},   // thiếu số 0 đầu
		{"09123456789", false}, // 11 chữ số
		{"091234567", false},   // 9 chữ số
		{"09a2345678", false},
		{"", false},
	}
	for _, tc := range cases {
		form := validForm()
		form.Phone = tc.phone
		errs := ValidateBookingForm(form, 3)
		_, hasErr := errs["phone"]
		if tc.valid && hasErr {
			t.Errorf("số %q phải hợp lệ, bị lỗi: %v", tc.phone, errs["phone"])
		}
		if !tc.valid && !hasErr {
			t.Errorf("số %q phải bị từ chối", tc.phone)
		}
	}
}

func TestValidateBookingFormDates(t *testing.T) {
	// checkout phải sau checkin, trùng ngày cũng không được
	form := validForm()
	form.Checkout = form.Checkin
	errs := ValidateBookingForm(form, 3)
	if _, ok := errs["checkout"]; !ok {
		t.Error("checkout trùng checkin phải bị từ chối")
	}

	form = validForm()
	form.Checkin = futureDate(5)
	form.Checkout = futureDate(2)
	errs = ValidateBookingForm(form, 3)
	if _, ok := errs["checkout"]; !ok {
		t.Error("checkout trước checkin phải bị từ chối")
	}

	// checkin trong quá khứ
	form = validForm()
	form.Checkin = futureDate(-2)
	form.Checkout = futureDate(3)
	errs = ValidateBookingForm(form, 3)
	if _, ok := errs["checkin"]; !ok {
		t.Error("checkin trong quá khứ phải bị từ chối")
	}

	// thiếu cả hai ngày thì báo từng trường
	form = validForm()
	form.Checkin = ""
	form.Checkout = ""
	errs = ValidateBookingForm(form, 3)
	if _, ok := errs["checkin"]; !ok {
		t.Error("thiếu checkin phải có lỗi")
	}
	if _, ok := errs["checkout"]; !ok {
		t.Error("thiếu checkout phải có lỗi")
	}
}

func TestValidateBookingFormPeople(t *testing.T) {
	form := validForm()
	form.People = 0
	if _, ok := ValidateBookingForm(form, 3)["people"]; !ok {
		t.Error("0 người phải bị từ chối")
	}

	form = validForm()
	form.People = 4
	if _, ok := ValidateBookingForm(form, 3)["people"]; !ok {
		t.Error("vượt số người tối đa của phòng phải bị từ chối")
	}

	form = validForm()
	form.People = 3
	if _, ok := ValidateBookingForm(form, 3)["people"]; ok {
		t.Error("đúng số người tối đa phải được chấp nhận")
	}
}

func TestValidateBookingFormNote(t *testing.T) {
	// đếm theo rune chứ không theo byte
	form := validForm()
	form.Note = strings.Repeat("ă", 200)
	if _, ok := ValidateBookingForm(form, 3)["note"]; ok {
		t.Error("ghi chú đúng 200 ký tự phải được chấp nhận")
	}

	form.Note = strings.Repeat("ă", 201)
	if _, ok := ValidateBookingForm(form, 3)["note"]; !ok {
		t.Error("ghi chú 201 ký tự phải bị từ chối")
	}
}

func TestValidateAdminBookingForm(t *testing.T) {
	// thiếu trường nào cũng gom về một lỗi chung
	errs := ValidateAdminBookingForm(dto.AdminBookingForm{Name: "A"})
	if _, ok := errs["form"]; !ok {
		t.Fatalf("thiếu trường phải báo lỗi chung: %v", errs)
	}

	errs = ValidateAdminBookingForm(dto.AdminBookingForm{
		Name: "A", Phone: "abc", Email: "khong-phai-email", RoomID: 1,
	})
	if _, ok := errs["phone"]; !ok {
		t.Error("số điện thoại sai phải có lỗi phone")
	}
	if _, ok := errs["email"]; !ok {
		t.Error("email sai phải có lỗi email")
	}

	errs = ValidateAdminBookingForm(dto.AdminBookingForm{
		Name: "A", Phone: "0912345678", Email: "a@example.com", RoomID: 1,
	})
	if len(errs) != 0 {
		t.Fatalf("form đủ và đúng không được có lỗi: %v", errs)
	}
}

func TestValidateUser(t *testing.T) {
	req := dto.UserRequest{Name: "Admin", Email: "admin@example.com", Password: "123456", Role: 1, Status: 1}
	if errs := ValidateUser(req, true); len(errs) != 0 {
		t.Fatalf("user hợp lệ không được có lỗi: %v", errs)
	}

	// tạo mới bắt buộc mật khẩu, sửa thì không
	req.Password = ""
	if _, ok := ValidateUser(req, true)["password"]; !ok {
		t.Error("tạo mới thiếu mật khẩu phải có lỗi")
	}
	if _, ok := ValidateUser(req, false)["password"]; ok {
		t.Error("sửa để trống mật khẩu phải được chấp nhận")
	}

	req.Password = "12345"
	if _, ok := ValidateUser(req, false)["password"]; !ok {
		t.Error("mật khẩu dưới 6 ký tự phải bị từ chối")
	}

	req.Password = "123456"
	req.Role = 9
	if _, ok := ValidateUser(req, false)["role"]; !ok {
		t.Error("role ngoài khoảng phải bị từ chối")
	}
}
