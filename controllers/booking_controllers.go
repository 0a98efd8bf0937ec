package controllers

import (
	"errors"
	"time"

	"phongtro/config"
	"phongtro/dto"
	apperrors "phongtro/errors"
	"phongtro/models"
	"phongtro/response"
	"phongtro/services"
	"phongtro/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BookingController struct {
	svc    *services.BookingService
	wizard *services.WizardService
}

func NewBookingController(svc *services.BookingService, wizard *services.WizardService) *BookingController {
	return &BookingController{svc: svc, wizard: wizard}
}

func sessionID(c *gin.Context) string {
	if sid, ok := c.Get("sessionId"); ok {
		return sid.(string)
	}
	return ""
}

func loadRoomParam(c *gin.Context) (*models.Room, bool) {
	var room models.Room
	if err := config.DB.First(&room, c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c)
		} else {
			response.ServerError(c)
		}
		return nil, false
	}
	return &room, true
}

func toWizardResponse(state *services.WizardState) dto.WizardStateResponse {
	return dto.WizardStateResponse{
		Step:        state.Step,
		TotalDays:   state.TotalDays,
		TotalPrice:  state.TotalPrice,
		BookingCode: state.BookingCode,
	}
}

// GetWizardState trả về bước hiện tại của wizard đặt phòng cho session
func (ctl *BookingController) GetWizardState(c *gin.Context) {
	room, ok := loadRoomParam(c)
	if !ok {
		return
	}

	state, err := ctl.wizard.State(sessionID(c), room.ID)
	if err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, toWizardResponse(state))
}

// SubmitWizardForm nhận form đặt phòng, trả lỗi theo trường nếu không
// hợp lệ, hợp lệ thì kèm số ngày ở và tổng tiền
func (ctl *BookingController) SubmitWizardForm(c *gin.Context) {
	room, ok := loadRoomParam(c)
	if !ok {
		return
	}

	var form dto.BookingForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	state, fieldErrors, err := ctl.wizard.SubmitForm(sessionID(c), room, form)
	if err != nil {
		if errors.Is(err, apperrors.ErrWizardStep) {
			response.BadRequest(c, "Bước đặt phòng không hợp lệ")
			return
		}
		response.ServerError(c)
		return
	}
	if len(fieldErrors) > 0 {
		response.ValidationError(c, fieldErrors)
		return
	}

	response.Success(c, toWizardResponse(state))
}

// ConfirmWizardPayment chốt thanh toán và ghi booking vào phòng.
// Thất bại thì wizard vẫn ở bước hiện tại, khách tự bấm lại.
func (ctl *BookingController) ConfirmWizardPayment(c *gin.Context) {
	room, ok := loadRoomParam(c)
	if !ok {
		return
	}

	state, err := ctl.wizard.ConfirmPayment(sessionID(c), room)
	if err != nil {
		if errors.Is(err, apperrors.ErrWizardStep) {
			response.BadRequest(c, "Vui lòng điền form đặt phòng trước")
			return
		}
		response.BadRequest(c, "Đặt phòng thất bại, vui lòng thử lại")
		return
	}

	response.Success(c, toWizardResponse(state))
}

// GetBookings trả về bảng booking quản trị: gộp booking nhúng của mọi
// phòng, lọc theo từ khóa và khoảng ngày tạo, cắt trang
func (ctl *BookingController) GetBookings(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	q.Normalize()

	all, err := ctl.svc.ListAllBookings()
	if err != nil {
		response.ServerError(c)
		return
	}

	filtered := filterBookings(all, bookingFilter{
		Search: q.Search,
		Date:   c.Query("date"),
	}, time.Now())

	total := len(filtered)
	window := paginate(filtered, q.Page, q.Limit)

	response.SuccessWithPagination(c, window, q.Page, q.Limit, total)
}

// CreateBooking thêm booking từ form quản trị (chỉ thông tin định danh)
func (ctl *BookingController) CreateBooking(c *gin.Context) {
	var form dto.AdminBookingForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if fieldErrors := validator.ValidateAdminBookingForm(form); len(fieldErrors) > 0 {
		response.ValidationError(c, fieldErrors)
		return
	}

	booking := models.Booking{
		Name:      form.Name,
		Phone:     form.Phone,
		Email:     form.Email,
		Img:       form.Img,
		CreatedAt: time.Now(),
	}

	created, err := ctl.svc.AddBookingToRoom(form.RoomID, booking)
	if err != nil {
		if errors.Is(err, apperrors.ErrRoomNotFound) {
			response.NotFound(c)
			return
		}
		response.BadRequest(c, "Lỗi khi thêm booking!")
		return
	}

	response.Success(c, created)
}

// UpdateBooking sửa booking; bảng quản trị chỉ giữ id booking nên phải
// tìm lại phòng chứa nó trước
func (ctl *BookingController) UpdateBooking(c *gin.Context) {
	bookingID := c.Param("bookingId")
	roomID, err := ctl.svc.FindBookingRoom(bookingID)
	if err != nil {
		response.NotFound(c)
		return
	}

	var form dto.AdminBookingForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if fieldErrors := validator.ValidateAdminBookingForm(form); len(fieldErrors) > 0 {
		response.ValidationError(c, fieldErrors)
		return
	}

	booking := models.Booking{
		Name:  form.Name,
		Phone: form.Phone,
		Email: form.Email,
		Img:   form.Img,
	}

	if err := ctl.svc.UpdateBookingInRoom(roomID, bookingID, booking); err != nil {
		if errors.Is(err, apperrors.ErrRoomNotFound) || errors.Is(err, apperrors.ErrBookingNotFound) {
			response.NotFound(c)
			return
		}
		response.BadRequest(c, "Lỗi khi sửa booking!")
		return
	}

	response.Success(c, nil)
}

// DeleteBooking xóa booking khỏi phòng chứa nó
func (ctl *BookingController) DeleteBooking(c *gin.Context) {
	bookingID := c.Param("bookingId")
	roomID, err := ctl.svc.FindBookingRoom(bookingID)
	if err != nil {
		response.NotFound(c)
		return
	}

	if err := ctl.svc.DeleteBookingInRoom(roomID, bookingID); err != nil {
		if errors.Is(err, apperrors.ErrRoomNotFound) || errors.Is(err, apperrors.ErrBookingNotFound) {
			response.NotFound(c)
			return
		}
		response.BadRequest(c, "Lỗi khi xóa booking!")
		return
	}

	response.Success(c, nil)
}
