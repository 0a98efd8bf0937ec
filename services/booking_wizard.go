package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"phongtro/config"
	"phongtro/constants"
	"phongtro/dto"
	"phongtro/errors"
	"phongtro/models"
	"phongtro/validator"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const (
	wizardTTL        = 30 * time.Minute
	wizardSuccessTTL = 90 * time.Second // hết hạn là wizard tự quay về bước xem phòng
)

// WizardState là trạng thái wizard đặt phòng của một session trên một
// phòng: xem → điền form → xác nhận thanh toán → thành công, tuyến tính.
type WizardState struct {
	Step        int             `json:"step"`
	Form        dto.BookingForm `json:"form"`
	TotalDays   int             `json:"totalDays"`
	TotalPrice  int             `json:"totalPrice"`
	BookingCode string          `json:"bookingCode,omitempty"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ComputeStay tính số ngày ở và tổng tiền: ceil((checkout-checkin)/1 ngày)
// nhân đơn giá. Số ngày không dương thì trả 0/0 — phần tóm tắt giá bị ẩn
// chứ không báo lỗi.
func ComputeStay(checkin, checkout string, price int) (int, int) {
	in, err := time.Parse("2006-01-02", checkin)
	if err != nil {
		return 0, 0
	}
	out, err := time.Parse("2006-01-02", checkout)
	if err != nil {
		return 0, 0
	}

	diffMs := out.Sub(in).Milliseconds()
	days := int(math.Ceil(float64(diffMs) / 86400000.0))
	if days <= 0 {
		return 0, 0
	}
	return days, days * price
}

// NewBookingCode sinh mã hiển thị từ timestamp. Chỉ để hiển thị cho
// khách, không lưu và không đảm bảo duy nhất.
func NewBookingCode() string {
	return fmt.Sprintf("PT-%d", time.Now().UnixMilli())
}

// WizardStore trừu tượng hóa nơi giữ trạng thái wizard theo session
type WizardStore interface {
	Get(ctx context.Context, sessionID string, roomID uint) (*WizardState, error)
	Save(ctx context.Context, sessionID string, roomID uint, state *WizardState, ttl time.Duration) error
}

type redisWizardStore struct {
	rdb *redis.Client
}

// NewRedisWizardStore tạo store lưu trạng thái wizard trong Redis
func NewRedisWizardStore(rdb *redis.Client) WizardStore {
	return &redisWizardStore{rdb: rdb}
}

func wizardKey(sessionID string, roomID uint) string {
	return fmt.Sprintf("wizard:%s:%d", sessionID, roomID)
}

func (s *redisWizardStore) Get(ctx context.Context, sessionID string, roomID uint) (*WizardState, error) {
	val, err := s.rdb.Get(ctx, wizardKey(sessionID, roomID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var state WizardState
	if err := json.Unmarshal([]byte(val), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *redisWizardStore) Save(ctx context.Context, sessionID string, roomID uint, state *WizardState, ttl time.Duration) error {
	b, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, wizardKey(sessionID, roomID), b, ttl).Err()
}

// WizardService điều khiển máy trạng thái wizard đặt phòng
type WizardService struct {
	store   WizardStore
	booking *BookingService
}

func NewWizardService(store WizardStore, booking *BookingService) *WizardService {
	return &WizardService{store: store, booking: booking}
}

// State trả về trạng thái hiện tại; chưa có (hoặc đã hết hạn) thì bắt
// đầu lại ở bước xem phòng.
func (w *WizardService) State(sessionID string, roomID uint) (*WizardState, error) {
	state, err := w.store.Get(config.Ctx, sessionID, roomID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		state = &WizardState{Step: constants.WizardStepViewing}
	}
	return state, nil
}

// SubmitForm kiểm tra form đặt phòng; hợp lệ thì lưu form, tính tiền và
// chuyển sang bước đã điền form. Trả về map lỗi theo trường nếu có.
func (w *WizardService) SubmitForm(sessionID string, room *models.Room, form dto.BookingForm) (*WizardState, map[string]string, error) {
	state, err := w.State(sessionID, room.ID)
	if err != nil {
		return nil, nil, err
	}
	if state.Step > constants.WizardStepFormFilled {
		return nil, nil, errors.ErrWizardStep
	}

	if fieldErrors := validator.ValidateBookingForm(form, room.MaxPeople); len(fieldErrors) > 0 {
		return nil, fieldErrors, nil
	}

	days, total := ComputeStay(form.Checkin, form.Checkout, room.Price)
	state.Step = constants.WizardStepFormFilled
	state.Form = form
	state.TotalDays = days
	state.TotalPrice = total
	state.UpdatedAt = time.Now()

	if err := w.store.Save(config.Ctx, sessionID, room.ID, state, wizardTTL); err != nil {
		return nil, nil, err
	}
	return state, nil, nil
}

// ConfirmPayment chốt thanh toán: ghi booking vào phòng rồi chuyển sang
// bước thành công kèm mã hiển thị. Ghi thất bại thì wizard đứng yên ở
// bước hiện tại, không retry.
func (w *WizardService) ConfirmPayment(sessionID string, room *models.Room) (*WizardState, error) {
	state, err := w.State(sessionID, room.ID)
	if err != nil {
		return nil, err
	}
	if state.Step != constants.WizardStepFormFilled {
		return nil, errors.ErrWizardStep
	}

	state.Step = constants.WizardStepPaymentConfirmed

	booking := models.Booking{
		Name:      state.Form.Name,
		Phone:     state.Form.Phone,
		Email:     state.Form.Email,
		Img:       state.Form.Img,
		Checkin:   state.Form.Checkin,
		Checkout:  state.Form.Checkout,
		People:    state.Form.People,
		Note:      state.Form.Note,
		CreatedAt: time.Now(),
	}
	if _, err := w.booking.AddBookingToRoom(room.ID, booking); err != nil {
		// ghi thất bại: wizard quay về đứng ở bước đã điền form
		state.Step = constants.WizardStepFormFilled
		return nil, err
	}

	state.Step = constants.WizardStepSuccess
	state.BookingCode = NewBookingCode()
	state.UpdatedAt = time.Now()

	// TTL ngắn: hết hạn thì State trả về bước xem phòng (auto reset)
	if err := w.store.Save(config.Ctx, sessionID, room.ID, state, wizardSuccessTTL); err != nil {
		return nil, err
	}
	return state, nil
}
