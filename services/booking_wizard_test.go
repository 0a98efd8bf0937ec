package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"phongtro/constants"
	"phongtro/dto"
	apperrors "phongtro/errors"
	"phongtro/models"
)

type memoryWizardStore struct {
	states map[string]*WizardState
}

func newMemoryWizardStore() *memoryWizardStore {
	return &memoryWizardStore{states: make(map[string]*WizardState)}
}

func (s *memoryWizardStore) Get(_ context.Context, sessionID string, roomID uint) (*WizardState, error) {
	state, ok := s.states[wizardKey(sessionID, roomID)]
	if !ok {
		return nil, nil
	}
	copied := *state
	return &copied, nil
}

func (s *memoryWizardStore) Save(_ context.Context, sessionID string, roomID uint, state *WizardState, _ time.Duration) error {
	copied := *state
	s.states[wizardKey(sessionID, roomID)] = &copied
	return nil
}

func testRoom() *models.Room {
	return &models.Room{ID: 1, Name: "Phòng test", Price: 2000000, MaxPeople: 3}
}

func testForm() dto.BookingForm {
	return dto.BookingForm{
		Name:     "Nguyễn Văn A",
		Phone:    "0912345678",
		Email:    "a@example.com",
		Checkin:  time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
		Checkout: time.Now().AddDate(0, 0, 4).Format("2006-01-02"),
		People:   2,
	}
}

func TestComputeStay(t *testing.T) {
	days, total := ComputeStay("2026-09-01", "2026-09-04", 2000000)
	if days != 3 || total != 6000000 {
		t.Fatalf("3 đêm giá 2 triệu: được %d ngày, %d đồng", days, total)
	}

	// trùng ngày hoặc ngược ngày đều về 0/0
	if days, total := ComputeStay("2026-09-04", "2026-09-04", 2000000); days != 0 || total != 0 {
		t.Fatalf("trùng ngày phải trả 0/0, được %d/%d", days, total)
	}
	if days, total := ComputeStay("2026-09-04", "2026-09-01", 2000000); days != 0 || total != 0 {
		t.Fatalf("ngược ngày phải trả 0/0, được %d/%d", days, total)
	}

	// ngày không parse được cũng về 0/0
	if days, total := ComputeStay("khong-phai-ngay", "2026-09-04", 2000000); days != 0 || total != 0 {
		t.Fatalf("ngày hỏng phải trả 0/0, được %d/%d", days, total)
	}
}

func TestWizardStateStartsAtViewing(t *testing.T) {
	w := NewWizardService(newMemoryWizardStore(), nil)

	state, err := w.State("s1", 1)
	if err != nil {
		t.Fatal(err)
	}
	if state.Step != constants.WizardStepViewing {
		t.Fatalf("session mới phải ở bước xem phòng, được %d", state.Step)
	}
}

func TestWizardSubmitForm(t *testing.T) {
	w := NewWizardService(newMemoryWizardStore(), nil)
	room := testRoom()

	state, fieldErrors, err := w.SubmitForm("s1", room, testForm())
	if err != nil {
		t.Fatal(err)
	}
	if len(fieldErrors) != 0 {
		t.Fatalf("form hợp lệ không được có lỗi: %v", fieldErrors)
	}
	if state.Step != constants.WizardStepFormFilled {
		t.Fatalf("sau submit phải ở bước đã điền form, được %d", state.Step)
	}
	if state.TotalDays != 3 || state.TotalPrice != 6000000 {
		t.Fatalf("tính tiền sai: %d ngày, %d đồng", state.TotalDays, state.TotalPrice)
	}

	// trạng thái phải được lưu lại cho lần đọc sau
	saved, err := w.State("s1", room.ID)
	if err != nil {
		t.Fatal(err)
	}
	if saved.Step != constants.WizardStepFormFilled {
		t.Fatalf("trạng thái không được lưu: %d", saved.Step)
	}
}

func TestWizardSubmitFormInvalid(t *testing.T) {
	w := NewWizardService(newMemoryWizardStore(), nil)
	room := testRoom()

	form := testForm()
	form.Phone = "123"
	form.People = 99

	_, fieldErrors, err := w.SubmitForm("s1", room, form)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := fieldErrors["phone"]; !ok {
		t.Error("số điện thoại sai phải có lỗi phone")
	}
	if _, ok := fieldErrors["people"]; !ok {
		t.Error("vượt số người phải có lỗi people")
	}

	// form hỏng thì wizard vẫn đứng ở bước xem phòng
	state, err := w.State("s1", room.ID)
	if err != nil {
		t.Fatal(err)
	}
	if state.Step != constants.WizardStepViewing {
		t.Fatalf("form hỏng không được đổi bước, được %d", state.Step)
	}
}

func TestWizardConfirmPaymentRequiresForm(t *testing.T) {
	w := NewWizardService(newMemoryWizardStore(), nil)

	// chưa điền form mà đòi thanh toán thì bị chặn
	_, err := w.ConfirmPayment("s1", testRoom())
	if !errors.Is(err, apperrors.ErrWizardStep) {
		t.Fatalf("muốn ErrWizardStep, được %v", err)
	}
}

func TestWizardSessionsIsolated(t *testing.T) {
	w := NewWizardService(newMemoryWizardStore(), nil)
	room := testRoom()

	if _, _, err := w.SubmitForm("s1", room, testForm()); err != nil {
		t.Fatal(err)
	}

	// session khác trên cùng phòng vẫn ở bước xem
	state, err := w.State("s2", room.ID)
	if err != nil {
		t.Fatal(err)
	}
	if state.Step != constants.WizardStepViewing {
		t.Fatalf("session khác phải độc lập, được bước %d", state.Step)
	}
}
