package services

import (
	"encoding/json"
	"fmt"
	"sort"

	"phongtro/config"
	"phongtro/errors"
	"phongtro/models"
	"phongtro/services/logger"

	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// BookingService thực hiện các thao tác ghép trên danh sách booking
// nhúng của Room: đọc Room, biến đổi mảng, ghi lại nguyên Room.
// Không có version check hay khóa bản ghi: hai thao tác đồng thời cùng
// đọc một snapshot sẽ ghi đè kết quả của nhau (lost update). Hạn chế
// này giữ nguyên theo thiết kế gốc, xem DESIGN.md.
type BookingService struct {
	db     *gorm.DB
	rdb    *redis.Client
	melody *melody.Melody
	logger logger.Logger
}

func NewBookingService(db *gorm.DB, rdb *redis.Client, m *melody.Melody) *BookingService {
	return &BookingService{
		db:     db,
		rdb:    rdb,
		melody: m,
		logger: logger.NewDefaultLogger(logger.InfoLevel),
	}
}

// appendBooking thêm booking vào cuối danh sách. Không kiểm tra trùng id.
func appendBooking(list []models.Booking, b models.Booking) []models.Booking {
	return append(list, b)
}

// replaceBooking ghi đè thông tin định danh lên booking có id tương
// ứng, giữ nguyên vị trí. Ngày ở, số người, ghi chú và thời điểm tạo
// không thuộc form sửa nên giữ nguyên theo booking cũ.
func replaceBooking(list []models.Booking, id string, b models.Booking) ([]models.Booking, bool) {
	for i := range list {
		if list[i].ID == id {
			cur := list[i]
			cur.Name = b.Name
			cur.Phone = b.Phone
			cur.Email = b.Email
			cur.Img = b.Img
			list[i] = cur
			return list, true
		}
	}
	return list, false
}

// removeBooking xóa booking có id tương ứng khỏi danh sách
func removeBooking(list []models.Booking, id string) ([]models.Booking, bool) {
	for i := range list {
		if list[i].ID == id {
			return append(list[:i], list[i+1:]...), true
		}
	}
	return list, false
}

func (s *BookingService) loadRoom(roomID uint) (*models.Room, []models.Booking, error) {
	var room models.Room
	if err := s.db.First(&room, roomID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil, errors.ErrRoomNotFound
		}
		return nil, nil, err
	}
	bookings, err := room.DecodeBookings()
	if err != nil {
		return nil, nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Danh sách booking của phòng bị hỏng", err)
	}
	return &room, bookings, nil
}

// saveBookings ghi lại nguyên mảng booking lên Room rồi xóa cache phòng
func (s *BookingService) saveBookings(room *models.Room, bookings []models.Booking) error {
	raw, err := json.Marshal(bookings)
	if err != nil {
		return err
	}
	room.Bookings = raw
	if err := s.db.Save(room).Error; err != nil {
		return err
	}
	if s.rdb != nil {
		if err := DeleteFromRedis(config.Ctx, s.rdb, CacheKeyRooms); err != nil {
			s.logger.Error("Lỗi khi xóa cache phòng: %v", err)
		}
	}
	return nil
}

func (s *BookingService) broadcast(event string, roomID uint, bookingID string) {
	if s.melody == nil {
		return
	}
	payload, _ := json.Marshal(map[string]interface{}{
		"type":      event,
		"roomId":    roomID,
		"bookingId": bookingID,
	})
	if err := s.melody.Broadcast(payload); err != nil {
		s.logger.Error("Lỗi khi broadcast sự kiện booking: %v", err)
	}
}

// AddBookingToRoom thêm một booking mới vào phòng.
// Id sinh từ timestamp nếu chưa có, theo đúng hành vi gốc.
func (s *BookingService) AddBookingToRoom(roomID uint, b models.Booking) (models.Booking, error) {
	room, bookings, err := s.loadRoom(roomID)
	if err != nil {
		return models.Booking{}, err
	}

	if b.ID == "" {
		b.ID = models.NewBookingID()
	}
	b.RoomID = roomID

	if err := s.saveBookings(room, appendBooking(bookings, b)); err != nil {
		return models.Booking{}, err
	}

	s.broadcast("booking_created", roomID, b.ID)
	return b, nil
}

// UpdateBookingInRoom sửa một booking trong phòng
func (s *BookingService) UpdateBookingInRoom(roomID uint, bookingID string, b models.Booking) error {
	room, bookings, err := s.loadRoom(roomID)
	if err != nil {
		return err
	}

	updated, found := replaceBooking(bookings, bookingID, b)
	if !found {
		return errors.ErrBookingNotFound
	}

	return s.saveBookings(room, updated)
}

// DeleteBookingInRoom xóa một booking khỏi phòng
func (s *BookingService) DeleteBookingInRoom(roomID uint, bookingID string) error {
	room, bookings, err := s.loadRoom(roomID)
	if err != nil {
		return err
	}

	remaining, found := removeBooking(bookings, bookingID)
	if !found {
		return errors.ErrBookingNotFound
	}

	if err := s.saveBookings(room, remaining); err != nil {
		return err
	}

	s.broadcast("booking_deleted", roomID, bookingID)
	return nil
}

// ListAllBookings gộp booking nhúng của mọi phòng thành một bảng phẳng,
// denormalize roomId/roomName lên từng dòng, mới nhất trước.
func (s *BookingService) ListAllBookings() ([]models.Booking, error) {
	var rooms []models.Room
	if err := s.db.Find(&rooms).Error; err != nil {
		return nil, err
	}

	all := make([]models.Booking, 0)
	for _, room := range rooms {
		bookings, err := room.DecodeBookings()
		if err != nil {
			s.logger.Error("Bỏ qua danh sách booking hỏng của phòng %d: %v", room.ID, err)
			continue
		}
		for _, b := range bookings {
			b.RoomID = room.ID
			b.RoomName = room.Name
			all = append(all, b)
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return all, nil
}

// FindBookingRoom tìm phòng chứa booking theo id, dùng khi bảng admin
// chỉ còn giữ bookingId
func (s *BookingService) FindBookingRoom(bookingID string) (uint, error) {
	var rooms []models.Room
	if err := s.db.Find(&rooms).Error; err != nil {
		return 0, err
	}
	for _, room := range rooms {
		bookings, err := room.DecodeBookings()
		if err != nil {
			continue
		}
		for _, b := range bookings {
			if b.ID == bookingID {
				return room.ID, nil
			}
		}
	}
	return 0, fmt.Errorf("không tìm thấy booking %s: %w", bookingID, errors.ErrBookingNotFound)
}
