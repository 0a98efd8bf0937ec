package controllers

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"phongtro/models"
)

// Các helper lọc/sắp xếp/phân trang thuần cho bảng quản trị và trang
// danh sách công khai. Toàn bộ chạy trên collection đã nằm trong bộ
// nhớ: lọc là giao của mọi điều kiện đang bật, sắp xếp một khóa có
// đảo chiều, phân trang cắt lát (page-1)*limit .. page*limit.

type roomFilter struct {
	Search    string
	Area      string
	Price     string // all | lt2m | 2m-5m | gt2m | gt5m
	MaxPeople string
	Featured  string // all | true | false
	Rating    string // all | >=4.5 | 4-4.5 | <4
}

type userFilter struct {
	Search string
	Role   string
	Status string
}

type bookingFilter struct {
	Search string
	Date   string // all | today | week | month
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// matchPriceBracket so khớp giá với khoảng đặt tên sẵn
func matchPriceBracket(price int, bracket string) bool {
	switch bracket {
	case "", "all":
		return true
	case "lt2m":
		return price < 2000000
	case "2m-5m":
		return price >= 2000000 && price <= 5000000
	case "gt2m":
		return price > 2000000
	case "gt5m":
		return price > 5000000
	}
	return true
}

// matchRatingBracket so khớp rating với khoảng đặt tên sẵn
func matchRatingBracket(rating float64, bracket string) bool {
	switch bracket {
	case "", "all":
		return true
	case ">=4.5":
		return rating >= 4.5
	case "4-4.5":
		return rating >= 4 && rating < 4.5
	case "<4":
		return rating < 4
	}
	return true
}

func roomMatchesSearch(room models.Room, search string) bool {
	if search == "" {
		return true
	}
	return containsFold(room.Name, search) ||
		containsFold(room.Area, search) ||
		containsFold(room.OwnerName, search) ||
		containsFold(room.Location, search)
}

// filterRooms giữ lại các phòng thỏa đồng thời mọi điều kiện đang bật
func filterRooms(rooms []models.Room, f roomFilter) []models.Room {
	filtered := make([]models.Room, 0)
	for _, room := range rooms {
		if !roomMatchesSearch(room, f.Search) {
			continue
		}
		if f.Area != "" && f.Area != "all" && room.Area != f.Area {
			continue
		}
		if !matchPriceBracket(room.Price, f.Price) {
			continue
		}
		if f.MaxPeople != "" && f.MaxPeople != "all" {
			if people, err := strconv.Atoi(f.MaxPeople); err == nil && room.MaxPeople != people {
				continue
			}
		}
		if f.Featured != "" && f.Featured != "all" && room.IsFeatured != (f.Featured == "true") {
			continue
		}
		if !matchRatingBracket(room.Rating, f.Rating) {
			continue
		}
		filtered = append(filtered, room)
	}
	return filtered
}

// sortRooms sắp xếp theo một khóa; chuỗi hạ về chữ thường, số so trực
// tiếp, khóa không biết thì giữ nguyên thứ tự
func sortRooms(rooms []models.Room, key, order string) []models.Room {
	if key == "" {
		return rooms
	}
	desc := order == "desc"

	less := func(a, b models.Room) bool { return false }
	switch key {
	case "name":
		less = func(a, b models.Room) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	case "area":
		less = func(a, b models.Room) bool { return strings.ToLower(a.Area) < strings.ToLower(b.Area) }
	case "owner":
		less = func(a, b models.Room) bool { return strings.ToLower(a.OwnerName) < strings.ToLower(b.OwnerName) }
	case "price":
		less = func(a, b models.Room) bool { return a.Price < b.Price }
	case "maxPeople":
		less = func(a, b models.Room) bool { return a.MaxPeople < b.MaxPeople }
	case "rating":
		less = func(a, b models.Room) bool { return a.Rating < b.Rating }
	case "views":
		less = func(a, b models.Room) bool { return a.Views < b.Views }
	case "createdAt":
		less = func(a, b models.Room) bool { return a.CreatedAt.Before(b.CreatedAt) }
	default:
		return rooms
	}

	sort.SliceStable(rooms, func(i, j int) bool {
		if desc {
			return less(rooms[j], rooms[i])
		}
		return less(rooms[i], rooms[j])
	})
	return rooms
}

func userMatchesSearch(user models.User, search string) bool {
	if search == "" {
		return true
	}
	return containsFold(user.Name, search) || containsFold(user.Email, search)
}

func filterUsers(users []models.User, f userFilter) []models.User {
	filtered := make([]models.User, 0)
	for _, user := range users {
		if !userMatchesSearch(user, f.Search) {
			continue
		}
		if f.Role != "" && f.Role != "all" {
			if role, err := strconv.Atoi(f.Role); err == nil && user.Role != role {
				continue
			}
		}
		if f.Status != "" && f.Status != "all" {
			if status, err := strconv.Atoi(f.Status); err == nil && user.Status != status {
				continue
			}
		}
		filtered = append(filtered, user)
	}
	return filtered
}

func sortUsers(users []models.User, key, order string) []models.User {
	if key == "" {
		return users
	}
	desc := order == "desc"

	less := func(a, b models.User) bool { return false }
	switch key {
	case "name":
		less = func(a, b models.User) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	case "email":
		less = func(a, b models.User) bool { return strings.ToLower(a.Email) < strings.ToLower(b.Email) }
	case "role":
		less = func(a, b models.User) bool { return a.Role < b.Role }
	case "status":
		less = func(a, b models.User) bool { return a.Status < b.Status }
	case "createdAt":
		less = func(a, b models.User) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case "lastLogin":
		less = func(a, b models.User) bool { return a.LastLogin.Before(b.LastLogin) }
	default:
		return users
	}

	sort.SliceStable(users, func(i, j int) bool {
		if desc {
			return less(users[j], users[i])
		}
		return less(users[i], users[j])
	})
	return users
}

func bookingMatchesSearch(b models.Booking, search string) bool {
	if search == "" {
		return true
	}
	return containsFold(b.Name, search) ||
		containsFold(b.Phone, search) ||
		containsFold(b.Email, search) ||
		containsFold(b.RoomName, search)
}

// matchDateBucket so khớp createdAt với khoảng thời gian đặt tên sẵn,
// tính lùi từ thời điểm now
func matchDateBucket(createdAt, now time.Time, bucket string) bool {
	switch bucket {
	case "", "all":
		return true
	case "today":
		return createdAt.Year() == now.Year() && createdAt.YearDay() == now.YearDay()
	case "week":
		return now.Sub(createdAt) <= 7*24*time.Hour
	case "month":
		return now.Sub(createdAt) <= 30*24*time.Hour
	}
	return true
}

func filterBookings(bookings []models.Booking, f bookingFilter, now time.Time) []models.Booking {
	filtered := make([]models.Booking, 0)
	for _, b := range bookings {
		if !bookingMatchesSearch(b, f.Search) {
			continue
		}
		if !matchDateBucket(b.CreatedAt, now, f.Date) {
			continue
		}
		filtered = append(filtered, b)
	}
	return filtered
}

// paginate cắt cửa sổ trang 1-based; trang vượt quá cuối trả lát rỗng
func paginate[T any](items []T, page, limit int) []T {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	start := (page - 1) * limit
	end := start + limit
	total := len(items)

	if start >= total {
		return []T{}
	}
	if end > total {
		return items[start:]
	}
	return items[start:end]
}

// totalPages = ceil(total/limit)
func totalPages(total, limit int) int {
	if limit < 1 {
		return 0
	}
	return (total + limit - 1) / limit
}
