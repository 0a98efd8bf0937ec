package controllers

import (
	"testing"
	"time"

	"phongtro/models"
)

func sampleRooms() []models.Room {
	return []models.Room{
		{ID: 1, Name: "Phòng trọ Bình Thạnh", Area: "Bình Thạnh", OwnerName: "Chị Lan", Price: 1800000, MaxPeople: 2, Rating: 4.7, IsFeatured: true},
		{ID: 2, Name: "Căn hộ mini Quận 1", Area: "Quận 1", OwnerName: "Anh Tuấn", Price: 4500000, MaxPeople: 3, Rating: 4.2, IsFeatured: false},
		{ID: 3, Name: "Phòng gác lửng Gò Vấp", Area: "Gò Vấp", OwnerName: "Cô Hoa", Price: 2500000, MaxPeople: 2, Rating: 3.8, IsFeatured: false},
		{ID: 4, Name: "Studio Quận 1 full nội thất", Area: "Quận 1", OwnerName: "Anh Tuấn", Price: 6000000, MaxPeople: 4, Rating: 4.9, IsFeatured: true},
	}
}

func roomIDs(rooms []models.Room) []uint {
	ids := make([]uint, 0, len(rooms))
	for _, r := range rooms {
		ids = append(ids, r.ID)
	}
	return ids
}

func equalIDs(a, b []uint) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterRoomsConjunction(t *testing.T) {
	rooms := sampleRooms()

	// hai điều kiện cùng lúc: chỉ giữ phòng thỏa cả hai
	got := filterRooms(rooms, roomFilter{Area: "Quận 1", Price: "gt5m"})
	if !equalIDs(roomIDs(got), []uint{4}) {
		t.Fatalf("lọc khu vực + giá: muốn [4], được %v", roomIDs(got))
	}

	// thêm điều kiện thứ ba loại nốt kết quả còn lại
	got = filterRooms(rooms, roomFilter{Area: "Quận 1", Price: "gt5m", Rating: "<4"})
	if len(got) != 0 {
		t.Fatalf("thêm điều kiện rating: muốn rỗng, được %v", roomIDs(got))
	}
}

func TestFilterRoomsSearch(t *testing.T) {
	rooms := sampleRooms()

	// tìm kiếm không phân biệt hoa thường, khớp cả tên chủ phòng
	got := filterRooms(rooms, roomFilter{Search: "anh tuấn"})
	if !equalIDs(roomIDs(got), []uint{2, 4}) {
		t.Fatalf("tìm theo chủ phòng: muốn [2 4], được %v", roomIDs(got))
	}
}

func TestMatchPriceBracket(t *testing.T) {
	cases := []struct {
		price   int
		bracket string
		want    bool
	}{
		{1500000, "lt2m", true},
		{2000000, "lt2m", false},
		{2000000, "2m-5m", true},
		{5000000, "2m-5m", true},
		{5000001, "2m-5m", false},
		{2000001, "gt2m", true},
		{5000001, "gt5m", true},
		{999, "", true},
		{999, "all", true},
	}
	for _, tc := range cases {
		if got := matchPriceBracket(tc.price, tc.bracket); got != tc.want {
			t.Errorf("matchPriceBracket(%d, %q) = %v, muốn %v", tc.price, tc.bracket, got, tc.want)
		}
	}
}

func TestSortRooms(t *testing.T) {
	rooms := sampleRooms()

	asc := sortRooms(append([]models.Room(nil), rooms...), "price", "asc")
	if !equalIDs(roomIDs(asc), []uint{1, 3, 2, 4}) {
		t.Fatalf("sắp theo giá tăng: được %v", roomIDs(asc))
	}

	desc := sortRooms(append([]models.Room(nil), rooms...), "price", "desc")
	if !equalIDs(roomIDs(desc), []uint{4, 2, 3, 1}) {
		t.Fatalf("sắp theo giá giảm: được %v", roomIDs(desc))
	}

	// khóa lạ thì giữ nguyên thứ tự
	same := sortRooms(append([]models.Room(nil), rooms...), "khongcokey", "asc")
	if !equalIDs(roomIDs(same), []uint{1, 2, 3, 4}) {
		t.Fatalf("khóa lạ phải giữ nguyên thứ tự: được %v", roomIDs(same))
	}
}

func TestSortRoomsStringCaseInsensitive(t *testing.T) {
	rooms := []models.Room{
		{ID: 1, Name: "bàu cát"},
		{ID: 2, Name: "An Dương Vương"},
	}
	got := sortRooms(rooms, "name", "asc")
	if !equalIDs(roomIDs(got), []uint{2, 1}) {
		t.Fatalf("so chuỗi phải hạ về chữ thường: được %v", roomIDs(got))
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	if got := paginate(items, 1, 3); len(got) != 3 || got[0] != 1 {
		t.Fatalf("trang 1: được %v", got)
	}
	if got := paginate(items, 3, 3); len(got) != 1 || got[0] != 7 {
		t.Fatalf("trang cuối phải còn đúng phần dư: được %v", got)
	}
	if got := paginate(items, 4, 3); len(got) != 0 {
		t.Fatalf("trang vượt cuối phải rỗng: được %v", got)
	}
	if got := paginate(items, 0, 3); len(got) != 3 || got[0] != 1 {
		t.Fatalf("page < 1 quy về trang 1: được %v", got)
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total, limit, want int
	}{
		{7, 3, 3},
		{6, 3, 2},
		{0, 3, 0},
		{1, 10, 1},
		{10, 0, 0},
	}
	for _, tc := range cases {
		if got := totalPages(tc.total, tc.limit); got != tc.want {
			t.Errorf("totalPages(%d, %d) = %d, muốn %d", tc.total, tc.limit, got, tc.want)
		}
	}
}

func TestFilterUsersRoleStatus(t *testing.T) {
	users := []models.User{
		{ID: 1, Name: "Minh", Email: "minh@example.com", Role: 0, Status: 1},
		{ID: 2, Name: "Hà", Email: "ha@example.com", Role: 1, Status: 1},
		{ID: 3, Name: "Minh Anh", Email: "minhanh@example.com", Role: 0, Status: 2},
	}

	got := filterUsers(users, userFilter{Search: "minh", Role: "0", Status: "1"})
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("lọc role + status + search: được %d kết quả", len(got))
	}
}

func TestMatchDateBucket(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.Local)

	if !matchDateBucket(now.Add(-2*time.Hour), now, "today") {
		t.Error("cùng ngày phải khớp bucket today")
	}
	if matchDateBucket(now.AddDate(0, 0, -1), now, "today") {
		t.Error("hôm qua không được khớp bucket today")
	}
	if !matchDateBucket(now.AddDate(0, 0, -6), now, "week") {
		t.Error("6 ngày trước phải khớp bucket week")
	}
	if matchDateBucket(now.AddDate(0, 0, -8), now, "week") {
		t.Error("8 ngày trước không được khớp bucket week")
	}
	if !matchDateBucket(now.AddDate(0, 0, -29), now, "month") {
		t.Error("29 ngày trước phải khớp bucket month")
	}
	if !matchDateBucket(now.AddDate(0, 0, -100), now, "all") {
		t.Error("bucket all phải khớp mọi thời điểm")
	}
}

func TestFilterBookings(t *testing.T) {
	now := time.Now()
	bookings := []models.Booking{
		{ID: "1", Name: "Ngọc", RoomName: "Phòng A", CreatedAt: now.Add(-time.Hour)},
		{ID: "2", Name: "Tú", RoomName: "Phòng B", CreatedAt: now.AddDate(0, 0, -10)},
	}

	got := filterBookings(bookings, bookingFilter{Search: "phòng", Date: "week"}, now)
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("lọc search + date: được %d kết quả", len(got))
	}
}
