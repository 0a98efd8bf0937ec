package services

import (
	"testing"

	"phongtro/models"

	"github.com/goccy/go-json"
)

// Cache lưu nguyên []models.Room qua codec JSON; cột nào không
// serialize được là mọi lần đọc trúng cache sẽ trả về giá trị rỗng.
func TestRoomCacheRoundtripKeepsOwnerFields(t *testing.T) {
	rooms := []models.Room{
		{
			ID:          1,
			Name:        "Phòng trọ Bình Thạnh",
			OwnerName:   "Chị Lan",
			OwnerPhone:  "0912345678",
			OwnerAvatar: "https://example.com/lan.png",
		},
	}

	data, err := json.Marshal(rooms)
	if err != nil {
		t.Fatal(err)
	}

	var decoded []models.Room
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}

	if len(decoded) != 1 {
		t.Fatalf("muốn 1 phòng, được %d", len(decoded))
	}
	got := decoded[0]
	if got.OwnerName != "Chị Lan" {
		t.Errorf("serialize qua cache làm mất tên chủ phòng: %q", got.OwnerName)
	}
	if got.OwnerPhone != "0912345678" {
		t.Errorf("serialize qua cache làm mất số điện thoại chủ phòng: %q", got.OwnerPhone)
	}
	if got.OwnerAvatar == "" {
		t.Error("serialize qua cache làm mất avatar chủ phòng")
	}
}
