package controllers

import (
	"log"
	"strconv"
	"time"

	"phongtro/config"
	"phongtro/dto"
	"phongtro/models"
	"phongtro/response"
	"phongtro/services"
	"phongtro/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const roomCacheTTL = 10 * time.Minute

func toRoomResponse(room models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		ID:         room.ID,
		Name:       room.Name,
		Price:      room.Price,
		Area:       room.Area,
		Location:   room.Location,
		AreaSize:   room.AreaSize,
		MaxPeople:  room.MaxPeople,
		Rating:     room.Rating,
		Img:        room.Img,
		IsFeatured: room.IsFeatured,
		Views:      room.Views,
		Owner: dto.Owner{
			Name:   room.OwnerName,
			Phone:  room.OwnerPhone,
			Avatar: room.OwnerAvatar,
		},
		CreatedAt: room.CreatedAt,
		UpdatedAt: room.UpdatedAt,
	}
}

func toRoomDetail(room models.Room) dto.RoomDetail {
	return dto.RoomDetail{
		ID:         room.ID,
		Name:       room.Name,
		Price:      room.Price,
		Area:       room.Area,
		Location:   room.Location,
		AreaSize:   room.AreaSize,
		MaxPeople:  room.MaxPeople,
		Rating:     room.Rating,
		Img:        room.Img,
		Images:     room.Images,
		Video:      room.Video,
		Poster:     room.Poster,
		Amenities:  room.Amenities,
		Owner: dto.Owner{
			Name:   room.OwnerName,
			Phone:  room.OwnerPhone,
			Avatar: room.OwnerAvatar,
		},
		IsFeatured: room.IsFeatured,
		Views:      room.Views,
		Reviews:    []byte(room.Reviews),
		CreatedAt:  room.CreatedAt,
		UpdatedAt:  room.UpdatedAt,
	}
}

// fetchAllRooms lấy nguyên collection phòng: ưu tiên cache, trượt về
// DB rồi ghi lại cache. Mọi mutation phải xóa khóa rooms:all.
func fetchAllRooms() ([]models.Room, error) {
	var rooms []models.Room

	if err := services.GetFromRedis(config.Ctx, config.RedisClient, services.CacheKeyRooms, &rooms); err == nil && len(rooms) > 0 {
		return rooms, nil
	}

	if err := config.DB.Find(&rooms).Error; err != nil {
		return nil, err
	}

	if err := services.SetToRedis(config.Ctx, config.RedisClient, services.CacheKeyRooms, rooms, roomCacheTTL); err != nil {
		log.Printf("Lỗi khi lưu danh sách phòng vào Redis: %v", err)
	}
	return rooms, nil
}

func invalidateRoomCache() {
	if err := services.DeleteFromRedis(config.Ctx, config.RedisClient, services.CacheKeyRooms); err != nil {
		log.Printf("Lỗi khi xóa cache phòng: %v", err)
	}
}

func parsePageQuery(c *gin.Context) (int, int) {
	page := 1
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsed, err := strconv.Atoi(pageStr); err == nil && parsed >= 1 {
			page = parsed
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	return page, limit
}

// GetAllRooms trả về lưới phòng công khai: tìm kiếm, lọc khoảng giá,
// khu vực, nổi bật; lọc xong mới sắp xếp rồi cắt trang
func GetAllRooms(c *gin.Context) {
	rooms, err := fetchAllRooms()
	if err != nil {
		response.ServerError(c)
		return
	}

	filtered := filterRooms(rooms, roomFilter{
		Search:    c.Query("search"),
		Area:      c.Query("area"),
		Price:     c.Query("price"),
		MaxPeople: c.Query("maxPeople"),
		Featured:  c.Query("featured"),
		Rating:    c.Query("rating"),
	})

	sorted := sortRooms(filtered, c.Query("sortBy"), c.Query("order"))

	page, limit := parsePageQuery(c)
	total := len(sorted)
	window := paginate(sorted, page, limit)

	roomResponses := make([]dto.RoomResponse, 0, len(window))
	for _, room := range window {
		roomResponses = append(roomResponses, toRoomResponse(room))
	}

	response.SuccessWithPagination(c, roomResponses, page, limit, total)
}

// GetFeaturedRooms trả về danh sách phòng nổi bật cho carousel trang chủ
func GetFeaturedRooms(c *gin.Context) {
	rooms, err := fetchAllRooms()
	if err != nil {
		response.ServerError(c)
		return
	}

	featured := make([]dto.RoomResponse, 0)
	for _, room := range rooms {
		if !room.IsFeatured {
			continue
		}
		featured = append(featured, toRoomResponse(room))
		if len(featured) >= 8 {
			break
		}
	}

	response.Success(c, featured)
}

// GetRoomDetail trả về chi tiết phòng và tăng lượt xem. Lượt xem chỉ
// mang tính hiển thị: đọc rồi ghi lại, không atomic, lỗi thì bỏ qua.
func GetRoomDetail(c *gin.Context) {
	id := c.Param("id")

	var room models.Room
	if err := config.DB.First(&room, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	room.Views++
	if err := config.DB.Model(&models.Room{}).Where("id = ?", room.ID).Update("views", room.Views).Error; err != nil {
		log.Printf("Lỗi khi tăng lượt xem phòng %d: %v", room.ID, err)
	}

	response.Success(c, toRoomDetail(room))
}

// CreateRoom tạo phòng mới từ form quản trị
func CreateRoom(c *gin.Context) {
	var req dto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if fieldErrors := validator.ValidateRoom(req); len(fieldErrors) > 0 {
		response.ValidationError(c, fieldErrors)
		return
	}

	room := models.Room{
		Name:        req.Name,
		Price:       req.Price,
		Area:        req.Area,
		Location:    req.Location,
		AreaSize:    req.AreaSize,
		MaxPeople:   req.MaxPeople,
		Rating:      req.Rating,
		Img:         req.Img,
		Images:      req.Images,
		Video:       req.Video,
		Poster:      req.Poster,
		Amenities:   req.Amenities,
		OwnerName:   req.Owner.Name,
		OwnerPhone:  req.Owner.Phone,
		OwnerAvatar: req.Owner.Avatar,
		IsFeatured:  req.IsFeatured,
	}

	if err := config.DB.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCache()
	response.Success(c, toRoomDetail(room))
}

// UpdateRoom sửa phòng theo id
func UpdateRoom(c *gin.Context) {
	id := c.Param("id")

	var room models.Room
	if err := config.DB.First(&room, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	var req dto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if fieldErrors := validator.ValidateRoom(req); len(fieldErrors) > 0 {
		response.ValidationError(c, fieldErrors)
		return
	}

	room.Name = req.Name
	room.Price = req.Price
	room.Area = req.Area
	room.Location = req.Location
	room.AreaSize = req.AreaSize
	room.MaxPeople = req.MaxPeople
	room.Rating = req.Rating
	room.Img = req.Img
	room.Images = req.Images
	room.Video = req.Video
	room.Poster = req.Poster
	room.Amenities = req.Amenities
	room.OwnerName = req.Owner.Name
	room.OwnerPhone = req.Owner.Phone
	room.OwnerAvatar = req.Owner.Avatar
	room.IsFeatured = req.IsFeatured

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCache()
	response.Success(c, toRoomDetail(room))
}

// DeleteRoom xóa phòng rồi xóa cache; lần đọc kế tiếp sẽ không còn
// thấy phòng này trong danh sách
func DeleteRoom(c *gin.Context) {
	id := c.Param("id")

	result := config.DB.Delete(&models.Room{}, id)
	if result.Error != nil {
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c)
		return
	}

	invalidateRoomCache()
	response.Success(c, nil)
}
