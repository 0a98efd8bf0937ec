package controllers

import (
	"encoding/csv"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"phongtro/config"
	"phongtro/constants"
	"phongtro/dto"
	apperrors "phongtro/errors"
	"phongtro/models"
	"phongtro/response"
	"phongtro/services"
	"phongtro/validator"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

const userCacheTTL = 10 * time.Minute

func toUserResponse(user models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Avatar:      user.Avatar,
		Role:        user.Role,
		Status:      user.Status,
		Permissions: user.Permissions,
		Stats:       []byte(user.Stats),
		CreatedAt:   user.CreatedAt,
		LastLogin:   user.LastLogin,
	}
}

// fetchAllUsers lấy nguyên collection user, ưu tiên cache như phòng
func fetchAllUsers() ([]models.User, error) {
	var users []models.User

	if err := services.GetFromRedis(config.Ctx, config.RedisClient, services.CacheKeyUsers, &users); err == nil && len(users) > 0 {
		return users, nil
	}

	if err := config.DB.Find(&users).Error; err != nil {
		return nil, err
	}

	if err := services.SetToRedis(config.Ctx, config.RedisClient, services.CacheKeyUsers, users, userCacheTTL); err != nil {
		log.Printf("Lỗi khi lưu danh sách user vào Redis: %v", err)
	}
	return users, nil
}

func invalidateUserCache() {
	if err := services.DeleteFromRedis(config.Ctx, config.RedisClient, services.CacheKeyUsers); err != nil {
		log.Printf("Lỗi khi xóa cache user: %v", err)
	}
}

// queriedUsers trả về danh sách user đã lọc và sắp xếp theo query chung,
// dùng chung cho bảng quản trị và xuất CSV
func queriedUsers(c *gin.Context, q dto.ListQuery) ([]models.User, error) {
	users, err := fetchAllUsers()
	if err != nil {
		return nil, err
	}

	filtered := filterUsers(users, userFilter{
		Search: q.Search,
		Role:   c.Query("role"),
		Status: c.Query("status"),
	})

	return sortUsers(filtered, q.SortBy, q.Order), nil
}

// GetUsers trả về bảng user quản trị với lọc/sắp xếp/phân trang
func GetUsers(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	q.Normalize()

	sorted, err := queriedUsers(c, q)
	if err != nil {
		response.ServerError(c)
		return
	}

	window := paginate(sorted, q.Page, q.Limit)

	result := make([]dto.UserResponse, 0, len(window))
	for _, user := range window {
		result = append(result, toUserResponse(user))
	}

	response.SuccessWithPagination(c, result, q.Page, q.Limit, len(sorted))
}

// CreateUser tạo user từ trang quản trị, mật khẩu bắt buộc khi tạo
func CreateUser(c *gin.Context) {
	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if fieldErrors := validator.ValidateUser(req, true); len(fieldErrors) > 0 {
		response.ValidationError(c, fieldErrors)
		return
	}

	user := models.User{
		Name:        req.Name,
		Email:       req.Email,
		Avatar:      req.Avatar,
		Role:        req.Role,
		Status:      req.Status,
		Permissions: req.Permissions,
		Stats:       datatypes.JSON(req.Stats),
	}

	created, err := services.CreateUser(config.DB, user, req.Password)
	if err != nil {
		if err == apperrors.ErrUserAlreadyExists {
			response.ValidationError(c, map[string]string{"email": "Email đã được sử dụng"})
			return
		}
		response.BadRequest(c, "Lỗi khi tạo user!")
		return
	}

	invalidateUserCache()
	response.Success(c, toUserResponse(*created))
}

// UpdateUser sửa user; bỏ trống mật khẩu thì giữ mật khẩu cũ
func UpdateUser(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if fieldErrors := validator.ValidateUser(req, false); len(fieldErrors) > 0 {
		response.ValidationError(c, fieldErrors)
		return
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Avatar = req.Avatar
	user.Role = req.Role
	user.Status = req.Status
	user.Permissions = req.Permissions
	user.Stats = datatypes.JSON(req.Stats)

	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			response.ServerError(c)
			return
		}
		user.Password = string(hashed)
	}

	if err := config.DB.Save(&user).Error; err != nil {
		response.BadRequest(c, "Lỗi khi cập nhật user!")
		return
	}

	invalidateUserCache()
	response.Success(c, toUserResponse(user))
}

func DeleteUser(c *gin.Context) {
	result := config.DB.Delete(&models.User{}, c.Param("id"))
	if result.Error != nil {
		response.BadRequest(c, "Lỗi khi xóa user!")
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c)
		return
	}

	invalidateUserCache()
	response.Success(c, nil)
}

// BulkDeleteUsers xóa từng user trên goroutine riêng rồi gom kết quả.
// Thiếu một cái cũng báo thất bại chung, không liệt kê id lỗi.
func BulkDeleteUsers(c *gin.Context) {
	var req dto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if len(req.IDs) == 0 {
		response.BadRequest(c, "Danh sách id trống")
		return
	}

	var wg sync.WaitGroup
	results := make(chan bool, len(req.IDs))

	for _, id := range req.IDs {
		wg.Add(1)
		go func(userID uint) {
			defer wg.Done()
			result := config.DB.Delete(&models.User{}, userID)
			results <- result.Error == nil && result.RowsAffected > 0
		}(id)
	}

	wg.Wait()
	close(results)

	deleted := 0
	for ok := range results {
		if ok {
			deleted++
		}
	}

	invalidateUserCache()

	if deleted < len(req.IDs) {
		response.BadRequest(c, "Lỗi khi xóa user!")
		return
	}
	response.Success(c, gin.H{"deleted": deleted})
}

func roleLabel(role int) string {
	switch role {
	case constants.RoleAdmin:
		return "Quản trị viên"
	case constants.RoleOwner:
		return "Chủ phòng"
	case constants.RoleModerator:
		return "Kiểm duyệt viên"
	}
	return "Người dùng"
}

func statusLabel(status int) string {
	switch status {
	case constants.UserStatusActive:
		return "Hoạt động"
	case constants.UserStatusBanned:
		return "Bị khóa"
	}
	return "Chưa kích hoạt"
}

// buildUserCSVRows dựng header và từng dòng CSV từ danh sách user
func buildUserCSVRows(users []models.User) [][]string {
	rows := [][]string{{"id", "ten", "email", "vai_tro", "trang_thai", "ngay_tao", "dang_nhap_cuoi"}}
	for _, user := range users {
		lastLogin := ""
		if !user.LastLogin.IsZero() {
			lastLogin = user.LastLogin.Format("2006-01-02 15:04:05")
		}
		rows = append(rows, []string{
			strconv.FormatUint(uint64(user.ID), 10),
			user.Name,
			user.Email,
			roleLabel(user.Role),
			statusLabel(user.Status),
			user.CreatedAt.Format("2006-01-02 15:04:05"),
			lastLogin,
		})
	}
	return rows
}

// ExportUsersCSV xuất bảng user ra CSV, áp cùng bộ lọc và sắp xếp với
// bảng quản trị nhưng không phân trang
func ExportUsersCSV(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	sorted, err := queriedUsers(c, q)
	if err != nil {
		response.ServerError(c)
		return
	}

	filename := fmt.Sprintf("users_%s.csv", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	w := csv.NewWriter(c.Writer)
	defer w.Flush()

	for _, row := range buildUserCSVRows(sorted) {
		if err := w.Write(row); err != nil {
			log.Printf("Lỗi khi ghi CSV: %v", err)
			return
		}
	}
}
