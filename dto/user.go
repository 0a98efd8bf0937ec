package dto

import (
	"encoding/json"
	"time"
)

// UserRequest là DTO cho form tạo/sửa user ở trang quản trị
type UserRequest struct {
	Name        string          `json:"name" binding:"required"`
	Email       string          `json:"email" binding:"required"`
	Password    string          `json:"password"`
	Avatar      string          `json:"avatar"`
	Role        int             `json:"role"`
	Status      int             `json:"status"`
	Permissions []string        `json:"permissions"`
	Stats       json.RawMessage `json:"stats"`
}

// UserResponse là DTO cho bảng user quản trị, không kèm mật khẩu
type UserResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Avatar      string          `json:"avatar"`
	Role        int             `json:"role"`
	Status      int             `json:"status"`
	Permissions []string        `json:"permissions,omitempty"`
	Stats       json.RawMessage `json:"stats,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	LastLogin   time.Time       `json:"lastLogin"`
}

// BulkDeleteRequest là DTO cho xóa nhiều user cùng lúc
type BulkDeleteRequest struct {
	IDs []uint `json:"ids" binding:"required"`
}
