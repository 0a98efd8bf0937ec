package dto

import (
	"time"
)

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"` // tên đăng nhập hoặc email
	Password   string `json:"password" binding:"required"`
}

type GoogleLoginInput struct {
	IDToken string `json:"idToken" binding:"required"`
}

type UserLoginResponse struct {
	UserID     uint      `json:"id"`
	UserName   string    `json:"name"`
	UserEmail  string    `json:"email"`
	UserRole   int       `json:"role"`
	UserStatus int       `json:"status"`
	UserAvatar string    `json:"avatar"`
	CreatedAt  time.Time `json:"createdAt"`
	LastLogin  time.Time `json:"lastLogin"`
}
