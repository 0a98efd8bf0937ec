package controllers

import (
	"errors"
	"os"
	"strings"

	"phongtro/config"
	"phongtro/dto"
	apperrors "phongtro/errors"
	"phongtro/models"
	"phongtro/response"
	"phongtro/services"

	"github.com/gin-gonic/gin"
)

func toUserLoginResponse(user *models.User) dto.UserLoginResponse {
	return dto.UserLoginResponse{
		UserID:     user.ID,
		UserName:   user.Name,
		UserEmail:  user.Email,
		UserRole:   user.Role,
		UserStatus: user.Status,
		UserAvatar: user.Avatar,
		CreatedAt:  user.CreatedAt,
		LastLogin:  user.LastLogin,
	}
}

func issueToken(c *gin.Context, user *models.User) {
	userInfo := services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}

	accessToken, err := services.GenerateToken(userInfo, 60*24*3)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{
		"user_info":   toUserLoginResponse(user),
		"accessToken": accessToken,
	})
}

func Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user := models.User{
		Name:  input.Name,
		Email: strings.ToLower(input.Email),
	}

	created, err := services.CreateUser(config.DB, user, input.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserAlreadyExists) {
			response.BadRequest(c, "Email đã được sử dụng")
			return
		}
		response.ServerError(c)
		return
	}

	issueToken(c, created)
}

// Login trả về chung một thông báo cho mọi kiểu thất bại, không tiết lộ
// tài khoản có tồn tại hay không
func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Identifier = strings.ToLower(input.Identifier)

	user, err := services.Authenticate(config.DB, input.Identifier, input.Password)
	if err != nil {
		response.BadRequest(c, "Email hoặc mật khẩu không hợp lệ")
		return
	}

	issueToken(c, user)
}

func AuthGoogle(c *gin.Context) {
	var input dto.GoogleLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := services.AuthenticateGoogle(c.Request.Context(), config.DB, input.IDToken, os.Getenv("GOOGLE_CLIENT_ID"))
	if err != nil {
		response.BadRequest(c, "Xác thực Google thất bại")
		return
	}

	issueToken(c, user)
}

func Logout(c *gin.Context) {
	cookies := c.Request.Cookies()
	for _, cookie := range cookies {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}

	response.Success(c, nil)
}
