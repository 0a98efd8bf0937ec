package services

import (
	"context"
	"strings"
	"time"

	"phongtro/constants"
	"phongtro/errors"
	"phongtro/models"

	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

// CreateUser tạo tài khoản mới, băm mật khẩu trước khi lưu
func CreateUser(db *gorm.DB, user models.User, password string) (*models.User, error) {
	user.Email = strings.ToLower(user.Email)

	var existing models.User
	if err := db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return nil, errors.ErrUserAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.Password = string(hashed)
	user.Status = constants.UserStatusActive

	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// verifyCredentials so mật khẩu bcrypt và kiểm tra trạng thái khóa.
// user nil nghĩa là không tìm thấy tài khoản. Cả ba nhánh thất bại đều
// trả cùng một lỗi chung, không để lộ tài khoản nào tồn tại.
func verifyCredentials(user *models.User, password string) error {
	if user == nil {
		return errors.ErrInvalidPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return errors.ErrInvalidPassword
	}
	if user.Status == constants.UserStatusBanned {
		return errors.ErrInvalidPassword
	}
	return nil
}

// Authenticate tìm user theo tên hoặc email rồi kiểm tra thông tin
// đăng nhập
func Authenticate(db *gorm.DB, identifier, password string) (*models.User, error) {
	identifier = strings.ToLower(identifier)

	var user models.User
	found := &user
	if err := db.Where("lower(name) = ? OR email = ?", identifier, identifier).First(&user).Error; err != nil {
		found = nil
	}

	if err := verifyCredentials(found, password); err != nil {
		return nil, err
	}

	db.Model(&user).Update("last_login", time.Now())
	return &user, nil
}

// AuthenticateGoogle xác minh idToken với Google, tạo user mới nếu
// email chưa có tài khoản
func AuthenticateGoogle(ctx context.Context, db *gorm.DB, rawIDToken, audience string) (*models.User, error) {
	payload, err := idtoken.Validate(ctx, rawIDToken, audience)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Token Google không hợp lệ", err)
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)
	if email == "" {
		return nil, errors.NewAppError(errors.ErrCodeInvalidEmail, "Token Google không có email", nil)
	}
	email = strings.ToLower(email)

	var user models.User
	err = db.Where("email = ?", email).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		user = models.User{
			Name:   name,
			Email:  email,
			Avatar: picture,
			Role:   constants.RoleUser,
			Status: constants.UserStatusActive,
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	db.Model(&user).Update("last_login", time.Now())
	return &user, nil
}
