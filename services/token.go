package services

import (
	"os"
	"time"

	"phongtro/errors"

	"github.com/dgrijalva/jwt-go"
)

type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

func jwtKey() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// GenerateToken phát hành access token có hạn dùng tính theo phút
func GenerateToken(userInfo UserInfo, minutes int) (string, error) {
	key := jwtKey()
	if len(key) == 0 {
		return "", errors.NewAppError(errors.ErrCodeInvalidToken, "JWT_SECRET chưa được thiết lập", nil)
	}

	claims := Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Duration(minutes) * time.Minute).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

// ParseToken xác minh chữ ký, hạn dùng và trả về userID, role
func ParseToken(tokenString string) (uint, int, error) {
	key := jwtKey()
	if len(key) == 0 {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "JWT_SECRET chưa được thiết lập", nil)
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Thuật toán ký không hợp lệ", nil)
		}
		return key, nil
	})
	if err != nil {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ", err)
	}
	if !token.Valid {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ", nil)
	}

	return claims.UserInfo.UserId, claims.UserInfo.Role, nil
}
