package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type User struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	Name        string         `gorm:"default:New User" json:"name"`
	Email       string         `gorm:"unique" json:"email"`
	Password    string         `json:"-"` // bcrypt hash, không trả ra ngoài
	Avatar      string         `gorm:"default:'https://res.cloudinary.com/dqipg0or3/image/upload/v1740564293/avatars/oil5t4os8o5x6dmmwusw.png'" json:"avatar"`
	Role        int            `gorm:"default:0" json:"role"`
	Status      int            `gorm:"default:1" json:"status"`
	Permissions pq.StringArray `json:"permissions,omitempty" gorm:"type:text[]"`
	Stats       datatypes.JSON `json:"stats,omitempty" gorm:"type:json"` // map tên→số, chỉ để hiển thị
	LastLogin   time.Time      `json:"lastLogin"`
}
