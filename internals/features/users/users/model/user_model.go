package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	UserName     string    `gorm:"column:user_name;type:varchar(120);not null"                   json:"user_name"`
	UserUsername string    `gorm:"column:user_username;type:varchar(60);uniqueIndex;not null"    json:"user_username"`
	UserEmail    *string   `gorm:"column:user_email;type:varchar(120)"                           json:"user_email,omitempty"`
	UserPassword string    `gorm:"column:user_password;type:varchar(100);not null"               json:"-"`
	UserRole     string    `gorm:"column:user_role;type:varchar(20);not null;default:'Student'"  json:"user_role"`
	UserImage    *string   `gorm:"column:user_image"                                             json:"user_image,omitempty"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;not null;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;not null;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index"                   json:"user_deleted_at,omitempty"`
}

// TableName overrides the table name used by GORM.
func (UserModel) TableName() string {
	return "users"
}
