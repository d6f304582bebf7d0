package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EducatorModel struct {
	EducatorID     uuid.UUID `gorm:"column:educator_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"educator_id"`
	EducatorUserID uuid.UUID `gorm:"column:educator_user_id;type:uuid;not null;index"                  json:"educator_user_id"`

	EducatorFirstname string  `gorm:"column:educator_firstname;type:varchar(80);not null" json:"educator_firstname"`
	EducatorLastname  string  `gorm:"column:educator_lastname;type:varchar(80);not null"  json:"educator_lastname"`
	EducatorEmail     *string `gorm:"column:educator_email;type:varchar(120)"             json:"educator_email,omitempty"`
	EducatorImage     *string `gorm:"column:educator_image"                               json:"educator_image,omitempty"`

	// grade cohort this educator handles
	EducatorHandledGrade string `gorm:"column:educator_handled_grade;type:varchar(20);not null;index" json:"educator_handled_grade"`

	EducatorUsername string `gorm:"column:educator_username;type:varchar(60);uniqueIndex;not null" json:"educator_username"`

	EducatorCreatedAt time.Time      `gorm:"column:educator_created_at;not null;autoCreateTime" json:"educator_created_at"`
	EducatorUpdatedAt time.Time      `gorm:"column:educator_updated_at;not null;autoUpdateTime" json:"educator_updated_at"`
	EducatorDeletedAt gorm.DeletedAt `gorm:"column:educator_deleted_at;index"                   json:"educator_deleted_at,omitempty"`
}

// TableName overrides the table name used by GORM.
func (EducatorModel) TableName() string {
	return "educators"
}
