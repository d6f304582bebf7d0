package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ModuleModel struct {
	ModuleID uuid.UUID `gorm:"column:module_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"module_id"`

	ModuleTitle       string  `gorm:"column:module_title;type:varchar(180);not null" json:"module_title"`
	ModuleDescription *string `gorm:"column:module_description"                      json:"module_description,omitempty"`
	ModuleGrade       string  `gorm:"column:module_grade;type:varchar(20);not null;index" json:"module_grade"`
	ModuleSubject     string  `gorm:"column:module_subject;type:varchar(20);not null;default:'Reading'" json:"module_subject"`

	ModuleLearnOutcome *string `gorm:"column:module_learn_outcome" json:"module_learn_outcome,omitempty"`
	ModuleVideoURL     *string `gorm:"column:module_video_url"     json:"module_video_url,omitempty"`
	ModuleImageURL     *string `gorm:"column:module_image_url"     json:"module_image_url,omitempty"`

	ModuleCreatedAt time.Time      `gorm:"column:module_created_at;not null;autoCreateTime" json:"module_created_at"`
	ModuleUpdatedAt time.Time      `gorm:"column:module_updated_at;not null;autoUpdateTime" json:"module_updated_at"`
	ModuleDeletedAt gorm.DeletedAt `gorm:"column:module_deleted_at;index"                   json:"module_deleted_at,omitempty"`
}

// TableName overrides the table name used by GORM.
func (ModuleModel) TableName() string {
	return "modules"
}
