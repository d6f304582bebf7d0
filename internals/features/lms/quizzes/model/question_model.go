package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type QuestionModel struct {
	QuestionID       uuid.UUID `gorm:"column:question_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"question_id"`
	QuestionModuleID uuid.UUID `gorm:"column:question_module_id;type:uuid;not null;index"                json:"question_module_id"`

	QuestionText          string         `gorm:"column:question_text;not null"                            json:"question_text"`
	QuestionOptions       pq.StringArray `gorm:"column:question_options;type:text[];not null"             json:"question_options"`
	QuestionCorrectAnswer string         `gorm:"column:question_correct_answer;type:varchar(255);not null" json:"question_correct_answer"`
	QuestionGrade         string         `gorm:"column:question_grade;type:varchar(20);not null;index"    json:"question_grade"`

	QuestionCreatedAt time.Time      `gorm:"column:question_created_at;not null;autoCreateTime" json:"question_created_at"`
	QuestionUpdatedAt time.Time      `gorm:"column:question_updated_at;not null;autoUpdateTime" json:"question_updated_at"`
	QuestionDeletedAt gorm.DeletedAt `gorm:"column:question_deleted_at;index"                   json:"question_deleted_at,omitempty"`
}

func (QuestionModel) TableName() string {
	return "questions"
}
