package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VoiceExerciseModel struct {
	VoiceExerciseID       uuid.UUID `gorm:"column:voice_exercise_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"voice_exercise_id"`
	VoiceExerciseModuleID uuid.UUID `gorm:"column:voice_exercise_module_id;type:uuid;not null;index"                json:"voice_exercise_module_id"`

	VoiceExerciseTitle string  `gorm:"column:voice_exercise_title;type:varchar(180);not null" json:"voice_exercise_title"`
	VoiceExerciseText  string  `gorm:"column:voice_exercise_text;not null"                    json:"voice_exercise_text"`
	VoiceExerciseGrade string  `gorm:"column:voice_exercise_grade;type:varchar(20);not null;index" json:"voice_exercise_grade"`
	VoiceExerciseImage *string `gorm:"column:voice_exercise_image"                            json:"voice_exercise_image,omitempty"`

	VoiceExerciseCreatedAt time.Time      `gorm:"column:voice_exercise_created_at;not null;autoCreateTime" json:"voice_exercise_created_at"`
	VoiceExerciseUpdatedAt time.Time      `gorm:"column:voice_exercise_updated_at;not null;autoUpdateTime" json:"voice_exercise_updated_at"`
	VoiceExerciseDeletedAt gorm.DeletedAt `gorm:"column:voice_exercise_deleted_at;index"                   json:"voice_exercise_deleted_at,omitempty"`
}

func (VoiceExerciseModel) TableName() string {
	return "voice_exercises"
}
