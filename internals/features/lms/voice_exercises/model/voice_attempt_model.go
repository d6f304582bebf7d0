package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// VoiceAttemptModel is append-only; the metric block comes back verbatim
// from the speech scorer.
type VoiceAttemptModel struct {
	VoiceAttemptID uuid.UUID `gorm:"column:voice_attempt_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"voice_attempt_id"`

	VoiceAttemptExerciseID uuid.UUID `gorm:"column:voice_attempt_exercise_id;type:uuid;not null;index" json:"voice_attempt_exercise_id"`
	VoiceAttemptStudentID  uuid.UUID `gorm:"column:voice_attempt_student_id;type:uuid;not null;index"  json:"voice_attempt_student_id"`
	VoiceAttemptModuleID   uuid.UUID `gorm:"column:voice_attempt_module_id;type:uuid;not null;index"   json:"voice_attempt_module_id"`

	VoiceAttemptRecognizedText string  `gorm:"column:voice_attempt_recognized_text" json:"voice_attempt_recognized_text"`
	VoiceAttemptAccuracy       float64 `gorm:"column:voice_attempt_accuracy;not null"      json:"voice_attempt_accuracy"`
	VoiceAttemptPronunciation  float64 `gorm:"column:voice_attempt_pronunciation;not null" json:"voice_attempt_pronunciation"`
	VoiceAttemptFluency        float64 `gorm:"column:voice_attempt_fluency;not null"       json:"voice_attempt_fluency"`
	VoiceAttemptSpeed          float64 `gorm:"column:voice_attempt_speed;not null"         json:"voice_attempt_speed"`
	VoiceAttemptScore          float64 `gorm:"column:voice_attempt_score;not null"         json:"voice_attempt_score"`

	VoiceAttemptPhonemes  datatypes.JSON `gorm:"column:voice_attempt_phonemes;type:jsonb" json:"voice_attempt_phonemes,omitempty"`
	VoiceAttemptCompleted bool           `gorm:"column:voice_attempt_completed;not null;default:false" json:"voice_attempt_completed"`

	VoiceAttemptCreatedAt time.Time `gorm:"column:voice_attempt_created_at;not null;autoCreateTime" json:"voice_attempt_created_at"`
}

func (VoiceAttemptModel) TableName() string {
	return "voice_exercise_attempts"
}
