package model

import (
	"time"

	"github.com/google/uuid"
)

// ComprehensionAttemptModel is append-only.
type ComprehensionAttemptModel struct {
	ComprehensionAttemptID uuid.UUID `gorm:"column:comprehension_attempt_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"comprehension_attempt_id"`

	ComprehensionAttemptStudentID      uuid.UUID `gorm:"column:comprehension_attempt_student_id;type:uuid;not null;index"       json:"comprehension_attempt_student_id"`
	ComprehensionAttemptVoiceExerciseID uuid.UUID `gorm:"column:comprehension_attempt_voice_exercise_id;type:uuid;not null;index" json:"comprehension_attempt_voice_exercise_id"`

	ComprehensionAttemptScore          float64 `gorm:"column:comprehension_attempt_score;not null"           json:"comprehension_attempt_score"`
	ComprehensionAttemptTotalQuestions int     `gorm:"column:comprehension_attempt_total_questions;not null" json:"comprehension_attempt_total_questions"`
	ComprehensionAttemptCorrectCount   int     `gorm:"column:comprehension_attempt_correct_count;not null"   json:"comprehension_attempt_correct_count"`
	ComprehensionAttemptWrongCount     int     `gorm:"column:comprehension_attempt_wrong_count;not null"     json:"comprehension_attempt_wrong_count"`
	ComprehensionAttemptCompleted      bool    `gorm:"column:comprehension_attempt_completed;not null;default:false" json:"comprehension_attempt_completed"`

	ComprehensionAttemptCreatedAt time.Time `gorm:"column:comprehension_attempt_created_at;not null;autoCreateTime" json:"comprehension_attempt_created_at"`
}

func (ComprehensionAttemptModel) TableName() string {
	return "comprehension_attempts"
}
