package model

import (
	"time"

	"github.com/google/uuid"
)

// QuizAttemptModel is append-only: attempts are never edited or removed,
// the award evaluator reads the full history.
type QuizAttemptModel struct {
	QuizAttemptID uuid.UUID `gorm:"column:quiz_attempt_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"quiz_attempt_id"`

	QuizAttemptStudentID uuid.UUID `gorm:"column:quiz_attempt_student_id;type:uuid;not null;index" json:"quiz_attempt_student_id"`
	QuizAttemptModuleID  uuid.UUID `gorm:"column:quiz_attempt_module_id;type:uuid;not null;index"  json:"quiz_attempt_module_id"`

	QuizAttemptScore          float64 `gorm:"column:quiz_attempt_score;not null"           json:"quiz_attempt_score"`
	QuizAttemptTotalQuestions int     `gorm:"column:quiz_attempt_total_questions;not null" json:"quiz_attempt_total_questions"`
	QuizAttemptCorrectCount   int     `gorm:"column:quiz_attempt_correct_count;not null"   json:"quiz_attempt_correct_count"`
	QuizAttemptWrongCount     int     `gorm:"column:quiz_attempt_wrong_count;not null"     json:"quiz_attempt_wrong_count"`
	QuizAttemptFeedback       *string `gorm:"column:quiz_attempt_feedback"                 json:"quiz_attempt_feedback,omitempty"`
	QuizAttemptCompleted      bool    `gorm:"column:quiz_attempt_completed;not null;default:false" json:"quiz_attempt_completed"`

	QuizAttemptCreatedAt time.Time `gorm:"column:quiz_attempt_created_at;not null;autoCreateTime" json:"quiz_attempt_created_at"`
}

func (QuizAttemptModel) TableName() string {
	return "student_quiz_attempts"
}
