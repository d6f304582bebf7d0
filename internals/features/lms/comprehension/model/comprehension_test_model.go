package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ComprehensionTestModel is a follow-up question attached to a voice
// exercise: the student answers after reading the passage aloud.
type ComprehensionTestModel struct {
	ComprehensionTestID              uuid.UUID `gorm:"column:comprehension_test_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"comprehension_test_id"`
	ComprehensionTestVoiceExerciseID uuid.UUID `gorm:"column:comprehension_test_voice_exercise_id;type:uuid;not null;index"        json:"comprehension_test_voice_exercise_id"`

	ComprehensionTestQuestion      string         `gorm:"column:comprehension_test_question;not null"                     json:"comprehension_test_question"`
	ComprehensionTestOptions       pq.StringArray `gorm:"column:comprehension_test_options;type:text[];not null"          json:"comprehension_test_options"`
	ComprehensionTestCorrectAnswer string         `gorm:"column:comprehension_test_correct_answer;type:varchar(255);not null" json:"comprehension_test_correct_answer"`
	ComprehensionTestGrade         string         `gorm:"column:comprehension_test_grade;type:varchar(20);not null;index" json:"comprehension_test_grade"`

	ComprehensionTestCreatedAt time.Time      `gorm:"column:comprehension_test_created_at;not null;autoCreateTime" json:"comprehension_test_created_at"`
	ComprehensionTestUpdatedAt time.Time      `gorm:"column:comprehension_test_updated_at;not null;autoUpdateTime" json:"comprehension_test_updated_at"`
	ComprehensionTestDeletedAt gorm.DeletedAt `gorm:"column:comprehension_test_deleted_at;index"                   json:"comprehension_test_deleted_at,omitempty"`
}

func (ComprehensionTestModel) TableName() string {
	return "comprehension_tests"
}
