package dto

import (
	"strings"

	"github.com/google/uuid"

	model "readquest_backend/internals/features/lms/comprehension/model"
)

type CreateComprehensionTestRequest struct {
	VoiceExerciseID uuid.UUID `json:"voice_exercise_id" validate:"required"`
	Question        string    `json:"question" validate:"required"`
	Options         []string  `json:"options" validate:"required,min=2,max=6,dive,required"`
	CorrectAnswer   string    `json:"correct_answer" validate:"required,max=255"`
	Grade           string    `json:"grade" validate:"required,oneof=GradeOne GradeTwo GradeThree"`
}

func (r *CreateComprehensionTestRequest) ToModel() *model.ComprehensionTestModel {
	return &model.ComprehensionTestModel{
		ComprehensionTestVoiceExerciseID: r.VoiceExerciseID,
		ComprehensionTestQuestion:        strings.TrimSpace(r.Question),
		ComprehensionTestOptions:         r.Options,
		ComprehensionTestCorrectAnswer:   strings.TrimSpace(r.CorrectAnswer),
		ComprehensionTestGrade:           r.Grade,
	}
}

type UpdateComprehensionTestRequest struct {
	Question      *string  `json:"question" validate:"omitempty"`
	Options       []string `json:"options" validate:"omitempty,min=2,max=6,dive,required"`
	CorrectAnswer *string  `json:"correct_answer" validate:"omitempty,max=255"`
	Grade         *string  `json:"grade" validate:"omitempty,oneof=GradeOne GradeTwo GradeThree"`
}

func (r *UpdateComprehensionTestRequest) ApplyTo(m *model.ComprehensionTestModel) {
	if r.Question != nil {
		m.ComprehensionTestQuestion = strings.TrimSpace(*r.Question)
	}
	if len(r.Options) > 0 {
		m.ComprehensionTestOptions = r.Options
	}
	if r.CorrectAnswer != nil {
		m.ComprehensionTestCorrectAnswer = strings.TrimSpace(*r.CorrectAnswer)
	}
	if r.Grade != nil {
		m.ComprehensionTestGrade = *r.Grade
	}
}

type SubmitComprehensionRequest struct {
	VoiceExerciseID uuid.UUID `json:"voice_exercise_id" validate:"required"`
	Score           float64   `json:"score" validate:"min=0,max=100"`
	TotalQuestions  int       `json:"total_questions" validate:"required,min=1"`
	CorrectCount    int       `json:"correct_count" validate:"min=0"`
	WrongCount      int       `json:"wrong_count" validate:"min=0"`
	Completed       bool      `json:"completed"`
}

func (r *SubmitComprehensionRequest) ToModel(studentID uuid.UUID) *model.ComprehensionAttemptModel {
	return &model.ComprehensionAttemptModel{
		ComprehensionAttemptStudentID:       studentID,
		ComprehensionAttemptVoiceExerciseID: r.VoiceExerciseID,
		ComprehensionAttemptScore:           r.Score,
		ComprehensionAttemptTotalQuestions:  r.TotalQuestions,
		ComprehensionAttemptCorrectCount:    r.CorrectCount,
		ComprehensionAttemptWrongCount:      r.WrongCount,
		ComprehensionAttemptCompleted:       r.Completed,
	}
}
