package dto

import (
	"strings"

	"github.com/google/uuid"

	model "readquest_backend/internals/features/lms/quizzes/model"
)

type CreateQuestionRequest struct {
	QuestionModuleID      uuid.UUID `json:"question_module_id" validate:"required"`
	QuestionText          string    `json:"question_text" validate:"required"`
	QuestionOptions       []string  `json:"question_options" validate:"required,min=2,max=6,dive,required"`
	QuestionCorrectAnswer string    `json:"question_correct_answer" validate:"required,max=255"`
	QuestionGrade         string    `json:"question_grade" validate:"required,oneof=GradeOne GradeTwo GradeThree"`
}

func (r *CreateQuestionRequest) ToModel() *model.QuestionModel {
	return &model.QuestionModel{
		QuestionModuleID:      r.QuestionModuleID,
		QuestionText:          strings.TrimSpace(r.QuestionText),
		QuestionOptions:       r.QuestionOptions,
		QuestionCorrectAnswer: strings.TrimSpace(r.QuestionCorrectAnswer),
		QuestionGrade:         r.QuestionGrade,
	}
}

type UpdateQuestionRequest struct {
	QuestionText          *string  `json:"question_text" validate:"omitempty"`
	QuestionOptions       []string `json:"question_options" validate:"omitempty,min=2,max=6,dive,required"`
	QuestionCorrectAnswer *string  `json:"question_correct_answer" validate:"omitempty,max=255"`
	QuestionGrade         *string  `json:"question_grade" validate:"omitempty,oneof=GradeOne GradeTwo GradeThree"`
}

func (r *UpdateQuestionRequest) ApplyTo(m *model.QuestionModel) {
	if r.QuestionText != nil {
		m.QuestionText = strings.TrimSpace(*r.QuestionText)
	}
	if len(r.QuestionOptions) > 0 {
		m.QuestionOptions = r.QuestionOptions
	}
	if r.QuestionCorrectAnswer != nil {
		m.QuestionCorrectAnswer = strings.TrimSpace(*r.QuestionCorrectAnswer)
	}
	if r.QuestionGrade != nil {
		m.QuestionGrade = *r.QuestionGrade
	}
}

// SubmitQuizRequest carries one finished quiz run for a module. The client
// grades locally against the fetched questions; the server persists the
// attempt and re-evaluates awards.
type SubmitQuizRequest struct {
	ModuleID       uuid.UUID `json:"module_id" validate:"required"`
	Score          float64   `json:"score" validate:"min=0,max=100"`
	TotalQuestions int       `json:"total_questions" validate:"required,min=1"`
	CorrectCount   int       `json:"correct_count" validate:"min=0"`
	WrongCount     int       `json:"wrong_count" validate:"min=0"`
	Feedback       *string   `json:"feedback" validate:"omitempty"`
	Completed      bool      `json:"completed"`
}

func (r *SubmitQuizRequest) ToModel(studentID uuid.UUID) *model.QuizAttemptModel {
	return &model.QuizAttemptModel{
		QuizAttemptStudentID:      studentID,
		QuizAttemptModuleID:       r.ModuleID,
		QuizAttemptScore:          r.Score,
		QuizAttemptTotalQuestions: r.TotalQuestions,
		QuizAttemptCorrectCount:   r.CorrectCount,
		QuizAttemptWrongCount:     r.WrongCount,
		QuizAttemptFeedback:       r.Feedback,
		QuizAttemptCompleted:      r.Completed,
	}
}
