package dto

import (
	"strings"

	"github.com/google/uuid"

	model "readquest_backend/internals/features/lms/voice_exercises/model"
)

type CreateVoiceExerciseRequest struct {
	VoiceExerciseModuleID uuid.UUID `json:"voice_exercise_module_id" validate:"required"`
	VoiceExerciseTitle    string    `json:"voice_exercise_title" validate:"required,max=180"`
	VoiceExerciseText     string    `json:"voice_exercise_text" validate:"required"`
	VoiceExerciseGrade    string    `json:"voice_exercise_grade" validate:"required,oneof=GradeOne GradeTwo GradeThree"`
	VoiceExerciseImage    *string   `json:"voice_exercise_image" validate:"omitempty,max=255"`
}

func (r *CreateVoiceExerciseRequest) ToModel() *model.VoiceExerciseModel {
	return &model.VoiceExerciseModel{
		VoiceExerciseModuleID: r.VoiceExerciseModuleID,
		VoiceExerciseTitle:    strings.TrimSpace(r.VoiceExerciseTitle),
		VoiceExerciseText:     strings.TrimSpace(r.VoiceExerciseText),
		VoiceExerciseGrade:    r.VoiceExerciseGrade,
		VoiceExerciseImage:    r.VoiceExerciseImage,
	}
}

type UpdateVoiceExerciseRequest struct {
	VoiceExerciseTitle *string `json:"voice_exercise_title" validate:"omitempty,max=180"`
	VoiceExerciseText  *string `json:"voice_exercise_text" validate:"omitempty"`
	VoiceExerciseGrade *string `json:"voice_exercise_grade" validate:"omitempty,oneof=GradeOne GradeTwo GradeThree"`
	VoiceExerciseImage *string `json:"voice_exercise_image" validate:"omitempty,max=255"`
}

func (r *UpdateVoiceExerciseRequest) ApplyTo(m *model.VoiceExerciseModel) {
	if r.VoiceExerciseTitle != nil {
		m.VoiceExerciseTitle = strings.TrimSpace(*r.VoiceExerciseTitle)
	}
	if r.VoiceExerciseText != nil {
		m.VoiceExerciseText = strings.TrimSpace(*r.VoiceExerciseText)
	}
	if r.VoiceExerciseGrade != nil {
		m.VoiceExerciseGrade = *r.VoiceExerciseGrade
	}
	if r.VoiceExerciseImage != nil {
		m.VoiceExerciseImage = r.VoiceExerciseImage
	}
}

// SubmitVoiceRequest carries the recorded reading for one exercise. The
// audio travels base64-encoded; scoring happens server-side.
type SubmitVoiceRequest struct {
	ExerciseID  uuid.UUID `json:"exercise_id" validate:"required"`
	AudioBase64 string    `json:"audio_base64" validate:"required"`
	Completed   bool      `json:"completed"`
}
