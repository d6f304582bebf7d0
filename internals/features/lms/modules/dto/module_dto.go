package dto

import (
	"strings"

	model "readquest_backend/internals/features/lms/modules/model"
)

type CreateModuleRequest struct {
	ModuleTitle       string  `json:"module_title" validate:"required,max=180"`
	ModuleDescription *string `json:"module_description" validate:"omitempty"`
	ModuleGrade       string  `json:"module_grade" validate:"required,oneof=GradeOne GradeTwo GradeThree"`
	ModuleSubject     string  `json:"module_subject" validate:"required,oneof=Reading Math"`

	ModuleLearnOutcome *string `json:"module_learn_outcome" validate:"omitempty"`
	ModuleVideoURL     *string `json:"module_video_url" validate:"omitempty,max=255"`
	ModuleImageURL     *string `json:"module_image_url" validate:"omitempty,max=255"`
}

func (r *CreateModuleRequest) ToModel() *model.ModuleModel {
	return &model.ModuleModel{
		ModuleTitle:        strings.TrimSpace(r.ModuleTitle),
		ModuleDescription:  r.ModuleDescription,
		ModuleGrade:        r.ModuleGrade,
		ModuleSubject:      r.ModuleSubject,
		ModuleLearnOutcome: r.ModuleLearnOutcome,
		ModuleVideoURL:     r.ModuleVideoURL,
		ModuleImageURL:     r.ModuleImageURL,
	}
}

type UpdateModuleRequest struct {
	ModuleTitle       *string `json:"module_title" validate:"omitempty,max=180"`
	ModuleDescription *string `json:"module_description" validate:"omitempty"`
	ModuleGrade       *string `json:"module_grade" validate:"omitempty,oneof=GradeOne GradeTwo GradeThree"`
	ModuleSubject     *string `json:"module_subject" validate:"omitempty,oneof=Reading Math"`

	ModuleLearnOutcome *string `json:"module_learn_outcome" validate:"omitempty"`
	ModuleVideoURL     *string `json:"module_video_url" validate:"omitempty,max=255"`
	ModuleImageURL     *string `json:"module_image_url" validate:"omitempty,max=255"`
}

func (r *UpdateModuleRequest) ApplyTo(m *model.ModuleModel) {
	if r.ModuleTitle != nil {
		m.ModuleTitle = strings.TrimSpace(*r.ModuleTitle)
	}
	if r.ModuleDescription != nil {
		m.ModuleDescription = r.ModuleDescription
	}
	if r.ModuleGrade != nil {
		m.ModuleGrade = *r.ModuleGrade
	}
	if r.ModuleSubject != nil {
		m.ModuleSubject = *r.ModuleSubject
	}
	if r.ModuleLearnOutcome != nil {
		m.ModuleLearnOutcome = r.ModuleLearnOutcome
	}
	if r.ModuleVideoURL != nil {
		m.ModuleVideoURL = r.ModuleVideoURL
	}
	if r.ModuleImageURL != nil {
		m.ModuleImageURL = r.ModuleImageURL
	}
}

type ListModulesQuery struct {
	Grade   *string `query:"grade" validate:"omitempty,oneof=GradeOne GradeTwo GradeThree"`
	Subject *string `query:"subject" validate:"omitempty,oneof=Reading Math"`
	Q       string  `query:"q"`
}
