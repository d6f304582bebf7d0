package dto

import (
	"strings"

	"github.com/google/uuid"

	model "readquest_backend/internals/features/lms/educators/model"
)

type CreateEducatorRequest struct {
	EducatorFirstname    string  `json:"educator_firstname" validate:"required,max=80"`
	EducatorLastname     string  `json:"educator_lastname" validate:"required,max=80"`
	EducatorEmail        *string `json:"educator_email" validate:"omitempty,email,max=120"`
	EducatorImage        *string `json:"educator_image" validate:"omitempty,max=255"`
	EducatorHandledGrade string  `json:"educator_handled_grade" validate:"required,oneof=GradeOne GradeTwo GradeThree"`

	EducatorUsername string `json:"educator_username" validate:"required,min=4,max=60"`
	EducatorPassword string `json:"educator_password" validate:"required,min=6,max=100"`
}

func (r *CreateEducatorRequest) ToModel(userID uuid.UUID) *model.EducatorModel {
	return &model.EducatorModel{
		EducatorUserID:       userID,
		EducatorFirstname:    strings.TrimSpace(r.EducatorFirstname),
		EducatorLastname:     strings.TrimSpace(r.EducatorLastname),
		EducatorEmail:        r.EducatorEmail,
		EducatorImage:        r.EducatorImage,
		EducatorHandledGrade: r.EducatorHandledGrade,
		EducatorUsername:     strings.TrimSpace(r.EducatorUsername),
	}
}

type UpdateEducatorRequest struct {
	EducatorFirstname    *string `json:"educator_firstname" validate:"omitempty,max=80"`
	EducatorLastname     *string `json:"educator_lastname" validate:"omitempty,max=80"`
	EducatorEmail        *string `json:"educator_email" validate:"omitempty,email,max=120"`
	EducatorImage        *string `json:"educator_image" validate:"omitempty,max=255"`
	EducatorHandledGrade *string `json:"educator_handled_grade" validate:"omitempty,oneof=GradeOne GradeTwo GradeThree"`
}

func (r *UpdateEducatorRequest) ApplyTo(m *model.EducatorModel) {
	if r.EducatorFirstname != nil {
		m.EducatorFirstname = strings.TrimSpace(*r.EducatorFirstname)
	}
	if r.EducatorLastname != nil {
		m.EducatorLastname = strings.TrimSpace(*r.EducatorLastname)
	}
	if r.EducatorEmail != nil {
		m.EducatorEmail = r.EducatorEmail
	}
	if r.EducatorImage != nil {
		m.EducatorImage = r.EducatorImage
	}
	if r.EducatorHandledGrade != nil {
		m.EducatorHandledGrade = *r.EducatorHandledGrade
	}
}
