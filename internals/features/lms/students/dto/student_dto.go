package dto

import (
	"strings"

	"github.com/google/uuid"

	model "readquest_backend/internals/features/lms/students/model"
)

/* ==============================
   CREATE (POST /students)
============================== */

type CreateStudentRequest struct {
	StudentLrnNo      string  `json:"student_lrn_no" validate:"required,max=20"`
	StudentFirstname  string  `json:"student_firstname" validate:"required,max=80"`
	StudentLastname   string  `json:"student_lastname" validate:"required,max=80"`
	StudentMiddlename *string `json:"student_middlename" validate:"omitempty,max=80"`

	StudentGrade        string  `json:"student_grade" validate:"required,oneof=GradeOne GradeTwo GradeThree"`
	StudentSex          string  `json:"student_sex" validate:"required,oneof=Male Female"`
	StudentBdate        string  `json:"student_bdate" validate:"required,max=20"`
	StudentAge          int     `json:"student_age" validate:"required,gte=4,lte=15"`
	StudentGuardianName string  `json:"student_guardian_name" validate:"required,max=120"`
	StudentImage        *string `json:"student_image" validate:"omitempty,max=255"`

	StudentUsername string `json:"student_username" validate:"required,min=4,max=60"`
	StudentPassword string `json:"student_password" validate:"required,min=6,max=100"`
}

// ToModel builds the student row (the linked user row is created by the controller).
func (r *CreateStudentRequest) ToModel(userID uuid.UUID) *model.StudentModel {
	return &model.StudentModel{
		StudentUserID:       userID,
		StudentLrnNo:        strings.TrimSpace(r.StudentLrnNo),
		StudentFirstname:    strings.TrimSpace(r.StudentFirstname),
		StudentLastname:     strings.TrimSpace(r.StudentLastname),
		StudentMiddlename:   r.StudentMiddlename,
		StudentGrade:        r.StudentGrade,
		StudentSex:          r.StudentSex,
		StudentBdate:        strings.TrimSpace(r.StudentBdate),
		StudentAge:          r.StudentAge,
		StudentGuardianName: strings.TrimSpace(r.StudentGuardianName),
		StudentImage:        r.StudentImage,
		StudentUsername:     strings.TrimSpace(r.StudentUsername),
	}
}

/* ==============================
   UPDATE (PUT /students/:id)
============================== */

type UpdateStudentRequest struct {
	StudentFirstname    *string `json:"student_firstname" validate:"omitempty,max=80"`
	StudentLastname     *string `json:"student_lastname" validate:"omitempty,max=80"`
	StudentMiddlename   *string `json:"student_middlename" validate:"omitempty,max=80"`
	StudentGrade        *string `json:"student_grade" validate:"omitempty,oneof=GradeOne GradeTwo GradeThree"`
	StudentSex          *string `json:"student_sex" validate:"omitempty,oneof=Male Female"`
	StudentBdate        *string `json:"student_bdate" validate:"omitempty,max=20"`
	StudentAge          *int    `json:"student_age" validate:"omitempty,gte=4,lte=15"`
	StudentGuardianName *string `json:"student_guardian_name" validate:"omitempty,max=120"`
	StudentImage        *string `json:"student_image" validate:"omitempty,max=255"`
}

func (r *UpdateStudentRequest) ApplyTo(m *model.StudentModel) {
	if r.StudentFirstname != nil {
		m.StudentFirstname = strings.TrimSpace(*r.StudentFirstname)
	}
	if r.StudentLastname != nil {
		m.StudentLastname = strings.TrimSpace(*r.StudentLastname)
	}
	if r.StudentMiddlename != nil {
		m.StudentMiddlename = r.StudentMiddlename
	}
	if r.StudentGrade != nil {
		m.StudentGrade = *r.StudentGrade
	}
	if r.StudentSex != nil {
		m.StudentSex = *r.StudentSex
	}
	if r.StudentBdate != nil {
		m.StudentBdate = strings.TrimSpace(*r.StudentBdate)
	}
	if r.StudentAge != nil {
		m.StudentAge = *r.StudentAge
	}
	if r.StudentGuardianName != nil {
		m.StudentGuardianName = strings.TrimSpace(*r.StudentGuardianName)
	}
	if r.StudentImage != nil {
		m.StudentImage = r.StudentImage
	}
}

/* ==============================
   LIST query
============================== */

type ListStudentsQuery struct {
	Grade *string `query:"grade" validate:"omitempty,oneof=GradeOne GradeTwo GradeThree"`
	Q     string  `query:"q"`
}
