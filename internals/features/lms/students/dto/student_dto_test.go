package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

func validCreateRequest() CreateStudentRequest {
	return CreateStudentRequest{
		StudentLrnNo:        "109912345678",
		StudentFirstname:    "Mara",
		StudentLastname:     "Santos",
		StudentGrade:        "GradeOne",
		StudentSex:          "Female",
		StudentBdate:        "2019-03-14",
		StudentAge:          7,
		StudentGuardianName: "Lena Santos",
		StudentUsername:     "mara.santos",
		StudentPassword:     "readaloud",
	}
}

func TestCreateStudentRequestValidation(t *testing.T) {
	v := validator.New()

	t.Run("valid payload passes", func(t *testing.T) {
		req := validCreateRequest()
		if err := v.Struct(&req); err != nil {
			t.Fatalf("unexpected validation error: %v", err)
		}
	})

	mutations := []struct {
		name   string
		mutate func(*CreateStudentRequest)
	}{
		{"unknown grade", func(r *CreateStudentRequest) { r.StudentGrade = "GradeFour" }},
		{"empty grade", func(r *CreateStudentRequest) { r.StudentGrade = "" }},
		{"unknown sex", func(r *CreateStudentRequest) { r.StudentSex = "Other" }},
		{"missing firstname", func(r *CreateStudentRequest) { r.StudentFirstname = "" }},
		{"short username", func(r *CreateStudentRequest) { r.StudentUsername = "ab" }},
		{"short password", func(r *CreateStudentRequest) { r.StudentPassword = "abc" }},
		{"age below range", func(r *CreateStudentRequest) { r.StudentAge = 2 }},
		{"age above range", func(r *CreateStudentRequest) { r.StudentAge = 20 }},
	}

	for _, tt := range mutations {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)
			if err := v.Struct(&req); err == nil {
				t.Errorf("expected validation to fail")
			}
		})
	}
}

func TestCreateStudentRequestToModelTrimsFields(t *testing.T) {
	req := validCreateRequest()
	req.StudentFirstname = "  Mara "
	req.StudentUsername = " mara.santos "

	userID := uuid.New()
	m := req.ToModel(userID)
	if m.StudentUserID != userID {
		t.Errorf("StudentUserID = %v, want %v", m.StudentUserID, userID)
	}
	if m.StudentFirstname != "Mara" {
		t.Errorf("StudentFirstname = %q, want %q", m.StudentFirstname, "Mara")
	}
	if m.StudentUsername != "mara.santos" {
		t.Errorf("StudentUsername = %q, want %q", m.StudentUsername, "mara.santos")
	}
}
