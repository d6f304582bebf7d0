package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "readquest_backend/internals/features/users/users/model"
)

/* ==============================
   Requests
============================== */

type UpdateUserRequest struct {
	UserName  *string `json:"user_name" validate:"omitempty,max=120"`
	UserEmail *string `json:"user_email" validate:"omitempty,email,max=120"`
	UserRole  *string `json:"user_role" validate:"omitempty,oneof=Admin Educator Student"`
	UserImage *string `json:"user_image" validate:"omitempty,max=255"`
}

// ApplyTo copies the set fields onto the model.
func (r *UpdateUserRequest) ApplyTo(m *model.UserModel) {
	if r.UserName != nil {
		m.UserName = strings.TrimSpace(*r.UserName)
	}
	if r.UserEmail != nil {
		e := strings.TrimSpace(*r.UserEmail)
		m.UserEmail = &e
	}
	if r.UserRole != nil {
		m.UserRole = *r.UserRole
	}
	if r.UserImage != nil {
		m.UserImage = r.UserImage
	}
}

type ListUsersQuery struct {
	Role *string `query:"role" validate:"omitempty,oneof=Admin Educator Student"`
	Q    string  `query:"q"`
}

/* ==============================
   Responses
============================== */

type UserResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	UserName     string    `json:"user_name"`
	UserUsername string    `json:"user_username"`
	UserEmail    *string   `json:"user_email,omitempty"`
	UserRole     string    `json:"user_role"`
	UserImage    *string   `json:"user_image,omitempty"`
	UserCreated  time.Time `json:"user_created_at"`
}

func FromModel(m *model.UserModel) UserResponse {
	return UserResponse{
		UserID:       m.UserID,
		UserName:     m.UserName,
		UserUsername: m.UserUsername,
		UserEmail:    m.UserEmail,
		UserRole:     m.UserRole,
		UserImage:    m.UserImage,
		UserCreated:  m.UserCreatedAt,
	}
}

func FromModels(ms []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
