package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentModel "readquest_backend/internals/features/lms/students/model"
)

var ErrStudentContextMissing = fiber.NewError(fiber.StatusForbidden, "No student record for this account")

// ResolveStudent maps the authenticated user to their student row.
// Student-facing endpoints go through this so a student can only ever
// read and write their own data.
func ResolveStudent(c *fiber.Ctx, db *gorm.DB) (*studentModel.StudentModel, error) {
	actor := ActorID(c)
	if actor == nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	var student studentModel.StudentModel
	if err := db.WithContext(c.UserContext()).
		First(&student, "student_user_id = ?", *actor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentContextMissing
		}
		return nil, err
	}
	return &student, nil
}
