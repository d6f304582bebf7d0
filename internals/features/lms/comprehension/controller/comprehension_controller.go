package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "readquest_backend/internals/features/lms/comprehension/dto"
	model "readquest_backend/internals/features/lms/comprehension/model"
	auditService "readquest_backend/internals/features/users/audit_logs/service"
	helper "readquest_backend/internals/helpers"
	helperAuth "readquest_backend/internals/helpers/auth"
)

type ComprehensionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewComprehensionController(db *gorm.DB) *ComprehensionController {
	return &ComprehensionController{
		DB:        db,
		Validator: validator.New(),
	}
}

// POST /api/e/comprehension
func (ctrl *ComprehensionController) Create(c *fiber.Ctx) error {
	var body dto.CreateComprehensionTestRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	test := body.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(test).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create comprehension test")
	}

	auditService.LogAuditAsync(ctrl.DB, helperAuth.ActorID(c), "Comprehension Test Creation", test.ComprehensionTestID.String(), fiber.Map{
		"voice_exercise_id": test.ComprehensionTestVoiceExerciseID,
		"grade":             test.ComprehensionTestGrade,
	})

	return helper.JsonCreated(c, "comprehension test created", test)
}

// GET /api/e/comprehension?voice_exercise_id= — tests of one passage.
func (ctrl *ComprehensionController) ListByExercise(c *fiber.Ctx) error {
	exerciseID, err := uuid.Parse(c.Query("voice_exercise_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "voice_exercise_id is required")
	}

	var tests []model.ComprehensionTestModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("comprehension_test_voice_exercise_id = ?", exerciseID).
		Order("comprehension_test_created_at ASC").
		Find(&tests).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch comprehension tests")
	}

	return helper.JsonOK(c, "comprehension tests fetched", tests)
}

// PUT /api/e/comprehension/:id
func (ctrl *ComprehensionController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid comprehension test id")
	}

	var body dto.UpdateComprehensionTestRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var test model.ComprehensionTestModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&test, "comprehension_test_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Comprehension test not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch comprehension test")
	}

	body.ApplyTo(&test)
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&test).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update comprehension test")
	}

	return helper.JsonUpdated(c, "comprehension test updated", test)
}

// DELETE /api/e/comprehension/:id (soft delete)
func (ctrl *ComprehensionController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid comprehension test id")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Delete(&model.ComprehensionTestModel{}, "comprehension_test_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete comprehension test")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Comprehension test not found")
	}

	auditService.LogAuditAsync(ctrl.DB, helperAuth.ActorID(c), "Comprehension Test Deletion", id.String(), nil)

	return helper.JsonDeleted(c, "comprehension test deleted", fiber.Map{"comprehension_test_id": id})
}

// POST /api/s/comprehension/submit
func (ctrl *ComprehensionController) Submit(c *fiber.Ctx) error {
	student, err := helperAuth.ResolveStudent(c, ctrl.DB)
	if err != nil {
		return err
	}

	var body dto.SubmitComprehensionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	attempt := body.ToModel(student.StudentID)
	if err := ctrl.DB.WithContext(c.UserContext()).Create(attempt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record attempt")
	}

	auditService.LogAuditAsync(ctrl.DB, helperAuth.ActorID(c), "Comprehension Submission", attempt.ComprehensionAttemptID.String(), fiber.Map{
		"student_id":        student.StudentID,
		"voice_exercise_id": body.VoiceExerciseID,
		"score":             body.Score,
	})

	return helper.JsonCreated(c, "attempt recorded", attempt)
}

// GET /api/s/comprehension/attempts — the student's own history.
func (ctrl *ComprehensionController) ListOwnAttempts(c *fiber.Ctx) error {
	student, err := helperAuth.ResolveStudent(c, ctrl.DB)
	if err != nil {
		return err
	}

	var attempts []model.ComprehensionAttemptModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("comprehension_attempt_student_id = ?", student.StudentID).
		Order("comprehension_attempt_created_at DESC").
		Find(&attempts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attempts")
	}

	return helper.JsonOK(c, "attempts fetched", attempts)
}

// GET /api/a/comprehension/attempts — history table.
func (ctrl *ComprehensionController) ListAllAttempts(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.WithContext(c.UserContext()).Model(&model.ComprehensionAttemptModel{})
	if raw := c.Query("student_id"); raw != "" {
		studentID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
		}
		tx = tx.Where("comprehension_attempt_student_id = ?", studentID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count attempts")
	}

	var attempts []model.ComprehensionAttemptModel
	if err := tx.Order("comprehension_attempt_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&attempts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attempts")
	}

	return helper.JsonList(c, "attempts fetched", attempts,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
