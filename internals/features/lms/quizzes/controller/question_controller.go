package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "readquest_backend/internals/features/lms/quizzes/dto"
	model "readquest_backend/internals/features/lms/quizzes/model"
	auditService "readquest_backend/internals/features/users/audit_logs/service"
	helper "readquest_backend/internals/helpers"
	helperAuth "readquest_backend/internals/helpers/auth"
)

type QuestionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewQuestionController(db *gorm.DB) *QuestionController {
	return &QuestionController{
		DB:        db,
		Validator: validator.New(),
	}
}

// POST /api/e/questions
func (ctrl *QuestionController) Create(c *fiber.Ctx) error {
	var body dto.CreateQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	question := body.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(question).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create question")
	}

	auditService.LogAuditAsync(ctrl.DB, helperAuth.ActorID(c), "Question Creation", question.QuestionID.String(), fiber.Map{
		"module_id": question.QuestionModuleID,
		"grade":     question.QuestionGrade,
	})

	return helper.JsonCreated(c, "question created", question)
}

// GET /api/e/questions?module_id= — all questions of one module.
func (ctrl *QuestionController) ListByModule(c *fiber.Ctx) error {
	moduleID, err := uuid.Parse(c.Query("module_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "module_id is required")
	}

	var questions []model.QuestionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("question_module_id = ?", moduleID).
		Order("question_created_at ASC").
		Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch questions")
	}

	return helper.JsonOK(c, "questions fetched", questions)
}

// PUT /api/e/questions/:id
func (ctrl *QuestionController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question id")
	}

	var body dto.UpdateQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var question model.QuestionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&question, "question_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch question")
	}

	body.ApplyTo(&question)
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&question).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update question")
	}

	return helper.JsonUpdated(c, "question updated", question)
}

// DELETE /api/e/questions/:id (soft delete)
func (ctrl *QuestionController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question id")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Delete(&model.QuestionModel{}, "question_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete question")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
	}

	auditService.LogAuditAsync(ctrl.DB, helperAuth.ActorID(c), "Question Deletion", id.String(), nil)

	return helper.JsonDeleted(c, "question deleted", fiber.Map{"question_id": id})
}
