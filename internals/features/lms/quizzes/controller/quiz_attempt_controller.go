package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	awardService "readquest_backend/internals/features/lms/awards/service"
	dto "readquest_backend/internals/features/lms/quizzes/dto"
	model "readquest_backend/internals/features/lms/quizzes/model"
	helper "readquest_backend/internals/helpers"
	helperAuth "readquest_backend/internals/helpers/auth"
)

type QuizAttemptController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Awards    *awardService.AwardService
}

func NewQuizAttemptController(db *gorm.DB) *QuizAttemptController {
	return &QuizAttemptController{
		DB:        db,
		Validator: validator.New(),
		Awards:    awardService.NewAwardService(db),
	}
}

// POST /api/s/quizzes/submit — record a finished attempt, then re-run the
// award evaluator over the student's full history.
func (ctrl *QuizAttemptController) Submit(c *fiber.Ctx) error {
	student, err := helperAuth.ResolveStudent(c, ctrl.DB)
	if err != nil {
		return err
	}

	var body dto.SubmitQuizRequest
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

	earned, err := ctrl.Awards.EvaluateStudent(student.StudentID, helperAuth.ActorID(c))
	if err != nil {
		// The attempt is already saved; a failed evaluation must not undo it.
		log.Printf("[AWARDS] evaluation after quiz submit failed: %v", err)
	}

	return helper.JsonCreated(c, "attempt recorded", fiber.Map{
		"attempt": attempt,
		"awards":  earned,
	})
}

// GET /api/s/quizzes/attempts — the student's own attempt history.
func (ctrl *QuizAttemptController) ListOwn(c *fiber.Ctx) error {
	student, err := helperAuth.ResolveStudent(c, ctrl.DB)
	if err != nil {
		return err
	}

	var attempts []model.QuizAttemptModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("quiz_attempt_student_id = ?", student.StudentID).
		Order("quiz_attempt_created_at DESC").
		Find(&attempts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attempts")
	}

	return helper.JsonOK(c, "attempts fetched", attempts)
}

// GET /api/a/quizzes/attempts — history table, filterable per student.
func (ctrl *QuizAttemptController) ListAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.WithContext(c.UserContext()).Model(&model.QuizAttemptModel{})
	if raw := c.Query("student_id"); raw != "" {
		studentID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
		}
		tx = tx.Where("quiz_attempt_student_id = ?", studentID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count attempts")
	}

	var attempts []model.QuizAttemptModel
	if err := tx.Order("quiz_attempt_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&attempts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attempts")
	}

	return helper.JsonList(c, "attempts fetched", attempts,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
