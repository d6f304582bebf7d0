package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "readquest_backend/internals/features/lms/voice_exercises/dto"
	model "readquest_backend/internals/features/lms/voice_exercises/model"
	auditService "readquest_backend/internals/features/users/audit_logs/service"
	helper "readquest_backend/internals/helpers"
	helperAuth "readquest_backend/internals/helpers/auth"
)

type VoiceExerciseController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewVoiceExerciseController(db *gorm.DB) *VoiceExerciseController {
	return &VoiceExerciseController{
		DB:        db,
		Validator: validator.New(),
	}
}

// POST /api/e/voice-exercises
func (ctrl *VoiceExerciseController) Create(c *fiber.Ctx) error {
	var body dto.CreateVoiceExerciseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	exercise := body.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(exercise).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create voice exercise")
	}

	auditService.LogAuditAsync(ctrl.DB, helperAuth.ActorID(c), "Voice Exercise Creation", exercise.VoiceExerciseID.String(), fiber.Map{
		"title":     exercise.VoiceExerciseTitle,
		"module_id": exercise.VoiceExerciseModuleID,
		"grade":     exercise.VoiceExerciseGrade,
	})

	return helper.JsonCreated(c, "voice exercise created", exercise)
}

// GET /api/e/voice-exercises — filterable by module and grade.
func (ctrl *VoiceExerciseController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.WithContext(c.UserContext()).Model(&model.VoiceExerciseModel{})
	if raw := c.Query("module_id"); raw != "" {
		moduleID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid module id")
		}
		tx = tx.Where("voice_exercise_module_id = ?", moduleID)
	}
	if grade := c.Query("grade"); grade != "" {
		tx = tx.Where("voice_exercise_grade = ?", grade)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count voice exercises")
	}

	var exercises []model.VoiceExerciseModel
	if err := tx.Order("voice_exercise_created_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&exercises).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch voice exercises")
	}

	return helper.JsonList(c, "voice exercises fetched", exercises,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/s/voice-exercises?module_id= — exercises of one module.
func (ctrl *VoiceExerciseController) ListByModule(c *fiber.Ctx) error {
	moduleID, err := uuid.Parse(c.Query("module_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "module_id is required")
	}

	var exercises []model.VoiceExerciseModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("voice_exercise_module_id = ?", moduleID).
		Order("voice_exercise_created_at ASC").
		Find(&exercises).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch voice exercises")
	}

	return helper.JsonOK(c, "voice exercises fetched", exercises)
}

// GET /api/e/voice-exercises/:id
func (ctrl *VoiceExerciseController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid voice exercise id")
	}

	var exercise model.VoiceExerciseModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&exercise, "voice_exercise_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Voice exercise not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch voice exercise")
	}

	return helper.JsonOK(c, "voice exercise fetched", exercise)
}

// PUT /api/e/voice-exercises/:id
func (ctrl *VoiceExerciseController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid voice exercise id")
	}

	var body dto.UpdateVoiceExerciseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var exercise model.VoiceExerciseModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&exercise, "voice_exercise_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Voice exercise not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch voice exercise")
	}

	body.ApplyTo(&exercise)
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&exercise).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update voice exercise")
	}

	auditService.LogAuditAsync(ctrl.DB, helperAuth.ActorID(c), "Voice Exercise Update", exercise.VoiceExerciseID.String(), fiber.Map{
		"title": exercise.VoiceExerciseTitle,
	})

	return helper.JsonUpdated(c, "voice exercise updated", exercise)
}

// DELETE /api/e/voice-exercises/:id (soft delete)
func (ctrl *VoiceExerciseController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid voice exercise id")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Delete(&model.VoiceExerciseModel{}, "voice_exercise_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete voice exercise")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Voice exercise not found")
	}

	auditService.LogAuditAsync(ctrl.DB, helperAuth.ActorID(c), "Voice Exercise Deletion", id.String(), nil)

	return helper.JsonDeleted(c, "voice exercise deleted", fiber.Map{"voice_exercise_id": id})
}
