package controller

import (
	"errors"
	"log"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	awardService "readquest_backend/internals/features/lms/awards/service"
	dto "readquest_backend/internals/features/lms/voice_exercises/dto"
	model "readquest_backend/internals/features/lms/voice_exercises/model"
	service "readquest_backend/internals/features/lms/voice_exercises/service"
	helper "readquest_backend/internals/helpers"
	helperAuth "readquest_backend/internals/helpers/auth"
)

type VoiceAttemptController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Speech    *service.SpeechClient
	Awards    *awardService.AwardService
}

func NewVoiceAttemptController(db *gorm.DB) *VoiceAttemptController {
	return &VoiceAttemptController{
		DB:        db,
		Validator: validator.New(),
		Speech:    service.NewSpeechClient(),
		Awards:    awardService.NewAwardService(db),
	}
}

// POST /api/s/voice-exercises/submit — score the recording through the
// external speech service, persist the attempt, re-run the award
// evaluator.
func (ctrl *VoiceAttemptController) Submit(c *fiber.Ctx) error {
	student, err := helperAuth.ResolveStudent(c, ctrl.DB)
	if err != nil {
		return err
	}

	var body dto.SubmitVoiceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var exercise model.VoiceExerciseModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&exercise, "voice_exercise_id = ?", body.ExerciseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Voice exercise not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch voice exercise")
	}

	score, err := ctrl.Speech.Score(c.UserContext(), exercise.VoiceExerciseText, body.AudioBase64)
	if err != nil {
		log.Printf("[SPEECH] scoring failed: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Speech scoring service is unavailable")
	}

	var phonemes datatypes.JSON
	if score.Phonemes != nil {
		if raw, err := sonic.Marshal(score.Phonemes); err == nil {
			phonemes = raw
		}
	}

	attempt := model.VoiceAttemptModel{
		VoiceAttemptExerciseID:     exercise.VoiceExerciseID,
		VoiceAttemptStudentID:      student.StudentID,
		VoiceAttemptModuleID:       exercise.VoiceExerciseModuleID,
		VoiceAttemptRecognizedText: score.RecognizedText,
		VoiceAttemptAccuracy:       score.Accuracy,
		VoiceAttemptPronunciation:  score.Pronunciation,
		VoiceAttemptFluency:        score.Fluency,
		VoiceAttemptSpeed:          score.Speed,
		VoiceAttemptScore:          score.OverallScore,
		VoiceAttemptPhonemes:       phonemes,
		VoiceAttemptCompleted:      body.Completed,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&attempt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record attempt")
	}

	earned, err := ctrl.Awards.EvaluateStudent(student.StudentID, helperAuth.ActorID(c))
	if err != nil {
		// The attempt is already saved; a failed evaluation must not undo it.
		log.Printf("[AWARDS] evaluation after voice submit failed: %v", err)
	}

	return helper.JsonCreated(c, "attempt recorded", fiber.Map{
		"attempt": attempt,
		"awards":  earned,
	})
}

// GET /api/s/voice-exercises/attempts — the student's own history.
func (ctrl *VoiceAttemptController) ListOwn(c *fiber.Ctx) error {
	student, err := helperAuth.ResolveStudent(c, ctrl.DB)
	if err != nil {
		return err
	}

	var attempts []model.VoiceAttemptModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("voice_attempt_student_id = ?", student.StudentID).
		Order("voice_attempt_created_at DESC").
		Find(&attempts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attempts")
	}

	return helper.JsonOK(c, "attempts fetched", attempts)
}

// GET /api/a/voice-exercises/attempts — history table, filterable per
// student.
func (ctrl *VoiceAttemptController) ListAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.WithContext(c.UserContext()).Model(&model.VoiceAttemptModel{})
	if raw := c.Query("student_id"); raw != "" {
		studentID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
		}
		tx = tx.Where("voice_attempt_student_id = ?", studentID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count attempts")
	}

	var attempts []model.VoiceAttemptModel
	if err := tx.Order("voice_attempt_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&attempts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attempts")
	}

	return helper.JsonList(c, "attempts fetched", attempts,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
