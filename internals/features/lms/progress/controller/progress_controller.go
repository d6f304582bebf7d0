package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"readquest_backend/internals/constants"
	moduleModel "readquest_backend/internals/features/lms/modules/model"
	model "readquest_backend/internals/features/lms/progress/model"
	service "readquest_backend/internals/features/lms/progress/service"
	quizModel "readquest_backend/internals/features/lms/quizzes/model"
	studentModel "readquest_backend/internals/features/lms/students/model"
	voiceModel "readquest_backend/internals/features/lms/voice_exercises/model"
	helper "readquest_backend/internals/helpers"
	helperAuth "readquest_backend/internals/helpers/auth"
)

type ProgressController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewProgressController(db *gorm.DB) *ProgressController {
	return &ProgressController{
		DB:        db,
		Validator: validator.New(),
	}
}

// StudentOverview is one row of the admin progress-bar page.
type StudentOverview struct {
	StudentID        uuid.UUID              `json:"student_id"`
	StudentFirstname string                 `json:"student_firstname"`
	StudentLastname  string                 `json:"student_lastname"`
	StudentGrade     string                 `json:"student_grade"`
	Progress         service.ModuleProgress `json:"progress"`
}

// completedAttempts loads the module/completed pairs of both attempt
// kinds for one student.
func (ctrl *ProgressController) completedAttempts(c *fiber.Ctx, studentID uuid.UUID) ([]service.CompletedAttempt, []service.CompletedAttempt, error) {
	var quizRows []quizModel.QuizAttemptModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Select("quiz_attempt_module_id", "quiz_attempt_completed").
		Where("quiz_attempt_student_id = ?", studentID).
		Find(&quizRows).Error; err != nil {
		return nil, nil, err
	}

	var voiceRows []voiceModel.VoiceAttemptModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Select("voice_attempt_module_id", "voice_attempt_completed").
		Where("voice_attempt_student_id = ?", studentID).
		Find(&voiceRows).Error; err != nil {
		return nil, nil, err
	}

	quiz := make([]service.CompletedAttempt, 0, len(quizRows))
	for _, r := range quizRows {
		quiz = append(quiz, service.CompletedAttempt{ModuleID: r.QuizAttemptModuleID, Completed: r.QuizAttemptCompleted})
	}
	voice := make([]service.CompletedAttempt, 0, len(voiceRows))
	for _, r := range voiceRows {
		voice = append(voice, service.CompletedAttempt{ModuleID: r.VoiceAttemptModuleID, Completed: r.VoiceAttemptCompleted})
	}
	return quiz, voice, nil
}

func (ctrl *ProgressController) gradeModuleCount(c *fiber.Ctx, grade string) (int, error) {
	var count int64
	err := ctrl.DB.WithContext(c.UserContext()).
		Model(&moduleModel.ModuleModel{}).
		Where("module_grade = ?", grade).
		Count(&count).Error
	return int(count), err
}

// GET /api/a/progress/overview — every student with module progress,
// percentage computed against the student's grade catalog.
func (ctrl *ProgressController) Overview(c *fiber.Ctx) error {
	tx := ctrl.DB.WithContext(c.UserContext()).Model(&studentModel.StudentModel{})
	if grade := c.Query("grade"); grade != "" {
		if !constants.IsValidGrade(grade) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid grade")
		}
		tx = tx.Where("student_grade = ?", grade)
	}

	var students []studentModel.StudentModel
	if err := tx.Order("student_lastname ASC, student_firstname ASC").
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}

	gradeCounts := make(map[string]int)
	overview := make([]StudentOverview, 0, len(students))
	for _, s := range students {
		total, ok := gradeCounts[s.StudentGrade]
		if !ok {
			var err error
			total, err = ctrl.gradeModuleCount(c, s.StudentGrade)
			if err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count modules")
			}
			gradeCounts[s.StudentGrade] = total
		}

		quiz, voice, err := ctrl.completedAttempts(c, s.StudentID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attempts")
		}

		completed := service.CompletedModuleSet(quiz, voice)
		overview = append(overview, StudentOverview{
			StudentID:        s.StudentID,
			StudentFirstname: s.StudentFirstname,
			StudentLastname:  s.StudentLastname,
			StudentGrade:     s.StudentGrade,
			Progress:         service.ComputeModuleProgress(total, completed),
		})
	}

	return helper.JsonOK(c, "progress overview fetched", overview)
}

// GET /api/a/progress/completion?grade= — grade-scoped rollup per
// student: module progress, quiz and voice averages, combined mean.
func (ctrl *ProgressController) GradeCompletion(c *fiber.Ctx) error {
	grade := c.Query("grade")
	if !constants.IsValidGrade(grade) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid grade")
	}

	var gradeModuleIDs []uuid.UUID
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&moduleModel.ModuleModel{}).
		Where("module_grade = ?", grade).
		Pluck("module_id", &gradeModuleIDs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch modules")
	}
	total := len(gradeModuleIDs)
	catalog := make(map[uuid.UUID]struct{}, total)
	for _, id := range gradeModuleIDs {
		catalog[id] = struct{}{}
	}

	var students []studentModel.StudentModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("student_grade = ?", grade).
		Order("student_lastname ASC, student_firstname ASC").
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}

	type studentCompletion struct {
		StudentID        uuid.UUID               `json:"student_id"`
		StudentFirstname string                  `json:"student_firstname"`
		StudentLastname  string                  `json:"student_lastname"`
		Completion       service.GradeCompletion `json:"completion"`
	}

	rows := make([]studentCompletion, 0, len(students))
	for _, s := range students {
		// Progress rows on another grade's modules stay out of the sum.
		var progressRows []model.StudentProgressModel
		if err := ctrl.DB.WithContext(c.UserContext()).
			Select("progress_module_id", "progress_value").
			Where("progress_student_id = ?", s.StudentID).
			Find(&progressRows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch progress")
		}
		records := make([]service.ProgressRecord, 0, len(progressRows))
		for _, r := range progressRows {
			records = append(records, service.ProgressRecord{ModuleID: r.ProgressModuleID, Value: r.ProgressValue})
		}
		progressValues := service.GradeScopedProgressValues(records, catalog)

		// Averages run over completed attempts only.
		var quizRows []quizModel.QuizAttemptModel
		if err := ctrl.DB.WithContext(c.UserContext()).
			Select("quiz_attempt_score", "quiz_attempt_completed").
			Where("quiz_attempt_student_id = ?", s.StudentID).
			Find(&quizRows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch quiz scores")
		}
		quizAttempts := make([]service.ScoredAttempt, 0, len(quizRows))
		for _, r := range quizRows {
			quizAttempts = append(quizAttempts, service.ScoredAttempt{Score: r.QuizAttemptScore, Completed: r.QuizAttemptCompleted})
		}
		quizScores := service.CompletedScores(quizAttempts)

		var voiceRows []voiceModel.VoiceAttemptModel
		if err := ctrl.DB.WithContext(c.UserContext()).
			Select("voice_attempt_score", "voice_attempt_completed").
			Where("voice_attempt_student_id = ?", s.StudentID).
			Find(&voiceRows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch voice scores")
		}
		voiceAttempts := make([]service.ScoredAttempt, 0, len(voiceRows))
		for _, r := range voiceRows {
			voiceAttempts = append(voiceAttempts, service.ScoredAttempt{Score: r.VoiceAttemptScore, Completed: r.VoiceAttemptCompleted})
		}
		voiceScores := service.CompletedScores(voiceAttempts)

		rows = append(rows, studentCompletion{
			StudentID:        s.StudentID,
			StudentFirstname: s.StudentFirstname,
			StudentLastname:  s.StudentLastname,
			Completion:       service.ComputeGradeCompletion(total, progressValues, quizScores, voiceScores),
		})
	}

	return helper.JsonOK(c, "grade completion fetched", fiber.Map{
		"grade":         grade,
		"total_modules": total,
		"students":      rows,
	})
}

// GET /api/s/progress — the calling student's own overview.
func (ctrl *ProgressController) Own(c *fiber.Ctx) error {
	student, err := helperAuth.ResolveStudent(c, ctrl.DB)
	if err != nil {
		return err
	}

	total, err := ctrl.gradeModuleCount(c, student.StudentGrade)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count modules")
	}

	quiz, voice, err := ctrl.completedAttempts(c, student.StudentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attempts")
	}

	completed := service.CompletedModuleSet(quiz, voice)
	return helper.JsonOK(c, "progress fetched", service.ComputeModuleProgress(total, completed))
}

type upsertProgressRequest struct {
	ProgressValue float64 `json:"progress_value" validate:"min=0,max=100"`
}

// PUT /api/s/progress/:module_id — upsert the per-module progress value.
func (ctrl *ProgressController) Upsert(c *fiber.Ctx) error {
	student, err := helperAuth.ResolveStudent(c, ctrl.DB)
	if err != nil {
		return err
	}

	moduleID, err := uuid.Parse(c.Params("module_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid module id")
	}

	var module moduleModel.ModuleModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&module, "module_id = ?", moduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Module not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch module")
	}
	if module.ModuleGrade != student.StudentGrade {
		return helper.JsonError(c, fiber.StatusBadRequest, "Module is not assigned to your grade")
	}

	var body upsertProgressRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	progress := model.StudentProgressModel{
		ProgressStudentID: student.StudentID,
		ProgressModuleID:  moduleID,
		ProgressValue:     body.ProgressValue,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "progress_student_id"},
				{Name: "progress_module_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"progress_value", "progress_updated_at"}),
		}).Create(&progress).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save progress")
	}

	return helper.JsonUpdated(c, "progress saved", progress)
}
