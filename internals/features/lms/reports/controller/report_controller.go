package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"readquest_backend/internals/constants"
	helper "readquest_backend/internals/helpers"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// reportRow is one attempt in the combined grade report, regardless of
// which activity produced it.
type reportRow struct {
	ActivityType     string  `gorm:"column:activity_type"     json:"activity_type"`
	AttemptID        string  `gorm:"column:attempt_id"        json:"attempt_id"`
	StudentID        string  `gorm:"column:student_id"        json:"student_id"`
	StudentFirstname string  `gorm:"column:student_firstname" json:"student_firstname"`
	StudentLastname  string  `gorm:"column:student_lastname"  json:"student_lastname"`
	Score            float64 `gorm:"column:score"             json:"score"`
	Completed        bool    `gorm:"column:completed"         json:"completed"`
	CreatedAt        string  `gorm:"column:created_at"        json:"created_at"`
}

// GET /api/a/reports?grade= — quiz, voice and comprehension history for
// one grade, newest first. An unknown grade value never reaches the
// store.
func (ctrl *ReportController) GradeReport(c *fiber.Ctx) error {
	grade := c.Query("grade")
	if !constants.IsValidGrade(grade) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid grade")
	}

	const query = `
		SELECT * FROM (
			SELECT 'Quiz' AS activity_type,
			       qa.quiz_attempt_id::text AS attempt_id,
			       s.student_id::text AS student_id,
			       s.student_firstname, s.student_lastname,
			       qa.quiz_attempt_score AS score,
			       qa.quiz_attempt_completed AS completed,
			       qa.quiz_attempt_created_at::text AS created_at
			FROM student_quiz_attempts qa
			JOIN students s ON s.student_id = qa.quiz_attempt_student_id
			WHERE s.student_grade = @grade AND s.student_deleted_at IS NULL
			UNION ALL
			SELECT 'Voice',
			       va.voice_attempt_id::text,
			       s.student_id::text,
			       s.student_firstname, s.student_lastname,
			       va.voice_attempt_score,
			       va.voice_attempt_completed,
			       va.voice_attempt_created_at::text
			FROM voice_exercise_attempts va
			JOIN students s ON s.student_id = va.voice_attempt_student_id
			WHERE s.student_grade = @grade AND s.student_deleted_at IS NULL
			UNION ALL
			SELECT 'Comprehension',
			       ca.comprehension_attempt_id::text,
			       s.student_id::text,
			       s.student_firstname, s.student_lastname,
			       ca.comprehension_attempt_score,
			       ca.comprehension_attempt_completed,
			       ca.comprehension_attempt_created_at::text
			FROM comprehension_attempts ca
			JOIN students s ON s.student_id = ca.comprehension_attempt_student_id
			WHERE s.student_grade = @grade AND s.student_deleted_at IS NULL
		) combined
		ORDER BY created_at DESC`

	var rows []reportRow
	if err := ctrl.DB.WithContext(c.UserContext()).
		Raw(query, map[string]any{"grade": grade}).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build report")
	}

	return helper.JsonOK(c, "report fetched", fiber.Map{
		"grade":   grade,
		"entries": rows,
	})
}
