package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "readquest_backend/internals/features/lms/awards/model"
	service "readquest_backend/internals/features/lms/awards/service"
	helper "readquest_backend/internals/helpers"
	helperAuth "readquest_backend/internals/helpers/auth"
)

type AwardController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Awards    *service.AwardService
}

func NewAwardController(db *gorm.DB) *AwardController {
	return &AwardController{
		DB:        db,
		Validator: validator.New(),
		Awards:    service.NewAwardService(db),
	}
}

// AwardWithStudent backs the achievements table: one badge plus the
// student identity it belongs to.
type AwardWithStudent struct {
	model.AwardModel
	StudentFirstname string `gorm:"column:student_firstname" json:"student_firstname"`
	StudentLastname  string `gorm:"column:student_lastname"  json:"student_lastname"`
	StudentGrade     string `gorm:"column:student_grade"     json:"student_grade"`
}

// GET /api/a/awards — every badge with the owning student's identity.
func (ctrl *AwardController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.WithContext(c.UserContext()).
		Table("awards").
		Joins("JOIN students ON students.student_id = awards.award_student_id").
		Where("students.student_deleted_at IS NULL")
	if category := c.Query("category"); category != "" {
		tx = tx.Where("awards.award_category = ?", category)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count awards")
	}

	var rows []AwardWithStudent
	if err := tx.Select("awards.*, students.student_firstname, students.student_lastname, students.student_grade").
		Order("awards.award_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch awards")
	}

	return helper.JsonList(c, "awards fetched", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/s/awards — the logged-in student's own badges.
func (ctrl *AwardController) ListOwn(c *fiber.Ctx) error {
	student, err := helperAuth.ResolveStudent(c, ctrl.DB)
	if err != nil {
		return err
	}

	var awards []model.AwardModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("award_student_id = ?", student.StudentID).
		Order("award_created_at DESC").
		Find(&awards).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch awards")
	}

	return helper.JsonOK(c, "awards fetched", awards)
}

// POST /api/a/awards/recalculate/:student_id — re-run the evaluator for
// one student from their full attempt history.
func (ctrl *AwardController) Recalculate(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var exists int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Table("students").
		Where("student_id = ? AND student_deleted_at IS NULL", studentID).
		Count(&exists).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check student")
	}
	if exists == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	pending, err := ctrl.Awards.EvaluateStudent(studentID, helperAuth.ActorID(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to evaluate awards")
	}

	return helper.JsonOK(c, "awards evaluated", fiber.Map{
		"student_id": studentID,
		"earned":     pending,
	})
}
