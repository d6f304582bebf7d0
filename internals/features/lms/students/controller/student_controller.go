package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	dto "readquest_backend/internals/features/lms/students/dto"
	model "readquest_backend/internals/features/lms/students/model"
	auditService "readquest_backend/internals/features/users/audit_logs/service"
	userModel "readquest_backend/internals/features/users/users/model"
	helper "readquest_backend/internals/helpers"
	helperAuth "readquest_backend/internals/helpers/auth"
	"readquest_backend/internals/constants"
)

type StudentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{
		DB:        db,
		Validator: validator.New(),
	}
}

// POST /api/a/students
// Creates the login user and the student row in one transaction.
func (ctrl *StudentController) Create(c *fiber.Ctx) error {
	var body dto.CreateStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	username := strings.TrimSpace(body.StudentUsername)

	var exists int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&userModel.UserModel{}).
		Where("user_username = ?", username).
		Count(&exists).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check username")
	}
	if exists > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Username already exists. Please choose another one.")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.StudentPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	var student *model.StudentModel
	err = ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		user := userModel.UserModel{
			UserName:     fmt.Sprintf("%s %s", strings.TrimSpace(body.StudentFirstname), strings.TrimSpace(body.StudentLastname)),
			UserUsername: username,
			UserPassword: string(hashed),
			UserRole:     constants.RoleStudent,
			UserImage:    body.StudentImage,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		student = body.ToModel(user.UserID)
		return tx.Create(student).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create student")
	}

	// best-effort audit entry; never fails the request
	actorID := helperAuth.ActorID(c)
	auditService.LogAuditAsync(ctrl.DB, actorID, "Student Creation", student.StudentID.String(), fiber.Map{
		"name":     fmt.Sprintf("%s %s", student.StudentFirstname, student.StudentLastname),
		"username": student.StudentUsername,
		"grade":    student.StudentGrade,
	})

	return helper.JsonCreated(c, "student created", student)
}

// GET /api/a/students (also mounted for educators, read only)
func (ctrl *StudentController) List(c *fiber.Ctx) error {
	var q dto.ListStudentsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query params")
	}
	if err := ctrl.Validator.Struct(&q); err != nil {
		return helper.JsonValidationError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.WithContext(c.UserContext()).Model(&model.StudentModel{})
	if q.Grade != nil && *q.Grade != "" {
		tx = tx.Where("student_grade = ?", *q.Grade)
	}
	if s := strings.TrimSpace(q.Q); s != "" {
		like := "%" + s + "%"
		tx = tx.Where("(student_firstname ILIKE ? OR student_lastname ILIKE ? OR student_username ILIKE ? OR student_lrn_no ILIKE ?)",
			like, like, like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count students")
	}

	var students []model.StudentModel
	if err := tx.Order("student_lastname ASC, student_firstname ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}

	return helper.JsonList(c, "students fetched", students,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/students/:id
func (ctrl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var student model.StudentModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}

	return helper.JsonOK(c, "student fetched", student)
}

// PUT /api/a/students/:id
func (ctrl *StudentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var body dto.UpdateStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var student model.StudentModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}

	body.ApplyTo(&student)
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update student")
	}

	actorID := helperAuth.ActorID(c)
	auditService.LogAuditAsync(ctrl.DB, actorID, "Student Update", student.StudentID.String(), fiber.Map{
		"name": fmt.Sprintf("%s %s", student.StudentFirstname, student.StudentLastname),
	})

	return helper.JsonUpdated(c, "student updated", student)
}

// DELETE /api/a/students/:id (soft delete)
func (ctrl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Delete(&model.StudentModel{}, "student_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete student")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	actorID := helperAuth.ActorID(c)
	auditService.LogAuditAsync(ctrl.DB, actorID, "Student Deletion", id.String(), nil)

	return helper.JsonDeleted(c, "student deleted", fiber.Map{"student_id": id})
}
