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

	"readquest_backend/internals/constants"
	dto "readquest_backend/internals/features/lms/educators/dto"
	model "readquest_backend/internals/features/lms/educators/model"
	auditService "readquest_backend/internals/features/users/audit_logs/service"
	userModel "readquest_backend/internals/features/users/users/model"
	helper "readquest_backend/internals/helpers"
	helperAuth "readquest_backend/internals/helpers/auth"
)

type EducatorController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewEducatorController(db *gorm.DB) *EducatorController {
	return &EducatorController{
		DB:        db,
		Validator: validator.New(),
	}
}

// POST /api/a/educators
func (ctrl *EducatorController) Create(c *fiber.Ctx) error {
	var body dto.CreateEducatorRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	username := strings.TrimSpace(body.EducatorUsername)

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

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.EducatorPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	var educator *model.EducatorModel
	err = ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		user := userModel.UserModel{
			UserName:     fmt.Sprintf("%s %s", strings.TrimSpace(body.EducatorFirstname), strings.TrimSpace(body.EducatorLastname)),
			UserUsername: username,
			UserPassword: string(hashed),
			UserRole:     constants.RoleEducator,
			UserImage:    body.EducatorImage,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		educator = body.ToModel(user.UserID)
		return tx.Create(educator).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create educator")
	}

	actorID := helperAuth.ActorID(c)
	auditService.LogAuditAsync(ctrl.DB, actorID, "Educator Creation", educator.EducatorID.String(), fiber.Map{
		"name":          fmt.Sprintf("%s %s", educator.EducatorFirstname, educator.EducatorLastname),
		"username":      educator.EducatorUsername,
		"handled_grade": educator.EducatorHandledGrade,
	})

	return helper.JsonCreated(c, "educator created", educator)
}

// GET /api/a/educators
func (ctrl *EducatorController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.WithContext(c.UserContext()).Model(&model.EducatorModel{})
	if grade := c.Query("grade"); grade != "" {
		if !constants.IsValidGrade(grade) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid grade")
		}
		tx = tx.Where("educator_handled_grade = ?", grade)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count educators")
	}

	var educators []model.EducatorModel
	if err := tx.Order("educator_lastname ASC, educator_firstname ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&educators).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch educators")
	}

	return helper.JsonList(c, "educators fetched", educators,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/educators/:id
func (ctrl *EducatorController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid educator id")
	}

	var educator model.EducatorModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&educator, "educator_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Educator not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch educator")
	}

	return helper.JsonOK(c, "educator fetched", educator)
}

// GET /api/e/profile?username= — educator profile by username
func (ctrl *EducatorController) GetByUsername(c *fiber.Ctx) error {
	username := strings.TrimSpace(c.Query("username"))
	if username == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username is required")
	}

	var educator model.EducatorModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&educator, "educator_username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Educator not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch educator")
	}

	return helper.JsonOK(c, "educator fetched", educator)
}

// PUT /api/a/educators/:id
func (ctrl *EducatorController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid educator id")
	}

	var body dto.UpdateEducatorRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var educator model.EducatorModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&educator, "educator_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Educator not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch educator")
	}

	body.ApplyTo(&educator)
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&educator).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update educator")
	}

	return helper.JsonUpdated(c, "educator updated", educator)
}

// DELETE /api/a/educators/:id (soft delete)
func (ctrl *EducatorController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid educator id")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Delete(&model.EducatorModel{}, "educator_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete educator")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Educator not found")
	}

	actorID := helperAuth.ActorID(c)
	auditService.LogAuditAsync(ctrl.DB, actorID, "Educator Deletion", id.String(), nil)

	return helper.JsonDeleted(c, "educator deleted", fiber.Map{"educator_id": id})
}
