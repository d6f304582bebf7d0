package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "readquest_backend/internals/features/lms/modules/dto"
	model "readquest_backend/internals/features/lms/modules/model"
	auditService "readquest_backend/internals/features/users/audit_logs/service"
	helper "readquest_backend/internals/helpers"
	helperAuth "readquest_backend/internals/helpers/auth"
)

type ModuleController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewModuleController(db *gorm.DB) *ModuleController {
	return &ModuleController{
		DB:        db,
		Validator: validator.New(),
	}
}

// POST /api/e/modules
func (ctrl *ModuleController) Create(c *fiber.Ctx) error {
	var body dto.CreateModuleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	module := body.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(module).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create module")
	}

	auditService.LogAuditAsync(ctrl.DB, helperAuth.ActorID(c), "Module Creation", module.ModuleID.String(), fiber.Map{
		"title":   module.ModuleTitle,
		"grade":   module.ModuleGrade,
		"subject": module.ModuleSubject,
	})

	return helper.JsonCreated(c, "module created", module)
}

// GET /api/e/modules — filterable by grade, subject and title search.
func (ctrl *ModuleController) List(c *fiber.Ctx) error {
	var q dto.ListModulesQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query parameters")
	}
	if err := ctrl.Validator.Struct(&q); err != nil {
		return helper.JsonValidationError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.WithContext(c.UserContext()).Model(&model.ModuleModel{})
	if q.Grade != nil {
		tx = tx.Where("module_grade = ?", *q.Grade)
	}
	if q.Subject != nil {
		tx = tx.Where("module_subject = ?", *q.Subject)
	}
	if q.Q != "" {
		tx = tx.Where("module_title ILIKE ?", "%"+q.Q+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count modules")
	}

	var modules []model.ModuleModel
	if err := tx.Order("module_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&modules).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch modules")
	}

	return helper.JsonList(c, "modules fetched", modules,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/e/modules/:id
func (ctrl *ModuleController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid module id")
	}

	var module model.ModuleModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&module, "module_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Module not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch module")
	}

	return helper.JsonOK(c, "module fetched", module)
}

// PUT /api/e/modules/:id
func (ctrl *ModuleController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid module id")
	}

	var body dto.UpdateModuleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var module model.ModuleModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&module, "module_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Module not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch module")
	}

	body.ApplyTo(&module)
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&module).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update module")
	}

	auditService.LogAuditAsync(ctrl.DB, helperAuth.ActorID(c), "Module Update", module.ModuleID.String(), fiber.Map{
		"title": module.ModuleTitle,
	})

	return helper.JsonUpdated(c, "module updated", module)
}

// DELETE /api/e/modules/:id (soft delete)
func (ctrl *ModuleController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid module id")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Delete(&model.ModuleModel{}, "module_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete module")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Module not found")
	}

	auditService.LogAuditAsync(ctrl.DB, helperAuth.ActorID(c), "Module Deletion", id.String(), nil)

	return helper.JsonDeleted(c, "module deleted", fiber.Map{"module_id": id})
}

// GET /api/s/modules — modules assigned to the logged-in student's grade.
func (ctrl *ModuleController) ListAssigned(c *fiber.Ctx) error {
	student, err := helperAuth.ResolveStudent(c, ctrl.DB)
	if err != nil {
		return err
	}

	tx := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.ModuleModel{}).
		Where("module_grade = ?", student.StudentGrade)
	if subject := c.Query("subject"); subject != "" {
		tx = tx.Where("module_subject = ?", subject)
	}

	var modules []model.ModuleModel
	if err := tx.Order("module_created_at ASC").Find(&modules).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch modules")
	}

	return helper.JsonOK(c, "modules fetched", modules)
}
