package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	model "readquest_backend/internals/features/users/audit_logs/model"
	helper "readquest_backend/internals/helpers"
)

type AuditLogController struct {
	DB *gorm.DB
}

func NewAuditLogController(db *gorm.DB) *AuditLogController {
	return &AuditLogController{DB: db}
}

// GET /api/a/audit-logs — newest first
func (ctrl *AuditLogController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	tx := ctrl.DB.WithContext(c.UserContext()).Model(&model.AuditLogModel{})
	if action := c.Query("action"); action != "" {
		tx = tx.Where("audit_log_action = ?", action)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count audit logs")
	}

	var logs []model.AuditLogModel
	if err := tx.Order("audit_log_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&logs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch audit logs")
	}

	return helper.JsonList(c, "audit logs fetched", logs,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
