package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "readquest_backend/internals/features/users/audit_logs/controller"
)

func AuditLogAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuditLogController(db)

	admin.Get("/audit-logs", ctrl.List)
}
