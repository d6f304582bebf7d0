package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "readquest_backend/internals/features/lms/reports/controller"
)

// ReportAdminRoutes: combined activity history per grade.
func ReportAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReportController(db)

	admin.Get("/reports", ctrl.GradeReport)
}
