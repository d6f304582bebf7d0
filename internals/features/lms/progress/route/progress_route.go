package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "readquest_backend/internals/features/lms/progress/controller"
)

// ProgressAdminRoutes: progress-bar overview + grade completion pages.
func ProgressAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProgressController(db)

	progress := admin.Group("/progress")
	progress.Get("/overview", ctrl.Overview)
	progress.Get("/completion", ctrl.GradeCompletion)
}

// ProgressStudentRoutes: own overview + per-module progress writes.
func ProgressStudentRoutes(student fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProgressController(db)

	progress := student.Group("/progress")
	progress.Get("/", ctrl.Own)
	progress.Put("/:module_id", ctrl.Upsert)
}
