package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "readquest_backend/internals/features/lms/comprehension/controller"
)

// ComprehensionEducatorRoutes: test management per voice exercise.
func ComprehensionEducatorRoutes(educator fiber.Router, db *gorm.DB) {
	ctrl := controller.NewComprehensionController(db)

	comprehension := educator.Group("/comprehension")
	comprehension.Post("/", ctrl.Create)
	comprehension.Get("/", ctrl.ListByExercise)
	comprehension.Put("/:id", ctrl.Update)
	comprehension.Delete("/:id", ctrl.Delete)
}

// ComprehensionStudentRoutes: test fetch + submission.
func ComprehensionStudentRoutes(student fiber.Router, db *gorm.DB) {
	ctrl := controller.NewComprehensionController(db)

	comprehension := student.Group("/comprehension")
	comprehension.Get("/", ctrl.ListByExercise)
	comprehension.Post("/submit", ctrl.Submit)
	comprehension.Get("/attempts", ctrl.ListOwnAttempts)
}

// ComprehensionAdminRoutes: attempt history table.
func ComprehensionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewComprehensionController(db)

	comprehension := admin.Group("/comprehension")
	comprehension.Get("/attempts", ctrl.ListAllAttempts)
}
