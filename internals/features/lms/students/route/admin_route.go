package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "readquest_backend/internals/features/lms/students/controller"
)

// StudentAdminRoutes: full CRUD for admins.
func StudentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentController(db)

	students := admin.Group("/students")
	students.Post("/", ctrl.Create)
	students.Get("/", ctrl.List)
	students.Get("/:id", ctrl.GetByID)
	students.Put("/:id", ctrl.Update)
	students.Delete("/:id", ctrl.Delete)
}

// StudentEducatorRoutes: read-only listing for educator dashboards.
func StudentEducatorRoutes(educator fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentController(db)

	students := educator.Group("/students")
	students.Get("/", ctrl.List)
	students.Get("/:id", ctrl.GetByID)
}
