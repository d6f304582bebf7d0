package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "readquest_backend/internals/features/lms/modules/controller"
)

// ModuleEducatorRoutes: full CRUD for educators and admins.
func ModuleEducatorRoutes(educator fiber.Router, db *gorm.DB) {
	ctrl := controller.NewModuleController(db)

	modules := educator.Group("/modules")
	modules.Post("/", ctrl.Create)
	modules.Get("/", ctrl.List)
	modules.Get("/:id", ctrl.GetByID)
	modules.Put("/:id", ctrl.Update)
	modules.Delete("/:id", ctrl.Delete)
}

// ModuleStudentRoutes: read-only, scoped to the student's grade.
func ModuleStudentRoutes(student fiber.Router, db *gorm.DB) {
	ctrl := controller.NewModuleController(db)

	modules := student.Group("/modules")
	modules.Get("/", ctrl.ListAssigned)
	modules.Get("/:id", ctrl.GetByID)
}
