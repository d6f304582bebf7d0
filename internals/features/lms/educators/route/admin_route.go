package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "readquest_backend/internals/features/lms/educators/controller"
)

// EducatorAdminRoutes: full CRUD for admins.
func EducatorAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEducatorController(db)

	educators := admin.Group("/educators")
	educators.Post("/", ctrl.Create)
	educators.Get("/", ctrl.List)
	educators.Get("/:id", ctrl.GetByID)
	educators.Put("/:id", ctrl.Update)
	educators.Delete("/:id", ctrl.Delete)
}

// EducatorSelfRoutes: profile lookup used by the educator dashboards.
func EducatorSelfRoutes(educator fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEducatorController(db)

	educator.Get("/profile", ctrl.GetByUsername)
}
