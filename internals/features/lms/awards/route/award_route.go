package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "readquest_backend/internals/features/lms/awards/controller"
)

// AwardAdminRoutes: achievements table + manual recalculation.
func AwardAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAwardController(db)

	awards := admin.Group("/awards")
	awards.Get("/", ctrl.List)
	awards.Post("/recalculate/:student_id", ctrl.Recalculate)
}

// AwardStudentRoutes: a student's own badge shelf.
func AwardStudentRoutes(student fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAwardController(db)

	student.Get("/awards", ctrl.ListOwn)
}
