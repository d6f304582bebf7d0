package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "readquest_backend/internals/features/lms/voice_exercises/controller"
)

// VoiceEducatorRoutes: reading-passage management.
func VoiceEducatorRoutes(educator fiber.Router, db *gorm.DB) {
	ctrl := controller.NewVoiceExerciseController(db)

	exercises := educator.Group("/voice-exercises")
	exercises.Post("/", ctrl.Create)
	exercises.Get("/", ctrl.List)
	exercises.Get("/:id", ctrl.GetByID)
	exercises.Put("/:id", ctrl.Update)
	exercises.Delete("/:id", ctrl.Delete)
}

// VoiceStudentRoutes: exercise fetch + scored submission.
func VoiceStudentRoutes(student fiber.Router, db *gorm.DB) {
	exercises := controller.NewVoiceExerciseController(db)
	attempts := controller.NewVoiceAttemptController(db)

	voice := student.Group("/voice-exercises")
	voice.Get("/", exercises.ListByModule)
	voice.Post("/submit", attempts.Submit)
	voice.Get("/attempts", attempts.ListOwn)
}

// VoiceAdminRoutes: attempt history table.
func VoiceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewVoiceAttemptController(db)

	voice := admin.Group("/voice-exercises")
	voice.Get("/attempts", ctrl.ListAll)
}
