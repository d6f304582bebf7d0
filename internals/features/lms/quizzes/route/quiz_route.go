package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "readquest_backend/internals/features/lms/quizzes/controller"
)

// QuizEducatorRoutes: question bank management per module.
func QuizEducatorRoutes(educator fiber.Router, db *gorm.DB) {
	ctrl := controller.NewQuestionController(db)

	questions := educator.Group("/questions")
	questions.Post("/", ctrl.Create)
	questions.Get("/", ctrl.ListByModule)
	questions.Put("/:id", ctrl.Update)
	questions.Delete("/:id", ctrl.Delete)
}

// QuizStudentRoutes: question fetch + attempt submission/history.
func QuizStudentRoutes(student fiber.Router, db *gorm.DB) {
	questions := controller.NewQuestionController(db)
	attempts := controller.NewQuizAttemptController(db)

	quizzes := student.Group("/quizzes")
	quizzes.Get("/questions", questions.ListByModule)
	quizzes.Post("/submit", attempts.Submit)
	quizzes.Get("/attempts", attempts.ListOwn)
}

// QuizAdminRoutes: attempt history table.
func QuizAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewQuizAttemptController(db)

	quizzes := admin.Group("/quizzes")
	quizzes.Get("/attempts", ctrl.ListAll)
}
