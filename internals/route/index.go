package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"readquest_backend/internals/constants"
	awardRoute "readquest_backend/internals/features/lms/awards/route"
	comprehensionRoute "readquest_backend/internals/features/lms/comprehension/route"
	educatorRoute "readquest_backend/internals/features/lms/educators/route"
	moduleRoute "readquest_backend/internals/features/lms/modules/route"
	progressRoute "readquest_backend/internals/features/lms/progress/route"
	quizRoute "readquest_backend/internals/features/lms/quizzes/route"
	reportRoute "readquest_backend/internals/features/lms/reports/route"
	studentRoute "readquest_backend/internals/features/lms/students/route"
	voiceRoute "readquest_backend/internals/features/lms/voice_exercises/route"
	auditLogRoute "readquest_backend/internals/features/users/audit_logs/route"
	authRoute "readquest_backend/internals/features/users/auth/route"
	userRoute "readquest_backend/internals/features/users/users/route"
	authMiddleware "readquest_backend/internals/middlewares/auth"
)

// SetupRoutes wires the whole HTTP surface:
//
//	/api/auth — public (login, me)
//	/api/a    — Admin only
//	/api/e    — Educator and Admin
//	/api/s    — Student only
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	authRoute.AuthRoutes(app, db)

	api := app.Group("/api", authMiddleware.AuthMiddleware(db))

	admin := api.Group("/a",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("the admin dashboard"), constants.AdminOnly...))
	userRoute.UserAdminRoutes(admin, db)
	studentRoute.StudentAdminRoutes(admin, db)
	educatorRoute.EducatorAdminRoutes(admin, db)
	quizRoute.QuizAdminRoutes(admin, db)
	voiceRoute.VoiceAdminRoutes(admin, db)
	comprehensionRoute.ComprehensionAdminRoutes(admin, db)
	awardRoute.AwardAdminRoutes(admin, db)
	progressRoute.ProgressAdminRoutes(admin, db)
	reportRoute.ReportAdminRoutes(admin, db)
	auditLogRoute.AuditLogAdminRoutes(admin, db)

	educator := api.Group("/e",
		authMiddleware.OnlyRoles(constants.RoleErrorEducator("the educator workspace"), constants.EducatorAndAbove...))
	educatorRoute.EducatorSelfRoutes(educator, db)
	studentRoute.StudentEducatorRoutes(educator, db)
	moduleRoute.ModuleEducatorRoutes(educator, db)
	quizRoute.QuizEducatorRoutes(educator, db)
	voiceRoute.VoiceEducatorRoutes(educator, db)
	comprehensionRoute.ComprehensionEducatorRoutes(educator, db)

	student := api.Group("/s",
		authMiddleware.OnlyRoles(constants.RoleErrorStudent("the student workspace"), constants.StudentOnly...))
	moduleRoute.ModuleStudentRoutes(student, db)
	quizRoute.QuizStudentRoutes(student, db)
	voiceRoute.VoiceStudentRoutes(student, db)
	comprehensionRoute.ComprehensionStudentRoutes(student, db)
	awardRoute.AwardStudentRoutes(student, db)
	progressRoute.ProgressStudentRoutes(student, db)
}
