package curriculumRoutes

import (
	curriculumControllers "belajaradmin/controllers/curriculum"
	questionControllers "belajaradmin/controllers/question"
	"belajaradmin/middleware"
	curriculumValidators "belajaradmin/validators/curriculum"
	questionValidators "belajaradmin/validators/question"

	"github.com/gofiber/fiber/v2"
)

// SetupCurriculumRoutes sets up topic and question management routes
func SetupCurriculumRoutes(app *fiber.App) {
	topicGroup := app.Group("/admin/topics", middleware.JWTMiddleware, middleware.AdminOnly)

	topicGroup.Get("/", curriculumControllers.ListTopics)
	topicGroup.Get("/:id", curriculumValidators.TopicID(), curriculumControllers.GetTopic)
	topicGroup.Post("/", curriculumValidators.CreateTopic(), curriculumControllers.CreateTopic)
	topicGroup.Put("/:id", curriculumValidators.UpdateTopic(), curriculumControllers.UpdateTopic)
	topicGroup.Delete("/:id", curriculumValidators.TopicID(), curriculumControllers.DeleteTopic)

	questionGroup := app.Group("/admin/questions", middleware.JWTMiddleware, middleware.AdminOnly)

	questionGroup.Get("/", questionValidators.ListQuestions(), questionControllers.ListQuestions)
	questionGroup.Get("/:id", questionValidators.QuestionID(), questionControllers.GetQuestion)
	questionGroup.Post("/", questionValidators.CreateQuestion(), questionControllers.CreateQuestion)
	questionGroup.Put("/:id", questionValidators.UpdateQuestion(), questionControllers.UpdateQuestion)
	questionGroup.Delete("/:id", questionValidators.QuestionID(), questionControllers.DeleteQuestion)
}
