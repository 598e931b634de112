package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/curriculum/quizzes/controller"
)

func QuizInstructorRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewQuizController(db)

	quizzes := api.Group("/quizzes")
	quizzes.Post("/", ctrl.CreateQuiz)
	quizzes.Patch("/:id", ctrl.UpdateQuiz)
	quizzes.Delete("/:id", ctrl.SoftDeleteQuiz)
	quizzes.Post("/:id/restore", ctrl.RestoreQuiz)
}
