package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/curriculum/questions/controller"
)

func QuestionInstructorRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewQuestionController(db)

	questions := api.Group("/quizzes/:id/questions")
	questions.Get("/", ctrl.GetQuizQuestions)
	questions.Put("/", ctrl.ReplaceQuizQuestions)
}
