package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	chapterService "kursusku_backend/internals/features/courses/chapters/service"
	"kursusku_backend/internals/features/curriculum/questions/dto"
	"kursusku_backend/internals/features/curriculum/questions/service"
	quizModel "kursusku_backend/internals/features/curriculum/quizzes/model"
	teamService "kursusku_backend/internals/features/users/teams/service"
	helper "kursusku_backend/internals/helpers"
)

type QuestionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewQuestionController(db *gorm.DB) *QuestionController {
	return &QuestionController{DB: db, Validate: validator.New()}
}

// 🟡 PUT /api/i/quizzes/:id/questions
// Replace seluruh bank soal quiz sekali jalan (editor kirim daftar final).
func (ctrl *QuestionController) ReplaceQuizQuestions(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	quizID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID quiz tidak valid")
	}

	var req dto.ReplaceQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var replaced []service.QuestionWithOptions
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := ctrl.gateQuiz(tx, quizID, userID); err != nil {
			return err
		}
		var err error
		replaced, err = service.ReplaceQuestions(tx, quizID, req.ToSpecs())
		return err
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Soal quiz berhasil disimpan", dto.ToQuestionResponses(replaced))
}

// 🟢 GET /api/i/quizzes/:id/questions
func (ctrl *QuestionController) GetQuizQuestions(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	quizID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID quiz tidak valid")
	}

	if err := ctrl.gateQuiz(ctrl.DB, quizID, userID); err != nil {
		return helper.FromFiberError(c, err)
	}

	rows, err := service.ListQuestions(ctrl.DB, quizID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil soal")
	}
	return helper.Success(c, "Soal quiz berhasil diambil", dto.ToQuestionResponses(rows))
}

// gateQuiz: quiz hidup → chapter → kursus → gate owner/tim.
func (ctrl *QuestionController) gateQuiz(tx *gorm.DB, quizID, userID uuid.UUID) error {
	var quiz quizModel.QuizModel
	if err := tx.Select("quiz_id", "quiz_chapter_id").
		First(&quiz, "quiz_id = ?", quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Quiz tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil quiz")
	}

	own, err := chapterService.ResolveOwnership(tx, quiz.QuizChapterID)
	if err != nil {
		return err
	}
	return teamService.EnsureCanModifyCourse(tx, userID, own.CourseOwnerID)
}
