package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	chapterService "kursusku_backend/internals/features/courses/chapters/service"
	itemService "kursusku_backend/internals/features/curriculum/items/service"
	"kursusku_backend/internals/features/curriculum/quizzes/dto"
	"kursusku_backend/internals/features/curriculum/quizzes/model"
	teamService "kursusku_backend/internals/features/users/teams/service"
	helper "kursusku_backend/internals/helpers"
)

type QuizController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewQuizController(db *gorm.DB) *QuizController {
	return &QuizController{DB: db, Validate: validator.New()}
}

// 🟢 POST /api/i/quizzes
func (ctrl *QuizController) CreateQuiz(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var quiz *model.QuizModel
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		own, err := chapterService.ResolveOwnership(tx, req.QuizChapterID)
		if err != nil {
			return err
		}
		if err := teamService.EnsureCanModifyCourse(tx, userID, own.CourseOwnerID); err != nil {
			return err
		}

		order, err := itemService.NextOrder(tx, req.QuizChapterID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung urutan item")
		}
		quiz = req.ToModel(order)
		if err := tx.Create(quiz).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat quiz")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Quiz berhasil dibuat", dto.ToQuizResponse(quiz))
}

// 🟡 PATCH /api/i/quizzes/:id
func (ctrl *QuizController) UpdateQuiz(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	quizID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID quiz tidak valid")
	}

	var req dto.UpdateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}

	var quiz model.QuizModel
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := ctrl.loadQuizWithGate(tx, quizID, userID, &quiz); err != nil {
			return err
		}

		req.ApplyToModel(&quiz)
		if err := tx.Save(&quiz).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan quiz")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Quiz berhasil diperbarui", dto.ToQuizResponse(&quiz))
}

// 🔴 DELETE /api/i/quizzes/:id
func (ctrl *QuizController) SoftDeleteQuiz(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	quizID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID quiz tidak valid")
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var quiz model.QuizModel
		if err := ctrl.loadQuizWithGate(tx, quizID, userID, &quiz); err != nil {
			return err
		}
		if err := tx.Delete(&quiz).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus quiz")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Quiz berhasil dihapus", nil)
}

// ♻️ POST /api/i/quizzes/:id/restore
func (ctrl *QuizController) RestoreQuiz(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	quizID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID quiz tidak valid")
	}

	var quiz model.QuizModel
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().First(&quiz, "quiz_id = ?", quizID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Quiz tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil quiz")
		}
		if !quiz.QuizDeletedAt.Valid {
			return fiber.NewError(fiber.StatusBadRequest, "Quiz belum dihapus")
		}

		// chapter terhapus tidak memblokir restore item di dalamnya
		own, err := chapterService.ResolveOwnershipAny(tx, quiz.QuizChapterID)
		if err != nil {
			return err
		}
		if err := teamService.EnsureCanModifyCourse(tx, userID, own.CourseOwnerID); err != nil {
			return err
		}

		if err := tx.Unscoped().Model(&quiz).Update("quiz_deleted_at", nil).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal restore quiz")
		}
		quiz.QuizDeletedAt = gorm.DeletedAt{}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Quiz berhasil direstore", dto.ToQuizResponse(&quiz))
}

func (ctrl *QuizController) loadQuizWithGate(tx *gorm.DB, quizID, userID uuid.UUID, out *model.QuizModel) error {
	if err := tx.First(out, "quiz_id = ?", quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Quiz tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil quiz")
	}

	own, err := chapterService.ResolveOwnership(tx, out.QuizChapterID)
	if err != nil {
		return err
	}
	return teamService.EnsureCanModifyCourse(tx, userID, own.CourseOwnerID)
}
