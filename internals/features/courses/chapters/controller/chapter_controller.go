package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/courses/chapters/dto"
	"kursusku_backend/internals/features/courses/chapters/model"
	courseModel "kursusku_backend/internals/features/courses/courses/model"
	teamService "kursusku_backend/internals/features/users/teams/service"
	helper "kursusku_backend/internals/helpers"
)

type ChapterController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewChapterController(db *gorm.DB) *ChapterController {
	return &ChapterController{DB: db, Validate: validator.New()}
}

// 🟢 POST /api/i/chapters
func (ctrl *ChapterController) CreateChapter(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateChapterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	newChapter := req.ToModel()

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		// kursus harus ada & hidup; gate owner/tim di transaksi yang sama
		var course courseModel.CourseModel
		if err := tx.Select("course_id", "course_user_id").
			First(&course, "course_id = ?", req.ChapterCourseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Kursus tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kursus")
		}
		if err := teamService.EnsureCanModifyCourse(tx, userID, course.CourseUserID); err != nil {
			return err
		}

		if err := tx.Create(newChapter).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat chapter")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Chapter berhasil dibuat", dto.ToChapterResponse(newChapter))
}

// 🟡 PATCH /api/i/chapters/:id
func (ctrl *ChapterController) UpdateChapter(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	chapterID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID chapter tidak valid")
	}

	var req dto.UpdateChapterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}

	var chapter model.ChapterModel
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := ctrl.loadChapterWithGate(tx, chapterID, userID, &chapter); err != nil {
			return err
		}

		req.ApplyToModel(&chapter)
		if err := tx.Save(&chapter).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan chapter")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Chapter berhasil diperbarui", dto.ToChapterResponse(&chapter))
}

// 🔴 DELETE /api/i/chapters/:id - soft delete, item di dalamnya TIDAK ikut terhapus
func (ctrl *ChapterController) SoftDeleteChapter(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	chapterID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID chapter tidak valid")
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var chapter model.ChapterModel
		if _, err := ctrl.loadChapterWithGate(tx, chapterID, userID, &chapter); err != nil {
			return err
		}
		if err := tx.Delete(&chapter).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus chapter")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Chapter berhasil dihapus", nil)
}

// ♻️ POST /api/i/chapters/:id/restore
func (ctrl *ChapterController) RestoreChapter(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	chapterID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID chapter tidak valid")
	}

	var chapter model.ChapterModel
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().First(&chapter, "chapter_id = ?", chapterID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Chapter tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil chapter")
		}
		if !chapter.ChapterDeletedAt.Valid {
			return fiber.NewError(fiber.StatusBadRequest, "Chapter belum dihapus")
		}

		var course courseModel.CourseModel
		if err := tx.Select("course_id", "course_user_id").
			First(&course, "course_id = ?", chapter.ChapterCourseID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kursus")
		}
		if err := teamService.EnsureCanModifyCourse(tx, userID, course.CourseUserID); err != nil {
			return err
		}

		if err := tx.Unscoped().Model(&chapter).Update("chapter_deleted_at", nil).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal restore chapter")
		}
		chapter.ChapterDeletedAt = gorm.DeletedAt{}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Chapter berhasil direstore", dto.ToChapterResponse(&chapter))
}

// 🟢 GET /api/i/courses/:courseId/chapters
func (ctrl *ChapterController) GetChaptersByCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID kursus tidak valid")
	}

	var chapters []model.ChapterModel
	if err := ctrl.DB.
		Where("chapter_course_id = ?", courseID).
		Order("chapter_created_at ASC").
		Find(&chapters).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar chapter")
	}

	responses := make([]dto.ChapterResponse, len(chapters))
	for i := range chapters {
		responses[i] = *dto.ToChapterResponse(&chapters[i])
	}
	return helper.Success(c, "Daftar chapter berhasil diambil", responses)
}

// loadChapterWithGate: ambil chapter hidup + jalankan gate owner/tim.
// Dipakai semua mutasi chapter supaya cek akses selalu satu transaksi dengan tulisnya.
func (ctrl *ChapterController) loadChapterWithGate(tx *gorm.DB, chapterID, userID uuid.UUID, out *model.ChapterModel) (uuid.UUID, error) {
	if err := tx.First(out, "chapter_id = ?", chapterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Chapter tidak ditemukan")
		}
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil chapter")
	}

	var course courseModel.CourseModel
	if err := tx.Select("course_id", "course_user_id").
		First(&course, "course_id = ?", out.ChapterCourseID).Error; err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kursus")
	}
	if err := teamService.EnsureCanModifyCourse(tx, userID, course.CourseUserID); err != nil {
		return uuid.Nil, err
	}
	return course.CourseUserID, nil
}
