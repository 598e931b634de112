package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	chapterService "kursusku_backend/internals/features/courses/chapters/service"
	"kursusku_backend/internals/features/curriculum/lectures/dto"
	"kursusku_backend/internals/features/curriculum/lectures/model"
	itemService "kursusku_backend/internals/features/curriculum/items/service"
	teamService "kursusku_backend/internals/features/users/teams/service"
	helper "kursusku_backend/internals/helpers"
)

type LectureController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewLectureController(db *gorm.DB) *LectureController {
	return &LectureController{DB: db, Validate: validator.New()}
}

// 🟢 POST /api/i/lectures
// chapter_order diambil dari MAX lintas semua jenis item di chapter, +1.
func (ctrl *LectureController) CreateLecture(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateLectureRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var lecture *model.LectureModel
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		own, err := chapterService.ResolveOwnership(tx, req.LectureChapterID)
		if err != nil {
			return err
		}
		if err := teamService.EnsureCanModifyCourse(tx, userID, own.CourseOwnerID); err != nil {
			return err
		}

		order, err := itemService.NextOrder(tx, req.LectureChapterID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung urutan item")
		}
		lecture = req.ToModel(order)
		if err := tx.Create(lecture).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat lecture")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Lecture berhasil dibuat", dto.ToLectureResponse(lecture))
}

// 🟡 PATCH /api/i/lectures/:id
func (ctrl *LectureController) UpdateLecture(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	lectureID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID lecture tidak valid")
	}

	var req dto.UpdateLectureRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}

	var lecture model.LectureModel
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := ctrl.loadLectureWithGate(tx, lectureID, userID, &lecture); err != nil {
			return err
		}

		req.ApplyToModel(&lecture)
		if err := tx.Save(&lecture).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan lecture")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Lecture berhasil diperbarui", dto.ToLectureResponse(&lecture))
}

// 🔴 DELETE /api/i/lectures/:id - soft delete, chapter_order tidak diubah
func (ctrl *LectureController) SoftDeleteLecture(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	lectureID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID lecture tidak valid")
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var lecture model.LectureModel
		if err := ctrl.loadLectureWithGate(tx, lectureID, userID, &lecture); err != nil {
			return err
		}
		if err := tx.Delete(&lecture).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus lecture")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Lecture berhasil dihapus", nil)
}

// ♻️ POST /api/i/lectures/:id/restore - kembali dengan chapter_order lamanya
func (ctrl *LectureController) RestoreLecture(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	lectureID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID lecture tidak valid")
	}

	var lecture model.LectureModel
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().First(&lecture, "lecture_id = ?", lectureID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Lecture tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil lecture")
		}
		if !lecture.LectureDeletedAt.Valid {
			return fiber.NewError(fiber.StatusBadRequest, "Lecture belum dihapus")
		}

		// chapter terhapus tidak memblokir restore item di dalamnya
		own, err := chapterService.ResolveOwnershipAny(tx, lecture.LectureChapterID)
		if err != nil {
			return err
		}
		if err := teamService.EnsureCanModifyCourse(tx, userID, own.CourseOwnerID); err != nil {
			return err
		}

		if err := tx.Unscoped().Model(&lecture).Update("lecture_deleted_at", nil).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal restore lecture")
		}
		lecture.LectureDeletedAt = gorm.DeletedAt{}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Lecture berhasil direstore", dto.ToLectureResponse(&lecture))
}

func (ctrl *LectureController) loadLectureWithGate(tx *gorm.DB, lectureID, userID uuid.UUID, out *model.LectureModel) error {
	if err := tx.First(out, "lecture_id = ?", lectureID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Lecture tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil lecture")
	}

	own, err := chapterService.ResolveOwnership(tx, out.LectureChapterID)
	if err != nil {
		return err
	}
	return teamService.EnsureCanModifyCourse(tx, userID, own.CourseOwnerID)
}
