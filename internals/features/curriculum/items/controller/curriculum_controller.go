package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	chapterService "kursusku_backend/internals/features/courses/chapters/service"
	courseModel "kursusku_backend/internals/features/courses/courses/model"
	"kursusku_backend/internals/features/curriculum/items/dto"
	"kursusku_backend/internals/features/curriculum/items/service"
	teamService "kursusku_backend/internals/features/users/teams/service"
	helper "kursusku_backend/internals/helpers"
)

type CurriculumController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCurriculumController(db *gorm.DB) *CurriculumController {
	return &CurriculumController{DB: db, Validate: validator.New()}
}

// 🟢 GET /api/i/chapters/:id/curriculum
// Daftar gabungan semua jenis item dalam satu chapter, urut chapter_order.
// Query: ?q= (judul/jenis/durasi), ?show_deleted=true, ?page=, ?per_page=
func (ctrl *CurriculumController) GetChapterCurriculum(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	chapterID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID chapter tidak valid")
	}

	own, err := chapterService.ResolveOwnership(ctrl.DB, chapterID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := teamService.EnsureCanModifyCourse(ctrl.DB, userID, own.CourseOwnerID); err != nil {
		return helper.FromFiberError(c, err)
	}

	opts := service.ListOptions{
		Search:      c.Query("q"),
		ShowDeleted: c.Query("show_deleted") == "true",
	}
	entries, err := service.ListForChapter(ctrl.DB, chapterID, opts)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kurikulum")
	}

	paging := helper.ResolvePaging(c, 20, 100)
	total := int64(len(entries))
	start := paging.Offset
	if start > len(entries) {
		start = len(entries)
	}
	end := start + paging.Limit
	if end > len(entries) {
		end = len(entries)
	}
	page := entries[start:end]

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	pagination.Count = len(page)

	return helper.Success(c, "Kurikulum berhasil diambil", fiber.Map{
		"items":      dto.ToCurriculumItemResponses(page),
		"pagination": pagination,
	})
}

// 🟡 PUT /api/i/chapters/:id/curriculum/reorder
// Tulis ulang chapter_order mengikuti urutan id yang dikirim (posisi+1).
func (ctrl *CurriculumController) ReorderCurriculum(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	chapterID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID chapter tidak valid")
	}

	var req dto.ReorderCurriculumRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		own, err := chapterService.ResolveOwnership(tx, chapterID)
		if err != nil {
			return err
		}
		if err := teamService.EnsureCanModifyCourse(tx, userID, own.CourseOwnerID); err != nil {
			return err
		}
		if err := service.Reorder(tx, chapterID, req.OrderedIDs); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyusun ulang kurikulum")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	entries, err := service.ListForChapter(ctrl.DB, chapterID, service.ListOptions{})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kurikulum")
	}
	return helper.Success(c, "Kurikulum berhasil disusun ulang", dto.ToCurriculumItemResponses(entries))
}

// 🟢 GET /api/public/chapters/:id/curriculum
// Hanya untuk kursus yang sudah live; item non-aktif & terhapus tidak tampil.
func (ctrl *CurriculumController) GetPublicChapterCurriculum(c *fiber.Ctx) error {
	chapterID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID chapter tidak valid")
	}

	own, err := chapterService.ResolveOwnership(ctrl.DB, chapterID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var course courseModel.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", own.CourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Kursus tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kursus")
	}
	if course.CourseStatus != courseModel.CourseStatusPublish || !course.IsApproved() || !course.CourseIsActive {
		return helper.Error(c, fiber.StatusNotFound, "Kursus tidak ditemukan")
	}

	entries, err := service.ListForChapter(ctrl.DB, chapterID, service.ListOptions{})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kurikulum")
	}

	active := make([]service.CurriculumEntry, 0, len(entries))
	for _, e := range entries {
		if e.EntryIsActive() {
			active = append(active, e)
		}
	}
	return helper.Success(c, "Kurikulum berhasil diambil", dto.ToCurriculumItemResponses(active))
}
