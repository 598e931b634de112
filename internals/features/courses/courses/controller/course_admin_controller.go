package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/courses/courses/dto"
	"kursusku_backend/internals/features/courses/courses/model"
	"kursusku_backend/internals/features/courses/courses/service"
	helper "kursusku_backend/internals/helpers"
)

// ✅ PUT /api/a/courses/:id/approval
// Endpoint approve/reject terpisah dari create/edit.
// approve=true → (publish, approved, aktif); approve=false → (draft, rejected, nonaktif).
func (ctrl *CourseController) ApproveCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID kursus tidak valid")
	}

	var req dto.ApproveCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}

	var course model.CourseModel
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&course, "course_id = ?", courseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Kursus tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kursus")
		}

		service.WriteState(&course, service.ApplyApproval(req.Approve))

		if err := tx.Save(&course).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan status kursus")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	msg := "Kursus berhasil di-approve"
	if !req.Approve {
		msg = "Kursus ditolak dan dikembalikan ke draft"
	}
	return helper.Success(c, msg, dto.ToCourseResponse(&course))
}

// 🟢 GET /api/a/courses - daftar semua kursus (filter status/approval/kategori/q)
func (ctrl *CourseController) GetAllCourses(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.CourseModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("course_status = ?", status)
	}
	if approval := strings.TrimSpace(c.Query("approval_status")); approval != "" {
		q = q.Where("course_approval_status = ?", approval)
	}
	if categoryID := strings.TrimSpace(c.Query("category_id")); categoryID != "" {
		q = q.Where("course_category_id = ?", categoryID)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("lower(course_title) LIKE lower(?)", "%"+search+"%")
	}
	if c.Query("show_deleted") == "true" {
		q = q.Unscoped().Where("course_deleted_at IS NOT NULL")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung kursus")
	}

	var courses []model.CourseModel
	if err := q.Order("course_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&courses).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar kursus")
	}

	responses := make([]dto.CourseResponse, len(courses))
	for i := range courses {
		responses[i] = *dto.ToCourseResponse(&courses[i])
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	pagination.Count = len(responses)

	return helper.Success(c, "Daftar kursus berhasil diambil", fiber.Map{
		"courses":    responses,
		"pagination": pagination,
	})
}
