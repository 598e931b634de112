package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/courses/courses/dto"
	"kursusku_backend/internals/features/courses/courses/model"
	helper "kursusku_backend/internals/helpers"
)

// 🟢 GET /api/public/courses - hanya kursus publish+approved yang aktif
func (ctrl *CourseController) GetActiveCourses(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 50)

	q := ctrl.DB.Model(&model.CourseModel{}).
		Where("course_status = ? AND course_approval_status = ? AND course_is_active = ?",
			model.CourseStatusPublish, model.CourseApprovalApproved, true)

	if categoryID := strings.TrimSpace(c.Query("category_id")); categoryID != "" {
		q = q.Where("course_category_id = ?", categoryID)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("lower(course_title) LIKE lower(?)", "%"+search+"%")
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

// 🟢 GET /api/public/courses/:slug
func (ctrl *CourseController) GetCourseBySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))
	if slug == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Slug kursus wajib diisi")
	}

	var course model.CourseModel
	err := ctrl.DB.
		Where("course_slug = ? AND course_is_active = ?", slug, true).
		First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Kursus tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kursus")
	}

	return helper.Success(c, "Kursus berhasil diambil", dto.ToCourseResponse(&course))
}
