package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/constants"
	categoryModel "kursusku_backend/internals/features/courses/categories/model"
	"kursusku_backend/internals/features/courses/courses/dto"
	"kursusku_backend/internals/features/courses/courses/model"
	"kursusku_backend/internals/features/courses/courses/service"
	teamService "kursusku_backend/internals/features/users/teams/service"
	helper "kursusku_backend/internals/helpers"
	"kursusku_backend/internals/helpers/filestore"
)

type CourseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Files    filestore.FileStore
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{
		DB:       db,
		Validate: validator.New(),
		Files:    filestore.NewDiskFileStore(),
	}
}

// 🟢 POST /api/i/courses
func (ctrl *CourseController) CreateCourse(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	newCourse := req.ToModel(userID)

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		// kategori wajib ada & belum terhapus
		if err := ensureCategoryExists(tx, req.CourseCategoryID); err != nil {
			return err
		}

		// invariant harga dicek sebelum penulisan lifecycle apa pun
		if err := service.ValidatePricing(newCourse.CourseType, newCourse.CoursePrice, newCourse.CourseDiscountPrice); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		// state awal selalu (draft, nil); transisi dihitung dari request
		next, err := service.ApplyTransition(
			service.LifecycleState{Status: model.CourseStatusDraft},
			role,
			dtoLifecycleRequest(req.CourseStatus, req.CourseApprovalStatus, req.CourseIsActive),
		)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		service.WriteState(newCourse, next)

		slug, err := helper.GenerateUniqueSlug(tx, helper.SlugOptions{
			Table:            "courses",
			SlugColumn:       "course_slug",
			SoftDeleteColumn: "course_deleted_at",
			DefaultBase:      "kursus",
		}, newCourse.CourseTitle)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat slug kursus")
		}
		newCourse.CourseSlug = slug

		if err := tx.Create(newCourse).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat kursus")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kursus berhasil dibuat", dto.ToCourseResponse(newCourse))
}

// 🟡 PATCH /api/i/courses/:id
func (ctrl *CourseController) UpdateCourse(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID kursus tidak valid")
	}

	var req dto.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var course model.CourseModel
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&course, "course_id = ?", courseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Kursus tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kursus")
		}

		// admin boleh edit course-level; selain itu wajib lolos gate owner/tim
		if role != constants.RoleAdmin {
			if err := teamService.EnsureCanModifyCourse(tx, userID, course.CourseUserID); err != nil {
				return err
			}
		}

		req.ApplyToModel(&course)

		if req.CourseCategoryID.ShouldUpdate() && !req.CourseCategoryID.IsNull() {
			if err := ensureCategoryExists(tx, course.CourseCategoryID); err != nil {
				return err
			}
		}

		if err := service.ValidatePricing(course.CourseType, course.CoursePrice, course.CourseDiscountPrice); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		next, err := service.ApplyTransition(
			service.StateOf(&course),
			role,
			dtoLifecycleRequest(req.CourseStatus, req.CourseApprovalStatus, req.CourseIsActive),
		)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		service.WriteState(&course, next)

		if err := tx.Save(&course).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan kursus")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Kursus berhasil diperbarui", dto.ToCourseResponse(&course))
}

// 🖼 PUT /api/i/courses/:id/thumbnail (multipart: course_thumbnail)
func (ctrl *CourseController) UploadThumbnail(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID kursus tidak valid")
	}

	fileHeader, err := c.FormFile("course_thumbnail")
	if err != nil || fileHeader == nil {
		return helper.Error(c, fiber.StatusBadRequest, "File course_thumbnail wajib dikirim")
	}

	var course model.CourseModel
	var oldPath *string
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&course, "course_id = ?", courseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Kursus tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kursus")
		}
		if err := teamService.EnsureCanModifyCourse(tx, userID, course.CourseUserID); err != nil {
			return err
		}

		oldPath = course.CourseThumbnailURL

		path, err := filestore.StoreImageAsWebP(ctrl.Files, "courses", fileHeader)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal upload thumbnail")
		}
		course.CourseThumbnailURL = &path

		if err := tx.Save(&course).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan kursus")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	// thumbnail lama baru dihapus setelah commit; hapus disk tidak bisa di-rollback
	if oldPath != nil && !strings.HasPrefix(*oldPath, "http") {
		_ = ctrl.Files.Delete(*oldPath)
	}

	return helper.Success(c, "Thumbnail berhasil diperbarui", dto.ToCourseResponse(&course))
}

// 🔴 DELETE /api/i/courses/:id (soft delete)
func (ctrl *CourseController) SoftDeleteCourse(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID kursus tidak valid")
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var course model.CourseModel
		if err := tx.First(&course, "course_id = ?", courseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Kursus tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kursus")
		}
		if err := teamService.EnsureCanModifyCourse(tx, userID, course.CourseUserID); err != nil {
			return err
		}
		if err := tx.Delete(&course).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus kursus")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Kursus berhasil dihapus", nil)
}

// ♻️ POST /api/i/courses/:id/restore
func (ctrl *CourseController) RestoreCourse(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID kursus tidak valid")
	}

	var course model.CourseModel
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().First(&course, "course_id = ?", courseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Kursus tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kursus")
		}
		if !course.CourseDeletedAt.Valid {
			return fiber.NewError(fiber.StatusBadRequest, "Kursus belum dihapus")
		}
		if err := teamService.EnsureCanModifyCourse(tx, userID, course.CourseUserID); err != nil {
			return err
		}
		if err := tx.Unscoped().Model(&course).Update("course_deleted_at", nil).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal restore kursus")
		}
		course.CourseDeletedAt = gorm.DeletedAt{}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Kursus berhasil direstore", dto.ToCourseResponse(&course))
}

// 🟢 GET /api/i/courses (kursus milik sendiri + delegasi)
func (ctrl *CourseController) GetMyCourses(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.CourseModel{}).Where("course_user_id = ?", userID)
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("course_status = ?", status)
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

// 🟢 GET /api/i/courses/:id
func (ctrl *CourseController) GetCourseByID(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID kursus tidak valid")
	}

	var course model.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Kursus tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kursus")
	}

	return helper.Success(c, "Kursus berhasil diambil", dto.ToCourseResponse(&course))
}

// helper kecil: rakit LifecycleRequest dari field dto
func dtoLifecycleRequest(status, approval *string, isActive *bool) service.LifecycleRequest {
	return service.LifecycleRequest{
		Status:         status,
		ApprovalStatus: approval,
		IsActive:       isActive,
	}
}

func ensureCategoryExists(tx *gorm.DB, id uuid.UUID) error {
	var cnt int64
	if err := tx.Model(&categoryModel.CategoryModel{}).
		Where("category_id = ?", id).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa kategori")
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Kategori tidak ditemukan")
	}
	return nil
}
