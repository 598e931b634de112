package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/courses/categories/dto"
	"kursusku_backend/internals/features/courses/categories/model"
	helper "kursusku_backend/internals/helpers"
)

type CategoryController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db, Validate: validator.New()}
}

var categorySlugOpts = helper.SlugOptions{
	Table:            "categories",
	SlugColumn:       "category_slug",
	SoftDeleteColumn: "category_deleted_at",
	DefaultBase:      "kategori",
}

// 🟢 POST /api/a/categories
func (ctrl *CategoryController) CreateCategory(c *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	category := req.ToModel()

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if req.CategoryParentID != nil {
			var cnt int64
			if err := tx.Model(&model.CategoryModel{}).
				Where("category_id = ?", *req.CategoryParentID).
				Count(&cnt).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa kategori induk")
			}
			if cnt == 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Kategori induk tidak ditemukan")
			}
		}

		slug, err := helper.GenerateUniqueSlug(tx, categorySlugOpts, category.CategoryName)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat slug kategori")
		}
		category.CategorySlug = slug

		if err := tx.Create(category).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat kategori")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kategori berhasil dibuat", dto.ToCategoryResponse(category))
}

// 🟡 PATCH /api/a/categories/:id
func (ctrl *CategoryController) UpdateCategory(c *fiber.Ctx) error {
	categoryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID kategori tidak valid")
	}

	var req dto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}

	var category model.CategoryModel
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&category, "category_id = ?", categoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Kategori tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kategori")
		}

		req.ApplyToModel(&category)
		if err := tx.Save(&category).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan kategori")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Kategori berhasil diperbarui", dto.ToCategoryResponse(&category))
}

// 🔴 DELETE /api/a/categories/:id - soft delete, kursus lama tetap menunjuk id ini
func (ctrl *CategoryController) SoftDeleteCategory(c *fiber.Ctx) error {
	categoryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID kategori tidak valid")
	}

	res := ctrl.DB.Delete(&model.CategoryModel{}, "category_id = ?", categoryID)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus kategori")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
	}
	return helper.Success(c, "Kategori berhasil dihapus", nil)
}

// 🟢 GET /api/public/categories - hanya kategori aktif
func (ctrl *CategoryController) GetActiveCategories(c *fiber.Ctx) error {
	var categories []model.CategoryModel
	if err := ctrl.DB.
		Where("category_is_active = ?", true).
		Order("category_name ASC").
		Find(&categories).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kategori")
	}
	return helper.Success(c, "Daftar kategori berhasil diambil", dto.ToCategoryResponses(categories))
}

// 🟢 GET /api/a/categories - semua kategori termasuk non-aktif
func (ctrl *CategoryController) GetAllCategories(c *fiber.Ctx) error {
	var categories []model.CategoryModel
	if err := ctrl.DB.
		Order("category_name ASC").
		Find(&categories).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kategori")
	}
	return helper.Success(c, "Daftar kategori berhasil diambil", dto.ToCategoryResponses(categories))
}
