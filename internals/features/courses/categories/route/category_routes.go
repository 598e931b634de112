package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/courses/categories/controller"
)

func CategoryAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCategoryController(db)

	categories := api.Group("/categories")
	categories.Post("/", ctrl.CreateCategory)
	categories.Get("/", ctrl.GetAllCategories)
	categories.Patch("/:id", ctrl.UpdateCategory)
	categories.Delete("/:id", ctrl.SoftDeleteCategory)
}

func CategoryPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCategoryController(db)
	api.Get("/categories", ctrl.GetActiveCategories)
}
