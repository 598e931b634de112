package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/curriculum/items/controller"
	"kursusku_backend/internals/middlewares"
)

// CurriculumInstructorRoutes: daftar gabungan + reorder per chapter.
func CurriculumInstructorRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCurriculumController(db)

	chapter := api.Group("/chapters/:id/curriculum")
	chapter.Get("/", ctrl.GetChapterCurriculum)
	chapter.Put("/reorder", middlewares.ReorderRateLimiter(), ctrl.ReorderCurriculum)
}

// CurriculumPublicRoutes: kurikulum read-only untuk kursus live.
func CurriculumPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCurriculumController(db)
	api.Get("/chapters/:id/curriculum", ctrl.GetPublicChapterCurriculum)
}
