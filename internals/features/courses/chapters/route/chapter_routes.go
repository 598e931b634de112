package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	chapterController "kursusku_backend/internals/features/courses/chapters/controller"
)

func ChapterInstructorRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := chapterController.NewChapterController(db)

	chapters := api.Group("/chapters")
	chapters.Post("/", ctrl.CreateChapter)
	chapters.Patch("/:id", ctrl.UpdateChapter)
	chapters.Delete("/:id", ctrl.SoftDeleteChapter)
	chapters.Post("/:id/restore", ctrl.RestoreChapter)

	api.Get("/courses/:courseId/chapters", ctrl.GetChaptersByCourse)
}
