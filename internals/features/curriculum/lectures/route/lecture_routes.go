package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/curriculum/lectures/controller"
)

func LectureInstructorRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLectureController(db)

	lectures := api.Group("/lectures")
	lectures.Post("/", ctrl.CreateLecture)
	lectures.Patch("/:id", ctrl.UpdateLecture)
	lectures.Delete("/:id", ctrl.SoftDeleteLecture)
	lectures.Post("/:id/restore", ctrl.RestoreLecture)
}
