package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/curriculum/assignments/controller"
)

func AssignmentInstructorRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAssignmentController(db)

	assignments := api.Group("/assignments")
	assignments.Post("/", ctrl.CreateAssignment)
	assignments.Patch("/:id", ctrl.UpdateAssignment)
	assignments.Delete("/:id", ctrl.SoftDeleteAssignment)
	assignments.Post("/:id/restore", ctrl.RestoreAssignment)
}
