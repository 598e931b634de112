package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseController "kursusku_backend/internals/features/courses/courses/controller"
)

// CRUD kursus untuk instructor (plus anggota tim yang lolos gate di controller)
func CourseInstructorRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := courseController.NewCourseController(db)

	courses := api.Group("/courses")
	courses.Post("/", ctrl.CreateCourse)
	courses.Get("/", ctrl.GetMyCourses)
	courses.Get("/:id", ctrl.GetCourseByID)
	courses.Patch("/:id", ctrl.UpdateCourse)
	courses.Put("/:id/thumbnail", ctrl.UploadThumbnail)
	courses.Delete("/:id", ctrl.SoftDeleteCourse)
	courses.Post("/:id/restore", ctrl.RestoreCourse)
}

// Approve/reject + listing penuh untuk admin
func CourseAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := courseController.NewCourseController(db)

	courses := api.Group("/courses")
	courses.Get("/", ctrl.GetAllCourses)
	courses.Get("/:id", ctrl.GetCourseByID)
	courses.Patch("/:id", ctrl.UpdateCourse)
	courses.Put("/:id/approval", ctrl.ApproveCourse)
}

// Read-only untuk publik (hanya kursus aktif)
func CoursePublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := courseController.NewCourseController(db)

	courses := api.Group("/courses")
	courses.Get("/", ctrl.GetActiveCourses)
	courses.Get("/:slug", ctrl.GetCourseBySlug)
}
