package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/constants"
	categoryRoute "kursusku_backend/internals/features/courses/categories/route"
	chapterRoute "kursusku_backend/internals/features/courses/chapters/route"
	courseRoute "kursusku_backend/internals/features/courses/courses/route"
	assignmentRoute "kursusku_backend/internals/features/curriculum/assignments/route"
	documentRoute "kursusku_backend/internals/features/curriculum/documents/route"
	itemRoute "kursusku_backend/internals/features/curriculum/items/route"
	lectureRoute "kursusku_backend/internals/features/curriculum/lectures/route"
	questionRoute "kursusku_backend/internals/features/curriculum/questions/route"
	quizRoute "kursusku_backend/internals/features/curriculum/quizzes/route"
	resourceRoute "kursusku_backend/internals/features/curriculum/resources/route"
	teamRoute "kursusku_backend/internals/features/users/teams/route"
	"kursusku_backend/internals/helpers/filestore"
	"kursusku_backend/internals/middlewares/auth"
)

// SetupRoutes memetakan tiga permukaan API:
//
//	/api/public - read-only, tanpa token, hanya konten yang live
//	/api/i      - instructor dan admin (gate konten per kursus ada di controller)
//	/api/a      - khusus admin (approval, kategori, listing penuh)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	files := filestore.NewDiskFileStore()

	api := app.Group("/api")

	public := api.Group("/public")
	courseRoute.CoursePublicRoutes(public, db)
	categoryRoute.CategoryPublicRoutes(public, db)
	itemRoute.CurriculumPublicRoutes(public, db)

	instructor := api.Group("/i",
		auth.AuthMiddleware(),
		auth.OnlyRolesSlice(constants.RoleErrorInstructor("manajemen kursus"), constants.InstructorAndAbove),
	)
	courseRoute.CourseInstructorRoutes(instructor, db)
	chapterRoute.ChapterInstructorRoutes(instructor, db)
	lectureRoute.LectureInstructorRoutes(instructor, db)
	quizRoute.QuizInstructorRoutes(instructor, db)
	assignmentRoute.AssignmentInstructorRoutes(instructor, db)
	documentRoute.DocumentInstructorRoutes(instructor, db, files)
	itemRoute.CurriculumInstructorRoutes(instructor, db)
	resourceRoute.ResourceInstructorRoutes(instructor, db, files)
	questionRoute.QuestionInstructorRoutes(instructor, db)
	teamRoute.TeamInstructorRoutes(instructor, db)

	admin := api.Group("/a",
		auth.AuthMiddleware(),
		auth.OnlyRolesSlice(constants.RoleErrorAdmin("administrasi kursus"), constants.AdminOnly),
	)
	courseRoute.CourseAdminRoutes(admin, db)
	categoryRoute.CategoryAdminRoutes(admin, db)
}
