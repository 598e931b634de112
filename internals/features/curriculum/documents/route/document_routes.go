package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/curriculum/documents/controller"
	"kursusku_backend/internals/helpers/filestore"
)

func DocumentInstructorRoutes(api fiber.Router, db *gorm.DB, files filestore.FileStore) {
	ctrl := controller.NewDocumentController(db, files)

	documents := api.Group("/documents")
	documents.Post("/", ctrl.CreateDocument)
	documents.Patch("/:id", ctrl.UpdateDocument)
	documents.Put("/:id/file", ctrl.UploadDocumentFile)
	documents.Delete("/:id", ctrl.SoftDeleteDocument)
	documents.Post("/:id/restore", ctrl.RestoreDocument)
}
