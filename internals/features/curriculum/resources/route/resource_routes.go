package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/curriculum/resources/controller"
	"kursusku_backend/internals/helpers/filestore"
)

func ResourceInstructorRoutes(api fiber.Router, db *gorm.DB, files filestore.FileStore) {
	ctrl := controller.NewResourceController(db, files)

	item := api.Group("/curriculum/:kind/:itemId/resources")
	item.Get("/", ctrl.GetItemResources)
	item.Put("/", ctrl.SyncItemResources)
}
