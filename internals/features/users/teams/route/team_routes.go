package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/users/teams/controller"
)

func TeamInstructorRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTeamMembershipController(db)

	teams := api.Group("/teams")
	teams.Post("/", ctrl.CreateMembership)
	teams.Get("/", ctrl.GetMemberships)
	teams.Put("/:id/approval", ctrl.ApproveMembership)
	teams.Delete("/:id", ctrl.RemoveMembership)
}
