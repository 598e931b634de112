package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	chapterService "kursusku_backend/internals/features/courses/chapters/service"
	itemService "kursusku_backend/internals/features/curriculum/items/service"
	"kursusku_backend/internals/features/curriculum/resources/dto"
	"kursusku_backend/internals/features/curriculum/resources/model"
	"kursusku_backend/internals/features/curriculum/resources/service"
	teamService "kursusku_backend/internals/features/users/teams/service"
	helper "kursusku_backend/internals/helpers"
	"kursusku_backend/internals/helpers/filestore"
)

type ResourceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Files    filestore.FileStore
}

func NewResourceController(db *gorm.DB, files filestore.FileStore) *ResourceController {
	return &ResourceController{DB: db, Validate: validator.New(), Files: files}
}

// 🟡 PUT /api/i/curriculum/:kind/:itemId/resources
// Sinkronkan resource item dengan daftar yang dikirim (replace-or-append,
// baris yang hilang dihapus). File lokal yang tergeser dibersihkan setelah commit.
func (ctrl *ResourceController) SyncItemResources(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	kind := c.Params("kind")
	if !itemService.IsValidKind(kind) {
		return helper.Error(c, fiber.StatusBadRequest, "Jenis item tidak dikenal")
	}
	itemID, err := uuid.Parse(c.Params("itemId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID item tidak valid")
	}

	var req dto.SyncResourcesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	specs := make([]service.ResourceSpec, 0, len(req.Resources))
	for _, r := range req.Resources {
		specs = append(specs, service.ResourceSpec{
			Type:  r.ResourceType,
			Title: r.ResourceTitle,
			Value: r.ResourceValue,
		})
	}

	var synced []model.ResourceModel
	var superseded []string
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		chapterID, err := service.ResolveItemChapter(tx, kind, itemID)
		if err != nil {
			return err
		}
		own, err := chapterService.ResolveOwnership(tx, chapterID)
		if err != nil {
			return err
		}
		if err := teamService.EnsureCanModifyCourse(tx, userID, own.CourseOwnerID); err != nil {
			return err
		}

		synced, superseded, err = service.SyncResources(tx, kind, itemID, specs)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyinkronkan resource")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	for _, p := range superseded {
		_ = ctrl.Files.Delete(p)
	}

	return helper.Success(c, "Resource berhasil disinkronkan", dto.ToResourceResponses(synced))
}

// 🟢 GET /api/i/curriculum/:kind/:itemId/resources
func (ctrl *ResourceController) GetItemResources(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	kind := c.Params("kind")
	if !itemService.IsValidKind(kind) {
		return helper.Error(c, fiber.StatusBadRequest, "Jenis item tidak dikenal")
	}
	itemID, err := uuid.Parse(c.Params("itemId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID item tidak valid")
	}

	chapterID, err := service.ResolveItemChapter(ctrl.DB, kind, itemID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	own, err := chapterService.ResolveOwnership(ctrl.DB, chapterID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := teamService.EnsureCanModifyCourse(ctrl.DB, userID, own.CourseOwnerID); err != nil {
		return helper.FromFiberError(c, err)
	}

	resources, err := service.ListResources(ctrl.DB, kind, itemID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil resource")
	}
	return helper.Success(c, "Resource berhasil diambil", dto.ToResourceResponses(resources))
}
