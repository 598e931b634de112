package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	chapterService "kursusku_backend/internals/features/courses/chapters/service"
	"kursusku_backend/internals/features/curriculum/assignments/dto"
	"kursusku_backend/internals/features/curriculum/assignments/model"
	itemService "kursusku_backend/internals/features/curriculum/items/service"
	teamService "kursusku_backend/internals/features/users/teams/service"
	helper "kursusku_backend/internals/helpers"
)

type AssignmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAssignmentController(db *gorm.DB) *AssignmentController {
	return &AssignmentController{DB: db, Validate: validator.New()}
}

// 🟢 POST /api/i/assignments
func (ctrl *AssignmentController) CreateAssignment(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var assignment *model.AssignmentModel
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		own, err := chapterService.ResolveOwnership(tx, req.AssignmentChapterID)
		if err != nil {
			return err
		}
		if err := teamService.EnsureCanModifyCourse(tx, userID, own.CourseOwnerID); err != nil {
			return err
		}

		order, err := itemService.NextOrder(tx, req.AssignmentChapterID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung urutan item")
		}
		assignment = req.ToModel(order)
		if err := tx.Create(assignment).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat assignment")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Assignment berhasil dibuat", dto.ToAssignmentResponse(assignment))
}

// 🟡 PATCH /api/i/assignments/:id
func (ctrl *AssignmentController) UpdateAssignment(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	assignmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID assignment tidak valid")
	}

	var req dto.UpdateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}

	var assignment model.AssignmentModel
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := ctrl.loadAssignmentWithGate(tx, assignmentID, userID, &assignment); err != nil {
			return err
		}

		req.ApplyToModel(&assignment)
		if err := tx.Save(&assignment).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan assignment")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Assignment berhasil diperbarui", dto.ToAssignmentResponse(&assignment))
}

// 🔴 DELETE /api/i/assignments/:id
func (ctrl *AssignmentController) SoftDeleteAssignment(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	assignmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID assignment tidak valid")
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var assignment model.AssignmentModel
		if err := ctrl.loadAssignmentWithGate(tx, assignmentID, userID, &assignment); err != nil {
			return err
		}
		if err := tx.Delete(&assignment).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus assignment")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Assignment berhasil dihapus", nil)
}

// ♻️ POST /api/i/assignments/:id/restore
func (ctrl *AssignmentController) RestoreAssignment(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	assignmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID assignment tidak valid")
	}

	var assignment model.AssignmentModel
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().First(&assignment, "assignment_id = ?", assignmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Assignment tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil assignment")
		}
		if !assignment.AssignmentDeletedAt.Valid {
			return fiber.NewError(fiber.StatusBadRequest, "Assignment belum dihapus")
		}

		// chapter terhapus tidak memblokir restore item di dalamnya
		own, err := chapterService.ResolveOwnershipAny(tx, assignment.AssignmentChapterID)
		if err != nil {
			return err
		}
		if err := teamService.EnsureCanModifyCourse(tx, userID, own.CourseOwnerID); err != nil {
			return err
		}

		if err := tx.Unscoped().Model(&assignment).Update("assignment_deleted_at", nil).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal restore assignment")
		}
		assignment.AssignmentDeletedAt = gorm.DeletedAt{}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Assignment berhasil direstore", dto.ToAssignmentResponse(&assignment))
}

func (ctrl *AssignmentController) loadAssignmentWithGate(tx *gorm.DB, assignmentID, userID uuid.UUID, out *model.AssignmentModel) error {
	if err := tx.First(out, "assignment_id = ?", assignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Assignment tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil assignment")
	}

	own, err := chapterService.ResolveOwnership(tx, out.AssignmentChapterID)
	if err != nil {
		return err
	}
	return teamService.EnsureCanModifyCourse(tx, userID, own.CourseOwnerID)
}
