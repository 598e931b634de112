package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/users/teams/dto"
	"kursusku_backend/internals/features/users/teams/model"
	helper "kursusku_backend/internals/helpers"
)

type TeamMembershipController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTeamMembershipController(db *gorm.DB) *TeamMembershipController {
	return &TeamMembershipController{DB: db, Validate: validator.New()}
}

// 🟢 POST /api/i/teams - ajukan anggota tim baru, status awal pending
func (ctrl *TeamMembershipController) CreateMembership(c *fiber.Ctx) error {
	instructorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateTeamMembershipRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.TeamMembershipUserID == instructorID {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak bisa menambahkan diri sendiri ke tim")
	}

	membership := &model.TeamMembershipModel{
		TeamMembershipInstructorID: instructorID,
		TeamMembershipUserID:       req.TeamMembershipUserID,
		TeamMembershipStatus:       model.TeamMembershipStatusPending,
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&model.TeamMembershipModel{}).
			Where("team_membership_instructor_id = ? AND team_membership_user_id = ?",
				instructorID, req.TeamMembershipUserID).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa keanggotaan")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "User sudah terdaftar di tim Anda")
		}
		if err := tx.Create(membership).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menambahkan anggota tim")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Anggota tim berhasil diajukan", dto.ToTeamMembershipResponse(membership))
}

// 🟡 PUT /api/i/teams/:id/approval - hanya instructor pemilik tim yang memutuskan
func (ctrl *TeamMembershipController) ApproveMembership(c *fiber.Ctx) error {
	instructorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	membershipID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID keanggotaan tidak valid")
	}

	var req dto.ApproveTeamMembershipRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}

	var membership model.TeamMembershipModel
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&membership, "team_membership_id = ?", membershipID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Keanggotaan tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil keanggotaan")
		}
		if membership.TeamMembershipInstructorID != instructorID {
			return fiber.NewError(fiber.StatusForbidden, "Hanya pemilik tim yang boleh memutuskan keanggotaan")
		}

		if req.Approve {
			membership.TeamMembershipStatus = model.TeamMembershipStatusApproved
		} else {
			membership.TeamMembershipStatus = model.TeamMembershipStatusRejected
		}
		if err := tx.Save(&membership).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan keanggotaan")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	msg := "Anggota tim ditolak"
	if req.Approve {
		msg = "Anggota tim disetujui"
	}
	return helper.Success(c, msg, dto.ToTeamMembershipResponse(&membership))
}

// 🟢 GET /api/i/teams - tim saya; ?as=member untuk keanggotaan saya di tim lain
func (ctrl *TeamMembershipController) GetMemberships(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := ctrl.DB.Model(&model.TeamMembershipModel{})
	if c.Query("as") == "member" {
		q = q.Where("team_membership_user_id = ?", userID)
	} else {
		q = q.Where("team_membership_instructor_id = ?", userID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("team_membership_status = ?", status)
	}

	var memberships []model.TeamMembershipModel
	if err := q.Order("team_membership_created_at ASC").Find(&memberships).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar tim")
	}
	return helper.Success(c, "Daftar tim berhasil diambil", dto.ToTeamMembershipResponses(memberships))
}

// 🔴 DELETE /api/i/teams/:id - pemilik tim atau anggotanya sendiri
func (ctrl *TeamMembershipController) RemoveMembership(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	membershipID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID keanggotaan tidak valid")
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var membership model.TeamMembershipModel
		if err := tx.First(&membership, "team_membership_id = ?", membershipID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Keanggotaan tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil keanggotaan")
		}
		if membership.TeamMembershipInstructorID != userID && membership.TeamMembershipUserID != userID {
			return fiber.NewError(fiber.StatusForbidden, "Anda tidak berhak menghapus keanggotaan ini")
		}
		if err := tx.Delete(&membership).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus keanggotaan")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Keanggotaan tim berhasil dihapus", nil)
}
