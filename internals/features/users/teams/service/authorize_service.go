// internals/features/users/teams/service/authorize_service.go
package service

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/users/teams/model"
)

// CanModifyCourse: predicate murni tanpa side effect.
// True hanya jika actor adalah owner kursus, atau punya team membership
// approved (belum terhapus) di bawah instructor pemilik kursus.
// Role admin TIDAK lolos dari sini - admin hanya punya kapabilitas approve/reject.
func CanModifyCourse(tx *gorm.DB, actorID, courseOwnerID uuid.UUID) (bool, error) {
	if actorID == uuid.Nil || courseOwnerID == uuid.Nil {
		return false, nil
	}
	if actorID == courseOwnerID {
		return true, nil
	}

	var cnt int64
	err := tx.Model(&model.TeamMembershipModel{}).
		Where(`
			team_membership_instructor_id = ?
			AND team_membership_user_id = ?
			AND team_membership_status = ?
		`, courseOwnerID, actorID, model.TeamMembershipStatusApproved).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// EnsureCanModifyCourse: versi gate untuk dipakai di awal transaksi mutasi.
// Fail fast 403 supaya tidak ada operasi yang "lolos" hanya karena read berhasil.
func EnsureCanModifyCourse(tx *gorm.DB, actorID, courseOwnerID uuid.UUID) error {
	ok, err := CanModifyCourse(tx, actorID, courseOwnerID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa hak akses")
	}
	if !ok {
		return fiber.NewError(fiber.StatusForbidden, "Anda tidak memiliki akses untuk mengubah konten kursus ini")
	}
	return nil
}
