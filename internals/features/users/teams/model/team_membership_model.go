package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status delegasi tim instruktur
const (
	TeamMembershipStatusPending  = "pending"
	TeamMembershipStatusApproved = "approved"
	TeamMembershipStatusRejected = "rejected"
)

// TeamMembershipModel: delegasi edit kursus dari seorang instructor ke user lain.
// Hanya status approved yang memberi hak modifikasi.
type TeamMembershipModel struct {
	TeamMembershipID           uuid.UUID `gorm:"column:team_membership_id;type:uuid;primaryKey" json:"team_membership_id"`
	TeamMembershipInstructorID uuid.UUID `gorm:"column:team_membership_instructor_id;type:uuid;not null;index" json:"team_membership_instructor_id"`
	TeamMembershipUserID       uuid.UUID `gorm:"column:team_membership_user_id;type:uuid;not null;index" json:"team_membership_user_id"`
	TeamMembershipStatus       string    `gorm:"column:team_membership_status;type:varchar(16);not null;default:pending" json:"team_membership_status"`

	TeamMembershipCreatedAt time.Time      `gorm:"column:team_membership_created_at;autoCreateTime" json:"team_membership_created_at"`
	TeamMembershipUpdatedAt time.Time      `gorm:"column:team_membership_updated_at;autoUpdateTime" json:"team_membership_updated_at"`
	TeamMembershipDeletedAt gorm.DeletedAt `gorm:"column:team_membership_deleted_at;index" json:"-"`
}

func (TeamMembershipModel) TableName() string {
	return "team_memberships"
}

func (m *TeamMembershipModel) BeforeCreate(tx *gorm.DB) error {
	if m.TeamMembershipID == uuid.Nil {
		m.TeamMembershipID = uuid.New()
	}
	return nil
}
