package dto

import (
	"time"

	"github.com/google/uuid"

	"kursusku_backend/internals/features/users/teams/model"
)

type CreateTeamMembershipRequest struct {
	TeamMembershipUserID uuid.UUID `json:"team_membership_user_id" validate:"required"`
}

type ApproveTeamMembershipRequest struct {
	Approve bool `json:"approve"`
}

type TeamMembershipResponse struct {
	TeamMembershipID           uuid.UUID  `json:"team_membership_id"`
	TeamMembershipInstructorID uuid.UUID  `json:"team_membership_instructor_id"`
	TeamMembershipUserID       uuid.UUID  `json:"team_membership_user_id"`
	TeamMembershipStatus       string     `json:"team_membership_status"`
	TeamMembershipCreatedAt    time.Time  `json:"team_membership_created_at"`
	TeamMembershipDeletedAt    *time.Time `json:"team_membership_deleted_at,omitempty"`
}

func ToTeamMembershipResponse(m *model.TeamMembershipModel) TeamMembershipResponse {
	resp := TeamMembershipResponse{
		TeamMembershipID:           m.TeamMembershipID,
		TeamMembershipInstructorID: m.TeamMembershipInstructorID,
		TeamMembershipUserID:       m.TeamMembershipUserID,
		TeamMembershipStatus:       m.TeamMembershipStatus,
		TeamMembershipCreatedAt:    m.TeamMembershipCreatedAt,
	}
	if m.TeamMembershipDeletedAt.Valid {
		t := m.TeamMembershipDeletedAt.Time
		resp.TeamMembershipDeletedAt = &t
	}
	return resp
}

func ToTeamMembershipResponses(ms []model.TeamMembershipModel) []TeamMembershipResponse {
	out := make([]TeamMembershipResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToTeamMembershipResponse(&ms[i]))
	}
	return out
}
