package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"kursusku_backend/internals/features/curriculum/assignments/model"
	helper "kursusku_backend/internals/helpers"
)

type CreateAssignmentRequest struct {
	AssignmentChapterID    uuid.UUID  `json:"assignment_chapter_id" validate:"required"`
	AssignmentTitle        string     `json:"assignment_title" validate:"required,max=255"`
	AssignmentInstructions *string    `json:"assignment_instructions"`
	AssignmentDueDate      *time.Time `json:"assignment_due_date"`
	AssignmentIsActive     *bool      `json:"assignment_is_active"`
}

func (r *CreateAssignmentRequest) ToModel(order int) *model.AssignmentModel {
	isActive := true
	if r.AssignmentIsActive != nil {
		isActive = *r.AssignmentIsActive
	}
	return &model.AssignmentModel{
		AssignmentChapterID:    r.AssignmentChapterID,
		AssignmentTitle:        strings.TrimSpace(r.AssignmentTitle),
		AssignmentChapterOrder: order,
		AssignmentInstructions: r.AssignmentInstructions,
		AssignmentDueDate:      r.AssignmentDueDate,
		AssignmentIsActive:     isActive,
	}
}

type UpdateAssignmentRequest struct {
	AssignmentTitle        helper.UpdateField[string]    `json:"assignment_title"`
	AssignmentInstructions helper.UpdateField[string]    `json:"assignment_instructions"`
	AssignmentDueDate      helper.UpdateField[time.Time] `json:"assignment_due_date"`
	AssignmentIsActive     helper.UpdateField[bool]      `json:"assignment_is_active"`
}

func (r *UpdateAssignmentRequest) ApplyToModel(m *model.AssignmentModel) {
	if r.AssignmentTitle.ShouldUpdate() && !r.AssignmentTitle.IsNull() {
		m.AssignmentTitle = strings.TrimSpace(r.AssignmentTitle.Val())
	}
	if r.AssignmentInstructions.ShouldUpdate() {
		if r.AssignmentInstructions.IsNull() {
			m.AssignmentInstructions = nil
		} else {
			v := r.AssignmentInstructions.Val()
			m.AssignmentInstructions = &v
		}
	}
	if r.AssignmentDueDate.ShouldUpdate() {
		if r.AssignmentDueDate.IsNull() {
			m.AssignmentDueDate = nil
		} else {
			v := r.AssignmentDueDate.Val()
			m.AssignmentDueDate = &v
		}
	}
	if r.AssignmentIsActive.ShouldUpdate() && !r.AssignmentIsActive.IsNull() {
		m.AssignmentIsActive = r.AssignmentIsActive.Val()
	}
}

type AssignmentResponse struct {
	AssignmentID           uuid.UUID  `json:"assignment_id"`
	AssignmentChapterID    uuid.UUID  `json:"assignment_chapter_id"`
	AssignmentTitle        string     `json:"assignment_title"`
	AssignmentChapterOrder int        `json:"assignment_chapter_order"`
	AssignmentInstructions *string    `json:"assignment_instructions,omitempty"`
	AssignmentDueDate      *time.Time `json:"assignment_due_date,omitempty"`
	AssignmentIsActive     bool       `json:"assignment_is_active"`
	AssignmentCreatedAt    time.Time  `json:"assignment_created_at"`
	AssignmentDeletedAt    *time.Time `json:"assignment_deleted_at,omitempty"`
}

func ToAssignmentResponse(m *model.AssignmentModel) *AssignmentResponse {
	resp := &AssignmentResponse{
		AssignmentID:           m.AssignmentID,
		AssignmentChapterID:    m.AssignmentChapterID,
		AssignmentTitle:        m.AssignmentTitle,
		AssignmentChapterOrder: m.AssignmentChapterOrder,
		AssignmentInstructions: m.AssignmentInstructions,
		AssignmentDueDate:      m.AssignmentDueDate,
		AssignmentIsActive:     m.AssignmentIsActive,
		AssignmentCreatedAt:    m.AssignmentCreatedAt,
	}
	if m.AssignmentDeletedAt.Valid {
		t := m.AssignmentDeletedAt.Time
		resp.AssignmentDeletedAt = &t
	}
	return resp
}
