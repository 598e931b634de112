package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"kursusku_backend/internals/features/courses/chapters/model"
	helper "kursusku_backend/internals/helpers"
)

type CreateChapterRequest struct {
	ChapterCourseID uuid.UUID `json:"chapter_course_id" validate:"required"`
	ChapterTitle    string    `json:"chapter_title" validate:"required,max=255"`
	ChapterIsActive *bool     `json:"chapter_is_active"`
}

func (r *CreateChapterRequest) ToModel() *model.ChapterModel {
	isActive := true
	if r.ChapterIsActive != nil {
		isActive = *r.ChapterIsActive
	}
	return &model.ChapterModel{
		ChapterCourseID: r.ChapterCourseID,
		ChapterTitle:    strings.TrimSpace(r.ChapterTitle),
		ChapterIsActive: isActive,
	}
}

type UpdateChapterRequest struct {
	ChapterTitle    helper.UpdateField[string] `json:"chapter_title"`
	ChapterIsActive helper.UpdateField[bool]   `json:"chapter_is_active"`
}

func (r *UpdateChapterRequest) ApplyToModel(m *model.ChapterModel) {
	if r.ChapterTitle.ShouldUpdate() && !r.ChapterTitle.IsNull() {
		m.ChapterTitle = strings.TrimSpace(r.ChapterTitle.Val())
	}
	if r.ChapterIsActive.ShouldUpdate() && !r.ChapterIsActive.IsNull() {
		m.ChapterIsActive = r.ChapterIsActive.Val()
	}
}

type ChapterResponse struct {
	ChapterID        uuid.UUID  `json:"chapter_id"`
	ChapterCourseID  uuid.UUID  `json:"chapter_course_id"`
	ChapterTitle     string     `json:"chapter_title"`
	ChapterIsActive  bool       `json:"chapter_is_active"`
	ChapterCreatedAt time.Time  `json:"chapter_created_at"`
	ChapterDeletedAt *time.Time `json:"chapter_deleted_at,omitempty"`
}

func ToChapterResponse(m *model.ChapterModel) *ChapterResponse {
	resp := &ChapterResponse{
		ChapterID:        m.ChapterID,
		ChapterCourseID:  m.ChapterCourseID,
		ChapterTitle:     m.ChapterTitle,
		ChapterIsActive:  m.ChapterIsActive,
		ChapterCreatedAt: m.ChapterCreatedAt,
	}
	if m.ChapterDeletedAt.Valid {
		t := m.ChapterDeletedAt.Time
		resp.ChapterDeletedAt = &t
	}
	return resp
}
