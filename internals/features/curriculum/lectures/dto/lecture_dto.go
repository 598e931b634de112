package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"kursusku_backend/internals/features/curriculum/lectures/model"
	helper "kursusku_backend/internals/helpers"
)

type CreateLectureRequest struct {
	LectureChapterID       uuid.UUID `json:"lecture_chapter_id" validate:"required"`
	LectureTitle           string    `json:"lecture_title" validate:"required,max=255"`
	LectureVideoURL        *string   `json:"lecture_video_url" validate:"omitempty,url"`
	LectureDurationSeconds int       `json:"lecture_duration_seconds" validate:"gte=0"`
	LectureIsPreview       *bool     `json:"lecture_is_preview"`
	LectureIsActive        *bool     `json:"lecture_is_active"`
}

// ToModel: chapter_order diisi controller (MAX lintas jenis + 1).
func (r *CreateLectureRequest) ToModel(order int) *model.LectureModel {
	isActive := true
	if r.LectureIsActive != nil {
		isActive = *r.LectureIsActive
	}
	isPreview := false
	if r.LectureIsPreview != nil {
		isPreview = *r.LectureIsPreview
	}
	return &model.LectureModel{
		LectureChapterID:       r.LectureChapterID,
		LectureTitle:           strings.TrimSpace(r.LectureTitle),
		LectureChapterOrder:    order,
		LectureVideoURL:        r.LectureVideoURL,
		LectureDurationSeconds: r.LectureDurationSeconds,
		LectureIsPreview:       isPreview,
		LectureIsActive:        isActive,
	}
}

type UpdateLectureRequest struct {
	LectureTitle           helper.UpdateField[string] `json:"lecture_title"`
	LectureVideoURL        helper.UpdateField[string] `json:"lecture_video_url"`
	LectureDurationSeconds helper.UpdateField[int]    `json:"lecture_duration_seconds"`
	LectureIsPreview       helper.UpdateField[bool]   `json:"lecture_is_preview"`
	LectureIsActive        helper.UpdateField[bool]   `json:"lecture_is_active"`
}

func (r *UpdateLectureRequest) ApplyToModel(m *model.LectureModel) {
	if r.LectureTitle.ShouldUpdate() && !r.LectureTitle.IsNull() {
		m.LectureTitle = strings.TrimSpace(r.LectureTitle.Val())
	}
	if r.LectureVideoURL.ShouldUpdate() {
		if r.LectureVideoURL.IsNull() {
			m.LectureVideoURL = nil
		} else {
			v := r.LectureVideoURL.Val()
			m.LectureVideoURL = &v
		}
	}
	if r.LectureDurationSeconds.ShouldUpdate() && !r.LectureDurationSeconds.IsNull() {
		m.LectureDurationSeconds = r.LectureDurationSeconds.Val()
	}
	if r.LectureIsPreview.ShouldUpdate() && !r.LectureIsPreview.IsNull() {
		m.LectureIsPreview = r.LectureIsPreview.Val()
	}
	if r.LectureIsActive.ShouldUpdate() && !r.LectureIsActive.IsNull() {
		m.LectureIsActive = r.LectureIsActive.Val()
	}
}

type LectureResponse struct {
	LectureID              uuid.UUID  `json:"lecture_id"`
	LectureChapterID       uuid.UUID  `json:"lecture_chapter_id"`
	LectureTitle           string     `json:"lecture_title"`
	LectureChapterOrder    int        `json:"lecture_chapter_order"`
	LectureVideoURL        *string    `json:"lecture_video_url,omitempty"`
	LectureDurationSeconds int        `json:"lecture_duration_seconds"`
	LectureDurationLabel   string     `json:"lecture_duration_label"`
	LectureIsPreview       bool       `json:"lecture_is_preview"`
	LectureIsActive        bool       `json:"lecture_is_active"`
	LectureCreatedAt       time.Time  `json:"lecture_created_at"`
	LectureDeletedAt       *time.Time `json:"lecture_deleted_at,omitempty"`
}

func ToLectureResponse(m *model.LectureModel) *LectureResponse {
	resp := &LectureResponse{
		LectureID:              m.LectureID,
		LectureChapterID:       m.LectureChapterID,
		LectureTitle:           m.LectureTitle,
		LectureChapterOrder:    m.LectureChapterOrder,
		LectureVideoURL:        m.LectureVideoURL,
		LectureDurationSeconds: m.LectureDurationSeconds,
		LectureDurationLabel:   m.EntryDurationLabel(),
		LectureIsPreview:       m.LectureIsPreview,
		LectureIsActive:        m.LectureIsActive,
		LectureCreatedAt:       m.LectureCreatedAt,
	}
	if m.LectureDeletedAt.Valid {
		t := m.LectureDeletedAt.Time
		resp.LectureDeletedAt = &t
	}
	return resp
}
