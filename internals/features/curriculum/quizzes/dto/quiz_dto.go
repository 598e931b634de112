package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"kursusku_backend/internals/features/curriculum/quizzes/model"
	helper "kursusku_backend/internals/helpers"
)

type CreateQuizRequest struct {
	QuizChapterID        uuid.UUID              `json:"quiz_chapter_id" validate:"required"`
	QuizTitle            string                 `json:"quiz_title" validate:"required,max=255"`
	QuizTimeLimitMinutes int                    `json:"quiz_time_limit_minutes" validate:"gte=0"`
	QuizPassThreshold    int                    `json:"quiz_pass_threshold" validate:"gte=0,lte=100"`
	QuizTotalPoints      float64                `json:"quiz_total_points" validate:"gte=0"`
	QuizSettings         map[string]interface{} `json:"quiz_settings"`
	QuizIsActive         *bool                  `json:"quiz_is_active"`
}

func (r *CreateQuizRequest) ToModel(order int) *model.QuizModel {
	isActive := true
	if r.QuizIsActive != nil {
		isActive = *r.QuizIsActive
	}
	return &model.QuizModel{
		QuizChapterID:        r.QuizChapterID,
		QuizTitle:            strings.TrimSpace(r.QuizTitle),
		QuizChapterOrder:     order,
		QuizTimeLimitMinutes: r.QuizTimeLimitMinutes,
		QuizPassThreshold:    r.QuizPassThreshold,
		QuizTotalPoints:      r.QuizTotalPoints,
		QuizSettings:         datatypes.JSONMap(r.QuizSettings),
		QuizIsActive:         isActive,
	}
}

type UpdateQuizRequest struct {
	QuizTitle            helper.UpdateField[string]                 `json:"quiz_title"`
	QuizTimeLimitMinutes helper.UpdateField[int]                    `json:"quiz_time_limit_minutes"`
	QuizPassThreshold    helper.UpdateField[int]                    `json:"quiz_pass_threshold"`
	QuizTotalPoints      helper.UpdateField[float64]                `json:"quiz_total_points"`
	QuizSettings         helper.UpdateField[map[string]interface{}] `json:"quiz_settings"`
	QuizIsActive         helper.UpdateField[bool]                   `json:"quiz_is_active"`
}

func (r *UpdateQuizRequest) ApplyToModel(m *model.QuizModel) {
	if r.QuizTitle.ShouldUpdate() && !r.QuizTitle.IsNull() {
		m.QuizTitle = strings.TrimSpace(r.QuizTitle.Val())
	}
	if r.QuizTimeLimitMinutes.ShouldUpdate() && !r.QuizTimeLimitMinutes.IsNull() {
		m.QuizTimeLimitMinutes = r.QuizTimeLimitMinutes.Val()
	}
	if r.QuizPassThreshold.ShouldUpdate() && !r.QuizPassThreshold.IsNull() {
		m.QuizPassThreshold = r.QuizPassThreshold.Val()
	}
	if r.QuizTotalPoints.ShouldUpdate() && !r.QuizTotalPoints.IsNull() {
		m.QuizTotalPoints = r.QuizTotalPoints.Val()
	}
	if r.QuizSettings.ShouldUpdate() {
		if r.QuizSettings.IsNull() {
			m.QuizSettings = nil
		} else {
			m.QuizSettings = datatypes.JSONMap(r.QuizSettings.Val())
		}
	}
	if r.QuizIsActive.ShouldUpdate() && !r.QuizIsActive.IsNull() {
		m.QuizIsActive = r.QuizIsActive.Val()
	}
}

type QuizResponse struct {
	QuizID               uuid.UUID              `json:"quiz_id"`
	QuizChapterID        uuid.UUID              `json:"quiz_chapter_id"`
	QuizTitle            string                 `json:"quiz_title"`
	QuizChapterOrder     int                    `json:"quiz_chapter_order"`
	QuizTimeLimitMinutes int                    `json:"quiz_time_limit_minutes"`
	QuizPassThreshold    int                    `json:"quiz_pass_threshold"`
	QuizTotalPoints      float64                `json:"quiz_total_points"`
	QuizSettings         map[string]interface{} `json:"quiz_settings,omitempty"`
	QuizIsActive         bool                   `json:"quiz_is_active"`
	QuizCreatedAt        time.Time              `json:"quiz_created_at"`
	QuizDeletedAt        *time.Time             `json:"quiz_deleted_at,omitempty"`
}

func ToQuizResponse(m *model.QuizModel) *QuizResponse {
	resp := &QuizResponse{
		QuizID:               m.QuizID,
		QuizChapterID:        m.QuizChapterID,
		QuizTitle:            m.QuizTitle,
		QuizChapterOrder:     m.QuizChapterOrder,
		QuizTimeLimitMinutes: m.QuizTimeLimitMinutes,
		QuizPassThreshold:    m.QuizPassThreshold,
		QuizTotalPoints:      m.QuizTotalPoints,
		QuizSettings:         map[string]interface{}(m.QuizSettings),
		QuizIsActive:         m.QuizIsActive,
		QuizCreatedAt:        m.QuizCreatedAt,
	}
	if m.QuizDeletedAt.Valid {
		t := m.QuizDeletedAt.Time
		resp.QuizDeletedAt = &t
	}
	return resp
}
