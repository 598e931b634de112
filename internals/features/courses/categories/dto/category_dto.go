package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"kursusku_backend/internals/features/courses/categories/model"
	helper "kursusku_backend/internals/helpers"
)

type CreateCategoryRequest struct {
	CategoryName     string     `json:"category_name" validate:"required,max=160"`
	CategoryParentID *uuid.UUID `json:"category_parent_id"`
	CategoryIsActive *bool      `json:"category_is_active"`
}

func (r *CreateCategoryRequest) ToModel() *model.CategoryModel {
	isActive := true
	if r.CategoryIsActive != nil {
		isActive = *r.CategoryIsActive
	}
	return &model.CategoryModel{
		CategoryName:     strings.TrimSpace(r.CategoryName),
		CategoryParentID: r.CategoryParentID,
		CategoryIsActive: isActive,
	}
}

type UpdateCategoryRequest struct {
	CategoryName     helper.UpdateField[string] `json:"category_name"`
	CategoryIsActive helper.UpdateField[bool]   `json:"category_is_active"`
}

func (r *UpdateCategoryRequest) ApplyToModel(m *model.CategoryModel) {
	if r.CategoryName.ShouldUpdate() && !r.CategoryName.IsNull() {
		m.CategoryName = strings.TrimSpace(r.CategoryName.Val())
	}
	if r.CategoryIsActive.ShouldUpdate() && !r.CategoryIsActive.IsNull() {
		m.CategoryIsActive = r.CategoryIsActive.Val()
	}
}

type CategoryResponse struct {
	CategoryID        uuid.UUID  `json:"category_id"`
	CategoryName      string     `json:"category_name"`
	CategorySlug      string     `json:"category_slug"`
	CategoryParentID  *uuid.UUID `json:"category_parent_id,omitempty"`
	CategoryIsActive  bool       `json:"category_is_active"`
	CategoryCreatedAt time.Time  `json:"category_created_at"`
}

func ToCategoryResponse(m *model.CategoryModel) CategoryResponse {
	return CategoryResponse{
		CategoryID:        m.CategoryID,
		CategoryName:      m.CategoryName,
		CategorySlug:      m.CategorySlug,
		CategoryParentID:  m.CategoryParentID,
		CategoryIsActive:  m.CategoryIsActive,
		CategoryCreatedAt: m.CategoryCreatedAt,
	}
}

func ToCategoryResponses(ms []model.CategoryModel) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToCategoryResponse(&ms[i]))
	}
	return out
}
