package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	helper "kursusku_backend/internals/helpers"
	"kursusku_backend/internals/features/courses/courses/model"
)

/* =========================================================
   CREATE
========================================================= */

type CreateCourseRequest struct {
	CourseTitle         string    `json:"course_title" validate:"required,max=255"`
	CourseDescription   *string   `json:"course_description" validate:"omitempty"`
	CourseLevel         string    `json:"course_level" validate:"required,oneof=beginner intermediate advanced"`
	CourseType          string    `json:"course_type" validate:"required,oneof=free paid"`
	CoursePrice         *float64  `json:"course_price" validate:"omitempty,gte=0"`
	CourseDiscountPrice *float64  `json:"course_discount_price" validate:"omitempty,gte=0"`
	CourseCategoryID    uuid.UUID `json:"course_category_id" validate:"required"`
	CourseMetaKeywords  []string  `json:"course_meta_keywords" validate:"omitempty,dive,max=64"`

	// Field lifecycle opsional: instructor hanya draft/publish,
	// admin boleh plus approval_status & is_active (divalidasi di service).
	CourseStatus         *string `json:"course_status" validate:"omitempty,oneof=draft pending publish"`
	CourseApprovalStatus *string `json:"course_approval_status" validate:"omitempty,oneof=approved rejected"`
	CourseIsActive       *bool   `json:"course_is_active"`
}

func (r *CreateCourseRequest) ToModel(ownerID uuid.UUID) *model.CourseModel {
	price := 0.0
	if r.CoursePrice != nil {
		price = *r.CoursePrice
	}

	var desc *string
	if r.CourseDescription != nil {
		d := strings.TrimSpace(*r.CourseDescription)
		if d != "" {
			desc = &d
		}
	}

	return &model.CourseModel{
		CourseTitle:         strings.TrimSpace(r.CourseTitle),
		CourseDescription:   desc,
		CourseLevel:         r.CourseLevel,
		CourseType:          r.CourseType,
		CoursePrice:         price,
		CourseDiscountPrice: r.CourseDiscountPrice,
		CourseCategoryID:    r.CourseCategoryID,
		CourseUserID:        ownerID,
		CourseMetaKeywords:  pq.StringArray(r.CourseMetaKeywords),
	}
}

/* =========================================================
   UPDATE (PATCH)
========================================================= */

type UpdateCourseRequest struct {
	CourseTitle         helper.UpdateField[string]    `json:"course_title"`
	CourseDescription   helper.UpdateField[string]    `json:"course_description"`
	CourseLevel         helper.UpdateField[string]    `json:"course_level"`
	CourseType          helper.UpdateField[string]    `json:"course_type"`
	CoursePrice         helper.UpdateField[float64]   `json:"course_price"`
	CourseDiscountPrice helper.UpdateField[float64]   `json:"course_discount_price"`
	CourseCategoryID    helper.UpdateField[uuid.UUID] `json:"course_category_id"`
	CourseMetaKeywords  helper.UpdateField[[]string]  `json:"course_meta_keywords"`

	CourseStatus         *string `json:"course_status" validate:"omitempty,oneof=draft pending publish"`
	CourseApprovalStatus *string `json:"course_approval_status" validate:"omitempty,oneof=approved rejected"`
	CourseIsActive       *bool   `json:"course_is_active"`
}

// ApplyToModel menerapkan field non-lifecycle ke model yang sudah di-load.
// Lifecycle dihitung terpisah lewat service.ApplyTransition.
func (r *UpdateCourseRequest) ApplyToModel(m *model.CourseModel) {
	if r.CourseTitle.ShouldUpdate() && !r.CourseTitle.IsNull() {
		m.CourseTitle = strings.TrimSpace(r.CourseTitle.Val())
	}
	if r.CourseDescription.ShouldUpdate() {
		if r.CourseDescription.IsNull() {
			m.CourseDescription = nil
		} else {
			d := strings.TrimSpace(r.CourseDescription.Val())
			m.CourseDescription = &d
		}
	}
	if r.CourseLevel.ShouldUpdate() && !r.CourseLevel.IsNull() {
		m.CourseLevel = r.CourseLevel.Val()
	}
	if r.CourseType.ShouldUpdate() && !r.CourseType.IsNull() {
		m.CourseType = r.CourseType.Val()
	}
	if r.CoursePrice.ShouldUpdate() && !r.CoursePrice.IsNull() {
		m.CoursePrice = r.CoursePrice.Val()
	}
	if r.CourseDiscountPrice.ShouldUpdate() {
		if r.CourseDiscountPrice.IsNull() {
			m.CourseDiscountPrice = nil
		} else {
			v := r.CourseDiscountPrice.Val()
			m.CourseDiscountPrice = &v
		}
	}
	if r.CourseCategoryID.ShouldUpdate() && !r.CourseCategoryID.IsNull() {
		m.CourseCategoryID = r.CourseCategoryID.Val()
	}
	if r.CourseMetaKeywords.ShouldUpdate() {
		if r.CourseMetaKeywords.IsNull() {
			m.CourseMetaKeywords = nil
		} else {
			m.CourseMetaKeywords = pq.StringArray(r.CourseMetaKeywords.Val())
		}
	}
}

/* =========================================================
   APPROVE / REJECT (admin)
========================================================= */

type ApproveCourseRequest struct {
	Approve bool `json:"approve"`
}

/* =========================================================
   RESPONSE
========================================================= */

type CourseResponse struct {
	CourseID             uuid.UUID  `json:"course_id"`
	CourseTitle          string     `json:"course_title"`
	CourseSlug           string     `json:"course_slug"`
	CourseDescription    *string    `json:"course_description,omitempty"`
	CourseLevel          string     `json:"course_level"`
	CourseType           string     `json:"course_type"`
	CoursePrice          float64    `json:"course_price"`
	CourseDiscountPrice  *float64   `json:"course_discount_price,omitempty"`
	CourseCategoryID     uuid.UUID  `json:"course_category_id"`
	CourseUserID         uuid.UUID  `json:"course_user_id"`
	CourseStatus         string     `json:"course_status"`
	CourseApprovalStatus *string    `json:"course_approval_status,omitempty"`
	CourseIsActive       bool       `json:"course_is_active"`
	CourseThumbnailURL   *string    `json:"course_thumbnail_url,omitempty"`
	CourseMetaKeywords   []string   `json:"course_meta_keywords,omitempty"`
	CourseCreatedAt      time.Time  `json:"course_created_at"`
	CourseUpdatedAt      time.Time  `json:"course_updated_at"`
	CourseDeletedAt      *time.Time `json:"course_deleted_at,omitempty"`
}

func ToCourseResponse(m *model.CourseModel) *CourseResponse {
	resp := &CourseResponse{
		CourseID:             m.CourseID,
		CourseTitle:          m.CourseTitle,
		CourseSlug:           m.CourseSlug,
		CourseDescription:    m.CourseDescription,
		CourseLevel:          m.CourseLevel,
		CourseType:           m.CourseType,
		CoursePrice:          m.CoursePrice,
		CourseDiscountPrice:  m.CourseDiscountPrice,
		CourseCategoryID:     m.CourseCategoryID,
		CourseUserID:         m.CourseUserID,
		CourseStatus:         m.CourseStatus,
		CourseApprovalStatus: m.CourseApprovalStatus,
		CourseIsActive:       m.CourseIsActive,
		CourseThumbnailURL:   m.CourseThumbnailURL,
		CourseMetaKeywords:   m.CourseMetaKeywords,
		CourseCreatedAt:      m.CourseCreatedAt,
		CourseUpdatedAt:      m.CourseUpdatedAt,
	}
	if m.CourseDeletedAt.Valid {
		t := m.CourseDeletedAt.Time
		resp.CourseDeletedAt = &t
	}
	return resp
}
