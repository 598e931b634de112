package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Status kursus
const (
	CourseStatusDraft   = "draft"
	CourseStatusPending = "pending"
	CourseStatusPublish = "publish"
)

// Approval status (nullable di DB; nil = belum pernah direview)
const (
	CourseApprovalApproved = "approved"
	CourseApprovalRejected = "rejected"
)

// Tipe kursus
const (
	CourseTypeFree = "free"
	CourseTypePaid = "paid"
)

type CourseModel struct {
	CourseID          uuid.UUID `gorm:"column:course_id;type:uuid;primaryKey" json:"course_id"`
	CourseTitle       string    `gorm:"column:course_title;type:varchar(255);not null" json:"course_title"`
	CourseSlug        string    `gorm:"column:course_slug;type:varchar(160);not null;index" json:"course_slug"`
	CourseDescription *string   `gorm:"column:course_description;type:text" json:"course_description,omitempty"`
	CourseLevel       string    `gorm:"column:course_level;type:varchar(32);not null;default:beginner" json:"course_level"`

	CourseUserID     uuid.UUID `gorm:"column:course_user_id;type:uuid;not null;index" json:"course_user_id"`
	CourseCategoryID uuid.UUID `gorm:"column:course_category_id;type:uuid;not null" json:"course_category_id"`

	// Harga (manajemen pembayaran di luar scope; kolom dipakai untuk invariant harga/diskon)
	CourseType          string   `gorm:"column:course_type;type:varchar(8);not null;default:free" json:"course_type"`
	CoursePrice         float64  `gorm:"column:course_price;type:numeric(12,2);not null;default:0" json:"course_price"`
	CourseDiscountPrice *float64 `gorm:"column:course_discount_price;type:numeric(12,2)" json:"course_discount_price,omitempty"`

	// Lifecycle: hanya 4 kombinasi valid:
	// (draft,nil), (pending,nil), (publish,approved), (draft,rejected)
	CourseStatus         string  `gorm:"column:course_status;type:varchar(16);not null;default:draft" json:"course_status"`
	CourseApprovalStatus *string `gorm:"column:course_approval_status;type:varchar(16)" json:"course_approval_status,omitempty"`
	CourseIsActive       bool    `gorm:"column:course_is_active;default:false" json:"course_is_active"`

	CourseThumbnailURL *string        `gorm:"column:course_thumbnail_url;type:text" json:"course_thumbnail_url,omitempty"`
	CourseMetaKeywords pq.StringArray `gorm:"column:course_meta_keywords;type:text[]" json:"course_meta_keywords,omitempty"`

	CourseCreatedAt time.Time      `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt time.Time      `gorm:"column:course_updated_at;autoUpdateTime" json:"course_updated_at"`
	CourseDeletedAt gorm.DeletedAt `gorm:"column:course_deleted_at;index" json:"-"`
}

func (CourseModel) TableName() string {
	return "courses"
}

func (m *CourseModel) BeforeCreate(tx *gorm.DB) error {
	if m.CourseID == uuid.Nil {
		m.CourseID = uuid.New()
	}
	return nil
}

func (m *CourseModel) IsApproved() bool {
	return m.CourseApprovalStatus != nil && *m.CourseApprovalStatus == CourseApprovalApproved
}

func (m *CourseModel) IsPaid() bool {
	return m.CourseType == CourseTypePaid
}
