package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryModel: kategori kursus, dikelola admin dan dikonsumsi
// untuk validasi FK saat kursus dibuat/diubah.
type CategoryModel struct {
	CategoryID       uuid.UUID  `gorm:"column:category_id;type:uuid;primaryKey" json:"category_id"`
	CategoryName     string     `gorm:"column:category_name;type:varchar(160);not null" json:"category_name"`
	CategorySlug     string     `gorm:"column:category_slug;type:varchar(160);not null;uniqueIndex" json:"category_slug"`
	CategoryParentID *uuid.UUID `gorm:"column:category_parent_id;type:uuid" json:"category_parent_id,omitempty"`
	CategoryIsActive bool       `gorm:"column:category_is_active;default:true" json:"category_is_active"`

	CategoryCreatedAt time.Time      `gorm:"column:category_created_at;autoCreateTime" json:"category_created_at"`
	CategoryUpdatedAt time.Time      `gorm:"column:category_updated_at;autoUpdateTime" json:"category_updated_at"`
	CategoryDeletedAt gorm.DeletedAt `gorm:"column:category_deleted_at;index" json:"-"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

func (m *CategoryModel) BeforeCreate(tx *gorm.DB) error {
	if m.CategoryID == uuid.Nil {
		m.CategoryID = uuid.New()
	}
	return nil
}
