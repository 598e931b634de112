package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResourceModel: lampiran sebuah curriculum item (file, url, atau link youtube).
// item_kind + item_id menunjuk ke salah satu dari empat tabel item.
type ResourceModel struct {
	ResourceID       uuid.UUID `gorm:"column:resource_id;type:uuid;primaryKey" json:"resource_id"`
	ResourceItemKind string    `gorm:"column:resource_item_kind;type:varchar(20);not null;index:idx_resource_item" json:"resource_item_kind"`
	ResourceItemID   uuid.UUID `gorm:"column:resource_item_id;type:uuid;not null;index:idx_resource_item" json:"resource_item_id"`

	ResourceType     string `gorm:"column:resource_type;type:varchar(20);not null" json:"resource_type"`
	ResourceTitle    string `gorm:"column:resource_title;type:varchar(255);not null" json:"resource_title"`
	ResourceValue    string `gorm:"column:resource_value;type:text;not null" json:"resource_value"`
	ResourceFileType int    `gorm:"column:resource_file_type;not null;default:0" json:"resource_file_type"`

	ResourceCreatedAt time.Time `gorm:"column:resource_created_at;autoCreateTime" json:"resource_created_at"`
	ResourceUpdatedAt time.Time `gorm:"column:resource_updated_at;autoUpdateTime" json:"resource_updated_at"`
}

func (ResourceModel) TableName() string {
	return "curriculum_resources"
}

func (m *ResourceModel) BeforeCreate(tx *gorm.DB) error {
	if m.ResourceID == uuid.Nil {
		m.ResourceID = uuid.New()
	}
	return nil
}
