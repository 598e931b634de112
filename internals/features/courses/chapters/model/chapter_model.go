package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChapterModel: bab dalam kursus, wadah semua curriculum item.
// Menghapus chapter TIDAK ikut menghapus item di dalamnya;
// tiap kind-store punya trigger soft-delete sendiri.
type ChapterModel struct {
	ChapterID       uuid.UUID `gorm:"column:chapter_id;type:uuid;primaryKey" json:"chapter_id"`
	ChapterCourseID uuid.UUID `gorm:"column:chapter_course_id;type:uuid;not null;index" json:"chapter_course_id"`
	ChapterTitle    string    `gorm:"column:chapter_title;type:varchar(255);not null" json:"chapter_title"`
	ChapterIsActive bool      `gorm:"column:chapter_is_active;default:true" json:"chapter_is_active"`

	ChapterCreatedAt time.Time      `gorm:"column:chapter_created_at;autoCreateTime" json:"chapter_created_at"`
	ChapterUpdatedAt time.Time      `gorm:"column:chapter_updated_at;autoUpdateTime" json:"chapter_updated_at"`
	ChapterDeletedAt gorm.DeletedAt `gorm:"column:chapter_deleted_at;index" json:"-"`
}

func (ChapterModel) TableName() string {
	return "chapters"
}

func (m *ChapterModel) BeforeCreate(tx *gorm.DB) error {
	if m.ChapterID == uuid.Nil {
		m.ChapterID = uuid.New()
	}
	return nil
}
