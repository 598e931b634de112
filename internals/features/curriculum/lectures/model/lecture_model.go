package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "kursusku_backend/internals/helpers"
)

// LectureModel: video pembelajaran dalam sebuah chapter.
// chapter_order berlaku global per chapter, lintas semua jenis item.
type LectureModel struct {
	LectureID           uuid.UUID `gorm:"column:lecture_id;type:uuid;primaryKey" json:"lecture_id"`
	LectureChapterID    uuid.UUID `gorm:"column:lecture_chapter_id;type:uuid;not null;index" json:"lecture_chapter_id"`
	LectureTitle        string    `gorm:"column:lecture_title;type:varchar(255);not null" json:"lecture_title"`
	LectureChapterOrder int       `gorm:"column:lecture_chapter_order;not null;default:0" json:"lecture_chapter_order"`
	LectureIsActive     bool      `gorm:"column:lecture_is_active;default:true" json:"lecture_is_active"`

	LectureVideoURL        *string `gorm:"column:lecture_video_url;type:text" json:"lecture_video_url,omitempty"`
	LectureDurationSeconds int     `gorm:"column:lecture_duration_seconds;not null;default:0" json:"lecture_duration_seconds"`
	LectureIsPreview       bool    `gorm:"column:lecture_is_preview;default:false" json:"lecture_is_preview"`

	LectureCreatedAt time.Time      `gorm:"column:lecture_created_at;autoCreateTime" json:"lecture_created_at"`
	LectureUpdatedAt time.Time      `gorm:"column:lecture_updated_at;autoUpdateTime" json:"lecture_updated_at"`
	LectureDeletedAt gorm.DeletedAt `gorm:"column:lecture_deleted_at;index" json:"-"`
}

func (LectureModel) TableName() string {
	return "lectures"
}

func (m *LectureModel) BeforeCreate(tx *gorm.DB) error {
	if m.LectureID == uuid.Nil {
		m.LectureID = uuid.New()
	}
	return nil
}

/* =========================================================
   Implementasi CurriculumEntry (dipakai aggregator)
========================================================= */

func (m *LectureModel) EntryID() uuid.UUID        { return m.LectureID }
func (m *LectureModel) EntryChapterID() uuid.UUID { return m.LectureChapterID }
func (m *LectureModel) EntryTitle() string        { return m.LectureTitle }
func (m *LectureModel) EntryOrder() int           { return m.LectureChapterOrder }
func (m *LectureModel) EntryKind() string         { return "lecture" }
func (m *LectureModel) EntryIsActive() bool       { return m.LectureIsActive }

func (m *LectureModel) EntryDeletedAt() *time.Time {
	if m.LectureDeletedAt.Valid {
		t := m.LectureDeletedAt.Time
		return &t
	}
	return nil
}

func (m *LectureModel) EntryDurationLabel() string {
	return helper.FormatDuration(m.LectureDurationSeconds)
}
