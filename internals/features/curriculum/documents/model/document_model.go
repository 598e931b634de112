package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "kursusku_backend/internals/helpers"
)

// DocumentModel: materi dokumen (pdf/slide) dalam sebuah chapter.
type DocumentModel struct {
	DocumentID           uuid.UUID `gorm:"column:document_id;type:uuid;primaryKey" json:"document_id"`
	DocumentChapterID    uuid.UUID `gorm:"column:document_chapter_id;type:uuid;not null;index" json:"document_chapter_id"`
	DocumentTitle        string    `gorm:"column:document_title;type:varchar(255);not null" json:"document_title"`
	DocumentChapterOrder int       `gorm:"column:document_chapter_order;not null;default:0" json:"document_chapter_order"`
	DocumentIsActive     bool      `gorm:"column:document_is_active;default:true" json:"document_is_active"`

	DocumentFileURL         *string `gorm:"column:document_file_url;type:text" json:"document_file_url,omitempty"`
	DocumentDurationSeconds int     `gorm:"column:document_duration_seconds;not null;default:0" json:"document_duration_seconds"` // estimasi waktu baca
	DocumentIsDownloadable  bool    `gorm:"column:document_is_downloadable;default:true" json:"document_is_downloadable"`

	DocumentCreatedAt time.Time      `gorm:"column:document_created_at;autoCreateTime" json:"document_created_at"`
	DocumentUpdatedAt time.Time      `gorm:"column:document_updated_at;autoUpdateTime" json:"document_updated_at"`
	DocumentDeletedAt gorm.DeletedAt `gorm:"column:document_deleted_at;index" json:"-"`
}

func (DocumentModel) TableName() string {
	return "documents"
}

func (m *DocumentModel) BeforeCreate(tx *gorm.DB) error {
	if m.DocumentID == uuid.Nil {
		m.DocumentID = uuid.New()
	}
	return nil
}

/* =========================================================
   Implementasi CurriculumEntry (dipakai aggregator)
========================================================= */

func (m *DocumentModel) EntryID() uuid.UUID        { return m.DocumentID }
func (m *DocumentModel) EntryChapterID() uuid.UUID { return m.DocumentChapterID }
func (m *DocumentModel) EntryTitle() string        { return m.DocumentTitle }
func (m *DocumentModel) EntryOrder() int           { return m.DocumentChapterOrder }
func (m *DocumentModel) EntryKind() string         { return "document" }
func (m *DocumentModel) EntryIsActive() bool       { return m.DocumentIsActive }

func (m *DocumentModel) EntryDeletedAt() *time.Time {
	if m.DocumentDeletedAt.Valid {
		t := m.DocumentDeletedAt.Time
		return &t
	}
	return nil
}

func (m *DocumentModel) EntryDurationLabel() string {
	return helper.FormatDuration(m.DocumentDurationSeconds)
}
