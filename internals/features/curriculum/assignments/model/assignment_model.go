package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentModel: tugas dalam sebuah chapter.
type AssignmentModel struct {
	AssignmentID           uuid.UUID `gorm:"column:assignment_id;type:uuid;primaryKey" json:"assignment_id"`
	AssignmentChapterID    uuid.UUID `gorm:"column:assignment_chapter_id;type:uuid;not null;index" json:"assignment_chapter_id"`
	AssignmentTitle        string    `gorm:"column:assignment_title;type:varchar(255);not null" json:"assignment_title"`
	AssignmentChapterOrder int       `gorm:"column:assignment_chapter_order;not null;default:0" json:"assignment_chapter_order"`
	AssignmentIsActive     bool      `gorm:"column:assignment_is_active;default:true" json:"assignment_is_active"`

	AssignmentInstructions *string    `gorm:"column:assignment_instructions;type:text" json:"assignment_instructions,omitempty"`
	AssignmentDueDate      *time.Time `gorm:"column:assignment_due_date" json:"assignment_due_date,omitempty"`

	AssignmentCreatedAt time.Time      `gorm:"column:assignment_created_at;autoCreateTime" json:"assignment_created_at"`
	AssignmentUpdatedAt time.Time      `gorm:"column:assignment_updated_at;autoUpdateTime" json:"assignment_updated_at"`
	AssignmentDeletedAt gorm.DeletedAt `gorm:"column:assignment_deleted_at;index" json:"-"`
}

func (AssignmentModel) TableName() string {
	return "assignments"
}

func (m *AssignmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.AssignmentID == uuid.Nil {
		m.AssignmentID = uuid.New()
	}
	return nil
}

/* =========================================================
   Implementasi CurriculumEntry (dipakai aggregator)
========================================================= */

func (m *AssignmentModel) EntryID() uuid.UUID        { return m.AssignmentID }
func (m *AssignmentModel) EntryChapterID() uuid.UUID { return m.AssignmentChapterID }
func (m *AssignmentModel) EntryTitle() string        { return m.AssignmentTitle }
func (m *AssignmentModel) EntryOrder() int           { return m.AssignmentChapterOrder }
func (m *AssignmentModel) EntryKind() string         { return "assignment" }
func (m *AssignmentModel) EntryIsActive() bool       { return m.AssignmentIsActive }

func (m *AssignmentModel) EntryDeletedAt() *time.Time {
	if m.AssignmentDeletedAt.Valid {
		t := m.AssignmentDeletedAt.Time
		return &t
	}
	return nil
}

func (m *AssignmentModel) EntryDurationLabel() string {
	if m.AssignmentDueDate == nil {
		return ""
	}
	return m.AssignmentDueDate.Format("2006-01-02")
}
