package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuizModel: kuis dalam sebuah chapter. Soal-soalnya ada di feature questions.
type QuizModel struct {
	QuizID           uuid.UUID `gorm:"column:quiz_id;type:uuid;primaryKey" json:"quiz_id"`
	QuizChapterID    uuid.UUID `gorm:"column:quiz_chapter_id;type:uuid;not null;index" json:"quiz_chapter_id"`
	QuizTitle        string    `gorm:"column:quiz_title;type:varchar(255);not null" json:"quiz_title"`
	QuizChapterOrder int       `gorm:"column:quiz_chapter_order;not null;default:0" json:"quiz_chapter_order"`
	QuizIsActive     bool      `gorm:"column:quiz_is_active;default:true" json:"quiz_is_active"`

	QuizTimeLimitMinutes int     `gorm:"column:quiz_time_limit_minutes;not null;default:0" json:"quiz_time_limit_minutes"`
	QuizPassThreshold    int     `gorm:"column:quiz_pass_threshold;not null;default:0" json:"quiz_pass_threshold"` // persen 0..100
	QuizTotalPoints      float64 `gorm:"column:quiz_total_points;type:numeric;not null;default:0" json:"quiz_total_points"`

	// Pengaturan tampilan/pengerjaan yang sering berubah bentuk
	// (shuffle_questions, show_score, max_attempts, dst) disimpan bebas skema.
	QuizSettings datatypes.JSONMap `gorm:"column:quiz_settings" json:"quiz_settings,omitempty"`

	QuizCreatedAt time.Time      `gorm:"column:quiz_created_at;autoCreateTime" json:"quiz_created_at"`
	QuizUpdatedAt time.Time      `gorm:"column:quiz_updated_at;autoUpdateTime" json:"quiz_updated_at"`
	QuizDeletedAt gorm.DeletedAt `gorm:"column:quiz_deleted_at;index" json:"-"`
}

func (QuizModel) TableName() string {
	return "quizzes"
}

func (m *QuizModel) BeforeCreate(tx *gorm.DB) error {
	if m.QuizID == uuid.Nil {
		m.QuizID = uuid.New()
	}
	return nil
}

/* =========================================================
   Implementasi CurriculumEntry (dipakai aggregator)
========================================================= */

func (m *QuizModel) EntryID() uuid.UUID        { return m.QuizID }
func (m *QuizModel) EntryChapterID() uuid.UUID { return m.QuizChapterID }
func (m *QuizModel) EntryTitle() string        { return m.QuizTitle }
func (m *QuizModel) EntryOrder() int           { return m.QuizChapterOrder }
func (m *QuizModel) EntryKind() string         { return "quiz" }
func (m *QuizModel) EntryIsActive() bool       { return m.QuizIsActive }

func (m *QuizModel) EntryDeletedAt() *time.Time {
	if m.QuizDeletedAt.Valid {
		t := m.QuizDeletedAt.Time
		return &t
	}
	return nil
}

func (m *QuizModel) EntryDurationLabel() string {
	if m.QuizTimeLimitMinutes <= 0 {
		return ""
	}
	return fmt.Sprintf("%d menit", m.QuizTimeLimitMinutes)
}
