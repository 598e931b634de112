package service

import (
	"time"

	"github.com/google/uuid"
)

// Jenis item kurikulum yang dikenal aggregator.
const (
	KindLecture    = "lecture"
	KindQuiz       = "quiz"
	KindAssignment = "assignment"
	KindDocument   = "document"
)

// CurriculumEntry dipenuhi oleh keempat model item kurikulum
// (lecture, quiz, assignment, document) supaya bisa digabung
// jadi satu daftar per chapter tanpa saling import.
type CurriculumEntry interface {
	EntryID() uuid.UUID
	EntryChapterID() uuid.UUID
	EntryTitle() string
	EntryOrder() int
	EntryKind() string
	EntryIsActive() bool
	EntryDeletedAt() *time.Time
	EntryDurationLabel() string
}

func IsValidKind(k string) bool {
	switch k {
	case KindLecture, KindQuiz, KindAssignment, KindDocument:
		return true
	}
	return false
}
