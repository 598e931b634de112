package dto

import (
	"time"

	"github.com/google/uuid"

	"kursusku_backend/internals/features/curriculum/items/service"
)

// CurriculumItemResponse: satu baris dalam daftar gabungan kurikulum.
type CurriculumItemResponse struct {
	ItemID        uuid.UUID  `json:"item_id"`
	ChapterID     uuid.UUID  `json:"chapter_id"`
	ItemKind      string     `json:"item_kind"`
	ItemTitle     string     `json:"item_title"`
	ChapterOrder  int        `json:"chapter_order"`
	IsActive      bool       `json:"is_active"`
	DurationLabel string     `json:"duration_label,omitempty"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty"`
}

func ToCurriculumItemResponse(e service.CurriculumEntry) CurriculumItemResponse {
	return CurriculumItemResponse{
		ItemID:        e.EntryID(),
		ChapterID:     e.EntryChapterID(),
		ItemKind:      e.EntryKind(),
		ItemTitle:     e.EntryTitle(),
		ChapterOrder:  e.EntryOrder(),
		IsActive:      e.EntryIsActive(),
		DurationLabel: e.EntryDurationLabel(),
		DeletedAt:     e.EntryDeletedAt(),
	}
}

func ToCurriculumItemResponses(entries []service.CurriculumEntry) []CurriculumItemResponse {
	out := make([]CurriculumItemResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, ToCurriculumItemResponse(e))
	}
	return out
}

// ReorderCurriculumRequest: urutan id baru untuk satu chapter.
// Id yang tidak dikenal diabaikan oleh service.
type ReorderCurriculumRequest struct {
	OrderedIDs []uuid.UUID `json:"ordered_ids" validate:"required,min=1,dive,required"`
}
