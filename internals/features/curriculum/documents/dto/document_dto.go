package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"kursusku_backend/internals/features/curriculum/documents/model"
	helper "kursusku_backend/internals/helpers"
)

type CreateDocumentRequest struct {
	DocumentChapterID       uuid.UUID `json:"document_chapter_id" validate:"required"`
	DocumentTitle           string    `json:"document_title" validate:"required,max=255"`
	DocumentFileURL         *string   `json:"document_file_url"`
	DocumentDurationSeconds int       `json:"document_duration_seconds" validate:"gte=0"`
	DocumentIsDownloadable  *bool     `json:"document_is_downloadable"`
	DocumentIsActive        *bool     `json:"document_is_active"`
}

func (r *CreateDocumentRequest) ToModel(order int) *model.DocumentModel {
	isActive := true
	if r.DocumentIsActive != nil {
		isActive = *r.DocumentIsActive
	}
	downloadable := true
	if r.DocumentIsDownloadable != nil {
		downloadable = *r.DocumentIsDownloadable
	}
	return &model.DocumentModel{
		DocumentChapterID:       r.DocumentChapterID,
		DocumentTitle:           strings.TrimSpace(r.DocumentTitle),
		DocumentChapterOrder:    order,
		DocumentFileURL:         r.DocumentFileURL,
		DocumentDurationSeconds: r.DocumentDurationSeconds,
		DocumentIsDownloadable:  downloadable,
		DocumentIsActive:        isActive,
	}
}

type UpdateDocumentRequest struct {
	DocumentTitle           helper.UpdateField[string] `json:"document_title"`
	DocumentFileURL         helper.UpdateField[string] `json:"document_file_url"`
	DocumentDurationSeconds helper.UpdateField[int]    `json:"document_duration_seconds"`
	DocumentIsDownloadable  helper.UpdateField[bool]   `json:"document_is_downloadable"`
	DocumentIsActive        helper.UpdateField[bool]   `json:"document_is_active"`
}

func (r *UpdateDocumentRequest) ApplyToModel(m *model.DocumentModel) {
	if r.DocumentTitle.ShouldUpdate() && !r.DocumentTitle.IsNull() {
		m.DocumentTitle = strings.TrimSpace(r.DocumentTitle.Val())
	}
	if r.DocumentFileURL.ShouldUpdate() {
		if r.DocumentFileURL.IsNull() {
			m.DocumentFileURL = nil
		} else {
			v := r.DocumentFileURL.Val()
			m.DocumentFileURL = &v
		}
	}
	if r.DocumentDurationSeconds.ShouldUpdate() && !r.DocumentDurationSeconds.IsNull() {
		m.DocumentDurationSeconds = r.DocumentDurationSeconds.Val()
	}
	if r.DocumentIsDownloadable.ShouldUpdate() && !r.DocumentIsDownloadable.IsNull() {
		m.DocumentIsDownloadable = r.DocumentIsDownloadable.Val()
	}
	if r.DocumentIsActive.ShouldUpdate() && !r.DocumentIsActive.IsNull() {
		m.DocumentIsActive = r.DocumentIsActive.Val()
	}
}

type DocumentResponse struct {
	DocumentID              uuid.UUID  `json:"document_id"`
	DocumentChapterID       uuid.UUID  `json:"document_chapter_id"`
	DocumentTitle           string     `json:"document_title"`
	DocumentChapterOrder    int        `json:"document_chapter_order"`
	DocumentFileURL         *string    `json:"document_file_url,omitempty"`
	DocumentDurationSeconds int        `json:"document_duration_seconds"`
	DocumentDurationLabel   string     `json:"document_duration_label"`
	DocumentIsDownloadable  bool       `json:"document_is_downloadable"`
	DocumentIsActive        bool       `json:"document_is_active"`
	DocumentCreatedAt       time.Time  `json:"document_created_at"`
	DocumentDeletedAt       *time.Time `json:"document_deleted_at,omitempty"`
}

func ToDocumentResponse(m *model.DocumentModel) *DocumentResponse {
	resp := &DocumentResponse{
		DocumentID:              m.DocumentID,
		DocumentChapterID:       m.DocumentChapterID,
		DocumentTitle:           m.DocumentTitle,
		DocumentChapterOrder:    m.DocumentChapterOrder,
		DocumentFileURL:         m.DocumentFileURL,
		DocumentDurationSeconds: m.DocumentDurationSeconds,
		DocumentDurationLabel:   m.EntryDurationLabel(),
		DocumentIsDownloadable:  m.DocumentIsDownloadable,
		DocumentIsActive:        m.DocumentIsActive,
		DocumentCreatedAt:       m.DocumentCreatedAt,
	}
	if m.DocumentDeletedAt.Valid {
		t := m.DocumentDeletedAt.Time
		resp.DocumentDeletedAt = &t
	}
	return resp
}
