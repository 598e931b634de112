package dto

import (
	"time"

	"github.com/google/uuid"

	"kursusku_backend/internals/features/curriculum/resources/model"
)

// ResourceInput: satu resource dalam body sync.
// resource_type boleh kosong, service menebak dari nilainya.
type ResourceInput struct {
	ResourceType  string `json:"resource_type" validate:"omitempty,oneof=file url youtube_url"`
	ResourceTitle string `json:"resource_title" validate:"required,max=255"`
	ResourceValue string `json:"resource_value" validate:"required"`
}

type SyncResourcesRequest struct {
	Resources []ResourceInput `json:"resources" validate:"dive"`
}

type ResourceResponse struct {
	ResourceID       uuid.UUID `json:"resource_id"`
	ResourceItemKind string    `json:"resource_item_kind"`
	ResourceItemID   uuid.UUID `json:"resource_item_id"`
	ResourceType     string    `json:"resource_type"`
	ResourceTitle    string    `json:"resource_title"`
	ResourceValue    string    `json:"resource_value"`
	ResourceFileType int       `json:"resource_file_type"`
	ResourceCreated  time.Time `json:"resource_created_at"`
}

func ToResourceResponse(m *model.ResourceModel) ResourceResponse {
	return ResourceResponse{
		ResourceID:       m.ResourceID,
		ResourceItemKind: m.ResourceItemKind,
		ResourceItemID:   m.ResourceItemID,
		ResourceType:     m.ResourceType,
		ResourceTitle:    m.ResourceTitle,
		ResourceValue:    m.ResourceValue,
		ResourceFileType: m.ResourceFileType,
		ResourceCreated:  m.ResourceCreatedAt,
	}
}

func ToResourceResponses(ms []model.ResourceModel) []ResourceResponse {
	out := make([]ResourceResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToResourceResponse(&ms[i]))
	}
	return out
}
