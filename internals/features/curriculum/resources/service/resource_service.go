package service

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/constants"
	amodel "kursusku_backend/internals/features/curriculum/assignments/model"
	dmodel "kursusku_backend/internals/features/curriculum/documents/model"
	itemService "kursusku_backend/internals/features/curriculum/items/service"
	lmodel "kursusku_backend/internals/features/curriculum/lectures/model"
	qmodel "kursusku_backend/internals/features/curriculum/quizzes/model"
	"kursusku_backend/internals/features/curriculum/resources/model"
)

// ResourceSpec: resource yang diinginkan caller setelah sync.
type ResourceSpec struct {
	Type  string
	Title string
	Value string
}

// ResolveItemChapter mencari chapter pemilik sebuah item berdasar jenisnya.
// Item yang soft-delete dianggap tidak ada.
func ResolveItemChapter(tx *gorm.DB, kind string, itemID uuid.UUID) (uuid.UUID, error) {
	var chapterID uuid.UUID
	var err error

	switch kind {
	case itemService.KindLecture:
		var m lmodel.LectureModel
		err = tx.Select("lecture_chapter_id").First(&m, "lecture_id = ?", itemID).Error
		chapterID = m.LectureChapterID
	case itemService.KindQuiz:
		var m qmodel.QuizModel
		err = tx.Select("quiz_chapter_id").First(&m, "quiz_id = ?", itemID).Error
		chapterID = m.QuizChapterID
	case itemService.KindAssignment:
		var m amodel.AssignmentModel
		err = tx.Select("assignment_chapter_id").First(&m, "assignment_id = ?", itemID).Error
		chapterID = m.AssignmentChapterID
	case itemService.KindDocument:
		var m dmodel.DocumentModel
		err = tx.Select("document_chapter_id").First(&m, "document_id = ?", itemID).Error
		chapterID = m.DocumentChapterID
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Jenis item tidak dikenal")
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Item kurikulum tidak ditemukan")
		}
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil item kurikulum")
	}
	return chapterID, nil
}

// SyncResources menyamakan resource sebuah item dengan daftar yang dikirim.
// Kunci pencocokan: (type, title). Nilai berubah → baris lama ditimpa;
// judul baru → baris baru; baris yang tidak dikirim dihapus.
// Path file lokal yang tergeser dikembalikan supaya caller bisa
// menghapusnya dari storage SETELAH commit.
func SyncResources(tx *gorm.DB, kind string, itemID uuid.UUID, specs []ResourceSpec) ([]model.ResourceModel, []string, error) {
	var existing []model.ResourceModel
	if err := tx.
		Where("resource_item_kind = ? AND resource_item_id = ?", kind, itemID).
		Find(&existing).Error; err != nil {
		return nil, nil, err
	}

	byKey := make(map[string]*model.ResourceModel, len(existing))
	for i := range existing {
		byKey[resourceKey(existing[i].ResourceType, existing[i].ResourceTitle)] = &existing[i]
	}

	var superseded []string
	kept := make(map[uuid.UUID]bool, len(specs))
	result := make([]model.ResourceModel, 0, len(specs))

	for _, spec := range specs {
		rtype := spec.Type
		if rtype == "" {
			rtype = constants.DetectResourceTypeFromValue(spec.Value)
		}
		fileType := 0
		if rtype == constants.ResourceTypeFile {
			fileType = constants.DetectFileTypeFromExt(spec.Value)
		}

		if cur, ok := byKey[resourceKey(rtype, spec.Title)]; ok {
			if cur.ResourceValue != spec.Value {
				if cur.ResourceType == constants.ResourceTypeFile && isLocalPath(cur.ResourceValue) {
					superseded = append(superseded, cur.ResourceValue)
				}
				cur.ResourceValue = spec.Value
				cur.ResourceFileType = fileType
				if err := tx.Save(cur).Error; err != nil {
					return nil, nil, err
				}
			}
			kept[cur.ResourceID] = true
			result = append(result, *cur)
			continue
		}

		fresh := model.ResourceModel{
			ResourceItemKind: kind,
			ResourceItemID:   itemID,
			ResourceType:     rtype,
			ResourceTitle:    strings.TrimSpace(spec.Title),
			ResourceValue:    spec.Value,
			ResourceFileType: fileType,
		}
		if err := tx.Create(&fresh).Error; err != nil {
			return nil, nil, err
		}
		kept[fresh.ResourceID] = true
		result = append(result, fresh)
	}

	for i := range existing {
		if kept[existing[i].ResourceID] {
			continue
		}
		if existing[i].ResourceType == constants.ResourceTypeFile && isLocalPath(existing[i].ResourceValue) {
			superseded = append(superseded, existing[i].ResourceValue)
		}
		if err := tx.Delete(&existing[i]).Error; err != nil {
			return nil, nil, err
		}
	}

	return result, superseded, nil
}

// ListResources mengambil resource sebuah item, urut waktu dibuat.
func ListResources(tx *gorm.DB, kind string, itemID uuid.UUID) ([]model.ResourceModel, error) {
	var out []model.ResourceModel
	err := tx.
		Where("resource_item_kind = ? AND resource_item_id = ?", kind, itemID).
		Order("resource_created_at ASC").
		Find(&out).Error
	return out, err
}

func resourceKey(rtype, title string) string {
	return rtype + "|" + strings.TrimSpace(title)
}

func isLocalPath(v string) bool {
	s := strings.ToLower(v)
	return !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://")
}
