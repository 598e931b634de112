package service

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	amodel "kursusku_backend/internals/features/curriculum/assignments/model"
	dmodel "kursusku_backend/internals/features/curriculum/documents/model"
	lmodel "kursusku_backend/internals/features/curriculum/lectures/model"
	qmodel "kursusku_backend/internals/features/curriculum/quizzes/model"
)

// ListOptions mengatur daftar gabungan kurikulum per chapter.
type ListOptions struct {
	Search      string // cocokkan judul / jenis / label durasi (case-insensitive)
	ShowDeleted bool   // true = hanya item yang sudah soft-delete (untuk restore)
}

// ListForChapter menggabungkan keempat jenis item dalam satu chapter
// menjadi satu daftar terurut (chapter_order asc, lalu id asc supaya
// urutan stabil saat order sama). Paginasi dilakukan pemanggil.
func ListForChapter(tx *gorm.DB, chapterID uuid.UUID, opts ListOptions) ([]CurriculumEntry, error) {
	entries := make([]CurriculumEntry, 0, 16)

	var lectures []lmodel.LectureModel
	if err := scopeKind(tx, opts, "lecture_deleted_at").
		Where("lecture_chapter_id = ?", chapterID).
		Find(&lectures).Error; err != nil {
		return nil, err
	}
	for i := range lectures {
		entries = append(entries, &lectures[i])
	}

	var quizzes []qmodel.QuizModel
	if err := scopeKind(tx, opts, "quiz_deleted_at").
		Where("quiz_chapter_id = ?", chapterID).
		Find(&quizzes).Error; err != nil {
		return nil, err
	}
	for i := range quizzes {
		entries = append(entries, &quizzes[i])
	}

	var assignments []amodel.AssignmentModel
	if err := scopeKind(tx, opts, "assignment_deleted_at").
		Where("assignment_chapter_id = ?", chapterID).
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	for i := range assignments {
		entries = append(entries, &assignments[i])
	}

	var documents []dmodel.DocumentModel
	if err := scopeKind(tx, opts, "document_deleted_at").
		Where("document_chapter_id = ?", chapterID).
		Find(&documents).Error; err != nil {
		return nil, err
	}
	for i := range documents {
		entries = append(entries, &documents[i])
	}

	if q := strings.TrimSpace(strings.ToLower(opts.Search)); q != "" {
		filtered := entries[:0]
		for _, e := range entries {
			if matchEntry(e, q) {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].EntryOrder() != entries[j].EntryOrder() {
			return entries[i].EntryOrder() < entries[j].EntryOrder()
		}
		return entries[i].EntryID().String() < entries[j].EntryID().String()
	})

	return entries, nil
}

func scopeKind(tx *gorm.DB, opts ListOptions, deletedCol string) *gorm.DB {
	if opts.ShowDeleted {
		return tx.Unscoped().Where(deletedCol + " IS NOT NULL")
	}
	return tx
}

func matchEntry(e CurriculumEntry, q string) bool {
	return strings.Contains(strings.ToLower(e.EntryTitle()), q) ||
		strings.Contains(e.EntryKind(), q) ||
		strings.Contains(strings.ToLower(e.EntryDurationLabel()), q)
}

// MaxOrderAcrossKinds mencari chapter_order terbesar lintas keempat tabel
// dalam satu chapter, termasuk baris yang soft-delete supaya item hasil
// restore tidak bentrok dengan item baru.
func MaxOrderAcrossKinds(tx *gorm.DB, chapterID uuid.UUID) (int, error) {
	maxOrder := 0
	probes := []struct {
		model     interface{}
		orderCol  string
		filterCol string
	}{
		{&lmodel.LectureModel{}, "lecture_chapter_order", "lecture_chapter_id"},
		{&qmodel.QuizModel{}, "quiz_chapter_order", "quiz_chapter_id"},
		{&amodel.AssignmentModel{}, "assignment_chapter_order", "assignment_chapter_id"},
		{&dmodel.DocumentModel{}, "document_chapter_order", "document_chapter_id"},
	}
	for _, p := range probes {
		var v int
		err := tx.Unscoped().
			Model(p.model).
			Where(p.filterCol+" = ?", chapterID).
			Select("COALESCE(MAX(" + p.orderCol + "), 0)").
			Scan(&v).Error
		if err != nil {
			return 0, err
		}
		if v > maxOrder {
			maxOrder = v
		}
	}
	return maxOrder, nil
}

// NextOrder mengembalikan chapter_order untuk item baru dalam chapter.
func NextOrder(tx *gorm.DB, chapterID uuid.UUID) (int, error) {
	maxOrder, err := MaxOrderAcrossKinds(tx, chapterID)
	if err != nil {
		return 0, err
	}
	return maxOrder + 1, nil
}

// Reorder menulis ulang chapter_order mengikuti urutan orderedIDs
// (posisi+1). Tiap id dicoba ke keempat tabel sampai ketemu; id yang
// tidak dikenal dilewati saja. Idempotent: kirim urutan yang sama dua
// kali hasilnya sama.
func Reorder(tx *gorm.DB, chapterID uuid.UUID, orderedIDs []uuid.UUID) error {
	for idx, id := range orderedIDs {
		order := idx + 1
		found, err := setOrder(tx, &lmodel.LectureModel{}, "lecture_id", "lecture_chapter_id", "lecture_chapter_order", chapterID, id, order)
		if err != nil {
			return err
		}
		if found {
			continue
		}
		found, err = setOrder(tx, &qmodel.QuizModel{}, "quiz_id", "quiz_chapter_id", "quiz_chapter_order", chapterID, id, order)
		if err != nil {
			return err
		}
		if found {
			continue
		}
		found, err = setOrder(tx, &amodel.AssignmentModel{}, "assignment_id", "assignment_chapter_id", "assignment_chapter_order", chapterID, id, order)
		if err != nil {
			return err
		}
		if found {
			continue
		}
		if _, err = setOrder(tx, &dmodel.DocumentModel{}, "document_id", "document_chapter_id", "document_chapter_order", chapterID, id, order); err != nil {
			return err
		}
	}
	return nil
}

func setOrder(tx *gorm.DB, model interface{}, idCol, chapterCol, orderCol string, chapterID, id uuid.UUID, order int) (bool, error) {
	res := tx.Model(model).
		Where(idCol+" = ? AND "+chapterCol+" = ?", id, chapterID).
		Update(orderCol, order)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
