// internals/features/courses/chapters/service/chapter_service.go
package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	chapterModel "kursusku_backend/internals/features/courses/chapters/model"
	courseModel "kursusku_backend/internals/features/courses/courses/model"
)

// ChapterOwnership: hasil resolve chapter → kursus pemiliknya.
// Dipakai kind-store & aggregator untuk gate authorisasi.
type ChapterOwnership struct {
	ChapterID     uuid.UUID
	CourseID      uuid.UUID
	CourseOwnerID uuid.UUID
}

// ResolveOwnership mencari chapter hidup beserta owner kursusnya.
// Harus dipanggil di dalam transaksi yang sama dengan mutasi yang bergantung padanya.
func ResolveOwnership(tx *gorm.DB, chapterID uuid.UUID) (*ChapterOwnership, error) {
	return resolveOwnership(tx, chapterID, false)
}

// ResolveOwnershipAny menerima chapter yang sudah terhapus.
// Dipakai jalur restore item: item boleh kembali walau chapter-nya sedang
// terhapus (chapter TIDAK ikut direstore), owner tetap terbaca dari row lama.
func ResolveOwnershipAny(tx *gorm.DB, chapterID uuid.UUID) (*ChapterOwnership, error) {
	return resolveOwnership(tx, chapterID, true)
}

func resolveOwnership(tx *gorm.DB, chapterID uuid.UUID, includeDeleted bool) (*ChapterOwnership, error) {
	q := tx
	if includeDeleted {
		q = tx.Unscoped()
	}

	var chapter chapterModel.ChapterModel
	if err := q.First(&chapter, "chapter_id = ?", chapterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Chapter tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil chapter")
	}

	var course courseModel.CourseModel
	if err := tx.Select("course_id", "course_user_id").
		First(&course, "course_id = ?", chapter.ChapterCourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Kursus pemilik chapter tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kursus")
	}

	return &ChapterOwnership{
		ChapterID:     chapter.ChapterID,
		CourseID:      course.CourseID,
		CourseOwnerID: course.CourseUserID,
	}, nil
}
