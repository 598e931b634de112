package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	chapterModel "kursusku_backend/internals/features/courses/chapters/model"
	courseModel "kursusku_backend/internals/features/courses/courses/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // :memory: hidup per koneksi
	require.NoError(t, db.AutoMigrate(&courseModel.CourseModel{}, &chapterModel.ChapterModel{}))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
	return db
}

func seedCourseWithChapter(t *testing.T, db *gorm.DB, owner uuid.UUID) *chapterModel.ChapterModel {
	t.Helper()
	course := courseModel.CourseModel{
		CourseTitle:      "Belajar Go",
		CourseSlug:       "belajar-go",
		CourseUserID:     owner,
		CourseCategoryID: uuid.New(),
	}
	require.NoError(t, db.Create(&course).Error)

	chapter := chapterModel.ChapterModel{
		ChapterCourseID: course.CourseID,
		ChapterTitle:    "Bab 1",
		ChapterIsActive: true,
	}
	require.NoError(t, db.Create(&chapter).Error)
	return &chapter
}

func TestResolveOwnership_ReturnsCourseOwner(t *testing.T) {
	db := newTestDB(t)
	owner := uuid.New()
	chapter := seedCourseWithChapter(t, db, owner)

	own, err := ResolveOwnership(db, chapter.ChapterID)
	require.NoError(t, err)
	require.Equal(t, chapter.ChapterID, own.ChapterID)
	require.Equal(t, owner, own.CourseOwnerID)
}

func TestResolveOwnership_DeletedChapterNotFound(t *testing.T) {
	db := newTestDB(t)
	chapter := seedCourseWithChapter(t, db, uuid.New())
	require.NoError(t, db.Delete(chapter).Error)

	_, err := ResolveOwnership(db, chapter.ChapterID)
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	require.Equal(t, fiber.StatusNotFound, fe.Code)
}

// Restore item harus tetap bisa walau chapter induknya sedang terhapus;
// owner kursus tetap terbaca dari row chapter yang soft-deleted.
func TestResolveOwnershipAny_DeletedChapterStillResolves(t *testing.T) {
	db := newTestDB(t)
	owner := uuid.New()
	chapter := seedCourseWithChapter(t, db, owner)
	require.NoError(t, db.Delete(chapter).Error)

	own, err := ResolveOwnershipAny(db, chapter.ChapterID)
	require.NoError(t, err)
	require.Equal(t, chapter.ChapterID, own.ChapterID)
	require.Equal(t, owner, own.CourseOwnerID)
}

func TestResolveOwnershipAny_UnknownChapterStillNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := ResolveOwnershipAny(db, uuid.New())
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	require.Equal(t, fiber.StatusNotFound, fe.Code)
}
