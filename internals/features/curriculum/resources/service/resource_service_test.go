package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"kursusku_backend/internals/constants"
	lmodel "kursusku_backend/internals/features/curriculum/lectures/model"
	"kursusku_backend/internals/features/curriculum/resources/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // :memory: hidup per koneksi
	require.NoError(t, db.AutoMigrate(&model.ResourceModel{}, &lmodel.LectureModel{}))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
	return db
}

func TestSyncResources_CreatesWithDetectedTypes(t *testing.T) {
	db := newTestDB(t)
	itemID := uuid.New()

	synced, superseded, err := SyncResources(db, "lecture", itemID, []ResourceSpec{
		{Title: "Slide", Value: "documents/slide.pdf"},
		{Title: "Referensi", Value: "https://example.com/artikel"},
		{Title: "Video tambahan", Value: "https://youtu.be/abc123"},
	})
	require.NoError(t, err)
	require.Empty(t, superseded)
	require.Len(t, synced, 3)

	require.Equal(t, constants.ResourceTypeFile, synced[0].ResourceType)
	require.Equal(t, 4, synced[0].ResourceFileType) // pdf
	require.Equal(t, constants.ResourceTypeURL, synced[1].ResourceType)
	require.Equal(t, constants.ResourceTypeYoutubeURL, synced[2].ResourceType)
}

func TestSyncResources_ReplacesValueAndReportsSupersededFile(t *testing.T) {
	db := newTestDB(t)
	itemID := uuid.New()

	first, _, err := SyncResources(db, "lecture", itemID, []ResourceSpec{
		{Title: "Slide", Value: "documents/slide-v1.pdf"},
	})
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, superseded, err := SyncResources(db, "lecture", itemID, []ResourceSpec{
		{Title: "Slide", Value: "documents/slide-v2.pdf"},
	})
	require.NoError(t, err)
	require.Len(t, second, 1)
	// baris lama ditimpa, bukan dibuat baru
	require.Equal(t, first[0].ResourceID, second[0].ResourceID)
	require.Equal(t, "documents/slide-v2.pdf", second[0].ResourceValue)
	require.Equal(t, []string{"documents/slide-v1.pdf"}, superseded)
}

func TestSyncResources_DeletesOmittedRows(t *testing.T) {
	db := newTestDB(t)
	itemID := uuid.New()

	_, _, err := SyncResources(db, "quiz", itemID, []ResourceSpec{
		{Title: "Slide", Value: "documents/slide.pdf"},
		{Title: "Referensi", Value: "https://example.com"},
	})
	require.NoError(t, err)

	kept, superseded, err := SyncResources(db, "quiz", itemID, []ResourceSpec{
		{Title: "Referensi", Value: "https://example.com"},
	})
	require.NoError(t, err)
	require.Len(t, kept, 1)
	require.Equal(t, "Referensi", kept[0].ResourceTitle)
	// file lokal yang dihapus ikut dilaporkan untuk dibersihkan dari storage
	require.Equal(t, []string{"documents/slide.pdf"}, superseded)

	rows, err := ListResources(db, "quiz", itemID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestSyncResources_ExternalURLNeverSuperseded(t *testing.T) {
	db := newTestDB(t)
	itemID := uuid.New()

	_, _, err := SyncResources(db, "document", itemID, []ResourceSpec{
		{Title: "Referensi", Value: "https://example.com/a"},
	})
	require.NoError(t, err)

	_, superseded, err := SyncResources(db, "document", itemID, []ResourceSpec{
		{Title: "Referensi", Value: "https://example.com/b"},
	})
	require.NoError(t, err)
	require.Empty(t, superseded)
}

func TestSyncResources_IdempotentWhenUnchanged(t *testing.T) {
	db := newTestDB(t)
	itemID := uuid.New()
	specs := []ResourceSpec{{Title: "Slide", Value: "documents/slide.pdf"}}

	first, _, err := SyncResources(db, "assignment", itemID, specs)
	require.NoError(t, err)
	second, superseded, err := SyncResources(db, "assignment", itemID, specs)
	require.NoError(t, err)
	require.Empty(t, superseded)
	require.Equal(t, first[0].ResourceID, second[0].ResourceID)
}

func TestResolveItemChapter_FindsLectureAndRejectsUnknown(t *testing.T) {
	db := newTestDB(t)
	chapterID := uuid.New()

	lecture := lmodel.LectureModel{
		LectureChapterID:    chapterID,
		LectureTitle:        "Intro",
		LectureChapterOrder: 1,
		LectureIsActive:     true,
	}
	require.NoError(t, db.Create(&lecture).Error)

	got, err := ResolveItemChapter(db, "lecture", lecture.LectureID)
	require.NoError(t, err)
	require.Equal(t, chapterID, got)

	_, err = ResolveItemChapter(db, "lecture", uuid.New())
	require.Error(t, err)

	_, err = ResolveItemChapter(db, "bukan-jenis", lecture.LectureID)
	require.Error(t, err)

	// item yang soft-delete dianggap tidak ada
	require.NoError(t, db.Delete(&lecture).Error)
	_, err = ResolveItemChapter(db, "lecture", lecture.LectureID)
	require.Error(t, err)
}
