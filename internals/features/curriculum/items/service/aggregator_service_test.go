package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	amodel "kursusku_backend/internals/features/curriculum/assignments/model"
	dmodel "kursusku_backend/internals/features/curriculum/documents/model"
	lmodel "kursusku_backend/internals/features/curriculum/lectures/model"
	qmodel "kursusku_backend/internals/features/curriculum/quizzes/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // :memory: hidup per koneksi
	require.NoError(t, db.AutoMigrate(
		&lmodel.LectureModel{},
		&qmodel.QuizModel{},
		&amodel.AssignmentModel{},
		&dmodel.DocumentModel{},
	))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
	return db
}

func seedLecture(t *testing.T, db *gorm.DB, chapterID uuid.UUID, title string, order int) *lmodel.LectureModel {
	t.Helper()
	m := &lmodel.LectureModel{
		LectureChapterID:       chapterID,
		LectureTitle:           title,
		LectureChapterOrder:    order,
		LectureIsActive:        true,
		LectureDurationSeconds: 90,
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

func seedQuiz(t *testing.T, db *gorm.DB, chapterID uuid.UUID, title string, order int) *qmodel.QuizModel {
	t.Helper()
	m := &qmodel.QuizModel{
		QuizChapterID:        chapterID,
		QuizTitle:            title,
		QuizChapterOrder:     order,
		QuizIsActive:         true,
		QuizTimeLimitMinutes: 15,
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

func seedAssignment(t *testing.T, db *gorm.DB, chapterID uuid.UUID, title string, order int) *amodel.AssignmentModel {
	t.Helper()
	m := &amodel.AssignmentModel{
		AssignmentChapterID:    chapterID,
		AssignmentTitle:        title,
		AssignmentChapterOrder: order,
		AssignmentIsActive:     true,
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

func seedDocument(t *testing.T, db *gorm.DB, chapterID uuid.UUID, title string, order int) *dmodel.DocumentModel {
	t.Helper()
	m := &dmodel.DocumentModel{
		DocumentChapterID:    chapterID,
		DocumentTitle:        title,
		DocumentChapterOrder: order,
		DocumentIsActive:     true,
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

func TestListForChapter_MergesAllKindsSorted(t *testing.T) {
	db := newTestDB(t)
	chapterID := uuid.New()

	seedDocument(t, db, chapterID, "Slide pengantar", 4)
	seedLecture(t, db, chapterID, "Video intro", 1)
	seedAssignment(t, db, chapterID, "Tugas pertama", 3)
	seedQuiz(t, db, chapterID, "Kuis bab 1", 2)

	entries, err := ListForChapter(db, chapterID, ListOptions{})
	require.NoError(t, err)
	require.Len(t, entries, 4)

	kinds := make([]string, 0, 4)
	for _, e := range entries {
		kinds = append(kinds, e.EntryKind())
	}
	require.Equal(t, []string{KindLecture, KindQuiz, KindAssignment, KindDocument}, kinds)
	for i := 0; i < len(entries)-1; i++ {
		require.LessOrEqual(t, entries[i].EntryOrder(), entries[i+1].EntryOrder())
	}
}

func TestListForChapter_TieBreakByIDIsDeterministic(t *testing.T) {
	db := newTestDB(t)
	chapterID := uuid.New()

	// dua item beda jenis dengan order sama
	l := seedLecture(t, db, chapterID, "A", 1)
	q := seedQuiz(t, db, chapterID, "B", 1)

	first, err := ListForChapter(db, chapterID, ListOptions{})
	require.NoError(t, err)
	second, err := ListForChapter(db, chapterID, ListOptions{})
	require.NoError(t, err)
	require.Len(t, first, 2)

	require.Equal(t, first[0].EntryID(), second[0].EntryID())
	require.Equal(t, first[1].EntryID(), second[1].EntryID())

	wantFirst := l.LectureID
	if q.QuizID.String() < l.LectureID.String() {
		wantFirst = q.QuizID
	}
	require.Equal(t, wantFirst, first[0].EntryID())
}

func TestListForChapter_ScopedToChapter(t *testing.T) {
	db := newTestDB(t)
	chapterID := uuid.New()
	otherChapter := uuid.New()

	seedLecture(t, db, chapterID, "Punya kita", 1)
	seedLecture(t, db, otherChapter, "Punya tetangga", 1)

	entries, err := ListForChapter(db, chapterID, ListOptions{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "Punya kita", entries[0].EntryTitle())
}

func TestListForChapter_SearchMatchesTitleAndKind(t *testing.T) {
	db := newTestDB(t)
	chapterID := uuid.New()

	seedLecture(t, db, chapterID, "Video pengantar Go", 1)
	seedQuiz(t, db, chapterID, "Kuis dasar", 2)
	seedDocument(t, db, chapterID, "Modul PDF", 3)

	byTitle, err := ListForChapter(db, chapterID, ListOptions{Search: "pengantar"})
	require.NoError(t, err)
	require.Len(t, byTitle, 1)
	require.Equal(t, KindLecture, byTitle[0].EntryKind())

	byKind, err := ListForChapter(db, chapterID, ListOptions{Search: "quiz"})
	require.NoError(t, err)
	require.Len(t, byKind, 1)
	require.Equal(t, "Kuis dasar", byKind[0].EntryTitle())
}

func TestListForChapter_ShowDeletedReturnsOnlyDeleted(t *testing.T) {
	db := newTestDB(t)
	chapterID := uuid.New()

	alive := seedLecture(t, db, chapterID, "Masih hidup", 1)
	gone := seedQuiz(t, db, chapterID, "Sudah dihapus", 2)
	require.NoError(t, db.Delete(gone).Error)

	normal, err := ListForChapter(db, chapterID, ListOptions{})
	require.NoError(t, err)
	require.Len(t, normal, 1)
	require.Equal(t, alive.LectureID, normal[0].EntryID())

	deleted, err := ListForChapter(db, chapterID, ListOptions{ShowDeleted: true})
	require.NoError(t, err)
	require.Len(t, deleted, 1)
	require.Equal(t, gone.QuizID, deleted[0].EntryID())
	require.NotNil(t, deleted[0].EntryDeletedAt())
}

func TestNextOrder_CountsAcrossKindsIncludingDeleted(t *testing.T) {
	db := newTestDB(t)
	chapterID := uuid.New()

	seedLecture(t, db, chapterID, "A", 1)
	deleted := seedDocument(t, db, chapterID, "B", 5)
	require.NoError(t, db.Delete(deleted).Error)

	next, err := NextOrder(db, chapterID)
	require.NoError(t, err)
	require.Equal(t, 6, next) // item terhapus tetap dihitung supaya restore aman

	empty, err := NextOrder(db, uuid.New())
	require.NoError(t, err)
	require.Equal(t, 1, empty)
}

func TestReorder_RewritesOrderByPosition(t *testing.T) {
	db := newTestDB(t)
	chapterID := uuid.New()

	l := seedLecture(t, db, chapterID, "A", 1)
	q := seedQuiz(t, db, chapterID, "B", 2)
	d := seedDocument(t, db, chapterID, "C", 3)

	require.NoError(t, Reorder(db, chapterID, []uuid.UUID{d.DocumentID, l.LectureID, q.QuizID}))

	entries, err := ListForChapter(db, chapterID, ListOptions{})
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, d.DocumentID, entries[0].EntryID())
	require.Equal(t, 1, entries[0].EntryOrder())
	require.Equal(t, l.LectureID, entries[1].EntryID())
	require.Equal(t, 2, entries[1].EntryOrder())
	require.Equal(t, q.QuizID, entries[2].EntryID())
	require.Equal(t, 3, entries[2].EntryOrder())
}

func TestReorder_IdempotentAndIgnoresUnknownIDs(t *testing.T) {
	db := newTestDB(t)
	chapterID := uuid.New()

	l := seedLecture(t, db, chapterID, "A", 2)
	q := seedQuiz(t, db, chapterID, "B", 1)

	order := []uuid.UUID{l.LectureID, uuid.New(), q.QuizID}
	require.NoError(t, Reorder(db, chapterID, order))
	require.NoError(t, Reorder(db, chapterID, order))

	entries, err := ListForChapter(db, chapterID, ListOptions{})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, l.LectureID, entries[0].EntryID())
	require.Equal(t, 1, entries[0].EntryOrder())
	require.Equal(t, q.QuizID, entries[1].EntryID())
	// id asing menempati posisi 2, jadi quiz dapat posisi 3
	require.Equal(t, 3, entries[1].EntryOrder())
}

func TestReorder_DoesNotTouchOtherChapters(t *testing.T) {
	db := newTestDB(t)
	chapterID := uuid.New()
	otherChapter := uuid.New()

	mine := seedLecture(t, db, chapterID, "A", 1)
	theirs := seedLecture(t, db, otherChapter, "B", 7)

	require.NoError(t, Reorder(db, chapterID, []uuid.UUID{theirs.LectureID, mine.LectureID}))

	var reloaded lmodel.LectureModel
	require.NoError(t, db.First(&reloaded, "lecture_id = ?", theirs.LectureID).Error)
	require.Equal(t, 7, reloaded.LectureChapterOrder) // id dari chapter lain dianggap tidak dikenal

	var reloadedMine lmodel.LectureModel
	require.NoError(t, db.First(&reloadedMine, "lecture_id = ?", mine.LectureID).Error)
	require.Equal(t, 2, reloadedMine.LectureChapterOrder)
}
