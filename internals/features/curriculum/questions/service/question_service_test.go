package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/curriculum/questions/model"
	quizModel "kursusku_backend/internals/features/curriculum/quizzes/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // :memory: hidup per koneksi
	require.NoError(t, db.AutoMigrate(
		&quizModel.QuizModel{},
		&model.QuizQuestionModel{},
		&model.QuizOptionModel{},
	))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
	return db
}

func seedQuiz(t *testing.T, db *gorm.DB, totalPoints float64) *quizModel.QuizModel {
	t.Helper()
	q := &quizModel.QuizModel{
		QuizChapterID:    uuid.New(),
		QuizTitle:        "Kuis bab 1",
		QuizChapterOrder: 1,
		QuizIsActive:     true,
		QuizTotalPoints:  totalPoints,
	}
	require.NoError(t, db.Create(q).Error)
	return q
}

func twoOptions(correctFirst bool) []OptionSpec {
	return []OptionSpec{
		{Text: "Jawaban A", IsCorrect: correctFirst},
		{Text: "Jawaban B", IsCorrect: !correctFirst},
	}
}

func TestReplaceQuestions_OrderFollowsPositionAndPointsSplitEvenly(t *testing.T) {
	db := newTestDB(t)
	quiz := seedQuiz(t, db, 10)

	rows, err := ReplaceQuestions(db, quiz.QuizID, []QuestionSpec{
		{Text: "Soal satu", Options: twoOptions(true)},
		{Text: "Soal dua", Options: twoOptions(true)},
		{Text: "Soal tiga", Options: twoOptions(true)},
		{Text: "Soal empat", Options: twoOptions(true)},
	})
	require.NoError(t, err)
	require.Len(t, rows, 4)

	for i, row := range rows {
		require.Equal(t, i+1, row.Question.QuestionOrder)
		// 10 / 4 = 2.5, tidak dibulatkan
		require.InDelta(t, 2.5, row.Question.QuestionPoints, 1e-9)
	}
}

func TestReplaceQuestions_ZeroTotalPointsGivesZeroPerQuestion(t *testing.T) {
	db := newTestDB(t)
	quiz := seedQuiz(t, db, 0)

	rows, err := ReplaceQuestions(db, quiz.QuizID, []QuestionSpec{
		{Text: "Soal satu", Options: twoOptions(true)},
	})
	require.NoError(t, err)
	require.Zero(t, rows[0].Question.QuestionPoints)
}

func TestReplaceQuestions_RequiresCorrectOptionBeforeWriting(t *testing.T) {
	db := newTestDB(t)
	quiz := seedQuiz(t, db, 10)

	_, err := ReplaceQuestions(db, quiz.QuizID, []QuestionSpec{
		{Text: "Soal valid", Options: twoOptions(true)},
		{Text: "Soal tanpa jawaban benar", Options: []OptionSpec{
			{Text: "A", IsCorrect: false},
			{Text: "B", IsCorrect: false},
		}},
	})
	require.Error(t, err)

	// validasi gagal sebelum menulis: soal pertama pun tidak boleh tersimpan
	var cnt int64
	require.NoError(t, db.Model(&model.QuizQuestionModel{}).
		Where("question_quiz_id = ?", quiz.QuizID).Count(&cnt).Error)
	require.Zero(t, cnt)
}

func TestReplaceQuestions_UpsertsByIDAndSoftDeletesOmitted(t *testing.T) {
	db := newTestDB(t)
	quiz := seedQuiz(t, db, 10)

	first, err := ReplaceQuestions(db, quiz.QuizID, []QuestionSpec{
		{Text: "Soal satu", Options: twoOptions(true)},
		{Text: "Soal dua", Options: twoOptions(true)},
	})
	require.NoError(t, err)

	keepID := first[0].Question.QuestionID
	droppedID := first[1].Question.QuestionID

	second, err := ReplaceQuestions(db, quiz.QuizID, []QuestionSpec{
		{ID: &keepID, Text: "Soal satu (revisi)", Options: twoOptions(true)},
	})
	require.NoError(t, err)
	require.Len(t, second, 1)
	require.Equal(t, keepID, second[0].Question.QuestionID)
	require.Equal(t, "Soal satu (revisi)", second[0].Question.QuestionText)
	require.InDelta(t, 10.0, second[0].Question.QuestionPoints, 1e-9)

	// soal yang tidak dikirim di-soft-delete, masih ada di Unscoped
	var gone model.QuizQuestionModel
	require.Error(t, db.First(&gone, "question_id = ?", droppedID).Error)
	require.NoError(t, db.Unscoped().First(&gone, "question_id = ?", droppedID).Error)
	require.True(t, gone.QuestionDeletedAt.Valid)
}

func TestReplaceQuestions_OptionDiffKeepsSentIDsDeletesRest(t *testing.T) {
	db := newTestDB(t)
	quiz := seedQuiz(t, db, 10)

	first, err := ReplaceQuestions(db, quiz.QuizID, []QuestionSpec{
		{Text: "Soal satu", Options: []OptionSpec{
			{Text: "A", IsCorrect: true},
			{Text: "B", IsCorrect: false},
			{Text: "C", IsCorrect: false},
		}},
	})
	require.NoError(t, err)
	require.Len(t, first[0].Options, 3)

	qID := first[0].Question.QuestionID
	keepA := first[0].Options[0].OptionID
	keepB := first[0].Options[1].OptionID

	second, err := ReplaceQuestions(db, quiz.QuizID, []QuestionSpec{
		{ID: &qID, Text: "Soal satu", Options: []OptionSpec{
			{ID: &keepB, Text: "B (revisi)", IsCorrect: true},
			{ID: &keepA, Text: "A", IsCorrect: false},
			{Text: "D", IsCorrect: false},
		}},
	})
	require.NoError(t, err)
	require.Len(t, second[0].Options, 3)

	// id yang dikirim dipertahankan, urutan mengikuti posisi baru
	require.Equal(t, keepB, second[0].Options[0].OptionID)
	require.Equal(t, 1, second[0].Options[0].OptionOrder)
	require.Equal(t, keepA, second[0].Options[1].OptionID)
	require.Equal(t, 2, second[0].Options[1].OptionOrder)

	// opsi C yang tidak dikirim dihapus keras
	var cnt int64
	require.NoError(t, db.Model(&model.QuizOptionModel{}).
		Where("option_question_id = ?", qID).Count(&cnt).Error)
	require.Equal(t, int64(3), cnt)
}

func TestReplaceQuestions_UnknownQuestionIDCreatesNewRow(t *testing.T) {
	db := newTestDB(t)
	quiz := seedQuiz(t, db, 10)

	phantom := uuid.New()
	rows, err := ReplaceQuestions(db, quiz.QuizID, []QuestionSpec{
		{ID: &phantom, Text: "Soal baru", Options: twoOptions(true)},
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotEqual(t, phantom, rows[0].Question.QuestionID)
}

func TestReplaceQuestions_QuizNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := ReplaceQuestions(db, uuid.New(), []QuestionSpec{
		{Text: "Soal", Options: twoOptions(true)},
	})
	require.Error(t, err)
}

func TestListQuestions_OrderedWithOptions(t *testing.T) {
	db := newTestDB(t)
	quiz := seedQuiz(t, db, 6)

	_, err := ReplaceQuestions(db, quiz.QuizID, []QuestionSpec{
		{Text: "Soal satu", Options: twoOptions(true)},
		{Text: "Soal dua", Options: twoOptions(false)},
		{Text: "Soal tiga", Options: twoOptions(true)},
	})
	require.NoError(t, err)

	rows, err := ListQuestions(db, quiz.QuizID)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for i, row := range rows {
		require.Equal(t, i+1, row.Question.QuestionOrder)
		require.Len(t, row.Options, 2)
		require.InDelta(t, 2.0, row.Question.QuestionPoints, 1e-9)
	}
}
