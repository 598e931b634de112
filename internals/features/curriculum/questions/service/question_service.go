package service

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/curriculum/questions/model"
	quizModel "kursusku_backend/internals/features/curriculum/quizzes/model"
)

// OptionSpec / QuestionSpec: bentuk yang diinginkan caller setelah replace.
// ID nil berarti baris baru; ID terisi berarti upsert ke baris lama.
type OptionSpec struct {
	ID        *uuid.UUID
	Text      string
	IsCorrect bool
}

type QuestionSpec struct {
	ID      *uuid.UUID
	Text    string
	Options []OptionSpec
}

// QuestionWithOptions: hasil baca untuk response.
type QuestionWithOptions struct {
	Question model.QuizQuestionModel
	Options  []model.QuizOptionModel
}

// ReplaceQuestions mengganti seluruh bank soal sebuah quiz dalam satu operasi.
//   - question_order mengikuti posisi di daftar (index+1)
//   - question_points = total poin quiz dibagi jumlah soal (float, tidak dibulatkan)
//   - opsi di-diff berdasarkan id: id lama yang dikirim dipertahankan,
//     yang tidak dikirim dihapus keras
//   - soal lama yang tidak dikirim di-soft-delete
//
// Tiap soal wajib punya minimal satu opsi benar, dicek sebelum menulis apa pun.
func ReplaceQuestions(tx *gorm.DB, quizID uuid.UUID, specs []QuestionSpec) ([]QuestionWithOptions, error) {
	for i, q := range specs {
		if !hasCorrectOption(q.Options) {
			return nil, fiber.NewError(fiber.StatusBadRequest,
				"Setiap soal wajib punya minimal satu jawaban benar (soal ke-"+strconv.Itoa(i+1)+")")
		}
	}

	var quiz quizModel.QuizModel
	if err := tx.First(&quiz, "quiz_id = ?", quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Quiz tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil quiz")
	}

	points := 0.0
	if quiz.QuizTotalPoints > 0 && len(specs) > 0 {
		points = quiz.QuizTotalPoints / float64(len(specs))
	}

	var existing []model.QuizQuestionModel
	if err := tx.Where("question_quiz_id = ?", quizID).Find(&existing).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil soal")
	}
	existingByID := make(map[uuid.UUID]*model.QuizQuestionModel, len(existing))
	for i := range existing {
		existingByID[existing[i].QuestionID] = &existing[i]
	}

	keptQuestions := make(map[uuid.UUID]bool, len(specs))
	result := make([]QuestionWithOptions, 0, len(specs))

	for i, spec := range specs {
		order := i + 1

		var question *model.QuizQuestionModel
		if spec.ID != nil {
			if cur, ok := existingByID[*spec.ID]; ok {
				cur.QuestionText = strings.TrimSpace(spec.Text)
				cur.QuestionOrder = order
				cur.QuestionPoints = points
				if err := tx.Save(cur).Error; err != nil {
					return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan soal")
				}
				question = cur
			}
		}
		if question == nil {
			// id tidak dikirim atau tidak dikenal → buat baris baru
			question = &model.QuizQuestionModel{
				QuestionQuizID: quizID,
				QuestionText:   strings.TrimSpace(spec.Text),
				QuestionOrder:  order,
				QuestionPoints: points,
			}
			if err := tx.Create(question).Error; err != nil {
				return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat soal")
			}
		}
		keptQuestions[question.QuestionID] = true

		options, err := replaceOptions(tx, question.QuestionID, spec.Options)
		if err != nil {
			return nil, err
		}
		result = append(result, QuestionWithOptions{Question: *question, Options: options})
	}

	for i := range existing {
		if keptQuestions[existing[i].QuestionID] {
			continue
		}
		if err := tx.Delete(&existing[i]).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus soal lama")
		}
	}

	return result, nil
}

func replaceOptions(tx *gorm.DB, questionID uuid.UUID, specs []OptionSpec) ([]model.QuizOptionModel, error) {
	var existing []model.QuizOptionModel
	if err := tx.Where("option_question_id = ?", questionID).Find(&existing).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil opsi")
	}
	existingByID := make(map[uuid.UUID]*model.QuizOptionModel, len(existing))
	for i := range existing {
		existingByID[existing[i].OptionID] = &existing[i]
	}

	kept := make(map[uuid.UUID]bool, len(specs))
	result := make([]model.QuizOptionModel, 0, len(specs))

	for j, spec := range specs {
		order := j + 1

		var option *model.QuizOptionModel
		if spec.ID != nil {
			if cur, ok := existingByID[*spec.ID]; ok {
				cur.OptionText = strings.TrimSpace(spec.Text)
				cur.OptionIsCorrect = spec.IsCorrect
				cur.OptionOrder = order
				if err := tx.Save(cur).Error; err != nil {
					return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan opsi")
				}
				option = cur
			}
		}
		if option == nil {
			option = &model.QuizOptionModel{
				OptionQuestionID: questionID,
				OptionText:       strings.TrimSpace(spec.Text),
				OptionIsCorrect:  spec.IsCorrect,
				OptionOrder:      order,
			}
			if err := tx.Create(option).Error; err != nil {
				return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat opsi")
			}
		}
		kept[option.OptionID] = true
		result = append(result, *option)
	}

	// diff: opsi lama yang tidak dikirim dibuang
	for i := range existing {
		if kept[existing[i].OptionID] {
			continue
		}
		if err := tx.Delete(&existing[i]).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus opsi lama")
		}
	}

	return result, nil
}

// ListQuestions mengambil soal sebuah quiz berikut opsinya, urut question_order.
func ListQuestions(tx *gorm.DB, quizID uuid.UUID) ([]QuestionWithOptions, error) {
	var questions []model.QuizQuestionModel
	if err := tx.
		Where("question_quiz_id = ?", quizID).
		Order("question_order ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}

	out := make([]QuestionWithOptions, 0, len(questions))
	for i := range questions {
		var options []model.QuizOptionModel
		if err := tx.
			Where("option_question_id = ?", questions[i].QuestionID).
			Order("option_order ASC").
			Find(&options).Error; err != nil {
			return nil, err
		}
		out = append(out, QuestionWithOptions{Question: questions[i], Options: options})
	}
	return out, nil
}

func hasCorrectOption(options []OptionSpec) bool {
	for _, o := range options {
		if o.IsCorrect {
			return true
		}
	}
	return false
}
