package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuizQuestionModel: soal pilihan ganda milik sebuah quiz.
// Poin per soal dihitung rata dari total poin quiz saat replace.
type QuizQuestionModel struct {
	QuestionID     uuid.UUID `gorm:"column:question_id;type:uuid;primaryKey" json:"question_id"`
	QuestionQuizID uuid.UUID `gorm:"column:question_quiz_id;type:uuid;not null;index" json:"question_quiz_id"`
	QuestionText   string    `gorm:"column:question_text;type:text;not null" json:"question_text"`
	QuestionOrder  int       `gorm:"column:question_order;not null;default:0" json:"question_order"`
	QuestionPoints float64   `gorm:"column:question_points;type:numeric;not null;default:0" json:"question_points"`

	QuestionCreatedAt time.Time      `gorm:"column:question_created_at;autoCreateTime" json:"question_created_at"`
	QuestionUpdatedAt time.Time      `gorm:"column:question_updated_at;autoUpdateTime" json:"question_updated_at"`
	QuestionDeletedAt gorm.DeletedAt `gorm:"column:question_deleted_at;index" json:"-"`
}

func (QuizQuestionModel) TableName() string {
	return "quiz_questions"
}

func (m *QuizQuestionModel) BeforeCreate(tx *gorm.DB) error {
	if m.QuestionID == uuid.Nil {
		m.QuestionID = uuid.New()
	}
	return nil
}

// QuizOptionModel: pilihan jawaban sebuah soal.
// Dihapus keras saat replace karena tidak ada kebutuhan restore per opsi.
type QuizOptionModel struct {
	OptionID         uuid.UUID `gorm:"column:option_id;type:uuid;primaryKey" json:"option_id"`
	OptionQuestionID uuid.UUID `gorm:"column:option_question_id;type:uuid;not null;index" json:"option_question_id"`
	OptionText       string    `gorm:"column:option_text;type:text;not null" json:"option_text"`
	OptionIsCorrect  bool      `gorm:"column:option_is_correct;not null;default:false" json:"option_is_correct"`
	OptionOrder      int       `gorm:"column:option_order;not null;default:0" json:"option_order"`

	OptionCreatedAt time.Time `gorm:"column:option_created_at;autoCreateTime" json:"option_created_at"`
	OptionUpdatedAt time.Time `gorm:"column:option_updated_at;autoUpdateTime" json:"option_updated_at"`
}

func (QuizOptionModel) TableName() string {
	return "quiz_options"
}

func (m *QuizOptionModel) BeforeCreate(tx *gorm.DB) error {
	if m.OptionID == uuid.Nil {
		m.OptionID = uuid.New()
	}
	return nil
}
