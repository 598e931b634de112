package dto

import (
	"time"

	"github.com/google/uuid"

	"kursusku_backend/internals/features/curriculum/questions/service"
)

type OptionInput struct {
	OptionID        *uuid.UUID `json:"option_id"`
	OptionText      string     `json:"option_text" validate:"required"`
	OptionIsCorrect bool       `json:"option_is_correct"`
}

type QuestionInput struct {
	QuestionID   *uuid.UUID    `json:"question_id"`
	QuestionText string        `json:"question_text" validate:"required"`
	Options      []OptionInput `json:"options" validate:"required,min=2,dive"`
}

type ReplaceQuestionsRequest struct {
	Questions []QuestionInput `json:"questions" validate:"required,min=1,dive"`
}

func (r *ReplaceQuestionsRequest) ToSpecs() []service.QuestionSpec {
	specs := make([]service.QuestionSpec, 0, len(r.Questions))
	for _, q := range r.Questions {
		opts := make([]service.OptionSpec, 0, len(q.Options))
		for _, o := range q.Options {
			opts = append(opts, service.OptionSpec{
				ID:        o.OptionID,
				Text:      o.OptionText,
				IsCorrect: o.OptionIsCorrect,
			})
		}
		specs = append(specs, service.QuestionSpec{
			ID:      q.QuestionID,
			Text:    q.QuestionText,
			Options: opts,
		})
	}
	return specs
}

type OptionResponse struct {
	OptionID        uuid.UUID `json:"option_id"`
	OptionText      string    `json:"option_text"`
	OptionIsCorrect bool      `json:"option_is_correct"`
	OptionOrder     int       `json:"option_order"`
}

type QuestionResponse struct {
	QuestionID        uuid.UUID        `json:"question_id"`
	QuestionQuizID    uuid.UUID        `json:"question_quiz_id"`
	QuestionText      string           `json:"question_text"`
	QuestionOrder     int              `json:"question_order"`
	QuestionPoints    float64          `json:"question_points"`
	QuestionCreatedAt time.Time        `json:"question_created_at"`
	Options           []OptionResponse `json:"options"`
}

func ToQuestionResponses(rows []service.QuestionWithOptions) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(rows))
	for _, row := range rows {
		opts := make([]OptionResponse, 0, len(row.Options))
		for _, o := range row.Options {
			opts = append(opts, OptionResponse{
				OptionID:        o.OptionID,
				OptionText:      o.OptionText,
				OptionIsCorrect: o.OptionIsCorrect,
				OptionOrder:     o.OptionOrder,
			})
		}
		out = append(out, QuestionResponse{
			QuestionID:        row.Question.QuestionID,
			QuestionQuizID:    row.Question.QuestionQuizID,
			QuestionText:      row.Question.QuestionText,
			QuestionOrder:     row.Question.QuestionOrder,
			QuestionPoints:    row.Question.QuestionPoints,
			QuestionCreatedAt: row.Question.QuestionCreatedAt,
			Options:           opts,
		})
	}
	return out
}
