package dto

import (
	"time"

	"github.com/minhhquann88/DoAn-sub001/internal/model"
)

// OptionResponseDTO is what a student sees of an option: no correctness flag.
type OptionResponseDTO struct {
	ID       uint   `json:"id"`
	Text     string `json:"text"`
	Position int    `json:"position"`
}

// QuestionResponseDTO is used for displaying question details to students.
type QuestionResponseDTO struct {
	ID       uint                `json:"id"`
	TestID   uint                `json:"test_id"`
	Text     string              `json:"text"`
	Type     model.QuestionType  `json:"type"`
	Position int                 `json:"position"`
	Options  []OptionResponseDTO `json:"options,omitempty"`
}

// TestResponseDTO is used for displaying full test details to students.
type TestResponseDTO struct {
	ID               uint                  `json:"id"`
	CourseID         uint                  `json:"course_id"`
	Title            string                `json:"title"`
	Type             model.TestType        `json:"type"`
	OpensAt          *time.Time            `json:"opens_at,omitempty"`
	ClosesAt         *time.Time            `json:"closes_at,omitempty"`
	TimeLimitMinutes *int                  `json:"time_limit_minutes,omitempty"`
	Questions        []QuestionResponseDTO `json:"questions"`
	CreatedAt        time.Time             `json:"created_at"`
}

// TestSummaryDTO is used for listing tests.
type TestSummaryDTO struct {
	ID            uint           `json:"id"`
	CourseID      uint           `json:"course_id"`
	Title         string         `json:"title"`
	Type          model.TestType `json:"type"`
	OpensAt       *time.Time     `json:"opens_at,omitempty"`
	ClosesAt      *time.Time     `json:"closes_at,omitempty"`
	QuestionCount int            `json:"question_count"`
	CreatedAt     time.Time      `json:"created_at"`
}

// --- Submissions ---

// SubmittedAnswerDTO answers one question. Exactly one of ChosenOptionID and EssayText is
// expected, depending on the question type.
type SubmittedAnswerDTO struct {
	QuestionID     uint    `json:"question_id" binding:"required"`
	ChosenOptionID *uint   `json:"chosen_option_id"`
	EssayText      *string `json:"essay_text"`
}

// SubmitTestDTO is the request body of a submission.
type SubmitTestDTO struct {
	Answers []SubmittedAnswerDTO `json:"answers" binding:"required,min=1,dive"`
}

// ResultAnswerDTO is one answer inside a result.
type ResultAnswerDTO struct {
	ID             uint               `json:"id"`
	QuestionID     uint               `json:"question_id"`
	QuestionText   string             `json:"question_text"`
	Kind           model.QuestionType `json:"kind"`
	ChosenOptionID *uint              `json:"chosen_option_id,omitempty"`
	IsCorrect      *bool              `json:"is_correct,omitempty"` // multiple choice only
	EssayText      *string            `json:"essay_text,omitempty"`
	Points         float64            `json:"points"`
	Feedback       *string            `json:"feedback,omitempty"`
	GradedAt       *time.Time         `json:"graded_at,omitempty"`
}

// ResultDetailDTO is a full result with its answers.
type ResultDetailDTO struct {
	ID          uint               `json:"id"`
	TestID      uint               `json:"test_id"`
	TestTitle   string             `json:"test_title,omitempty"`
	UserID      uint               `json:"user_id"`
	SubmittedAt time.Time          `json:"submitted_at"`
	Score       float64            `json:"score"`
	Status      model.ResultStatus `json:"status"`
	Feedback    *string            `json:"feedback,omitempty"`
	GradedAt    *time.Time         `json:"graded_at,omitempty"`
	Answers     []ResultAnswerDTO  `json:"answers"`
}

// ResultSummaryDTO is a result row in instructor listings.
type ResultSummaryDTO struct {
	ID          uint               `json:"id"`
	TestID      uint               `json:"test_id"`
	UserID      uint               `json:"user_id"`
	SubmittedAt time.Time          `json:"submitted_at"`
	Score       float64            `json:"score"`
	Status      model.ResultStatus `json:"status"`
	Feedback    *string            `json:"feedback,omitempty"`
	GradedAt    *time.Time         `json:"graded_at,omitempty"`
}
