package dto

import (
	"time"

	"github.com/minhhquann88/DoAn-sub001/internal/model"
)

// OptionCreateDTO is one answer option of a multiple-choice question.
type OptionCreateDTO struct {
	Text      string `json:"text" binding:"required,notblank"`
	IsCorrect bool   `json:"is_correct"`
}

// QuestionCreateDTO is used both inside TestCreateDTO and for adding a question later.
type QuestionCreateDTO struct {
	Text     string             `json:"text" binding:"required,notblank"`
	Type     model.QuestionType `json:"type" binding:"required,oneof=MULTIPLE_CHOICE ESSAY"`
	Position int                `json:"position" binding:"omitempty,min=1"`
	Options  []OptionCreateDTO  `json:"options" binding:"omitempty,dive"`
}

// TestCreateDTO is for an instructor to create a test, optionally with its questions.
type TestCreateDTO struct {
	CourseID         uint                `json:"course_id" binding:"required"`
	Title            string              `json:"title" binding:"required,notblank"`
	Type             model.TestType      `json:"type" binding:"required,oneof=MULTIPLE_CHOICE_TEST ESSAY_TEST"`
	OpensAt          *time.Time          `json:"opens_at"`
	ClosesAt         *time.Time          `json:"closes_at"`
	TimeLimitMinutes *int                `json:"time_limit_minutes" binding:"omitempty,min=1"`
	Questions        []QuestionCreateDTO `json:"questions" binding:"omitempty,dive"`
}

// TestUpdateDTO replaces the editable metadata of a test.
type TestUpdateDTO struct {
	Title            string         `json:"title" binding:"required,notblank"`
	Type             model.TestType `json:"type" binding:"required,oneof=MULTIPLE_CHOICE_TEST ESSAY_TEST"`
	OpensAt          *time.Time     `json:"opens_at"`
	ClosesAt         *time.Time     `json:"closes_at"`
	TimeLimitMinutes *int           `json:"time_limit_minutes" binding:"omitempty,min=1"`
}

// AdminOptionDTO exposes the correctness flag, for instructors only.
type AdminOptionDTO struct {
	ID        uint   `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
	Position  int    `json:"position"`
}

type AdminQuestionDTO struct {
	ID       uint               `json:"id"`
	TestID   uint               `json:"test_id"`
	Text     string             `json:"text"`
	Type     model.QuestionType `json:"type"`
	Position int                `json:"position"`
	Options  []AdminOptionDTO   `json:"options,omitempty"`
}

type AdminTestDTO struct {
	ID               uint               `json:"id"`
	CourseID         uint               `json:"course_id"`
	Title            string             `json:"title"`
	Type             model.TestType     `json:"type"`
	OpensAt          *time.Time         `json:"opens_at,omitempty"`
	ClosesAt         *time.Time         `json:"closes_at,omitempty"`
	TimeLimitMinutes *int               `json:"time_limit_minutes,omitempty"`
	Locked           bool               `json:"locked"` // true once any result exists
	Questions        []AdminQuestionDTO `json:"questions"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}
