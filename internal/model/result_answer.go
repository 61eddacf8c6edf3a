package model

import (
	"fmt"
	"strings"
	"time"
)

// ResultAnswer is a learner's answer to one question. Exactly one of ChosenOptionID and
// EssayText is set, selected by Kind; the check constraint enforces it in storage too.
// Build values with NewChoiceAnswer or NewEssayAnswer.
type ResultAnswer struct {
	ID             uint          `gorm:"primarykey" json:"id"`
	ResultID       uint          `json:"result_id" gorm:"not null;uniqueIndex:idx_result_answers_result_question"`
	QuestionID     uint          `json:"question_id" gorm:"not null;uniqueIndex:idx_result_answers_result_question;index"`
	Question       Question      `json:"-" gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Kind           QuestionType  `json:"kind" gorm:"type:varchar(32);not null;index"`
	ChosenOptionID *uint         `json:"chosen_option_id,omitempty" gorm:"index"`
	ChosenOption   *AnswerOption `json:"-" gorm:"foreignKey:ChosenOptionID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	EssayText      *string       `json:"essay_text,omitempty" gorm:"type:text;check:chk_result_answers_payload,(chosen_option_id IS NULL) <> (essay_text IS NULL)"`
	Points         float64       `json:"points" gorm:"not null"`
	Feedback       *string       `json:"feedback,omitempty" gorm:"type:text"`
	GradedBy       *uint         `json:"graded_by,omitempty"`
	GradedAt       *time.Time    `json:"graded_at,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// NewChoiceAnswer builds the multiple-choice variant. The option must belong to q.
func NewChoiceAnswer(q *Question, optionID uint) (ResultAnswer, error) {
	if q.Type != QuestionTypeMultipleChoice {
		return ResultAnswer{}, fmt.Errorf("question %d is %s and cannot take a chosen option", q.ID, q.Type)
	}
	if _, ok := q.Option(optionID); !ok {
		return ResultAnswer{}, fmt.Errorf("option %d does not belong to question %d", optionID, q.ID)
	}
	id := optionID
	return ResultAnswer{
		QuestionID:     q.ID,
		Kind:           QuestionTypeMultipleChoice,
		ChosenOptionID: &id,
	}, nil
}

// NewEssayAnswer builds the essay variant. Blank text is rejected.
func NewEssayAnswer(q *Question, text string) (ResultAnswer, error) {
	if q.Type != QuestionTypeEssay {
		return ResultAnswer{}, fmt.Errorf("question %d is %s and cannot take essay text", q.ID, q.Type)
	}
	if strings.TrimSpace(text) == "" {
		return ResultAnswer{}, fmt.Errorf("essay text for question %d must not be blank", q.ID)
	}
	t := text
	return ResultAnswer{
		QuestionID: q.ID,
		Kind:       QuestionTypeEssay,
		EssayText:  &t,
	}, nil
}

func (a *ResultAnswer) IsEssay() bool {
	return a.Kind == QuestionTypeEssay
}

func (a *ResultAnswer) IsFedBack() bool {
	return a.Feedback != nil
}
