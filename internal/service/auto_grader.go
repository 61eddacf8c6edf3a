package service

import (
	"github.com/minhhquann88/DoAn-sub001/internal/model"
)

// AutoGrader scores multiple-choice answers. Every question of a test carries the same
// weight, 100 divided by the question count, so a fully correct objective test scores 100.
type AutoGrader interface {
	Weight(totalQuestions int) float64
	Grade(question *model.Question, chosen *model.AnswerOption, totalQuestions int) float64
	Recompute(answers []model.ResultAnswer) float64
}

type autoGrader struct{}

func NewAutoGrader() AutoGrader {
	return autoGrader{}
}

func (autoGrader) Weight(totalQuestions int) float64 {
	if totalQuestions <= 0 {
		return 0
	}
	return MaxScore / float64(totalQuestions)
}

// Grade returns the contribution of one chosen option. Essay questions and options that
// do not belong to the question contribute nothing.
func (g autoGrader) Grade(question *model.Question, chosen *model.AnswerOption, totalQuestions int) float64 {
	if question == nil || chosen == nil || question.Type != model.QuestionTypeMultipleChoice {
		return 0
	}
	if chosen.QuestionID != question.ID || !chosen.IsCorrect {
		return 0
	}
	return g.Weight(totalQuestions)
}

// Recompute sums stored contributions, clamped to the score range.
func (autoGrader) Recompute(answers []model.ResultAnswer) float64 {
	sum := 0.0
	for _, a := range answers {
		sum += a.Points
	}
	return ClampScore(sum)
}
