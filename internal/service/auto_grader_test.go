package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/minhhquann88/DoAn-sub001/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAutoGrader_Grade(t *testing.T) {
	g := NewAutoGrader()
	q := &model.Question{ID: 1, Type: model.QuestionTypeMultipleChoice}
	right := &model.AnswerOption{ID: 10, QuestionID: 1, IsCorrect: true}
	wrong := &model.AnswerOption{ID: 11, QuestionID: 1}
	elsewhere := &model.AnswerOption{ID: 20, QuestionID: 2, IsCorrect: true}
	essay := &model.Question{ID: 3, Type: model.QuestionTypeEssay}

	tests := []struct {
		name   string
		q      *model.Question
		chosen *model.AnswerOption
		total  int
		want   float64
	}{
		{"correct of four", q, right, 4, 25},
		{"correct of three", q, right, 3, 100.0 / 3},
		{"wrong", q, wrong, 4, 0},
		{"option of another question", q, elsewhere, 4, 0},
		{"essay question", essay, right, 4, 0},
		{"nothing chosen", q, nil, 4, 0},
		{"no questions", q, right, 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, g.Grade(tc.q, tc.chosen, tc.total), 1e-9)
		})
	}
}

func TestAutoGrader_RecomputeClamps(t *testing.T) {
	g := NewAutoGrader()
	third := 100.0 / 3
	answers := []model.ResultAnswer{{Points: third}, {Points: third}, {Points: third}}
	assert.Equal(t, 100.0, g.Recompute(answers))
	assert.Equal(t, 0.0, g.Recompute(nil))
	assert.Equal(t, 0.0, g.Recompute([]model.ResultAnswer{{Points: -3}}))
}

func TestScoreConverter(t *testing.T) {
	conv := NewScoreConverterService()

	got, err := conv.ToDisplayScore(100.0 / 3)
	require.NoError(t, err)
	assert.Equal(t, 33.33, got)

	got, err = conv.ToDisplayScore(100.00000000000001)
	require.NoError(t, err)
	assert.Equal(t, 100.0, got)

	_, err = conv.ToDisplayScore(101)
	assert.Error(t, err)
	_, err = conv.ToDisplayScore(-0.5)
	assert.Error(t, err)

	assert.Equal(t, 66.67, RoundScore(200.0/3))
	assert.Equal(t, 0.0, ClampScore(-1))
	assert.Equal(t, MaxScore, ClampScore(150))
}

func TestErrorKinds(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.Equal(t, KindInternal, KindOf(nil))

	wrapped := fmt.Errorf("outer: %w", Conflict("already submitted"))
	assert.Equal(t, KindConflict, KindOf(wrapped))
	assert.Equal(t, "conflict", KindConflict.String())

	nf := notFoundOr(gorm.ErrRecordNotFound, "test", 4)
	assert.Equal(t, KindNotFound, KindOf(nf))
	assert.Equal(t, "test 4 not found: record not found", nf.Error())
	assert.ErrorIs(t, nf, gorm.ErrRecordNotFound)

	other := notFoundOr(errors.New("disk full"), "test", 4)
	assert.Equal(t, KindInternal, KindOf(other))

	wc := WindowClosed(model.ErrTestClosed)
	assert.Equal(t, "test closed", wc.Error())
	assert.ErrorIs(t, wc, model.ErrTestClosed)
}
