package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionValidate(t *testing.T) {
	tests := []struct {
		name    string
		q       Question
		wantErr string
	}{
		{
			name: "multiple choice with one correct option",
			q: Question{Text: "2+2?", Type: QuestionTypeMultipleChoice, Options: []AnswerOption{
				{Text: "3"}, {Text: "4", IsCorrect: true},
			}},
		},
		{
			name: "multiple choice with several correct options",
			q: Question{Text: "Even numbers", Type: QuestionTypeMultipleChoice, Options: []AnswerOption{
				{Text: "2", IsCorrect: true}, {Text: "4", IsCorrect: true},
			}},
		},
		{
			name:    "multiple choice without options",
			q:       Question{Text: "Empty", Type: QuestionTypeMultipleChoice},
			wantErr: "at least one option",
		},
		{
			name: "multiple choice without a correct option",
			q: Question{Text: "None", Type: QuestionTypeMultipleChoice, Options: []AnswerOption{
				{Text: "a"}, {Text: "b"},
			}},
			wantErr: "at least one correct option",
		},
		{
			name: "blank option text",
			q: Question{Text: "Blank", Type: QuestionTypeMultipleChoice, Options: []AnswerOption{
				{Text: "  ", IsCorrect: true},
			}},
			wantErr: "option text must not be blank",
		},
		{
			name: "essay",
			q:    Question{Text: "Explain", Type: QuestionTypeEssay},
		},
		{
			name:    "essay with options",
			q:       Question{Text: "Explain", Type: QuestionTypeEssay, Options: []AnswerOption{{Text: "x"}}},
			wantErr: "must not have options",
		},
		{
			name:    "blank text",
			q:       Question{Text: " ", Type: QuestionTypeEssay},
			wantErr: "text must not be blank",
		},
		{
			name:    "unknown type",
			q:       Question{Text: "?", Type: "TRUE_FALSE"},
			wantErr: "unknown question type",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.q.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestNewChoiceAnswer(t *testing.T) {
	q := &Question{ID: 7, Text: "Pick", Type: QuestionTypeMultipleChoice, Options: []AnswerOption{
		{ID: 70, QuestionID: 7, Text: "a", IsCorrect: true},
		{ID: 71, QuestionID: 7, Text: "b"},
	}}

	a, err := NewChoiceAnswer(q, 71)
	require.NoError(t, err)
	assert.Equal(t, uint(7), a.QuestionID)
	assert.Equal(t, QuestionTypeMultipleChoice, a.Kind)
	require.NotNil(t, a.ChosenOptionID)
	assert.Equal(t, uint(71), *a.ChosenOptionID)
	assert.Nil(t, a.EssayText)
	assert.False(t, a.IsEssay())

	_, err = NewChoiceAnswer(q, 99)
	assert.ErrorContains(t, err, "does not belong to question 7")

	essay := &Question{ID: 8, Type: QuestionTypeEssay}
	_, err = NewChoiceAnswer(essay, 70)
	assert.ErrorContains(t, err, "cannot take a chosen option")
}

func TestNewEssayAnswer(t *testing.T) {
	q := &Question{ID: 3, Text: "Why?", Type: QuestionTypeEssay}

	a, err := NewEssayAnswer(q, "Because.")
	require.NoError(t, err)
	assert.True(t, a.IsEssay())
	assert.False(t, a.IsFedBack())
	require.NotNil(t, a.EssayText)
	assert.Equal(t, "Because.", *a.EssayText)
	assert.Nil(t, a.ChosenOptionID)

	_, err = NewEssayAnswer(q, " \n\t")
	assert.ErrorContains(t, err, "must not be blank")

	mc := &Question{ID: 4, Type: QuestionTypeMultipleChoice}
	_, err = NewEssayAnswer(mc, "text")
	assert.ErrorContains(t, err, "cannot take essay text")
}

func TestCheckWindow(t *testing.T) {
	opens := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	closes := opens.Add(2 * time.Hour)
	test := &Test{OpensAt: &opens, ClosesAt: &closes}

	assert.ErrorIs(t, test.CheckWindow(opens.Add(-time.Second)), ErrTestNotOpen)
	assert.NoError(t, test.CheckWindow(opens))
	assert.NoError(t, test.CheckWindow(opens.Add(time.Hour)))
	assert.NoError(t, test.CheckWindow(closes))
	assert.ErrorIs(t, test.CheckWindow(closes.Add(time.Second)), ErrTestClosed)

	unbounded := &Test{}
	assert.NoError(t, unbounded.CheckWindow(time.Time{}))
}

func TestResultPendingEssays(t *testing.T) {
	fb := "ok"
	r := Result{Answers: []ResultAnswer{
		{Kind: QuestionTypeMultipleChoice},
		{Kind: QuestionTypeEssay},
		{Kind: QuestionTypeEssay, Feedback: &fb},
	}}
	assert.Equal(t, 1, r.PendingEssays())
	assert.False(t, r.IsGraded())

	r.Status = ResultStatusGraded
	assert.True(t, r.IsGraded())
}

func TestTestHelpers(t *testing.T) {
	test := &Test{Questions: []Question{
		{ID: 1, Type: QuestionTypeMultipleChoice},
		{ID: 2, Type: QuestionTypeEssay},
	}}
	assert.True(t, test.HasEssay())

	q, ok := test.QuestionByID(2)
	require.True(t, ok)
	assert.Equal(t, QuestionTypeEssay, q.Type)

	_, ok = test.QuestionByID(9)
	assert.False(t, ok)

	test.Questions = test.Questions[:1]
	assert.False(t, test.HasEssay())
}
