package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/minhhquann88/DoAn-sub001/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	reply  string
	err    error
	prompt string
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	if len(parts) > 0 {
		if text, ok := parts[0].(genai.Text); ok {
			f.prompt = string(text)
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
		Content: &genai.Content{Parts: []genai.Part{genai.Text(f.reply)}},
	}}}, nil
}

func TestEssayAssistant_WithoutKeyIsUnavailable(t *testing.T) {
	assistant, err := NewEssayAssistant(&config.Config{})
	require.NoError(t, err)

	_, _, err = assistant.SuggestFeedback(context.Background(), "q", "a", 10)
	assert.ErrorIs(t, err, ErrAssistantUnavailable)
	assert.NoError(t, assistant.(io.Closer).Close())
}

func TestEssayAssistant_SuggestFeedback(t *testing.T) {
	gen := &fakeGenerator{reply: "Score: 7.5\nFeedback:\nGood use of examples. Tighten the conclusion."}
	assistant := &geminiEssayAssistant{model: gen}

	feedback, points, err := assistant.SuggestFeedback(context.Background(), "Why is the sky blue?", "Rayleigh scattering.", 10)
	require.NoError(t, err)
	assert.Equal(t, 7.5, points)
	assert.Equal(t, "Good use of examples. Tighten the conclusion.", feedback)
	assert.Contains(t, gen.prompt, "Why is the sky blue?")
	assert.Contains(t, gen.prompt, "Rayleigh scattering.")
	assert.Contains(t, gen.prompt, "0 to 10.00")
}

func TestEssayAssistant_ClampsAndTolerates(t *testing.T) {
	tests := []struct {
		name     string
		reply    string
		max      float64
		points   float64
		feedback string
	}{
		{"above max", "Score: 12\nFeedback: Great", 10, 10, "Great"},
		{"negative", "Score: -3\nFeedback: Weak", 10, 0, "Weak"},
		{"non-numeric score", "Score: high\nFeedback: Nice", 10, 0, "Nice"},
		{"feedback without label", "Score: 4\nDecent attempt.", 10, 4, "Decent attempt."},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assistant := &geminiEssayAssistant{model: &fakeGenerator{reply: tc.reply}}
			feedback, points, err := assistant.SuggestFeedback(context.Background(), "q", "a", tc.max)
			require.NoError(t, err)
			assert.Equal(t, tc.points, points)
			assert.Equal(t, tc.feedback, feedback)
		})
	}
}

func TestEssayAssistant_Failures(t *testing.T) {
	assistant := &geminiEssayAssistant{model: &fakeGenerator{err: errors.New("quota")}}
	_, _, err := assistant.SuggestFeedback(context.Background(), "q", "a", 10)
	assert.ErrorContains(t, err, "quota")

	assistant = &geminiEssayAssistant{model: &fakeGenerator{reply: "I cannot grade this."}}
	_, _, err = assistant.SuggestFeedback(context.Background(), "q", "a", 10)
	assert.ErrorContains(t, err, "Score:")

	assistant = &geminiEssayAssistant{model: &fakeGenerator{reply: "Score: 5"}}
	_, _, err = assistant.SuggestFeedback(context.Background(), "q", "a", 10)
	assert.ErrorContains(t, err, "feedback")
}
