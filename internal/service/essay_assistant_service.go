package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/minhhquann88/DoAn-sub001/config"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// ErrAssistantUnavailable is returned when no Gemini API key is configured.
var ErrAssistantUnavailable = errors.New("essay assistant is not configured")

// EssayAssistant drafts feedback for an essay answer. The draft is a suggestion for the
// instructor and is never stored.
type EssayAssistant interface {
	SuggestFeedback(ctx context.Context, questionText, essayText string, maxPoints float64) (feedback string, points float64, err error)
}

// contentGenerator is the slice of *genai.GenerativeModel the assistant needs.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type geminiEssayAssistant struct {
	client *genai.Client
	model  contentGenerator
}

func NewEssayAssistant(cfg *config.Config) (EssayAssistant, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Essay feedback suggestions are disabled.")
		return &geminiEssayAssistant{}, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel(cfg.GeminiModel)
	model.SetTemperature(0.2)
	return &geminiEssayAssistant{client: client, model: model}, nil
}

// Close releases the Gemini client. It is a no-op when no key was configured.
func (a *geminiEssayAssistant) Close() error {
	if a.client == nil {
		return nil
	}
	return a.client.Close()
}

func (a *geminiEssayAssistant) SuggestFeedback(ctx context.Context, questionText, essayText string, maxPoints float64) (string, float64, error) {
	if a.model == nil {
		return "", 0, ErrAssistantUnavailable
	}

	resp, err := a.model.GenerateContent(ctx, genai.Text(buildEssayPrompt(questionText, essayText, maxPoints)))
	if err != nil {
		log.Error().Err(err).Msg("Gemini API error while drafting essay feedback")
		return "", 0, fmt.Errorf("gemini request failed: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", 0, fmt.Errorf("gemini returned no content")
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}
	if text.Len() == 0 {
		return "", 0, fmt.Errorf("gemini returned no text content")
	}

	scoreStr, feedback, err := parseScoreAndFeedback(text.String())
	if err != nil {
		log.Warn().Err(err).Str("rawResponse", text.String()).Msg("Failed to parse score and feedback from Gemini response")
		return "", 0, err
	}
	points, err := strconv.ParseFloat(scoreStr, 64)
	if err != nil {
		// The feedback is still useful without a number.
		log.Warn().Err(err).Str("scoreStr", scoreStr).Msg("Gemini score is not a number")
		return feedback, 0, nil
	}
	if points < 0 {
		points = 0
	}
	if points > maxPoints {
		points = maxPoints
	}
	return feedback, points, nil
}

func buildEssayPrompt(questionText, essayText string, maxPoints float64) string {
	var b strings.Builder
	b.WriteString("You are an experienced course instructor reviewing a student's written answer.\n")
	b.WriteString("Question:\n---\n")
	b.WriteString(questionText)
	b.WriteString("\n---\n\nStudent's answer:\n---\n")
	b.WriteString(essayText)
	b.WriteString("\n---\n\n")
	b.WriteString(fmt.Sprintf(`Evaluate the answer for correctness, completeness and clarity.
Reply strictly in this format:
Score: <a number from 0 to %.2f>
Feedback:
<two to five sentences addressed to the student, naming one strength and the most important improvement>
`, maxPoints))
	return b.String()
}

// parseScoreAndFeedback splits a "Score: n\nFeedback: ..." reply.
func parseScoreAndFeedback(raw string) (scoreStr string, feedback string, err error) {
	const scorePrefix, feedbackPrefix = "Score:", "Feedback:"

	scoreIdx := strings.Index(raw, scorePrefix)
	if scoreIdx == -1 {
		return "", "", fmt.Errorf("response does not contain %q", scorePrefix)
	}
	rest := raw[scoreIdx+len(scorePrefix):]
	line := rest
	if nl := strings.Index(rest, "\n"); nl != -1 {
		line = rest[:nl]
		rest = rest[nl+1:]
	} else {
		rest = ""
	}
	if fields := strings.Fields(line); len(fields) > 0 {
		scoreStr = fields[0]
	}

	if fbIdx := strings.Index(rest, feedbackPrefix); fbIdx != -1 {
		feedback = strings.TrimSpace(rest[fbIdx+len(feedbackPrefix):])
	} else {
		feedback = strings.TrimSpace(rest)
	}
	if feedback == "" {
		return scoreStr, "", fmt.Errorf("response does not contain feedback")
	}
	return scoreStr, feedback, nil
}
