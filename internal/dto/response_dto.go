package dto

import "time"

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// --- Grading ---

type GradeEssayDTO struct {
	Feedback      string   `json:"feedback" binding:"required,notblank"`
	AwardedPoints *float64 `json:"awarded_points" binding:"omitempty,gte=0"`
}

type OverallFeedbackDTO struct {
	Feedback string `json:"feedback" binding:"required,notblank"`
}

// GradeEssayResponseDTO reports the answer after grading and the parent result's state.
type GradeEssayResponseDTO struct {
	Answer ResultAnswerDTO  `json:"answer"`
	Result ResultSummaryDTO `json:"result"`
	// Finalized is true when this grading moved the result to GRADED.
	Finalized bool `json:"finalized"`
}

type PendingEssayDTO struct {
	ResultAnswerID uint      `json:"result_answer_id"`
	ResultID       uint      `json:"result_id"`
	UserID         uint      `json:"user_id"`
	QuestionID     uint      `json:"question_id"`
	QuestionText   string    `json:"question_text"`
	EssayText      string    `json:"essay_text"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

type FeedbackSuggestionDTO struct {
	ResultAnswerID  uint    `json:"result_answer_id"`
	Feedback        string  `json:"feedback"`
	SuggestedPoints float64 `json:"suggested_points"`
	MaxPoints       float64 `json:"max_points"`
}

// --- Statistics ---

type TestStatisticsDTO struct {
	TestID            uint     `json:"test_id"`
	AverageScore      *float64 `json:"average_score"` // null when nothing is graded yet
	TotalSubmissions  int64    `json:"total_submissions"`
	GradedSubmissions int64    `json:"graded_submissions"`
	EnrolledLearners  int64    `json:"enrolled_learners"`
	CompletionRate    float64  `json:"completion_rate"`
}
