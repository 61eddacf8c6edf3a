package model

import (
	"time"
)

type ResultStatus string

const (
	ResultStatusPendingGrading ResultStatus = "PENDING_GRADING"
	ResultStatusGraded         ResultStatus = "GRADED" // terminal
)

// Result is one learner's single submission for a test. The (test_id, user_id) unique
// index is what rejects a second submission, including concurrent ones.
type Result struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	TestID      uint           `json:"test_id" gorm:"not null;uniqueIndex:idx_results_test_user"`
	Test        Test           `json:"-" gorm:"foreignKey:TestID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	UserID      uint           `json:"user_id" gorm:"not null;uniqueIndex:idx_results_test_user;index"`
	SubmittedAt time.Time      `json:"submitted_at" gorm:"not null"`
	Score       float64        `json:"score" gorm:"not null"`
	Status      ResultStatus   `json:"status" gorm:"type:varchar(32);not null;index"`
	Feedback    *string        `json:"feedback,omitempty" gorm:"type:text"`
	GradedAt    *time.Time     `json:"graded_at,omitempty"`
	Answers     []ResultAnswer `json:"answers,omitempty" gorm:"foreignKey:ResultID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (r *Result) IsGraded() bool {
	return r.Status == ResultStatusGraded
}

// PendingEssays counts essay answers that still lack feedback.
func (r *Result) PendingEssays() int {
	n := 0
	for _, a := range r.Answers {
		if a.Kind == QuestionTypeEssay && a.Feedback == nil {
			n++
		}
	}
	return n
}
