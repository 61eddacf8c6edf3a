package model

import (
	"errors"
	"time"
)

type TestType string

const (
	TestTypeMultipleChoice TestType = "MULTIPLE_CHOICE_TEST"
	TestTypeEssay          TestType = "ESSAY_TEST"
)

var (
	ErrTestNotOpen = errors.New("test not open")
	ErrTestClosed  = errors.New("test closed")
)

// Test is an assessment owned by a course. Its question set is frozen once any Result exists.
type Test struct {
	ID               uint       `gorm:"primarykey" json:"id"`
	CourseID         uint       `json:"course_id" gorm:"not null;index"`
	Title            string     `json:"title" gorm:"not null"`
	Type             TestType   `json:"type" gorm:"type:varchar(32);not null"`
	OpensAt          *time.Time `json:"opens_at,omitempty"`
	ClosesAt         *time.Time `json:"closes_at,omitempty"`
	TimeLimitMinutes *int       `json:"time_limit_minutes,omitempty"`
	Questions        []Question `json:"questions,omitempty" gorm:"foreignKey:TestID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// CheckWindow reports whether a submission at now falls inside the open/close bounds.
// Both bounds are inclusive.
func (t *Test) CheckWindow(now time.Time) error {
	if t.OpensAt != nil && now.Before(*t.OpensAt) {
		return ErrTestNotOpen
	}
	if t.ClosesAt != nil && now.After(*t.ClosesAt) {
		return ErrTestClosed
	}
	return nil
}

// HasEssay reports whether any question needs manual grading.
func (t *Test) HasEssay() bool {
	for _, q := range t.Questions {
		if q.Type == QuestionTypeEssay {
			return true
		}
	}
	return false
}

func (t *Test) QuestionByID(id uint) (*Question, bool) {
	for i := range t.Questions {
		if t.Questions[i].ID == id {
			return &t.Questions[i], true
		}
	}
	return nil, false
}
