package model

import (
	"time"
)

// Course and Enrollment are read-side projections of the course catalog. The engine only
// needs the owning instructor and who is enrolled.
type Course struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Title        string    `json:"title" gorm:"not null"`
	InstructorID uint      `json:"instructor_id" gorm:"not null;index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Enrollment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CourseID  uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_enrollments_course_user"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_enrollments_course_user;index"`
	CreatedAt time.Time `json:"created_at"`
}
