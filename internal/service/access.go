package service

import (
	"context"
	"fmt"

	"github.com/minhhquann88/DoAn-sub001/internal/model"
	"github.com/minhhquann88/DoAn-sub001/internal/repository"
)

type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
)

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleInstructor
}

// Caller is the authenticated identity behind a request.
type Caller struct {
	UserID uint
	Role   Role
}

func (c Caller) IsInstructor() bool { return c.Role == RoleInstructor }
func (c Caller) IsStudent() bool    { return c.Role == RoleStudent }

// AccessPolicy answers ownership and enrollment questions against the course tables.
type AccessPolicy interface {
	RequireCourseInstructor(ctx context.Context, caller Caller, courseID uint) error
	RequireEnrolledStudent(ctx context.Context, caller Caller, courseID uint) error
	CanViewResult(ctx context.Context, caller Caller, result *model.Result, courseID uint) error
	RequireCourseMember(ctx context.Context, caller Caller, courseID uint) error
	VisibleCourseIDs(ctx context.Context, caller Caller) ([]uint, error)
}

type accessPolicy struct {
	courseRepo repository.CourseRepository
}

func NewAccessPolicy(courseRepo repository.CourseRepository) AccessPolicy {
	return &accessPolicy{courseRepo: courseRepo}
}

func (p *accessPolicy) RequireCourseInstructor(ctx context.Context, caller Caller, courseID uint) error {
	if !caller.IsInstructor() {
		return Forbidden("instructor role required")
	}
	course, err := p.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		return notFoundOr(err, "course", courseID)
	}
	if course.InstructorID != caller.UserID {
		return Forbidden("user %d does not own course %d", caller.UserID, courseID)
	}
	return nil
}

func (p *accessPolicy) RequireEnrolledStudent(ctx context.Context, caller Caller, courseID uint) error {
	if !caller.IsStudent() {
		return Forbidden("student role required")
	}
	enrolled, err := p.courseRepo.IsEnrolled(ctx, courseID, caller.UserID)
	if err != nil {
		return fmt.Errorf("failed to check enrollment: %w", err)
	}
	if !enrolled {
		return Forbidden("user %d is not enrolled in course %d", caller.UserID, courseID)
	}
	return nil
}

// CanViewResult lets the submitting student or the owning instructor read a result.
func (p *accessPolicy) CanViewResult(ctx context.Context, caller Caller, result *model.Result, courseID uint) error {
	if caller.IsStudent() {
		if result.UserID != caller.UserID {
			return Forbidden("result %d belongs to another user", result.ID)
		}
		return nil
	}
	return p.RequireCourseInstructor(ctx, caller, courseID)
}

// RequireCourseMember accepts the owning instructor or an enrolled student.
func (p *accessPolicy) RequireCourseMember(ctx context.Context, caller Caller, courseID uint) error {
	if caller.IsInstructor() {
		return p.RequireCourseInstructor(ctx, caller, courseID)
	}
	return p.RequireEnrolledStudent(ctx, caller, courseID)
}

// VisibleCourseIDs is the set of courses whose tests the caller may list.
func (p *accessPolicy) VisibleCourseIDs(ctx context.Context, caller Caller) ([]uint, error) {
	var (
		ids []uint
		err error
	)
	switch {
	case caller.IsInstructor():
		ids, err = p.courseRepo.OwnedCourseIDs(ctx, caller.UserID)
	case caller.IsStudent():
		ids, err = p.courseRepo.EnrolledCourseIDs(ctx, caller.UserID)
	default:
		return nil, Forbidden("unknown role %q", caller.Role)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load courses of user %d: %w", caller.UserID, err)
	}
	return ids, nil
}
