package service

import (
	"context"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/minhhquann88/DoAn-sub001/internal/dto"
	"github.com/minhhquann88/DoAn-sub001/internal/repository"
	"github.com/rs/zerolog/log"
)

// UserTestService is the learner's read-only view of the catalog. Correctness flags never
// leave this service.
type UserTestService interface {
	GetAllTests(ctx context.Context, caller Caller, courseID *uint) ([]dto.TestSummaryDTO, error)
	GetTestDetails(ctx context.Context, caller Caller, testID uint) (*dto.TestResponseDTO, error)
}

type userTestService struct {
	testRepo repository.TestRepository
	access   AccessPolicy
}

func NewUserTestService(testRepo repository.TestRepository, access AccessPolicy) UserTestService {
	return &userTestService{testRepo: testRepo, access: access}
}

// GetAllTests lists tests of the courses the caller owns or is enrolled in. A course filter
// outside that set is Forbidden.
func (s *userTestService) GetAllTests(ctx context.Context, caller Caller, courseID *uint) ([]dto.TestSummaryDTO, error) {
	var courseIDs []uint
	if courseID != nil {
		if err := s.access.RequireCourseMember(ctx, caller, *courseID); err != nil {
			return nil, err
		}
		courseIDs = []uint{*courseID}
	} else {
		visible, err := s.access.VisibleCourseIDs(ctx, caller)
		if err != nil {
			return nil, err
		}
		courseIDs = visible
	}

	testsWithCount, err := s.testRepo.FindAllWithQuestionCount(ctx, courseIDs)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get all tests with question count from repository")
		return nil, fmt.Errorf("error fetching tests: %w", err)
	}

	dtos := make([]dto.TestSummaryDTO, 0, len(testsWithCount))
	for _, twc := range testsWithCount {
		dtos = append(dtos, dto.TestSummaryDTO{
			ID:            twc.Test.ID,
			CourseID:      twc.Test.CourseID,
			Title:         twc.Test.Title,
			Type:          twc.Test.Type,
			OpensAt:       twc.Test.OpensAt,
			ClosesAt:      twc.Test.ClosesAt,
			QuestionCount: twc.QuestionCount,
			CreatedAt:     twc.Test.CreatedAt,
		})
	}
	return dtos, nil
}

func (s *userTestService) GetTestDetails(ctx context.Context, caller Caller, testID uint) (*dto.TestResponseDTO, error) {
	test, err := s.testRepo.FindByIDWithQuestions(ctx, testID)
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("Failed to get test details from repository")
		return nil, notFoundOr(err, "test", testID)
	}
	if err := s.access.RequireCourseMember(ctx, caller, test.CourseID); err != nil {
		return nil, err
	}

	var resp dto.TestResponseDTO
	if err := copier.Copy(&resp, test); err != nil {
		log.Error().Err(err).Msg("Failed to copy Test model to TestResponseDTO")
		return nil, fmt.Errorf("error preparing test details response: %w", err)
	}
	if resp.Questions == nil {
		resp.Questions = []dto.QuestionResponseDTO{}
	}
	return &resp, nil
}
