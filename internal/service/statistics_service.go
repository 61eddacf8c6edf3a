package service

import (
	"context"
	"fmt"

	"github.com/minhhquann88/DoAn-sub001/internal/dto"
	"github.com/minhhquann88/DoAn-sub001/internal/repository"
	"github.com/rs/zerolog/log"
)

type StatisticsService interface {
	// Statistics checks that caller owns the test's course.
	Statistics(ctx context.Context, caller Caller, testID uint) (*dto.TestStatisticsDTO, error)
	// Compute skips access checks; the admin CLI uses it.
	Compute(ctx context.Context, testID uint) (*dto.TestStatisticsDTO, error)
}

type statisticsService struct {
	testRepo   repository.TestRepository
	resultRepo repository.ResultRepository
	courseRepo repository.CourseRepository
	access     AccessPolicy
	cache      StatsCache
}

func NewStatisticsService(
	testRepo repository.TestRepository,
	resultRepo repository.ResultRepository,
	courseRepo repository.CourseRepository,
	access AccessPolicy,
	cache StatsCache,
) StatisticsService {
	return &statisticsService{
		testRepo:   testRepo,
		resultRepo: resultRepo,
		courseRepo: courseRepo,
		access:     access,
		cache:      cache,
	}
}

func (s *statisticsService) Statistics(ctx context.Context, caller Caller, testID uint) (*dto.TestStatisticsDTO, error) {
	test, err := s.testRepo.FindByID(ctx, testID)
	if err != nil {
		return nil, notFoundOr(err, "test", testID)
	}
	if err := s.access.RequireCourseInstructor(ctx, caller, test.CourseID); err != nil {
		return nil, err
	}
	if cached, ok := s.cache.Get(ctx, testID); ok {
		return cached, nil
	}
	stats, err := s.compute(ctx, testID, test.CourseID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, stats)
	return stats, nil
}

func (s *statisticsService) Compute(ctx context.Context, testID uint) (*dto.TestStatisticsDTO, error) {
	test, err := s.testRepo.FindByID(ctx, testID)
	if err != nil {
		return nil, notFoundOr(err, "test", testID)
	}
	return s.compute(ctx, testID, test.CourseID)
}

func (s *statisticsService) compute(ctx context.Context, testID, courseID uint) (*dto.TestStatisticsDTO, error) {
	agg, err := s.resultRepo.Aggregate(ctx, testID)
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("Statistics: Failed to aggregate results")
		return nil, fmt.Errorf("failed to aggregate results for test %d: %w", testID, err)
	}
	enrolled, err := s.courseRepo.EnrolledCount(ctx, courseID)
	if err != nil {
		log.Error().Err(err).Uint("courseID", courseID).Msg("Statistics: Failed to count enrollments")
		return nil, fmt.Errorf("failed to count enrollments for course %d: %w", courseID, err)
	}

	stats := &dto.TestStatisticsDTO{
		TestID:            testID,
		TotalSubmissions:  agg.Total,
		GradedSubmissions: agg.Graded,
		EnrolledLearners:  enrolled,
		CompletionRate:    CompletionRate(agg.Total, enrolled),
	}
	if agg.AverageScore != nil {
		avg := RoundScore(*agg.AverageScore)
		stats.AverageScore = &avg
	}
	return stats, nil
}

// CompletionRate is submissions over enrolled learners, within [0, 1]. Submissions from
// learners who have since left the course can push the raw ratio above one.
func CompletionRate(submissions, enrolled int64) float64 {
	if enrolled <= 0 {
		return 0
	}
	rate := float64(submissions) / float64(enrolled)
	if rate > 1 {
		return 1
	}
	return rate
}
