package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/minhhquann88/DoAn-sub001/internal/dto"
	"github.com/minhhquann88/DoAn-sub001/internal/model"
	"github.com/minhhquann88/DoAn-sub001/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// GradingService is the manual half of grading: instructors attach feedback to essay
// answers, and the last one moves the result to GRADED.
type GradingService interface {
	GradeEssayAnswer(ctx context.Context, caller Caller, resultAnswerID uint, req dto.GradeEssayDTO) (*dto.GradeEssayResponseDTO, error)
	ListPendingEssayAnswers(ctx context.Context, caller Caller, testID uint) ([]dto.PendingEssayDTO, error)
	SetOverallFeedback(ctx context.Context, caller Caller, resultID uint, feedback string) (*dto.ResultSummaryDTO, error)
	SuggestEssayFeedback(ctx context.Context, caller Caller, resultAnswerID uint) (*dto.FeedbackSuggestionDTO, error)
}

type gradingService struct {
	testRepo       repository.TestRepository
	resultRepo     repository.ResultRepository
	answerRepo     repository.ResultAnswerRepository
	access         AccessPolicy
	grader         AutoGrader
	scoreConverter ScoreConverterService
	assistant      EssayAssistant
	statsCache     StatsCache
	db             *gorm.DB
	now            func() time.Time
}

func NewGradingService(
	testRepo repository.TestRepository,
	resultRepo repository.ResultRepository,
	answerRepo repository.ResultAnswerRepository,
	access AccessPolicy,
	grader AutoGrader,
	scoreConverter ScoreConverterService,
	assistant EssayAssistant,
	statsCache StatsCache,
	db *gorm.DB,
) GradingService {
	return &gradingService{
		testRepo:       testRepo,
		resultRepo:     resultRepo,
		answerRepo:     answerRepo,
		access:         access,
		grader:         grader,
		scoreConverter: scoreConverter,
		assistant:      assistant,
		statsCache:     statsCache,
		db:             db,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// essayContext is an essay answer with the test it belongs to, after the access check.
type essayContext struct {
	answer *model.ResultAnswer
	test   *model.Test
	weight float64
}

func (s *gradingService) loadEssay(ctx context.Context, caller Caller, resultAnswerID uint) (*essayContext, error) {
	answer, err := s.answerRepo.FindByID(ctx, resultAnswerID)
	if err != nil {
		return nil, notFoundOr(err, "result answer", resultAnswerID)
	}
	result, err := s.resultRepo.FindByID(ctx, answer.ResultID)
	if err != nil {
		return nil, notFoundOr(err, "result", answer.ResultID)
	}
	// Questions are frozen once a result exists, so the current count is the count the
	// result was scored against.
	test, err := s.testRepo.FindByIDWithQuestions(ctx, result.TestID)
	if err != nil {
		return nil, notFoundOr(err, "test", result.TestID)
	}
	if err := s.access.RequireCourseInstructor(ctx, caller, test.CourseID); err != nil {
		return nil, err
	}
	if !answer.IsEssay() {
		return nil, InvalidInput("not an essay answer")
	}
	return &essayContext{
		answer: answer,
		test:   test,
		weight: s.grader.Weight(len(test.Questions)),
	}, nil
}

func (s *gradingService) GradeEssayAnswer(ctx context.Context, caller Caller, resultAnswerID uint, req dto.GradeEssayDTO) (*dto.GradeEssayResponseDTO, error) {
	ec, err := s.loadEssay(ctx, caller, resultAnswerID)
	if err != nil {
		return nil, err
	}
	points := 0.0
	if req.AwardedPoints != nil {
		points = *req.AwardedPoints
		if points < 0 || points > ec.weight+scoreEpsilon {
			return nil, InvalidInput("awarded points must be between 0 and %.2f", ec.weight)
		}
		points = min(points, ec.weight)
	}

	resultID := ec.answer.ResultID
	now := s.now()
	var finalized bool
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		results := s.resultRepo.WithTx(tx)
		answers := s.answerRepo.WithTx(tx)

		locked, err := results.LockByID(ctx, resultID)
		if err != nil {
			return err
		}
		if locked.IsGraded() {
			return Conflict("result already graded")
		}
		if err := answers.SaveGrade(ctx, resultAnswerID, req.Feedback, points, caller.UserID, now); err != nil {
			return fmt.Errorf("failed to save essay grade: %w", err)
		}
		sum, err := results.SumPoints(ctx, resultID)
		if err != nil {
			return fmt.Errorf("failed to recompute score: %w", err)
		}
		if err := results.UpdateScore(ctx, resultID, ClampScore(sum)); err != nil {
			return fmt.Errorf("failed to update score: %w", err)
		}
		finalized, err = results.FinalizeIfComplete(ctx, resultID, now)
		return err
	})
	if err != nil {
		var domainErr *Error
		if !errors.As(err, &domainErr) {
			log.Error().Err(err).Uint("resultAnswerID", resultAnswerID).Uint("resultID", resultID).Msg("GradeEssayAnswer: Transaction failed")
		}
		return nil, err
	}

	s.statsCache.Invalidate(ctx, ec.test.ID)
	log.Info().
		Uint("resultAnswerID", resultAnswerID).
		Uint("resultID", resultID).
		Uint("graderID", caller.UserID).
		Float64("points", points).
		Bool("finalized", finalized).
		Msg("Essay answer graded")

	answer, err := s.answerRepo.FindByID(ctx, resultAnswerID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload graded answer: %w", err)
	}
	result, err := s.resultRepo.FindByID(ctx, resultID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload result: %w", err)
	}
	return &dto.GradeEssayResponseDTO{
		Answer:    toResultAnswerDTO(answer, &answer.Question),
		Result:    toResultSummaryDTO(s.scoreConverter, result),
		Finalized: finalized,
	}, nil
}

func (s *gradingService) ListPendingEssayAnswers(ctx context.Context, caller Caller, testID uint) ([]dto.PendingEssayDTO, error) {
	test, err := s.testRepo.FindByID(ctx, testID)
	if err != nil {
		return nil, notFoundOr(err, "test", testID)
	}
	if err := s.access.RequireCourseInstructor(ctx, caller, test.CourseID); err != nil {
		return nil, err
	}
	pending, err := s.answerRepo.FindPendingEssaysByTest(ctx, testID)
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("ListPendingEssayAnswers: Failed to query pending essays")
		return nil, fmt.Errorf("error fetching pending essays for test %d: %w", testID, err)
	}

	dtos := make([]dto.PendingEssayDTO, 0, len(pending))
	for _, p := range pending {
		item := dto.PendingEssayDTO{
			ResultAnswerID: p.ID,
			ResultID:       p.ResultID,
			UserID:         p.UserID,
			QuestionID:     p.QuestionID,
			QuestionText:   p.QuestionText,
			SubmittedAt:    p.SubmittedAt,
		}
		if p.EssayText != nil {
			item.EssayText = *p.EssayText
		}
		dtos = append(dtos, item)
	}
	return dtos, nil
}

// SetOverallFeedback attaches result-level feedback. Status is left alone.
func (s *gradingService) SetOverallFeedback(ctx context.Context, caller Caller, resultID uint, feedback string) (*dto.ResultSummaryDTO, error) {
	result, err := s.resultRepo.FindByID(ctx, resultID)
	if err != nil {
		return nil, notFoundOr(err, "result", resultID)
	}
	test, err := s.testRepo.FindByID(ctx, result.TestID)
	if err != nil {
		return nil, notFoundOr(err, "test", result.TestID)
	}
	if err := s.access.RequireCourseInstructor(ctx, caller, test.CourseID); err != nil {
		return nil, err
	}
	if err := s.resultRepo.SetFeedback(ctx, resultID, feedback); err != nil {
		log.Error().Err(err).Uint("resultID", resultID).Msg("SetOverallFeedback: Failed to store feedback")
		return nil, fmt.Errorf("failed to store feedback for result %d: %w", resultID, err)
	}
	result.Feedback = &feedback
	summary := toResultSummaryDTO(s.scoreConverter, result)
	return &summary, nil
}

func (s *gradingService) SuggestEssayFeedback(ctx context.Context, caller Caller, resultAnswerID uint) (*dto.FeedbackSuggestionDTO, error) {
	ec, err := s.loadEssay(ctx, caller, resultAnswerID)
	if err != nil {
		return nil, err
	}
	essay := ""
	if ec.answer.EssayText != nil {
		essay = *ec.answer.EssayText
	}
	feedback, points, err := s.assistant.SuggestFeedback(ctx, ec.answer.Question.Text, essay, ec.weight)
	if errors.Is(err, ErrAssistantUnavailable) {
		return nil, Unavailable("essay feedback suggestions are not configured")
	}
	if err != nil {
		return nil, &Error{Kind: KindUnavailable, Message: "essay feedback suggestion failed", Err: err}
	}
	return &dto.FeedbackSuggestionDTO{
		ResultAnswerID:  resultAnswerID,
		Feedback:        feedback,
		SuggestedPoints: RoundScore(points),
		MaxPoints:       RoundScore(ec.weight),
	}, nil
}
