package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/minhhquann88/DoAn-sub001/internal/dto"
	"github.com/minhhquann88/DoAn-sub001/internal/model"
	"github.com/minhhquann88/DoAn-sub001/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TestSubmissionService validates a learner's answers and stores the Result with all its
// answers in one transaction.
type TestSubmissionService interface {
	Submit(ctx context.Context, caller Caller, testID uint, req dto.SubmitTestDTO) (*dto.ResultDetailDTO, error)
	GetResult(ctx context.Context, caller Caller, resultID uint) (*dto.ResultDetailDTO, error)
	GetMyResultForTest(ctx context.Context, caller Caller, testID uint) (*dto.ResultDetailDTO, error)
	ListResultsForTest(ctx context.Context, caller Caller, testID uint) ([]dto.ResultSummaryDTO, error)
}

type testSubmissionService struct {
	testRepo       repository.TestRepository
	resultRepo     repository.ResultRepository
	access         AccessPolicy
	grader         AutoGrader
	scoreConverter ScoreConverterService
	statsCache     StatsCache
	db             *gorm.DB
	now            func() time.Time
}

func NewTestSubmissionService(
	testRepo repository.TestRepository,
	resultRepo repository.ResultRepository,
	access AccessPolicy,
	grader AutoGrader,
	scoreConverter ScoreConverterService,
	statsCache StatsCache,
	db *gorm.DB,
) TestSubmissionService {
	return &testSubmissionService{
		testRepo:       testRepo,
		resultRepo:     resultRepo,
		access:         access,
		grader:         grader,
		scoreConverter: scoreConverter,
		statsCache:     statsCache,
		db:             db,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

func (s *testSubmissionService) Submit(ctx context.Context, caller Caller, testID uint, req dto.SubmitTestDTO) (*dto.ResultDetailDTO, error) {
	header, err := s.testRepo.FindByID(ctx, testID)
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("Submit: Test not found")
		return nil, notFoundOr(err, "test", testID)
	}
	if err := s.access.RequireEnrolledStudent(ctx, caller, header.CourseID); err != nil {
		return nil, err
	}

	now := s.now()
	var (
		test   *model.Test
		result model.Result
	)
	// The share lock keeps question edits out until the result is stored, so the graph
	// loaded below is the one the answers are validated and scored against.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tests := s.testRepo.WithTx(tx)
		results := s.resultRepo.WithTx(tx)

		if _, err := tests.Lock(ctx, testID, clause.LockingStrengthShare); err != nil {
			return err
		}
		loaded, err := tests.FindByIDWithQuestions(ctx, testID)
		if err != nil {
			return err
		}
		if err := loaded.CheckWindow(now); err != nil {
			return WindowClosed(err)
		}

		exists, err := results.ExistsForTestAndUser(ctx, testID, caller.UserID)
		if err != nil {
			return fmt.Errorf("failed to check existing result: %w", err)
		}
		if exists {
			return Conflict("already submitted")
		}

		answers, score, err := s.buildAnswers(loaded, req.Answers)
		if err != nil {
			return err
		}
		result = model.Result{
			TestID:      testID,
			UserID:      caller.UserID,
			SubmittedAt: now,
			Score:       score,
			Status:      model.ResultStatusPendingGrading,
			Answers:     answers,
		}
		if !loaded.HasEssay() {
			result.Status = model.ResultStatusGraded
			result.GradedAt = &now
		}
		test = loaded
		return results.Create(ctx, &result)
	})
	var domainErr *Error
	switch {
	case err == nil:
	case errors.As(err, &domainErr):
		return nil, err
	case errors.Is(err, repository.ErrDuplicateResult):
		log.Warn().Uint("testID", testID).Uint("userID", caller.UserID).Msg("Submit: Concurrent duplicate submission rejected")
		return nil, Conflict("already submitted")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, notFoundOr(err, "test", testID)
	default:
		log.Error().Err(err).Uint("testID", testID).Uint("userID", caller.UserID).Msg("Submit: Transaction failed for creating result")
		return nil, fmt.Errorf("failed to store result: %w", err)
	}

	s.statsCache.Invalidate(ctx, testID)
	log.Info().
		Uint("resultID", result.ID).
		Uint("testID", testID).
		Uint("userID", caller.UserID).
		Str("status", string(result.Status)).
		Float64("score", result.Score).
		Msg("Result submitted")

	result.Test = *test
	return s.toDetailDTO(&result, test), nil
}

// buildAnswers checks that every question of the test is answered exactly once with the
// variant its type requires and computes the objective score.
func (s *testSubmissionService) buildAnswers(test *model.Test, submitted []dto.SubmittedAnswerDTO) ([]model.ResultAnswer, float64, error) {
	total := len(test.Questions)
	if total == 0 {
		return nil, 0, InvalidInput("test %d has no questions", test.ID)
	}

	seen := make(map[uint]bool, len(submitted))
	answers := make([]model.ResultAnswer, 0, total)
	for _, in := range submitted {
		question, ok := test.QuestionByID(in.QuestionID)
		if !ok {
			return nil, 0, InvalidInput("question %d does not belong to test %d", in.QuestionID, test.ID)
		}
		if seen[in.QuestionID] {
			return nil, 0, InvalidInput("question %d answered more than once", in.QuestionID)
		}
		seen[in.QuestionID] = true

		var (
			answer model.ResultAnswer
			err    error
		)
		switch question.Type {
		case model.QuestionTypeMultipleChoice:
			if in.EssayText != nil {
				return nil, 0, InvalidInput("question %d is multiple choice and takes no essay text", question.ID)
			}
			if in.ChosenOptionID == nil {
				return nil, 0, InvalidInput("question %d needs a chosen option", question.ID)
			}
			answer, err = model.NewChoiceAnswer(question, *in.ChosenOptionID)
			if err == nil {
				chosen, _ := question.Option(*in.ChosenOptionID)
				answer.Points = s.grader.Grade(question, chosen, total)
			}
		case model.QuestionTypeEssay:
			if in.ChosenOptionID != nil {
				return nil, 0, InvalidInput("question %d is an essay and takes no chosen option", question.ID)
			}
			if in.EssayText == nil || strings.TrimSpace(*in.EssayText) == "" {
				return nil, 0, InvalidInput("question %d needs a non-blank essay text", question.ID)
			}
			answer, err = model.NewEssayAnswer(question, *in.EssayText)
		default:
			err = fmt.Errorf("question %d has unknown type %q", question.ID, question.Type)
		}
		if err != nil {
			return nil, 0, &Error{Kind: KindInvalidInput, Message: err.Error(), Err: err}
		}
		answers = append(answers, answer)
	}

	if len(answers) != total {
		missing := make([]string, 0, total-len(answers))
		for _, q := range test.Questions {
			if !seen[q.ID] {
				missing = append(missing, fmt.Sprint(q.ID))
			}
		}
		return nil, 0, InvalidInput("missing answers for questions %s", strings.Join(missing, ", "))
	}

	return answers, s.grader.Recompute(answers), nil
}

func (s *testSubmissionService) GetResult(ctx context.Context, caller Caller, resultID uint) (*dto.ResultDetailDTO, error) {
	result, err := s.resultRepo.FindByIDWithDetails(ctx, resultID)
	if err != nil {
		log.Error().Err(err).Uint("resultID", resultID).Msg("GetResult: Failed to find result by ID")
		return nil, notFoundOr(err, "result", resultID)
	}
	if err := s.access.CanViewResult(ctx, caller, result, result.Test.CourseID); err != nil {
		return nil, err
	}
	return s.toDetailDTO(result, nil), nil
}

func (s *testSubmissionService) GetMyResultForTest(ctx context.Context, caller Caller, testID uint) (*dto.ResultDetailDTO, error) {
	if !caller.IsStudent() {
		return nil, Forbidden("student role required")
	}
	result, err := s.resultRepo.FindByTestAndUser(ctx, testID, caller.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound("no result for test %d", testID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load result for test %d: %w", testID, err)
	}
	return s.GetResult(ctx, caller, result.ID)
}

func (s *testSubmissionService) ListResultsForTest(ctx context.Context, caller Caller, testID uint) ([]dto.ResultSummaryDTO, error) {
	test, err := s.testRepo.FindByID(ctx, testID)
	if err != nil {
		return nil, notFoundOr(err, "test", testID)
	}
	if err := s.access.RequireCourseInstructor(ctx, caller, test.CourseID); err != nil {
		return nil, err
	}

	results, err := s.resultRepo.FindAllByTest(ctx, testID)
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("ListResultsForTest: Failed to find results from repository")
		return nil, fmt.Errorf("error fetching results for test %d: %w", testID, err)
	}

	dtos := make([]dto.ResultSummaryDTO, 0, len(results))
	for i := range results {
		dtos = append(dtos, toResultSummaryDTO(s.scoreConverter, &results[i]))
	}
	return dtos, nil
}

func displayScore(conv ScoreConverterService, resultID uint, raw float64) float64 {
	score, err := conv.ToDisplayScore(raw)
	if err != nil {
		log.Warn().Err(err).Uint("resultID", resultID).Float64("rawScore", raw).Msg("Stored score out of range")
		return RoundScore(ClampScore(raw))
	}
	return score
}

func toResultSummaryDTO(conv ScoreConverterService, result *model.Result) dto.ResultSummaryDTO {
	var summary dto.ResultSummaryDTO
	if err := copier.Copy(&summary, result); err != nil {
		log.Error().Err(err).Uint("resultID", result.ID).Msg("Error copying result to summary DTO")
	}
	summary.Score = displayScore(conv, result.ID, result.Score)
	return summary
}

// toDetailDTO maps a result with its answers. When test is nil the answers' preloaded
// Question and ChosenOption associations are used instead.
func (s *testSubmissionService) toDetailDTO(result *model.Result, test *model.Test) *dto.ResultDetailDTO {
	var resp dto.ResultDetailDTO
	if err := copier.Copy(&resp, result); err != nil {
		log.Error().Err(err).Uint("resultID", result.ID).Msg("Error copying result to detail DTO")
	}
	resp.TestTitle = result.Test.Title
	resp.Score = displayScore(s.scoreConverter, result.ID, result.Score)

	positions := make(map[uint]int, len(result.Answers))
	resp.Answers = make([]dto.ResultAnswerDTO, 0, len(result.Answers))
	for i := range result.Answers {
		a := &result.Answers[i]
		question := &a.Question
		if test != nil {
			if q, ok := test.QuestionByID(a.QuestionID); ok {
				question = q
			}
		}
		positions[a.QuestionID] = question.Position
		resp.Answers = append(resp.Answers, toResultAnswerDTO(a, question))
	}
	sort.SliceStable(resp.Answers, func(i, j int) bool {
		pi, pj := positions[resp.Answers[i].QuestionID], positions[resp.Answers[j].QuestionID]
		if pi != pj {
			return pi < pj
		}
		return resp.Answers[i].QuestionID < resp.Answers[j].QuestionID
	})
	return &resp
}

func toResultAnswerDTO(a *model.ResultAnswer, question *model.Question) dto.ResultAnswerDTO {
	var out dto.ResultAnswerDTO
	if err := copier.Copy(&out, a); err != nil {
		log.Error().Err(err).Uint("resultAnswerID", a.ID).Msg("Error copying result answer to DTO")
	}
	out.QuestionText = question.Text
	if a.ChosenOptionID != nil {
		var correct bool
		if a.ChosenOption != nil {
			correct = a.ChosenOption.IsCorrect
		} else if opt, ok := question.Option(*a.ChosenOptionID); ok {
			correct = opt.IsCorrect
		}
		out.IsCorrect = &correct
	}
	return out
}
