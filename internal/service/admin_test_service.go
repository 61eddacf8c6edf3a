package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/minhhquann88/DoAn-sub001/internal/dto"
	"github.com/minhhquann88/DoAn-sub001/internal/model"
	"github.com/minhhquann88/DoAn-sub001/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// errQuestionsFrozen is returned for question edits on a test that already has results.
var errQuestionsFrozen = Conflict("test has submissions; its questions can no longer change")

// AdminTestService is the instructor side of the test catalog.
type AdminTestService interface {
	CreateTest(ctx context.Context, caller Caller, req dto.TestCreateDTO) (*dto.AdminTestDTO, error)
	GetTest(ctx context.Context, caller Caller, testID uint) (*dto.AdminTestDTO, error)
	UpdateTest(ctx context.Context, caller Caller, testID uint, req dto.TestUpdateDTO) (*dto.AdminTestDTO, error)
	DeleteTest(ctx context.Context, caller Caller, testID uint) error
	AddQuestion(ctx context.Context, caller Caller, testID uint, req dto.QuestionCreateDTO) (*dto.AdminQuestionDTO, error)
	UpdateQuestion(ctx context.Context, caller Caller, questionID uint, req dto.QuestionCreateDTO) (*dto.AdminQuestionDTO, error)
	DeleteQuestion(ctx context.Context, caller Caller, questionID uint) error
}

type adminTestService struct {
	testRepo     repository.TestRepository
	questionRepo repository.QuestionRepository
	access       AccessPolicy
	db           *gorm.DB
}

func NewAdminTestService(
	testRepo repository.TestRepository,
	questionRepo repository.QuestionRepository,
	access AccessPolicy,
	db *gorm.DB,
) AdminTestService {
	return &adminTestService{testRepo: testRepo, questionRepo: questionRepo, access: access, db: db}
}

// questionFromDTO builds and validates a question. A zero position in the request falls
// back to position.
func questionFromDTO(req dto.QuestionCreateDTO, position int) (model.Question, error) {
	q := model.Question{
		Text:     req.Text,
		Type:     req.Type,
		Position: req.Position,
	}
	if q.Position == 0 {
		q.Position = position
	}
	for i, o := range req.Options {
		q.Options = append(q.Options, model.AnswerOption{
			Text:      o.Text,
			IsCorrect: o.IsCorrect,
			Position:  i + 1,
		})
	}
	if err := q.Validate(); err != nil {
		return model.Question{}, &Error{Kind: KindInvalidInput, Message: err.Error(), Err: err}
	}
	return q, nil
}

func (s *adminTestService) CreateTest(ctx context.Context, caller Caller, req dto.TestCreateDTO) (*dto.AdminTestDTO, error) {
	if err := s.access.RequireCourseInstructor(ctx, caller, req.CourseID); err != nil {
		return nil, err
	}
	if req.OpensAt != nil && req.ClosesAt != nil && !req.ClosesAt.After(*req.OpensAt) {
		return nil, InvalidInput("closes_at must be after opens_at")
	}

	test := model.Test{
		CourseID:         req.CourseID,
		Title:            req.Title,
		Type:             req.Type,
		OpensAt:          req.OpensAt,
		ClosesAt:         req.ClosesAt,
		TimeLimitMinutes: req.TimeLimitMinutes,
	}
	positions := make(map[int]bool, len(req.Questions))
	for i, qDto := range req.Questions {
		q, err := questionFromDTO(qDto, i+1)
		if err != nil {
			return nil, err
		}
		if positions[q.Position] {
			return nil, InvalidInput("duplicate question position %d", q.Position)
		}
		positions[q.Position] = true
		test.Questions = append(test.Questions, q)
	}

	if err := s.testRepo.Create(ctx, &test); err != nil {
		log.Error().Err(err).Uint("courseID", req.CourseID).Msg("Failed to create test in database")
		return nil, fmt.Errorf("database error creating test: %w", err)
	}
	log.Info().Uint("testID", test.ID).Uint("courseID", test.CourseID).Int("questions", len(test.Questions)).Msg("Test created")
	return s.loadAdminTest(ctx, test.ID)
}

func (s *adminTestService) GetTest(ctx context.Context, caller Caller, testID uint) (*dto.AdminTestDTO, error) {
	if _, err := s.ownedTest(ctx, caller, testID); err != nil {
		return nil, err
	}
	return s.loadAdminTest(ctx, testID)
}

// UpdateTest changes metadata only, which stays editable after submissions exist.
func (s *adminTestService) UpdateTest(ctx context.Context, caller Caller, testID uint, req dto.TestUpdateDTO) (*dto.AdminTestDTO, error) {
	test, err := s.ownedTest(ctx, caller, testID)
	if err != nil {
		return nil, err
	}
	if req.OpensAt != nil && req.ClosesAt != nil && !req.ClosesAt.After(*req.OpensAt) {
		return nil, InvalidInput("closes_at must be after opens_at")
	}
	test.Title = req.Title
	test.Type = req.Type
	test.OpensAt = req.OpensAt
	test.ClosesAt = req.ClosesAt
	test.TimeLimitMinutes = req.TimeLimitMinutes
	if err := s.testRepo.UpdateDetails(ctx, test); err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("Failed to update test")
		return nil, fmt.Errorf("database error updating test %d: %w", testID, err)
	}
	return s.loadAdminTest(ctx, testID)
}

func (s *adminTestService) DeleteTest(ctx context.Context, caller Caller, testID uint) error {
	if _, err := s.ownedTest(ctx, caller, testID); err != nil {
		return err
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tests := s.testRepo.WithTx(tx)
		if _, err := tests.Lock(ctx, testID, clause.LockingStrengthUpdate); err != nil {
			return err
		}
		has, err := tests.HasResults(ctx, testID)
		if err != nil {
			return err
		}
		if has {
			return Conflict("test has submissions and cannot be deleted")
		}
		return tests.Delete(ctx, testID)
	})
	if err != nil {
		return s.mutationError(err, testID, "delete test")
	}
	log.Info().Uint("testID", testID).Msg("Test deleted")
	return nil
}

func (s *adminTestService) AddQuestion(ctx context.Context, caller Caller, testID uint, req dto.QuestionCreateDTO) (*dto.AdminQuestionDTO, error) {
	if _, err := s.ownedTest(ctx, caller, testID); err != nil {
		return nil, err
	}
	var question model.Question
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.lockUnfrozen(ctx, tx, testID); err != nil {
			return err
		}
		questions := s.questionRepo.WithTx(tx)
		next, err := questions.NextPosition(ctx, testID)
		if err != nil {
			return err
		}
		question, err = questionFromDTO(req, next)
		if err != nil {
			return err
		}
		question.TestID = testID
		return questions.Create(ctx, &question)
	})
	if err != nil {
		return nil, s.mutationError(err, testID, "add question")
	}
	return s.loadAdminQuestion(ctx, question.ID)
}

func (s *adminTestService) UpdateQuestion(ctx context.Context, caller Caller, questionID uint, req dto.QuestionCreateDTO) (*dto.AdminQuestionDTO, error) {
	existing, err := s.questionRepo.FindByID(ctx, questionID)
	if err != nil {
		return nil, notFoundOr(err, "question", questionID)
	}
	if _, err := s.ownedTest(ctx, caller, existing.TestID); err != nil {
		return nil, err
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.lockUnfrozen(ctx, tx, existing.TestID); err != nil {
			return err
		}
		updated, err := questionFromDTO(req, existing.Position)
		if err != nil {
			return err
		}
		updated.ID = existing.ID
		updated.TestID = existing.TestID
		return s.questionRepo.WithTx(tx).Replace(ctx, &updated)
	})
	if err != nil {
		return nil, s.mutationError(err, existing.TestID, "update question")
	}
	return s.loadAdminQuestion(ctx, questionID)
}

func (s *adminTestService) DeleteQuestion(ctx context.Context, caller Caller, questionID uint) error {
	existing, err := s.questionRepo.FindByID(ctx, questionID)
	if err != nil {
		return notFoundOr(err, "question", questionID)
	}
	if _, err := s.ownedTest(ctx, caller, existing.TestID); err != nil {
		return err
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.lockUnfrozen(ctx, tx, existing.TestID); err != nil {
			return err
		}
		return s.questionRepo.WithTx(tx).Delete(ctx, questionID)
	})
	if err != nil {
		return s.mutationError(err, existing.TestID, "delete question")
	}
	return nil
}

// lockUnfrozen locks the test row and fails when any result exists for it.
func (s *adminTestService) lockUnfrozen(ctx context.Context, tx *gorm.DB, testID uint) error {
	tests := s.testRepo.WithTx(tx)
	if _, err := tests.Lock(ctx, testID, clause.LockingStrengthUpdate); err != nil {
		return err
	}
	has, err := tests.HasResults(ctx, testID)
	if err != nil {
		return err
	}
	if has {
		return errQuestionsFrozen
	}
	return nil
}

func (s *adminTestService) mutationError(err error, testID uint, op string) error {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFoundOr(err, "test", testID)
	}
	log.Error().Err(err).Uint("testID", testID).Str("op", op).Msg("Catalog mutation failed")
	return fmt.Errorf("failed to %s on test %d: %w", op, testID, err)
}

func (s *adminTestService) ownedTest(ctx context.Context, caller Caller, testID uint) (*model.Test, error) {
	test, err := s.testRepo.FindByID(ctx, testID)
	if err != nil {
		return nil, notFoundOr(err, "test", testID)
	}
	if err := s.access.RequireCourseInstructor(ctx, caller, test.CourseID); err != nil {
		return nil, err
	}
	return test, nil
}

func (s *adminTestService) loadAdminTest(ctx context.Context, testID uint) (*dto.AdminTestDTO, error) {
	test, err := s.testRepo.FindByIDWithQuestions(ctx, testID)
	if err != nil {
		return nil, notFoundOr(err, "test", testID)
	}
	locked, err := s.testRepo.HasResults(ctx, testID)
	if err != nil {
		return nil, fmt.Errorf("failed to check results of test %d: %w", testID, err)
	}
	var resp dto.AdminTestDTO
	if err := copier.Copy(&resp, test); err != nil {
		log.Error().Err(err).Msg("Failed to copy Test model to AdminTestDTO")
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	resp.Locked = locked
	if resp.Questions == nil {
		resp.Questions = []dto.AdminQuestionDTO{}
	}
	return &resp, nil
}

func (s *adminTestService) loadAdminQuestion(ctx context.Context, questionID uint) (*dto.AdminQuestionDTO, error) {
	question, err := s.questionRepo.FindByID(ctx, questionID)
	if err != nil {
		return nil, notFoundOr(err, "question", questionID)
	}
	var resp dto.AdminQuestionDTO
	if err := copier.Copy(&resp, question); err != nil {
		log.Error().Err(err).Msg("Failed to copy Question model to AdminQuestionDTO")
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return &resp, nil
}
