package repository

import (
	"context"
	"time"

	"github.com/minhhquann88/DoAn-sub001/internal/model"
	"gorm.io/gorm"
)

// PendingEssay is an ungraded essay answer together with its owner and prompt.
type PendingEssay struct {
	model.ResultAnswer
	UserID       uint
	SubmittedAt  time.Time
	QuestionText string
}

type ResultAnswerRepository interface {
	WithTx(tx *gorm.DB) ResultAnswerRepository
	FindByID(ctx context.Context, id uint) (*model.ResultAnswer, error)
	SaveGrade(ctx context.Context, id uint, feedback string, points float64, gradedBy uint, at time.Time) error
	FindPendingEssaysByTest(ctx context.Context, testID uint) ([]PendingEssay, error)
}

type resultAnswerRepository struct {
	db *gorm.DB
}

func NewResultAnswerRepository(db *gorm.DB) ResultAnswerRepository {
	return &resultAnswerRepository{db: db}
}

func (r *resultAnswerRepository) WithTx(tx *gorm.DB) ResultAnswerRepository {
	return &resultAnswerRepository{db: tx}
}

func (r *resultAnswerRepository) FindByID(ctx context.Context, id uint) (*model.ResultAnswer, error) {
	var answer model.ResultAnswer
	if err := r.db.WithContext(ctx).Preload("Question").First(&answer, id).Error; err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *resultAnswerRepository) SaveGrade(ctx context.Context, id uint, feedback string, points float64, gradedBy uint, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&model.ResultAnswer{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"feedback":  feedback,
			"points":    points,
			"graded_by": gradedBy,
			"graded_at": at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *resultAnswerRepository) FindPendingEssaysByTest(ctx context.Context, testID uint) ([]PendingEssay, error) {
	var pending []PendingEssay
	err := r.db.WithContext(ctx).Model(&model.ResultAnswer{}).
		Select("result_answers.*, results.user_id AS user_id, results.submitted_at AS submitted_at, questions.text AS question_text").
		Joins("JOIN results ON results.id = result_answers.result_id").
		Joins("JOIN questions ON questions.id = result_answers.question_id").
		Where("results.test_id = ? AND result_answers.kind = ? AND result_answers.feedback IS NULL",
			testID, model.QuestionTypeEssay).
		Order("results.submitted_at ASC, result_answers.id ASC").
		Scan(&pending).Error
	return pending, err
}
