package repository

import (
	"context"
	"errors"
	"time"

	"github.com/minhhquann88/DoAn-sub001/internal/database"
	"github.com/minhhquann88/DoAn-sub001/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrDuplicateResult is returned when the (test, user) unique index rejects an insert.
var ErrDuplicateResult = errors.New("result already exists for this test and user")

// ResultAggregate is the raw material of per-test statistics.
type ResultAggregate struct {
	Total        int64
	Graded       int64
	AverageScore *float64 // nil when no graded result exists
}

type ResultRepository interface {
	WithTx(tx *gorm.DB) ResultRepository
	Create(ctx context.Context, result *model.Result) error
	FindByID(ctx context.Context, id uint) (*model.Result, error)
	FindByIDWithDetails(ctx context.Context, id uint) (*model.Result, error)
	FindByTestAndUser(ctx context.Context, testID, userID uint) (*model.Result, error)
	ExistsForTestAndUser(ctx context.Context, testID, userID uint) (bool, error)
	FindAllByTest(ctx context.Context, testID uint) ([]model.Result, error)
	LockByID(ctx context.Context, id uint) (*model.Result, error)
	SumPoints(ctx context.Context, id uint) (float64, error)
	UpdateScore(ctx context.Context, id uint, score float64) error
	FinalizeIfComplete(ctx context.Context, id uint, at time.Time) (bool, error)
	SetFeedback(ctx context.Context, id uint, feedback string) error
	Aggregate(ctx context.Context, testID uint) (ResultAggregate, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) WithTx(tx *gorm.DB) ResultRepository {
	return &resultRepository{db: tx}
}

func (r *resultRepository) Create(ctx context.Context, result *model.Result) error {
	// GORM inserts the Answers association through the has-many relation.
	err := r.db.WithContext(ctx).Create(result).Error
	if database.IsUniqueViolation(err) {
		return ErrDuplicateResult
	}
	return err
}

func (r *resultRepository) FindByID(ctx context.Context, id uint) (*model.Result, error) {
	var result model.Result
	if err := r.db.WithContext(ctx).First(&result, id).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *resultRepository) FindByIDWithDetails(ctx context.Context, id uint) (*model.Result, error) {
	var result model.Result
	err := r.db.WithContext(ctx).
		Preload("Test").
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("result_answers.id ASC")
		}).
		Preload("Answers.Question").
		Preload("Answers.ChosenOption").
		First(&result, id).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *resultRepository) FindByTestAndUser(ctx context.Context, testID, userID uint) (*model.Result, error) {
	var result model.Result
	err := r.db.WithContext(ctx).Where("test_id = ? AND user_id = ?", testID, userID).First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *resultRepository) ExistsForTestAndUser(ctx context.Context, testID, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Result{}).
		Where("test_id = ? AND user_id = ?", testID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *resultRepository) FindAllByTest(ctx context.Context, testID uint) ([]model.Result, error) {
	var results []model.Result
	err := r.db.WithContext(ctx).
		Where("test_id = ?", testID).
		Order("submitted_at DESC, id DESC").
		Find(&results).Error
	return results, err
}

// LockByID takes a row lock on the result for the rest of the transaction.
// SQLite drops the locking clause; its writers are already serialized.
func (r *resultRepository) LockByID(ctx context.Context, id uint) (*model.Result, error) {
	var result model.Result
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		First(&result, id).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *resultRepository) SumPoints(ctx context.Context, id uint) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).Model(&model.ResultAnswer{}).
		Select("COALESCE(SUM(points), 0)").
		Where("result_id = ?", id).
		Scan(&sum).Error
	return sum, err
}

func (r *resultRepository) UpdateScore(ctx context.Context, id uint, score float64) error {
	return r.db.WithContext(ctx).Model(&model.Result{}).
		Where("id = ?", id).
		Update("score", score).Error
}

// FinalizeIfComplete moves a pending result to GRADED in one conditional statement, only
// when no essay answer is still missing feedback. It reports whether this call did the move;
// repeating it is harmless.
func (r *resultRepository) FinalizeIfComplete(ctx context.Context, id uint, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Result{}).
		Where("id = ? AND status = ?", id, model.ResultStatusPendingGrading).
		Where("NOT EXISTS (SELECT 1 FROM result_answers ra WHERE ra.result_id = results.id AND ra.kind = ? AND ra.feedback IS NULL)",
			model.QuestionTypeEssay).
		Updates(map[string]interface{}{
			"status":    model.ResultStatusGraded,
			"graded_at": at,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *resultRepository) SetFeedback(ctx context.Context, id uint, feedback string) error {
	return r.db.WithContext(ctx).Model(&model.Result{}).
		Where("id = ?", id).
		Update("feedback", feedback).Error
}

func (r *resultRepository) Aggregate(ctx context.Context, testID uint) (ResultAggregate, error) {
	var agg ResultAggregate
	err := r.db.WithContext(ctx).Model(&model.Result{}).
		Select("COUNT(*) AS total, "+
			"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS graded, "+
			"AVG(CASE WHEN status = ? THEN score END) AS average_score",
			model.ResultStatusGraded, model.ResultStatusGraded).
		Where("test_id = ?", testID).
		Scan(&agg).Error
	return agg, err
}
