package repository

import (
	"context"

	"github.com/minhhquann88/DoAn-sub001/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TestWithQuestionCount struct {
	model.Test
	QuestionCount int
}

type TestRepository interface {
	WithTx(tx *gorm.DB) TestRepository
	Create(ctx context.Context, test *model.Test) error
	UpdateDetails(ctx context.Context, test *model.Test) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Test, error)
	FindByIDWithQuestions(ctx context.Context, id uint) (*model.Test, error)
	FindAllWithQuestionCount(ctx context.Context, courseIDs []uint) ([]TestWithQuestionCount, error)
	HasResults(ctx context.Context, testID uint) (bool, error)
	Lock(ctx context.Context, id uint, strength string) (*model.Test, error)
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) WithTx(tx *gorm.DB) TestRepository {
	return &testRepository{db: tx}
}

func (r *testRepository) Create(ctx context.Context, test *model.Test) error {
	// GORM creates Questions and their Options through the has-many associations.
	return r.db.WithContext(ctx).Create(test).Error
}

// UpdateDetails writes title, type, window and time limit only. Questions are untouched.
func (r *testRepository) UpdateDetails(ctx context.Context, test *model.Test) error {
	return r.db.WithContext(ctx).Model(test).
		Select("Title", "Type", "OpensAt", "ClosesAt", "TimeLimitMinutes").
		Updates(test).Error
}

func (r *testRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Test{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *testRepository) FindByID(ctx context.Context, id uint) (*model.Test, error) {
	var test model.Test
	if err := r.db.WithContext(ctx).First(&test, id).Error; err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) FindByIDWithQuestions(ctx context.Context, id uint) (*model.Test, error) {
	var test model.Test
	err := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.position ASC, questions.id ASC")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("answer_options.position ASC, answer_options.id ASC")
		}).
		First(&test, id).Error
	if err != nil {
		return nil, err
	}
	return &test, nil
}

// FindAllWithQuestionCount lists the tests of the given courses. No courses, no tests.
func (r *testRepository) FindAllWithQuestionCount(ctx context.Context, courseIDs []uint) ([]TestWithQuestionCount, error) {
	var results []TestWithQuestionCount
	if len(courseIDs) == 0 {
		return results, nil
	}
	err := r.db.WithContext(ctx).Model(&model.Test{}).
		Select("tests.*, (SELECT COUNT(*) FROM questions WHERE questions.test_id = tests.id) AS question_count").
		Where("tests.course_id IN ?", courseIDs).
		Order("tests.created_at DESC, tests.id DESC").
		Scan(&results).Error
	return results, err
}

func (r *testRepository) HasResults(ctx context.Context, testID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Result{}).Where("test_id = ?", testID).Limit(1).Count(&count).Error
	return count > 0, err
}

// Lock reads the test row under a row lock. Question edits take clause.LockingStrengthUpdate
// and submissions take clause.LockingStrengthShare, so a result cannot appear between the
// "has results" check and the edit. SQLite ignores the clause.
func (r *testRepository) Lock(ctx context.Context, id uint, strength string) (*model.Test, error) {
	var test model.Test
	err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: strength}).First(&test, id).Error
	if err != nil {
		return nil, err
	}
	return &test, nil
}
