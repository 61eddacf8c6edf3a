// Package testutil builds throwaway databases and fixtures for package tests.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/minhhquann88/DoAn-sub001/internal/database"
	"github.com/minhhquann88/DoAn-sub001/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDB opens a private in-memory SQLite database with foreign keys on and every table
// migrated. It is closed when the test ends.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := database.OpenSQLite(dsn, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Discard,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func CreateCourse(t testing.TB, db *gorm.DB, instructorID uint) *model.Course {
	t.Helper()
	course := &model.Course{Title: "Course of instructor " + fmt.Sprint(instructorID), InstructorID: instructorID}
	require.NoError(t, db.Create(course).Error)
	return course
}

func Enroll(t testing.TB, db *gorm.DB, courseID uint, userIDs ...uint) {
	t.Helper()
	for _, id := range userIDs {
		require.NoError(t, db.Create(&model.Enrollment{CourseID: courseID, UserID: id}).Error)
	}
}

// MC builds a multiple-choice question. correct is the zero-based index of the correct option.
func MC(text string, correct int, options ...string) model.Question {
	q := model.Question{Text: text, Type: model.QuestionTypeMultipleChoice}
	for i, o := range options {
		q.Options = append(q.Options, model.AnswerOption{Text: o, IsCorrect: i == correct, Position: i + 1})
	}
	return q
}

func Essay(text string) model.Question {
	return model.Question{Text: text, Type: model.QuestionTypeEssay}
}

// CreateTest stores a test with questions numbered in the given order.
func CreateTest(t testing.TB, db *gorm.DB, courseID uint, questions ...model.Question) *model.Test {
	t.Helper()
	test := &model.Test{CourseID: courseID, Title: "Quiz", Type: model.TestTypeMultipleChoice}
	for i := range questions {
		questions[i].Position = i + 1
		if questions[i].Type == model.QuestionTypeEssay {
			test.Type = model.TestTypeEssay
		}
	}
	test.Questions = questions
	require.NoError(t, db.Create(test).Error)
	return test
}

// CorrectOption returns the first correct option of q, or the zero option.
func CorrectOption(q model.Question) model.AnswerOption {
	for _, o := range q.Options {
		if o.IsCorrect {
			return o
		}
	}
	return model.AnswerOption{}
}

// WrongOption returns the first incorrect option of q, or the zero option.
func WrongOption(q model.Question) model.AnswerOption {
	for _, o := range q.Options {
		if !o.IsCorrect {
			return o
		}
	}
	return model.AnswerOption{}
}
