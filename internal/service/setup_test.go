package service

import (
	"context"
	"testing"
	"time"

	"github.com/minhhquann88/DoAn-sub001/internal/dto"
	"github.com/minhhquann88/DoAn-sub001/internal/model"
	"github.com/minhhquann88/DoAn-sub001/internal/repository"
	"github.com/minhhquann88/DoAn-sub001/internal/testutil"
	"gorm.io/gorm"
)

const (
	instructorID    = uint(1)
	otherInstructor = uint(2)
	studentA        = uint(100)
	studentB        = uint(101)
	outsider        = uint(200)
)

var (
	instructor = Caller{UserID: instructorID, Role: RoleInstructor}
	stranger   = Caller{UserID: otherInstructor, Role: RoleInstructor}
	learnerA   = Caller{UserID: studentA, Role: RoleStudent}
	learnerB   = Caller{UserID: studentB, Role: RoleStudent}
)

type fakeAssistant struct {
	feedback string
	points   float64
	err      error
	calls    int
}

func (f *fakeAssistant) SuggestFeedback(ctx context.Context, questionText, essayText string, maxPoints float64) (string, float64, error) {
	f.calls++
	return f.feedback, f.points, f.err
}

// env wires every service against one in-memory database.
type env struct {
	db         *gorm.DB
	course     *model.Course
	clock      time.Time
	assistant  *fakeAssistant
	catalog    AdminTestService
	tests      UserTestService
	submission *testSubmissionService
	grading    *gradingService
	stats      StatisticsService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db := testutil.NewDB(t)
	course := testutil.CreateCourse(t, db, instructorID)
	testutil.Enroll(t, db, course.ID, studentA, studentB)

	testRepo := repository.NewTestRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	resultRepo := repository.NewResultRepository(db)
	answerRepo := repository.NewResultAnswerRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	access := NewAccessPolicy(courseRepo)
	grader := NewAutoGrader()
	conv := NewScoreConverterService()
	cache := NewNoopStatsCache()
	assistant := &fakeAssistant{}

	e := &env{
		db:        db,
		course:    course,
		clock:     time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC),
		assistant: assistant,
		catalog:   NewAdminTestService(testRepo, questionRepo, access, db),
		tests:     NewUserTestService(testRepo, access),
		stats:     NewStatisticsService(testRepo, resultRepo, courseRepo, access, cache),
	}
	e.submission = NewTestSubmissionService(testRepo, resultRepo, access, grader, conv, cache, db).(*testSubmissionService)
	e.submission.now = func() time.Time { return e.clock }
	e.grading = NewGradingService(testRepo, resultRepo, answerRepo, access, grader, conv, assistant, cache, db).(*gradingService)
	e.grading.now = func() time.Time { return e.clock }
	return e
}

// mixedTest is two multiple-choice questions and one essay.
func (e *env) mixedTest(t *testing.T) *model.Test {
	t.Helper()
	return testutil.CreateTest(t, e.db, e.course.ID,
		testutil.MC("Q1", 0, "A", "B"),
		testutil.MC("Q2", 2, "A", "B", "C"),
		testutil.Essay("Q3"),
	)
}

func choose(q model.Question, opt model.AnswerOption) dto.SubmittedAnswerDTO {
	id := opt.ID
	return dto.SubmittedAnswerDTO{QuestionID: q.ID, ChosenOptionID: &id}
}

func write(q model.Question, text string) dto.SubmittedAnswerDTO {
	return dto.SubmittedAnswerDTO{QuestionID: q.ID, EssayText: &text}
}

func submission(answers ...dto.SubmittedAnswerDTO) dto.SubmitTestDTO {
	return dto.SubmitTestDTO{Answers: answers}
}

func (e *env) countResults(t *testing.T) int64 {
	t.Helper()
	var n int64
	if err := e.db.Model(&model.Result{}).Count(&n).Error; err != nil {
		t.Fatalf("count results: %v", err)
	}
	return n
}

func ptr[T any](v T) *T { return &v }
