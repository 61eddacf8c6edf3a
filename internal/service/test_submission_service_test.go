package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/minhhquann88/DoAn-sub001/internal/dto"
	"github.com/minhhquann88/DoAn-sub001/internal/model"
	"github.com/minhhquann88/DoAn-sub001/internal/repository"
	"github.com/minhhquann88/DoAn-sub001/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmit_MixedTestScoresObjectivePartAndWaitsForEssay(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	test := e.mixedTest(t)
	q1, q2, q3 := test.Questions[0], test.Questions[1], test.Questions[2]

	res, err := e.submission.Submit(ctx, learnerA, test.ID, submission(
		choose(q1, q1.Options[0]), // correct
		choose(q2, q2.Options[1]), // wrong, C is correct
		write(q3, "my essay"),
	))
	require.NoError(t, err)

	assert.Equal(t, model.ResultStatusPendingGrading, res.Status)
	assert.Equal(t, 33.33, res.Score)
	assert.Nil(t, res.GradedAt)
	assert.Equal(t, studentA, res.UserID)
	assert.Equal(t, e.clock, res.SubmittedAt)
	require.Len(t, res.Answers, 3)
	assert.Equal(t, []uint{q1.ID, q2.ID, q3.ID},
		[]uint{res.Answers[0].QuestionID, res.Answers[1].QuestionID, res.Answers[2].QuestionID})
	require.NotNil(t, res.Answers[0].IsCorrect)
	assert.True(t, *res.Answers[0].IsCorrect)
	require.NotNil(t, res.Answers[1].IsCorrect)
	assert.False(t, *res.Answers[1].IsCorrect)
	assert.Nil(t, res.Answers[2].IsCorrect)
	assert.Equal(t, "my essay", *res.Answers[2].EssayText)

	grade, err := e.grading.GradeEssayAnswer(ctx, instructor, res.Answers[2].ID, dto.GradeEssayDTO{Feedback: "well argued"})
	require.NoError(t, err)
	assert.True(t, grade.Finalized)
	assert.Equal(t, model.ResultStatusGraded, grade.Result.Status)
	assert.Equal(t, 33.33, grade.Result.Score)

	mine, err := e.submission.GetMyResultForTest(ctx, learnerA, test.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ResultStatusGraded, mine.Status)
	assert.Equal(t, "well argued", *mine.Answers[2].Feedback)
}

func TestSubmit_ObjectiveOnlyTestIsGradedImmediately(t *testing.T) {
	e := newEnv(t)
	test := testutil.CreateTest(t, e.db, e.course.ID,
		testutil.MC("Q1", 0, "A", "B"),
		testutil.MC("Q2", 1, "A", "B"),
		testutil.MC("Q3", 1, "A", "B"),
	)
	q := test.Questions

	res, err := e.submission.Submit(context.Background(), learnerA, test.ID, submission(
		choose(q[0], testutil.CorrectOption(q[0])),
		choose(q[1], testutil.CorrectOption(q[1])),
		choose(q[2], testutil.CorrectOption(q[2])),
	))
	require.NoError(t, err)
	assert.Equal(t, model.ResultStatusGraded, res.Status)
	assert.Equal(t, 100.0, res.Score)
	require.NotNil(t, res.GradedAt)

	var stored model.Result
	require.NoError(t, e.db.First(&stored, res.ID).Error)
	assert.LessOrEqual(t, stored.Score, MaxScore)
}

func TestSubmit_SecondSubmissionIsRejected(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	test := e.mixedTest(t)
	q := test.Questions

	first, err := e.submission.Submit(ctx, learnerA, test.ID, submission(
		choose(q[0], testutil.CorrectOption(q[0])),
		choose(q[1], testutil.CorrectOption(q[1])),
		write(q[2], "first"),
	))
	require.NoError(t, err)

	_, err = e.submission.Submit(ctx, learnerA, test.ID, submission(
		choose(q[0], testutil.WrongOption(q[0])),
		choose(q[1], testutil.WrongOption(q[1])),
		write(q[2], "second"),
	))
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))

	again, err := e.submission.GetResult(ctx, learnerA, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Score, again.Score)
	assert.Equal(t, "first", *again.Answers[2].EssayText)
	assert.Equal(t, int64(1), e.countResults(t))
}

func TestSubmit_ConcurrentDuplicatesStoreOneResult(t *testing.T) {
	e := newEnv(t)
	test := e.mixedTest(t)
	q := test.Questions
	req := submission(
		choose(q[0], testutil.CorrectOption(q[0])),
		choose(q[1], testutil.CorrectOption(q[1])),
		write(q[2], "race"),
	)

	const workers = 6
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		ok        int
		conflicts int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.submission.Submit(context.Background(), learnerA, test.ID, req)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case KindOf(err) == KindConflict:
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.Equal(t, workers-1, conflicts)
	assert.Equal(t, int64(1), e.countResults(t))
}

// editingTestRepo runs edit once, right after the first test read made outside a
// transaction.
type editingTestRepo struct {
	repository.TestRepository
	once sync.Once
	edit func()
}

func (r *editingTestRepo) FindByID(ctx context.Context, id uint) (*model.Test, error) {
	test, err := r.TestRepository.FindByID(ctx, id)
	r.once.Do(r.edit)
	return test, err
}

func (r *editingTestRepo) FindByIDWithQuestions(ctx context.Context, id uint) (*model.Test, error) {
	test, err := r.TestRepository.FindByIDWithQuestions(ctx, id)
	r.once.Do(r.edit)
	return test, err
}

func TestSubmit_QuestionAddedMidSubmissionIsSeen(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	test := testutil.CreateTest(t, e.db, e.course.ID, testutil.MC("Q1", 0, "A", "B"))
	q1 := test.Questions[0]

	repo := &editingTestRepo{
		TestRepository: repository.NewTestRepository(e.db),
		edit: func() {
			_, err := e.catalog.AddQuestion(ctx, instructor, test.ID, dto.QuestionCreateDTO{
				Text: "Q2",
				Type: model.QuestionTypeEssay,
			})
			require.NoError(t, err)
		},
	}
	svc := NewTestSubmissionService(repo, repository.NewResultRepository(e.db),
		NewAccessPolicy(repository.NewCourseRepository(e.db)), NewAutoGrader(),
		NewScoreConverterService(), NewNoopStatsCache(), e.db).(*testSubmissionService)
	svc.now = func() time.Time { return e.clock }

	_, err := svc.Submit(ctx, learnerA, test.ID, submission(choose(q1, q1.Options[0])))
	assert.Equal(t, KindInvalidInput, KindOf(err), "%v", err)
	assert.ErrorContains(t, err, "missing answers")
	assert.Zero(t, e.countResults(t))

	reloaded, err := repository.NewTestRepository(e.db).FindByIDWithQuestions(ctx, test.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Questions, 2)
	q2 := reloaded.Questions[1]

	res, err := svc.Submit(ctx, learnerA, test.ID, submission(
		choose(q1, q1.Options[0]),
		write(q2, "late essay"),
	))
	require.NoError(t, err)
	assert.Equal(t, model.ResultStatusPendingGrading, res.Status)
	assert.Equal(t, 50.0, res.Score)
	assert.Len(t, res.Answers, 2)
}

func TestSubmit_RejectsMalformedAnswerSets(t *testing.T) {
	e := newEnv(t)
	test := e.mixedTest(t)
	q1, q2, q3 := test.Questions[0], test.Questions[1], test.Questions[2]
	other := testutil.CreateTest(t, e.db, e.course.ID, testutil.MC("Elsewhere", 0, "X", "Y"))
	foreign := other.Questions[0]

	tests := []struct {
		name string
		req  dto.SubmitTestDTO
		want string
	}{
		{
			name: "missing answer",
			req:  submission(choose(q1, q1.Options[0]), write(q3, "text")),
			want: "missing answers",
		},
		{
			name: "question from another test",
			req: submission(choose(q1, q1.Options[0]), choose(q2, q2.Options[0]), write(q3, "text"),
				choose(foreign, foreign.Options[0])),
			want: "does not belong to test",
		},
		{
			name: "duplicate answer",
			req: submission(choose(q1, q1.Options[0]), choose(q1, q1.Options[1]),
				choose(q2, q2.Options[0]), write(q3, "text")),
			want: "more than once",
		},
		{
			name: "option of another question",
			req:  submission(choose(q1, q2.Options[2]), choose(q2, q2.Options[0]), write(q3, "text")),
			want: "does not belong to question",
		},
		{
			name: "essay text on multiple choice",
			req:  submission(write(q1, "A"), choose(q2, q2.Options[0]), write(q3, "text")),
			want: "takes no essay text",
		},
		{
			name: "option on essay",
			req:  submission(choose(q1, q1.Options[0]), choose(q2, q2.Options[0]), choose(q3, q1.Options[0])),
			want: "takes no chosen option",
		},
		{
			name: "blank essay",
			req:  submission(choose(q1, q1.Options[0]), choose(q2, q2.Options[0]), write(q3, "   ")),
			want: "non-blank essay",
		},
		{
			name: "no option chosen",
			req:  submission(dto.SubmittedAnswerDTO{QuestionID: q1.ID}, choose(q2, q2.Options[0]), write(q3, "text")),
			want: "needs a chosen option",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.submission.Submit(context.Background(), learnerA, test.ID, tc.req)
			require.Error(t, err)
			assert.Equal(t, KindInvalidInput, KindOf(err))
			assert.Contains(t, err.Error(), tc.want)
			assert.Equal(t, int64(0), e.countResults(t))
		})
	}
}

func TestSubmit_TestWithoutQuestions(t *testing.T) {
	e := newEnv(t)
	test := testutil.CreateTest(t, e.db, e.course.ID)

	_, err := e.submission.Submit(context.Background(), learnerA, test.ID, submission(dto.SubmittedAnswerDTO{QuestionID: 1}))
	assert.Equal(t, KindInvalidInput, KindOf(err))
}

func TestSubmit_Window(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	test := e.mixedTest(t)
	q := test.Questions
	req := submission(choose(q[0], q[0].Options[0]), choose(q[1], q[1].Options[0]), write(q[2], "x"))

	opens := e.clock.Add(time.Hour)
	closes := opens.Add(time.Hour)
	require.NoError(t, e.db.Model(test).Updates(map[string]interface{}{"opens_at": opens, "closes_at": closes}).Error)

	_, err := e.submission.Submit(ctx, learnerA, test.ID, req)
	require.Error(t, err)
	assert.Equal(t, KindWindowClosed, KindOf(err))
	assert.ErrorIs(t, err, model.ErrTestNotOpen)

	e.clock = closes.Add(time.Minute)
	_, err = e.submission.Submit(ctx, learnerA, test.ID, req)
	assert.ErrorIs(t, err, model.ErrTestClosed)

	e.clock = closes
	_, err = e.submission.Submit(ctx, learnerA, test.ID, req)
	assert.NoError(t, err)
}

func TestSubmit_AccessChecks(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	test := e.mixedTest(t)
	q := test.Questions
	req := submission(choose(q[0], q[0].Options[0]), choose(q[1], q[1].Options[0]), write(q[2], "x"))

	_, err := e.submission.Submit(ctx, Caller{UserID: outsider, Role: RoleStudent}, test.ID, req)
	assert.Equal(t, KindForbidden, KindOf(err))

	_, err = e.submission.Submit(ctx, instructor, test.ID, req)
	assert.Equal(t, KindForbidden, KindOf(err))

	_, err = e.submission.Submit(ctx, learnerA, 9999, req)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestResultVisibility(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	test := e.mixedTest(t)
	q := test.Questions
	res, err := e.submission.Submit(ctx, learnerA, test.ID,
		submission(choose(q[0], q[0].Options[0]), choose(q[1], q[1].Options[0]), write(q[2], "x")))
	require.NoError(t, err)

	_, err = e.submission.GetResult(ctx, learnerB, res.ID)
	assert.Equal(t, KindForbidden, KindOf(err))

	_, err = e.submission.GetResult(ctx, stranger, res.ID)
	assert.Equal(t, KindForbidden, KindOf(err))

	viewed, err := e.submission.GetResult(ctx, instructor, res.ID)
	require.NoError(t, err)
	assert.Equal(t, test.Title, viewed.TestTitle)

	_, err = e.submission.GetMyResultForTest(ctx, learnerB, test.ID)
	assert.Equal(t, KindNotFound, KindOf(err))

	list, err := e.submission.ListResultsForTest(ctx, instructor, test.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, res.ID, list[0].ID)

	_, err = e.submission.ListResultsForTest(ctx, stranger, test.ID)
	assert.Equal(t, KindForbidden, KindOf(err))
}
