package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/minhhquann88/DoAn-sub001/config"
	adminctrl "github.com/minhhquann88/DoAn-sub001/internal/controller/admin"
	instructorctrl "github.com/minhhquann88/DoAn-sub001/internal/controller/instructor"
	"github.com/minhhquann88/DoAn-sub001/internal/controller/middleware"
	userctrl "github.com/minhhquann88/DoAn-sub001/internal/controller/user"
	"github.com/minhhquann88/DoAn-sub001/internal/dto"
	"github.com/minhhquann88/DoAn-sub001/internal/model"
	"github.com/minhhquann88/DoAn-sub001/internal/repository"
	"github.com/minhhquann88/DoAn-sub001/internal/service"
	"github.com/minhhquann88/DoAn-sub001/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type api struct {
	t      *testing.T
	router *gin.Engine
	auth   *middleware.Authenticator
}

func newAPI(t *testing.T) (*api, *model.Course) {
	t.Helper()
	cfg := &config.Config{
		Server: config.Server{GinMode: gin.TestMode, CORSOrigins: []string{"*"}},
		JWT:    config.JWT{Secret: "router-secret", Issuer: "assessment-test"},
	}
	db := testutil.NewDB(t)
	course := testutil.CreateCourse(t, db, 1)
	testutil.Enroll(t, db, course.ID, 100)

	testRepo := repository.NewTestRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	resultRepo := repository.NewResultRepository(db)
	answerRepo := repository.NewResultAnswerRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	access := service.NewAccessPolicy(courseRepo)
	grader := service.NewAutoGrader()
	conv := service.NewScoreConverterService()
	cache := service.NewNoopStatsCache()
	assistant, err := service.NewEssayAssistant(cfg)
	require.NoError(t, err)

	submissions := service.NewTestSubmissionService(testRepo, resultRepo, access, grader, conv, cache, db)
	grading := service.NewGradingService(testRepo, resultRepo, answerRepo, access, grader, conv, assistant, cache, db)
	stats := service.NewStatisticsService(testRepo, resultRepo, courseRepo, access, cache)

	router := NewGinEngine(cfg)
	auth := middleware.NewAuthenticator(cfg)
	RegisterRoutes(router, db, auth,
		userctrl.NewUserTestController(service.NewUserTestService(testRepo, access), submissions),
		adminctrl.NewAdminTestController(service.NewAdminTestService(testRepo, questionRepo, access, db)),
		instructorctrl.NewGradingController(submissions, grading, stats),
	)
	return &api{t: t, router: router, auth: auth}, course
}

func (a *api) token(userID uint, role service.Role) string {
	tok, err := a.auth.IssueToken(userID, role, time.Hour)
	require.NoError(a.t, err)
	return tok
}

func (a *api) call(method, path, token string, body interface{}, out interface{}) int {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	if out != nil && w.Body.Len() > 0 {
		require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	}
	return w.Code
}

func TestAssessmentFlowOverHTTP(t *testing.T) {
	a, course := newAPI(t)
	instructor := a.token(1, service.RoleInstructor)
	student := a.token(100, service.RoleStudent)
	outsider := a.token(999, service.RoleStudent)

	var created dto.AdminTestDTO
	code := a.call(http.MethodPost, "/api/v1/instructor/tests", instructor, dto.TestCreateDTO{
		CourseID: course.ID,
		Title:    "Final",
		Type:     model.TestTypeEssay,
		Questions: []dto.QuestionCreateDTO{
			{Text: "Q1", Type: model.QuestionTypeMultipleChoice, Options: []dto.OptionCreateDTO{
				{Text: "A", IsCorrect: true}, {Text: "B"},
			}},
			{Text: "Q2", Type: model.QuestionTypeMultipleChoice, Options: []dto.OptionCreateDTO{
				{Text: "A"}, {Text: "B"}, {Text: "C", IsCorrect: true},
			}},
			{Text: "Q3", Type: model.QuestionTypeEssay},
		},
	}, &created)
	require.Equal(t, http.StatusCreated, code)
	require.Len(t, created.Questions, 3)

	assert.Equal(t, http.StatusForbidden, a.call(http.MethodPost, "/api/v1/instructor/tests", student, dto.TestCreateDTO{}, nil))
	assert.Equal(t, http.StatusUnauthorized, a.call(http.MethodGet, "/api/v1/tests", "", nil, nil))

	var view map[string]interface{}
	code = a.call(http.MethodGet, fmt.Sprintf("/api/v1/tests/%d", created.ID), student, nil, &view)
	require.Equal(t, http.StatusOK, code)
	assert.NotContains(t, mustJSON(t, view), "is_correct")

	assert.Equal(t, http.StatusForbidden,
		a.call(http.MethodGet, fmt.Sprintf("/api/v1/tests/%d", created.ID), outsider, nil, nil))

	q := created.Questions
	essay := "my essay"
	req := dto.SubmitTestDTO{Answers: []dto.SubmittedAnswerDTO{
		{QuestionID: q[0].ID, ChosenOptionID: &q[0].Options[0].ID},
		{QuestionID: q[1].ID, ChosenOptionID: &q[1].Options[1].ID},
		{QuestionID: q[2].ID, EssayText: &essay},
	}}
	var result dto.ResultDetailDTO
	code = a.call(http.MethodPost, fmt.Sprintf("/api/v1/tests/%d/results", created.ID), student, req, &result)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, model.ResultStatusPendingGrading, result.Status)
	assert.Equal(t, 33.33, result.Score)

	var errResp dto.ErrorResponse
	code = a.call(http.MethodPost, fmt.Sprintf("/api/v1/tests/%d/results", created.ID), student, req, &errResp)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "already submitted", errResp.Message)

	code = a.call(http.MethodPost, fmt.Sprintf("/api/v1/instructor/tests/%d/questions", created.ID), instructor,
		dto.QuestionCreateDTO{Text: "late", Type: model.QuestionTypeEssay}, nil)
	assert.Equal(t, http.StatusConflict, code)

	var pending []dto.PendingEssayDTO
	code = a.call(http.MethodGet, fmt.Sprintf("/api/v1/instructor/tests/%d/pending-essays", created.ID), instructor, nil, &pending)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, pending, 1)

	code = a.call(http.MethodPost, fmt.Sprintf("/api/v1/instructor/result-answers/%d/grade", pending[0].ResultAnswerID),
		instructor, map[string]string{"feedback": "  "}, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code = a.call(http.MethodPost, fmt.Sprintf("/api/v1/instructor/result-answers/%d/suggestion", pending[0].ResultAnswerID),
		instructor, nil, nil)
	assert.Equal(t, http.StatusServiceUnavailable, code)

	var graded dto.GradeEssayResponseDTO
	code = a.call(http.MethodPost, fmt.Sprintf("/api/v1/instructor/result-answers/%d/grade", pending[0].ResultAnswerID),
		instructor, dto.GradeEssayDTO{Feedback: "well argued"}, &graded)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, graded.Finalized)
	assert.Equal(t, model.ResultStatusGraded, graded.Result.Status)

	var mine dto.ResultDetailDTO
	code = a.call(http.MethodGet, fmt.Sprintf("/api/v1/tests/%d/my-result", created.ID), student, nil, &mine)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, model.ResultStatusGraded, mine.Status)

	var stats dto.TestStatisticsDTO
	code = a.call(http.MethodGet, fmt.Sprintf("/api/v1/instructor/tests/%d/statistics", created.ID), instructor, nil, &stats)
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, stats.AverageScore)
	assert.Equal(t, 33.33, *stats.AverageScore)
	assert.Equal(t, 1.0, stats.CompletionRate)

	assert.Equal(t, http.StatusConflict,
		a.call(http.MethodDelete, fmt.Sprintf("/api/v1/instructor/tests/%d", created.ID), instructor, nil, nil))
}

func TestHealthz(t *testing.T) {
	a, _ := newAPI(t)
	var body map[string]string
	assert.Equal(t, http.StatusOK, a.call(http.MethodGet, "/healthz", "", nil, &body))
	assert.Equal(t, "ok", body["status"])
}

func mustJSON(t *testing.T, v interface{}) string {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return string(raw)
}
