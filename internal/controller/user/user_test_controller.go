package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/minhhquann88/DoAn-sub001/internal/controller"
	"github.com/minhhquann88/DoAn-sub001/internal/dto"
	"github.com/minhhquann88/DoAn-sub001/internal/service"
	"github.com/rs/zerolog/log"
)

type UserTestController struct {
	userTestService       service.UserTestService
	testSubmissionService service.TestSubmissionService
}

func NewUserTestController(uts service.UserTestService, tss service.TestSubmissionService) *UserTestController {
	return &UserTestController{
		userTestService:       uts,
		testSubmissionService: tss,
	}
}

// RegisterRoutes mounts the learner routes on an authenticated group.
func (c *UserTestController) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/tests", c.GetAllTests)
	group.GET("/tests/:test_id", c.GetTestDetails)
	group.POST("/tests/:test_id/results", c.SubmitTest)
	group.GET("/tests/:test_id/my-result", c.GetMyResult)
	group.GET("/results/:result_id", c.GetResult)
}

// GetAllTests godoc
// @Summary List tests
// @Description Tests of the courses the caller owns or is enrolled in, with their question count, optionally filtered by course.
// @Tags Student - Tests & Results
// @Produce json
// @Security BearerAuth
// @Param course_id query int false "Course ID filter"
// @Success 200 {array} dto.TestSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid course_id"
// @Failure 403 {object} dto.ErrorResponse "Not a member of the course"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests [get]
func (c *UserTestController) GetAllTests(ctx *gin.Context) {
	caller, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	var courseID *uint
	if raw := ctx.Query("course_id"); raw != "" {
		val, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid course_id format in query"})
			return
		}
		id := uint(val)
		courseID = &id
	}

	tests, err := c.userTestService.GetAllTests(ctx.Request.Context(), caller, courseID)
	if err != nil {
		controller.RespondError(ctx, err, "GetAllTests")
		return
	}
	ctx.JSON(http.StatusOK, tests)
}

// GetTestDetails godoc
// @Summary Get a test to take
// @Description Full test with questions and options. Correctness flags are never included.
// @Tags Student - Tests & Results
// @Produce json
// @Security BearerAuth
// @Param test_id path int true "Test ID"
// @Success 200 {object} dto.TestResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Test ID format"
// @Failure 403 {object} dto.ErrorResponse "Not enrolled in the test's course"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /tests/{test_id} [get]
func (c *UserTestController) GetTestDetails(ctx *gin.Context) {
	caller, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	testID, ok := controller.ParseIDParam(ctx, "test_id")
	if !ok {
		return
	}
	testDetails, err := c.userTestService.GetTestDetails(ctx.Request.Context(), caller, testID)
	if err != nil {
		controller.RespondError(ctx, err, "GetTestDetails")
		return
	}
	ctx.JSON(http.StatusOK, testDetails)
}

// SubmitTest godoc
// @Summary Submit answers for a test
// @Description Submits one answer per question. Multiple-choice answers are graded immediately; a test with essay questions stays PENDING_GRADING until every essay has feedback.
// @Tags Student - Tests & Results
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param test_id path int true "Test ID"
// @Param submission body dto.SubmitTestDTO true "Answers, one per question"
// @Success 201 {object} dto.ResultDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Missing, duplicate or mismatched answers"
// @Failure 403 {object} dto.ErrorResponse "Not enrolled in the test's course"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 409 {object} dto.ErrorResponse "Already submitted"
// @Failure 422 {object} dto.ErrorResponse "Test not open or closed"
// @Router /tests/{test_id}/results [post]
func (c *UserTestController) SubmitTest(ctx *gin.Context) {
	caller, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	testID, ok := controller.ParseIDParam(ctx, "test_id")
	if !ok {
		return
	}
	var req dto.SubmitTestDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}

	log.Info().Uint("testID", testID).Uint("userID", caller.UserID).Int("answerCount", len(req.Answers)).Msg("Received test submission")

	result, err := c.testSubmissionService.Submit(ctx.Request.Context(), caller, testID, req)
	if err != nil {
		controller.RespondError(ctx, err, "SubmitTest")
		return
	}
	ctx.JSON(http.StatusCreated, result)
}

// GetMyResult godoc
// @Summary Get my result for a test
// @Tags Student - Tests & Results
// @Produce json
// @Security BearerAuth
// @Param test_id path int true "Test ID"
// @Success 200 {object} dto.ResultDetailDTO
// @Failure 404 {object} dto.ErrorResponse "No result yet"
// @Router /tests/{test_id}/my-result [get]
func (c *UserTestController) GetMyResult(ctx *gin.Context) {
	caller, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	testID, ok := controller.ParseIDParam(ctx, "test_id")
	if !ok {
		return
	}
	result, err := c.testSubmissionService.GetMyResultForTest(ctx.Request.Context(), caller, testID)
	if err != nil {
		controller.RespondError(ctx, err, "GetMyResult")
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetResult godoc
// @Summary Get a result
// @Description Readable by the submitting student and by the instructor owning the course.
// @Tags Student - Tests & Results
// @Produce json
// @Security BearerAuth
// @Param result_id path int true "Result ID"
// @Success 200 {object} dto.ResultDetailDTO
// @Failure 403 {object} dto.ErrorResponse "Not your result"
// @Failure 404 {object} dto.ErrorResponse "Result not found"
// @Router /results/{result_id} [get]
func (c *UserTestController) GetResult(ctx *gin.Context) {
	caller, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	resultID, ok := controller.ParseIDParam(ctx, "result_id")
	if !ok {
		return
	}
	result, err := c.testSubmissionService.GetResult(ctx.Request.Context(), caller, resultID)
	if err != nil {
		controller.RespondError(ctx, err, "GetResult")
		return
	}
	ctx.JSON(http.StatusOK, result)
}
