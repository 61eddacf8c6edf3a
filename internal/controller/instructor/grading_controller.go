package instructor

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/minhhquann88/DoAn-sub001/internal/controller"
	"github.com/minhhquann88/DoAn-sub001/internal/dto"
	"github.com/minhhquann88/DoAn-sub001/internal/service"
)

// GradingController serves result review, essay grading and statistics to instructors.
type GradingController struct {
	submissions service.TestSubmissionService
	grading     service.GradingService
	statistics  service.StatisticsService
}

func NewGradingController(
	submissions service.TestSubmissionService,
	grading service.GradingService,
	statistics service.StatisticsService,
) *GradingController {
	return &GradingController{submissions: submissions, grading: grading, statistics: statistics}
}

func (c *GradingController) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/tests/:test_id/results", c.ListResults)
	group.GET("/tests/:test_id/statistics", c.GetStatistics)
	group.GET("/tests/:test_id/pending-essays", c.ListPendingEssays)
	group.POST("/result-answers/:answer_id/grade", c.GradeEssay)
	group.POST("/result-answers/:answer_id/suggestion", c.SuggestFeedback)
	group.PUT("/results/:result_id/feedback", c.SetOverallFeedback)
}

// ListResults godoc
// @Summary (Instructor) List results of a test
// @Tags Instructor - Grading
// @Produce json
// @Security BearerAuth
// @Param test_id path int true "Test ID"
// @Success 200 {array} dto.ResultSummaryDTO
// @Failure 403 {object} dto.ErrorResponse "Caller does not own the course"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /instructor/tests/{test_id}/results [get]
func (c *GradingController) ListResults(ctx *gin.Context) {
	caller, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	testID, ok := controller.ParseIDParam(ctx, "test_id")
	if !ok {
		return
	}
	results, err := c.submissions.ListResultsForTest(ctx.Request.Context(), caller, testID)
	if err != nil {
		controller.RespondError(ctx, err, "ListResults")
		return
	}
	ctx.JSON(http.StatusOK, results)
}

// GetStatistics godoc
// @Summary (Instructor) Test statistics
// @Description Average over graded results (null when none), submission count and completion rate.
// @Tags Instructor - Grading
// @Produce json
// @Security BearerAuth
// @Param test_id path int true "Test ID"
// @Success 200 {object} dto.TestStatisticsDTO
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /instructor/tests/{test_id}/statistics [get]
func (c *GradingController) GetStatistics(ctx *gin.Context) {
	caller, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	testID, ok := controller.ParseIDParam(ctx, "test_id")
	if !ok {
		return
	}
	stats, err := c.statistics.Statistics(ctx.Request.Context(), caller, testID)
	if err != nil {
		controller.RespondError(ctx, err, "GetStatistics")
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// ListPendingEssays godoc
// @Summary (Instructor) Essay answers waiting for feedback
// @Tags Instructor - Grading
// @Produce json
// @Security BearerAuth
// @Param test_id path int true "Test ID"
// @Success 200 {array} dto.PendingEssayDTO
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /instructor/tests/{test_id}/pending-essays [get]
func (c *GradingController) ListPendingEssays(ctx *gin.Context) {
	caller, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	testID, ok := controller.ParseIDParam(ctx, "test_id")
	if !ok {
		return
	}
	pending, err := c.grading.ListPendingEssayAnswers(ctx.Request.Context(), caller, testID)
	if err != nil {
		controller.RespondError(ctx, err, "ListPendingEssays")
		return
	}
	ctx.JSON(http.StatusOK, pending)
}

// GradeEssay godoc
// @Summary (Instructor) Grade an essay answer
// @Description Stores feedback and optional points. The result becomes GRADED once no essay lacks feedback.
// @Tags Instructor - Grading
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param answer_id path int true "Result answer ID"
// @Param grade body dto.GradeEssayDTO true "Feedback and optional awarded points"
// @Success 200 {object} dto.GradeEssayResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Not an essay answer or points out of range"
// @Failure 404 {object} dto.ErrorResponse "Answer not found"
// @Failure 409 {object} dto.ErrorResponse "Result already graded"
// @Router /instructor/result-answers/{answer_id}/grade [post]
func (c *GradingController) GradeEssay(ctx *gin.Context) {
	caller, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	answerID, ok := controller.ParseIDParam(ctx, "answer_id")
	if !ok {
		return
	}
	var req dto.GradeEssayDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}
	resp, err := c.grading.GradeEssayAnswer(ctx.Request.Context(), caller, answerID, req)
	if err != nil {
		controller.RespondError(ctx, err, "GradeEssay")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SuggestFeedback godoc
// @Summary (Instructor) Draft feedback for an essay answer
// @Description Asks Gemini for a draft. Nothing is stored.
// @Tags Instructor - Grading
// @Produce json
// @Security BearerAuth
// @Param answer_id path int true "Result answer ID"
// @Success 200 {object} dto.FeedbackSuggestionDTO
// @Failure 400 {object} dto.ErrorResponse "Not an essay answer"
// @Failure 503 {object} dto.ErrorResponse "Assistant not configured or failed"
// @Router /instructor/result-answers/{answer_id}/suggestion [post]
func (c *GradingController) SuggestFeedback(ctx *gin.Context) {
	caller, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	answerID, ok := controller.ParseIDParam(ctx, "answer_id")
	if !ok {
		return
	}
	suggestion, err := c.grading.SuggestEssayFeedback(ctx.Request.Context(), caller, answerID)
	if err != nil {
		controller.RespondError(ctx, err, "SuggestFeedback")
		return
	}
	ctx.JSON(http.StatusOK, suggestion)
}

// SetOverallFeedback godoc
// @Summary (Instructor) Set result-level feedback
// @Tags Instructor - Grading
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param result_id path int true "Result ID"
// @Param feedback body dto.OverallFeedbackDTO true "Feedback"
// @Success 200 {object} dto.ResultSummaryDTO
// @Failure 404 {object} dto.ErrorResponse "Result not found"
// @Router /instructor/results/{result_id}/feedback [put]
func (c *GradingController) SetOverallFeedback(ctx *gin.Context) {
	caller, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	resultID, ok := controller.ParseIDParam(ctx, "result_id")
	if !ok {
		return
	}
	var req dto.OverallFeedbackDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}
	summary, err := c.grading.SetOverallFeedback(ctx.Request.Context(), caller, resultID, req.Feedback)
	if err != nil {
		controller.RespondError(ctx, err, "SetOverallFeedback")
		return
	}
	ctx.JSON(http.StatusOK, summary)
}
