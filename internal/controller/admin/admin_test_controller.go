package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/minhhquann88/DoAn-sub001/internal/controller"
	"github.com/minhhquann88/DoAn-sub001/internal/dto"
	"github.com/minhhquann88/DoAn-sub001/internal/service"
)

type AdminTestController struct {
	adminTestService service.AdminTestService
}

func NewAdminTestController(adminTestService service.AdminTestService) *AdminTestController {
	return &AdminTestController{adminTestService: adminTestService}
}

// RegisterRoutes mounts the catalog routes on the instructor group.
func (c *AdminTestController) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/tests", c.CreateTest)
	group.GET("/tests/:test_id", c.GetTest)
	group.PUT("/tests/:test_id", c.UpdateTest)
	group.DELETE("/tests/:test_id", c.DeleteTest)
	group.POST("/tests/:test_id/questions", c.AddQuestion)
	group.PUT("/questions/:question_id", c.UpdateQuestion)
	group.DELETE("/questions/:question_id", c.DeleteQuestion)
}

// CreateTest godoc
// @Summary (Instructor) Create a test
// @Description Creates a test in a course the caller owns, optionally with its questions.
// @Tags Instructor - Tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param test_data body dto.TestCreateDTO true "Test and optional questions"
// @Success 201 {object} dto.AdminTestDTO "Test created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 403 {object} dto.ErrorResponse "Caller does not own the course"
// @Router /instructor/tests [post]
func (c *AdminTestController) CreateTest(ctx *gin.Context) {
	caller, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	var req dto.TestCreateDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}
	testResp, err := c.adminTestService.CreateTest(ctx.Request.Context(), caller, req)
	if err != nil {
		controller.RespondError(ctx, err, "CreateTest")
		return
	}
	ctx.JSON(http.StatusCreated, testResp)
}

// GetTest godoc
// @Summary (Instructor) Get a test with correctness flags
// @Tags Instructor - Tests
// @Produce json
// @Security BearerAuth
// @Param test_id path int true "Test ID"
// @Success 200 {object} dto.AdminTestDTO
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /instructor/tests/{test_id} [get]
func (c *AdminTestController) GetTest(ctx *gin.Context) {
	caller, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	testID, ok := controller.ParseIDParam(ctx, "test_id")
	if !ok {
		return
	}
	testResp, err := c.adminTestService.GetTest(ctx.Request.Context(), caller, testID)
	if err != nil {
		controller.RespondError(ctx, err, "GetTest")
		return
	}
	ctx.JSON(http.StatusOK, testResp)
}

// UpdateTest godoc
// @Summary (Instructor) Update test metadata
// @Description Title, type, window and time limit. Allowed after submissions exist.
// @Tags Instructor - Tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param test_id path int true "Test ID"
// @Param test_data body dto.TestUpdateDTO true "New metadata"
// @Success 200 {object} dto.AdminTestDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /instructor/tests/{test_id} [put]
func (c *AdminTestController) UpdateTest(ctx *gin.Context) {
	caller, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	testID, ok := controller.ParseIDParam(ctx, "test_id")
	if !ok {
		return
	}
	var req dto.TestUpdateDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}
	testResp, err := c.adminTestService.UpdateTest(ctx.Request.Context(), caller, testID, req)
	if err != nil {
		controller.RespondError(ctx, err, "UpdateTest")
		return
	}
	ctx.JSON(http.StatusOK, testResp)
}

// DeleteTest godoc
// @Summary (Instructor) Delete a test
// @Description Only tests without submissions can be deleted; questions and options go with it.
// @Tags Instructor - Tests
// @Security BearerAuth
// @Param test_id path int true "Test ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 409 {object} dto.ErrorResponse "Test has submissions"
// @Router /instructor/tests/{test_id} [delete]
func (c *AdminTestController) DeleteTest(ctx *gin.Context) {
	caller, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	testID, ok := controller.ParseIDParam(ctx, "test_id")
	if !ok {
		return
	}
	if err := c.adminTestService.DeleteTest(ctx.Request.Context(), caller, testID); err != nil {
		controller.RespondError(ctx, err, "DeleteTest")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// AddQuestion godoc
// @Summary (Instructor) Add a question to a test
// @Tags Instructor - Tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param test_id path int true "Test ID"
// @Param question body dto.QuestionCreateDTO true "Question with options for multiple choice"
// @Success 201 {object} dto.AdminQuestionDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid question"
// @Failure 409 {object} dto.ErrorResponse "Test has submissions"
// @Router /instructor/tests/{test_id}/questions [post]
func (c *AdminTestController) AddQuestion(ctx *gin.Context) {
	caller, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	testID, ok := controller.ParseIDParam(ctx, "test_id")
	if !ok {
		return
	}
	var req dto.QuestionCreateDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}
	question, err := c.adminTestService.AddQuestion(ctx.Request.Context(), caller, testID, req)
	if err != nil {
		controller.RespondError(ctx, err, "AddQuestion")
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// UpdateQuestion godoc
// @Summary (Instructor) Replace a question
// @Tags Instructor - Tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param question_id path int true "Question ID"
// @Param question body dto.QuestionCreateDTO true "Question with options for multiple choice"
// @Success 200 {object} dto.AdminQuestionDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid question"
// @Failure 409 {object} dto.ErrorResponse "Test has submissions"
// @Router /instructor/questions/{question_id} [put]
func (c *AdminTestController) UpdateQuestion(ctx *gin.Context) {
	caller, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	questionID, ok := controller.ParseIDParam(ctx, "question_id")
	if !ok {
		return
	}
	var req dto.QuestionCreateDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}
	question, err := c.adminTestService.UpdateQuestion(ctx.Request.Context(), caller, questionID, req)
	if err != nil {
		controller.RespondError(ctx, err, "UpdateQuestion")
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// DeleteQuestion godoc
// @Summary (Instructor) Delete a question
// @Tags Instructor - Tests
// @Security BearerAuth
// @Param question_id path int true "Question ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 409 {object} dto.ErrorResponse "Test has submissions"
// @Router /instructor/questions/{question_id} [delete]
func (c *AdminTestController) DeleteQuestion(ctx *gin.Context) {
	caller, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	questionID, ok := controller.ParseIDParam(ctx, "question_id")
	if !ok {
		return
	}
	if err := c.adminTestService.DeleteQuestion(ctx.Request.Context(), caller, questionID); err != nil {
		controller.RespondError(ctx, err, "DeleteQuestion")
		return
	}
	ctx.Status(http.StatusNoContent)
}
