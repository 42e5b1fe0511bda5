package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ozan/classtrack/internal/app/models/dto"
	"github.com/ozan/classtrack/internal/app/services"
	"github.com/ozan/classtrack/internal/middleware"
	"github.com/ozan/classtrack/internal/pkg/helpers"
)

// TestController handles test and test result endpoints
type TestController struct {
	testService *services.TestService
}

// NewTestController creates a new TestController
func NewTestController(testService *services.TestService) *TestController {
	return &TestController{testService: testService}
}

// CreateTest creates a test
// @Summary Create a test
// @Tags tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTestRequest true "Test information"
// @Success 201 {object} dto.APIResponse{data=dto.TestResponse} "Test created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /tests [post]
func (c *TestController) CreateTest(ctx *gin.Context) {
	var req dto.CreateTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.testService.CreateTest(ctx, callerCenterID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// GetTestByID retrieves a test
// @Summary Get test by ID
// @Tags tests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Test ID"
// @Success 200 {object} dto.APIResponse{data=dto.TestResponse} "Test retrieved"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /tests/{id} [get]
func (c *TestController) GetTestByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.testService.GetTestByID(ctx, callerCenterID(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetAllTests lists the center's tests
// @Summary List tests
// @Tags tests
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.TestListResponse} "Tests retrieved"
// @Router /tests [get]
func (c *TestController) GetAllTests(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	resp, err := c.testService.GetAllTests(ctx, callerCenterID(ctx), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPaginatedResponse(resp.Tests, resp.PaginationInfo))
}

// UpdateTest updates a test
// @Summary Update a test
// @Tags tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Test ID"
// @Param request body dto.UpdateTestRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.TestResponse} "Test updated"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /tests/{id} [put]
func (c *TestController) UpdateTest(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.testService.UpdateTest(ctx, callerCenterID(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// DeleteTest removes a test
// @Summary Delete a test
// @Tags tests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Test ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Test deleted"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /tests/{id} [delete]
func (c *TestController) DeleteTest(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.testService.DeleteTest(ctx, callerCenterID(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Test deleted"}))
}

// CreateTestResult records a student's marks on a test
// @Summary Record a test result
// @Tags tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Test ID"
// @Param request body dto.CreateTestResultRequest true "Result information"
// @Success 201 {object} dto.APIResponse{data=dto.TestResultResponse} "Result recorded"
// @Failure 400 {object} dto.ErrorResponse "Marks exceed the test total"
// @Router /tests/{id}/results [post]
func (c *TestController) CreateTestResult(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateTestResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.testService.CreateTestResult(ctx, callerCenterID(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// GetTestResults lists all results of a test
// @Summary List test results
// @Tags tests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Test ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.TestResultResponse} "Results retrieved"
// @Router /tests/{id}/results [get]
func (c *TestController) GetTestResults(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.testService.GetTestResultsByTest(ctx, callerCenterID(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// DeleteTestResult removes a test result
// @Summary Delete a test result
// @Tags tests
// @Produce json
// @Security BearerAuth
// @Param resultId path int true "Test result ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Result deleted"
// @Failure 404 {object} dto.ErrorResponse "Result not found"
// @Router /test-results/{resultId} [delete]
func (c *TestController) DeleteTestResult(ctx *gin.Context) {
	resultID, ok := parseIDParam(ctx, "resultId")
	if !ok {
		return
	}

	if err := c.testService.DeleteTestResult(ctx, callerCenterID(ctx), resultID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Test result deleted"}))
}
