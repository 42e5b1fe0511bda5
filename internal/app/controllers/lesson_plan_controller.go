package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ozan/classtrack/internal/app/models/dto"
	"github.com/ozan/classtrack/internal/app/repositories"
	"github.com/ozan/classtrack/internal/app/services"
	"github.com/ozan/classtrack/internal/middleware"
	"github.com/ozan/classtrack/internal/pkg/helpers"
)

// LessonPlanController handles lesson plan endpoints
type LessonPlanController struct {
	lessonPlanService *services.LessonPlanService
}

// NewLessonPlanController creates a new LessonPlanController
func NewLessonPlanController(lessonPlanService *services.LessonPlanService) *LessonPlanController {
	return &LessonPlanController{lessonPlanService: lessonPlanService}
}

// CreateLessonPlan creates a lesson plan
// @Summary Create a lesson plan
// @Tags lesson-plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateLessonPlanRequest true "Lesson plan information"
// @Success 201 {object} dto.APIResponse{data=dto.LessonPlanResponse} "Lesson plan created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /lesson-plans [post]
func (c *LessonPlanController) CreateLessonPlan(ctx *gin.Context) {
	var req dto.CreateLessonPlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.lessonPlanService.CreateLessonPlan(ctx, callerCenterID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// GetLessonPlanByID retrieves a lesson plan
// @Summary Get lesson plan by ID
// @Tags lesson-plans
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lesson plan ID"
// @Success 200 {object} dto.APIResponse{data=dto.LessonPlanResponse} "Lesson plan retrieved"
// @Failure 404 {object} dto.ErrorResponse "Lesson plan not found"
// @Router /lesson-plans/{id} [get]
func (c *LessonPlanController) GetLessonPlanByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.lessonPlanService.GetLessonPlanByID(ctx, callerCenterID(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetAllLessonPlans lists the center's lesson plans
// @Summary List lesson plans
// @Tags lesson-plans
// @Produce json
// @Security BearerAuth
// @Param subject query string false "Filter by subject"
// @Param grade query string false "Filter by grade"
// @Param from query string false "Start of lesson date window (YYYY-MM-DD)"
// @Param to query string false "End of lesson date window (YYYY-MM-DD)"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.LessonPlanListResponse} "Lesson plans retrieved"
// @Router /lesson-plans [get]
func (c *LessonPlanController) GetAllLessonPlans(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	params := repositories.GetAllLessonPlansParams{Page: page, Size: size}
	if subject := ctx.Query("subject"); subject != "" {
		params.Subject = &subject
	}
	if grade := ctx.Query("grade"); grade != "" {
		params.Grade = &grade
	}
	if from := helpers.ParseDateParam(ctx.Query("from")); !from.IsZero() {
		params.From = &from
	}
	if to := helpers.ParseDateParam(ctx.Query("to")); !to.IsZero() {
		params.To = timePtr(to)
	}

	resp, err := c.lessonPlanService.GetAllLessonPlans(ctx, callerCenterID(ctx), params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPaginatedResponse(resp.LessonPlans, resp.PaginationInfo))
}

func timePtr(t time.Time) *time.Time { return &t }

// UpdateLessonPlan updates a lesson plan
// @Summary Update a lesson plan
// @Tags lesson-plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lesson plan ID"
// @Param request body dto.UpdateLessonPlanRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.LessonPlanResponse} "Lesson plan updated"
// @Failure 404 {object} dto.ErrorResponse "Lesson plan not found"
// @Router /lesson-plans/{id} [put]
func (c *LessonPlanController) UpdateLessonPlan(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateLessonPlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.lessonPlanService.UpdateLessonPlan(ctx, callerCenterID(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// DeleteLessonPlan removes a lesson plan
// @Summary Delete a lesson plan
// @Tags lesson-plans
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lesson plan ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Lesson plan deleted"
// @Failure 404 {object} dto.ErrorResponse "Lesson plan not found"
// @Router /lesson-plans/{id} [delete]
func (c *LessonPlanController) DeleteLessonPlan(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.lessonPlanService.DeleteLessonPlan(ctx, callerCenterID(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Lesson plan deleted"}))
}
