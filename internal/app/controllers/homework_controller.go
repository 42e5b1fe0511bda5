package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ozan/classtrack/internal/app/models/dto"
	"github.com/ozan/classtrack/internal/app/services"
	"github.com/ozan/classtrack/internal/middleware"
	"github.com/ozan/classtrack/internal/pkg/helpers"
)

// HomeworkController handles homework endpoints
type HomeworkController struct {
	homeworkService *services.HomeworkService
}

// NewHomeworkController creates a new HomeworkController
func NewHomeworkController(homeworkService *services.HomeworkService) *HomeworkController {
	return &HomeworkController{homeworkService: homeworkService}
}

// CreateHomework creates a homework
// @Summary Create a homework
// @Tags homeworks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateHomeworkRequest true "Homework information"
// @Success 201 {object} dto.APIResponse{data=dto.HomeworkResponse} "Homework created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /homeworks [post]
func (c *HomeworkController) CreateHomework(ctx *gin.Context) {
	var req dto.CreateHomeworkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.homeworkService.CreateHomework(ctx, callerCenterID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// GetHomeworkByID retrieves a homework
// @Summary Get homework by ID
// @Tags homeworks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Homework ID"
// @Success 200 {object} dto.APIResponse{data=dto.HomeworkResponse} "Homework retrieved"
// @Failure 404 {object} dto.ErrorResponse "Homework not found"
// @Router /homeworks/{id} [get]
func (c *HomeworkController) GetHomeworkByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.homeworkService.GetHomeworkByID(ctx, callerCenterID(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetAllHomeworks lists the center's homeworks
// @Summary List homeworks
// @Tags homeworks
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.HomeworkListResponse} "Homeworks retrieved"
// @Router /homeworks [get]
func (c *HomeworkController) GetAllHomeworks(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	resp, err := c.homeworkService.GetAllHomeworks(ctx, callerCenterID(ctx), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPaginatedResponse(resp.Homeworks, resp.PaginationInfo))
}

// UpdateHomework updates a homework
// @Summary Update a homework
// @Tags homeworks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Homework ID"
// @Param request body dto.UpdateHomeworkRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.HomeworkResponse} "Homework updated"
// @Failure 404 {object} dto.ErrorResponse "Homework not found"
// @Router /homeworks/{id} [put]
func (c *HomeworkController) UpdateHomework(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateHomeworkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.homeworkService.UpdateHomework(ctx, callerCenterID(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// DeleteHomework removes a homework
// @Summary Delete a homework
// @Tags homeworks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Homework ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Homework deleted"
// @Failure 404 {object} dto.ErrorResponse "Homework not found"
// @Router /homeworks/{id} [delete]
func (c *HomeworkController) DeleteHomework(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.homeworkService.DeleteHomework(ctx, callerCenterID(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Homework deleted"}))
}

// AssignHomework assigns a homework to a student
// @Summary Assign a homework
// @Tags homeworks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Homework ID"
// @Param request body dto.AssignHomeworkRequest true "Student to assign"
// @Success 201 {object} dto.APIResponse{data=dto.HomeworkRecordResponse} "Homework assigned"
// @Failure 404 {object} dto.ErrorResponse "Homework or student not found"
// @Router /homeworks/{id}/records [post]
func (c *HomeworkController) AssignHomework(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AssignHomeworkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.homeworkService.AssignHomework(ctx, callerCenterID(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// GetHomeworkRecords lists all records of a homework
// @Summary List homework records
// @Tags homeworks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Homework ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.HomeworkRecordResponse} "Records retrieved"
// @Router /homeworks/{id}/records [get]
func (c *HomeworkController) GetHomeworkRecords(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.homeworkService.GetHomeworkRecords(ctx, callerCenterID(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// UpdateHomeworkRecord updates the status of a homework record
// @Summary Update a homework record
// @Tags homeworks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param recordId path int true "Homework record ID"
// @Param request body dto.UpdateHomeworkRecordRequest true "New status and remarks"
// @Success 200 {object} dto.APIResponse{data=dto.HomeworkRecordResponse} "Record updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid homework status"
// @Router /homework-records/{recordId} [put]
func (c *HomeworkController) UpdateHomeworkRecord(ctx *gin.Context) {
	recordID, ok := parseIDParam(ctx, "recordId")
	if !ok {
		return
	}

	var req dto.UpdateHomeworkRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.homeworkService.UpdateHomeworkRecord(ctx, callerCenterID(ctx), recordID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
