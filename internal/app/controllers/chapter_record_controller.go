package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ozan/classtrack/internal/app/models/dto"
	"github.com/ozan/classtrack/internal/app/services"
	"github.com/ozan/classtrack/internal/middleware"
)

// ChapterRecordController handles chapter evaluation endpoints
type ChapterRecordController struct {
	chapterRecordService *services.ChapterRecordService
}

// NewChapterRecordController creates a new ChapterRecordController
func NewChapterRecordController(chapterRecordService *services.ChapterRecordService) *ChapterRecordController {
	return &ChapterRecordController{chapterRecordService: chapterRecordService}
}

// CreateChapterRecord records that a student was taught a lesson plan
// @Summary Create a chapter record
// @Description Records that a student covered a lesson plan, with an optional 1-5 rating
// @Tags chapter-records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateChapterRecordRequest true "Chapter record information"
// @Success 201 {object} dto.APIResponse{data=dto.ChapterRecordResponse} "Chapter record created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student or lesson plan not found"
// @Router /chapter-records [post]
func (c *ChapterRecordController) CreateChapterRecord(ctx *gin.Context) {
	var req dto.CreateChapterRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.chapterRecordService.CreateChapterRecord(ctx, callerCenterID(ctx), callerUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// GetChapterRecordByID retrieves a chapter record
// @Summary Get chapter record by ID
// @Tags chapter-records
// @Produce json
// @Security BearerAuth
// @Param id path int true "Chapter record ID"
// @Success 200 {object} dto.APIResponse{data=dto.ChapterRecordResponse} "Chapter record retrieved"
// @Failure 404 {object} dto.ErrorResponse "Chapter record not found"
// @Router /chapter-records/{id} [get]
func (c *ChapterRecordController) GetChapterRecordByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.chapterRecordService.GetChapterRecordByID(ctx, callerCenterID(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetChapterRecordsByStudent lists a student's chapter records
// @Summary List a student's chapter records
// @Tags chapter-records
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.ChapterRecordResponse} "Chapter records retrieved"
// @Router /students/{id}/chapter-records [get]
func (c *ChapterRecordController) GetChapterRecordsByStudent(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.chapterRecordService.GetChapterRecordsByStudent(ctx, callerCenterID(ctx), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// UpdateChapterRecord updates an evaluation record
// @Summary Update a chapter record
// @Tags chapter-records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Chapter record ID"
// @Param request body dto.UpdateChapterRecordRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.ChapterRecordResponse} "Chapter record updated"
// @Failure 404 {object} dto.ErrorResponse "Chapter record not found"
// @Router /chapter-records/{id} [put]
func (c *ChapterRecordController) UpdateChapterRecord(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateChapterRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.chapterRecordService.UpdateChapterRecord(ctx, callerCenterID(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// DeleteChapterRecord deletes an evaluation record
// @Summary Delete a chapter record
// @Tags chapter-records
// @Produce json
// @Security BearerAuth
// @Param id path int true "Chapter record ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Chapter record deleted"
// @Failure 404 {object} dto.ErrorResponse "Chapter record not found"
// @Router /chapter-records/{id} [delete]
func (c *ChapterRecordController) DeleteChapterRecord(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.chapterRecordService.DeleteChapterRecord(ctx, callerCenterID(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Chapter record deleted"}))
}
