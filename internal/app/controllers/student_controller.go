package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ozan/classtrack/internal/app/models/dto"
	"github.com/ozan/classtrack/internal/app/services"
	"github.com/ozan/classtrack/internal/middleware"
	"github.com/ozan/classtrack/internal/pkg/helpers"
)

// StudentController handles student management endpoints
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// CreateStudent enrolls a new student
// @Summary Enroll a student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=dto.StudentResponse} "Student enrolled"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.studentService.CreateStudent(ctx, callerCenterID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// GetStudentByID retrieves a student of the caller's center
// @Summary Get student by ID
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Student retrieved"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.studentService.GetStudentByID(ctx, callerCenterID(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetAllStudents lists the center's students
// @Summary List students
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param grade query string false "Filter by grade"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse} "Students retrieved"
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	resp, err := c.studentService.GetAllStudents(ctx, callerCenterID(ctx), ctx.Query("grade"), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPaginatedResponse(resp.Students, resp.PaginationInfo))
}

// UpdateStudent updates a student's profile
// @Summary Update a student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Student updated"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.studentService.UpdateStudent(ctx, callerCenterID(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// DeleteStudent removes a student
// @Summary Delete a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Student deleted"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.studentService.DeleteStudent(ctx, callerCenterID(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Student deleted"}))
}

// LinkParent links a parent account to a student
// @Summary Link a parent to a student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.LinkParentRequest true "Parent user ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Parent linked"
// @Failure 409 {object} dto.ErrorResponse "Parent already linked"
// @Router /students/{id}/parents [post]
func (c *StudentController) LinkParent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.LinkParentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.studentService.LinkParent(ctx, callerCenterID(ctx), id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Parent linked"}))
}

// UnlinkParent removes a parent-student link
// @Summary Unlink a parent from a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param parentId path int true "Parent user ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Parent unlinked"
// @Router /students/{id}/parents/{parentId} [delete]
func (c *StudentController) UnlinkParent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	parentID, ok := parseIDParam(ctx, "parentId")
	if !ok {
		return
	}

	if err := c.studentService.UnlinkParent(ctx, callerCenterID(ctx), id, parentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Parent unlinked"}))
}

// GetLinkedStudents lists the caller's linked students (parent accounts)
// @Summary List own linked students
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.LinkedStudentsResponse} "Linked students retrieved"
// @Router /students/mine [get]
func (c *StudentController) GetLinkedStudents(ctx *gin.Context) {
	resp, err := c.studentService.GetLinkedStudents(ctx, callerUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
