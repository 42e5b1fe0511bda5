package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ozan/classtrack/internal/app/auth"
	"github.com/ozan/classtrack/internal/app/models/dto"
	"github.com/ozan/classtrack/internal/app/services"
	"github.com/ozan/classtrack/internal/middleware"
)

// PerformanceController serves the chapter performance dashboards
type PerformanceController struct {
	performanceService   *services.PerformanceService
	authorizationService *auth.AuthorizationService
}

// NewPerformanceController creates a new PerformanceController
func NewPerformanceController(
	performanceService *services.PerformanceService,
	authorizationService *auth.AuthorizationService,
) *PerformanceController {
	return &PerformanceController{
		performanceService:   performanceService,
		authorizationService: authorizationService,
	}
}

// GetCenterOverview returns the center-wide performance dashboard
// @Summary Center performance overview
// @Description Groups chapter records, test results and homework by lesson plan.
// @Description Test results without a lesson plan link appear as test-only rows.
// @Tags performance
// @Produce json
// @Security BearerAuth
// @Param subject query string false "Filter by subject"
// @Param grade query string false "Filter by grade"
// @Param studentId query int false "Filter by student"
// @Param from query string false "Start of date window (YYYY-MM-DD)"
// @Param to query string false "End of date window (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=dto.PerformanceOverviewResponse} "Overview retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /performance/overview [get]
func (c *PerformanceController) GetCenterOverview(ctx *gin.Context) {
	resp, err := c.performanceService.GetCenterOverview(ctx, callerCenterID(ctx), parsePerformanceFilter(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetStudentReport returns the report for one student.
// Parents only see students linked to their account.
// @Summary Student performance report
// @Description Builds a per-student chapter report with missed chapter detection.
// @Tags performance
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Param subject query string false "Filter by subject"
// @Param from query string false "Start of date window (YYYY-MM-DD)"
// @Param to query string false "End of date window (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=dto.StudentReportResponse} "Report retrieved"
// @Failure 403 {object} dto.ErrorResponse "Student not linked to this account"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /performance/students/{studentId}/report [get]
func (c *PerformanceController) GetStudentReport(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	if err := c.authorizationService.ValidateStudentAccess(ctx, callerUserID(ctx), studentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp, err := c.performanceService.GetStudentReport(ctx, callerCenterID(ctx), studentID, parsePerformanceFilter(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
