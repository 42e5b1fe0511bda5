package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ozan/classtrack/internal/app/models/dto"
	"github.com/ozan/classtrack/internal/pkg/helpers"
)

// Context keys populated by the auth middleware
const (
	ContextUserID   = "userID"
	ContextCenterID = "centerID"
	ContextRoleType = "roleType"
)

// parseIDParam parses a positive int64 path parameter. On failure it writes
// a validation error response and returns false.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter")
		errorDetail = errorDetail.WithDetails(name + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

func callerUserID(ctx *gin.Context) int64 {
	return ctx.GetInt64(ContextUserID)
}

func callerCenterID(ctx *gin.Context) int64 {
	return ctx.GetInt64(ContextCenterID)
}

// parsePerformanceFilter reads the shared dashboard filter query parameters.
// Malformed dates are ignored rather than rejected.
func parsePerformanceFilter(ctx *gin.Context) dto.PerformanceFilterRequest {
	req := dto.PerformanceFilterRequest{
		Subject: ctx.Query("subject"),
		Grade:   ctx.Query("grade"),
		From:    helpers.ParseDateParam(ctx.Query("from")),
		To:      helpers.ParseDateParam(ctx.Query("to")),
	}
	if studentStr := ctx.Query("studentId"); studentStr != "" {
		if studentID, err := strconv.ParseInt(studentStr, 10, 64); err == nil && studentID > 0 {
			req.StudentID = studentID
		}
	}
	return req
}
