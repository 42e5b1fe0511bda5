package middleware

import (
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/ozan/classtrack/internal/app/models/dto"
)

var validate = validator.New()

// ValidateRequest binds and validates a request body against the provided
// model, making the validated object available as "validatedBody".
func ValidateRequest(obj interface{}) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := c.ShouldBindJSON(obj); err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
			errorDetail = errorDetail.WithDetails(err.Error())
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			c.Abort()
			return
		}

		value := reflect.ValueOf(obj)
		if value.Kind() == reflect.Ptr {
			value = value.Elem()
		}

		if err := validate.Struct(value.Interface()); err != nil {
			errorDetail := dto.HandleValidationError(err)
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			c.Abort()
			return
		}

		c.Set("validatedBody", obj)
		c.Next()
	}
}
