package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Omar0902/SDOM/internal/api/models"
)

// ErrorHandler recovers a panicking handler and reports it with the same
// ErrorResponse/INTERNAL_ERROR shape writeTypedError's default branch uses
// for an untyped error, so a panic and an unrecognized error reach the
// client looking identical.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		message := "an unexpected error occurred"
		if err, ok := recovered.(string); ok {
			message = err
		} else if err, ok := recovered.(error); ok {
			message = err.Error()
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INTERNAL_ERROR", Message: message},
		})
		c.Abort()
	})
}
