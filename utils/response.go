package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the uniform error body: {"message": "..."} with the HTTP
// status carrying the taxonomy (400 validation, 404 not found, 500 unexpected).
type ErrorResponse struct {
	Message string `json:"message"`
}

// Success responses

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error responses

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Message: message})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Message: message})
}

// InternalError returns the generic 500 body. Internal detail stays in the
// logs, never in the response.
func InternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{Message: message})
}
