package handler

import (
	"errors"
	"log"

	"tasksahead/middleware"
	"tasksahead/usecase"
	"tasksahead/utils"

	"github.com/gin-gonic/gin"
)

// writeError maps service errors onto the wire taxonomy: validation 400
// with field detail, unknown id 404, anything else the generic 500.
func writeError(c *gin.Context, err error, notFoundMessage string) {
	var validationErr *usecase.ValidationError
	switch {
	case errors.As(err, &validationErr):
		middleware.TrackError("validation")
		utils.BadRequest(c, validationErr.Error())
	case errors.Is(err, usecase.ErrNotFound):
		middleware.TrackError("not_found")
		utils.NotFound(c, notFoundMessage)
	default:
		log.Printf("Unexpected error: %v", err)
		middleware.TrackError("internal")
		utils.InternalError(c, "Internal server error")
	}
}
