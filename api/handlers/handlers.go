package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"review-insight/analyzer"
	"review-insight/config"
	"review-insight/dto"
	"review-insight/services"
)

// respondError maps service errors onto HTTP statuses. Unexpected errors are
// logged and answered with the generic message.
func respondError(c *gin.Context, err error, message string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, analyzer.ErrInvalidRating),
		errors.Is(err, services.ErrInvalidID),
		errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrEmptyKeywords):
		status = http.StatusBadRequest
	case errors.Is(err, analyzer.ErrMissingField):
		status = http.StatusUnprocessableEntity
	}

	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		config.ErrorWithFields(message, config.Fields{
			"path":  c.FullPath(),
			"error": err.Error(),
		})
		c.JSON(status, dto.ErrorResponseDTO{Error: message})
		return
	}
	c.JSON(status, dto.ErrorResponseDTO{Error: err.Error()})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: message})
}

// queryInt64 parses an integer query parameter; missing or malformed values
// yield def.
func queryInt64(c *gin.Context, key string, def int64) int64 {
	v, err := strconv.ParseInt(c.Query(key), 10, 64)
	if err != nil {
		return def
	}
	return v
}

// optionalInt64 parses an integer query parameter, returning nil when absent.
func optionalInt64(c *gin.Context, key string) (*int64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
