package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tusharpatel777/JobBoard-codSoft-task/internal/apperrors"
)

// writeError translates a service error into the JSON error shape every
// endpoint uses. Uncategorized errors become an opaque 500.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Server error"

	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict):
		status = http.StatusConflict
	}

	if m := apperrors.Message(err); m != "" && status != http.StatusInternalServerError {
		message = m
	}
	c.JSON(status, gin.H{"message": message})
}
