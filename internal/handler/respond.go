package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Theo3883/Hour-Tracking-Application/internal/model"
	"github.com/Theo3883/Hour-Tracking-Application/pkg/apperror"
)

// respondError maps an error's kind to its HTTP status and a stable code.
// Internal errors never leak their cause to the client.
func respondError(c *gin.Context, err error) {
	kind := apperror.KindOf(err)

	var status int
	switch kind {
	case apperror.KindUnauthenticated:
		status = http.StatusUnauthorized
	case apperror.KindForbidden:
		status = http.StatusForbidden
	case apperror.KindNotFound:
		status = http.StatusNotFound
	case apperror.KindConflict:
		status = http.StatusConflict
	case apperror.KindInvalidInput:
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}

	message := "internal server error"
	var appErr *apperror.Error
	if errors.As(err, &appErr) && kind != apperror.KindInternal {
		message = appErr.Message
	}
	c.JSON(status, model.NewErrorResponse(message, kind.Code()))
}
