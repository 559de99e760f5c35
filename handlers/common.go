package handlers

import (
	"errors"
	"log"
	"net/http"
	"server/models"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Message string `json:"message"`
}

// Abort maps a service error to its HTTP status. Anything outside the
// taxonomy is reported generically and logged server-side.
func Abort(c *gin.Context, err error) {
	var serviceErr *models.Error
	if errors.As(err, &serviceErr) {
		c.JSON(statusFor(serviceErr.Kind), Response{serviceErr.Message})
		return
	}
	serverError(c, "Internal server error", err)
}

func statusFor(kind models.ErrorKind) int {
	switch kind {
	case models.ErrorValidation:
		return http.StatusBadRequest
	case models.ErrorAuth:
		return http.StatusUnauthorized
	case models.ErrorForbidden:
		return http.StatusForbidden
	case models.ErrorNotFound:
		return http.StatusNotFound
	case models.ErrorConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// serverError reports a store/runtime failure: generic message to the
// caller, details to the log only.
func serverError(c *gin.Context, message string, err error) {
	log.Printf("[ERROR] request %s: %s: %v", c.GetString("request_id"), message, err)
	c.JSON(http.StatusInternalServerError, Response{message})
}

func uint64Param(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{"Invalid " + name + " parameter"})
		return 0, false
	}
	return id, true
}

func intQuery(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
