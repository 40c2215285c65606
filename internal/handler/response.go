package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dfulfagar/portfolio-api/internal/service"
)

// ErrorBody is the envelope for 404/500 responses.
type ErrorBody struct {
	Detail string `json:"detail"`
}

// ValidationBody is the envelope for 422 responses, carrying one entry per
// offending field.
type ValidationBody struct {
	Detail []service.FieldError `json:"detail"`
}

// Fail sends an error response with a plain detail message.
func Fail(c echo.Context, status int, detail string) error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return c.JSON(status, ErrorBody{Detail: detail})
}

// FailValidation sends a 422 with field-level detail.
func FailValidation(c echo.Context, errs service.FieldErrors) error {
	return c.JSON(http.StatusUnprocessableEntity, ValidationBody{Detail: errs})
}
