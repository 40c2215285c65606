package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dfulfagar/portfolio-api/internal/dto"
	"github.com/dfulfagar/portfolio-api/internal/service"
)

// ContactHandler exposes the contact submission and listing endpoints.
type ContactHandler struct {
	service *service.ContactService
	log     zerolog.Logger
}

// NewContactHandler creates a new handler instance.
func NewContactHandler(service *service.ContactService, log zerolog.Logger) *ContactHandler {
	return &ContactHandler{service: service, log: log.With().Str("component", "contact").Logger()}
}

// Submit handles POST /api/contact requests.
func (h *ContactHandler) Submit(c echo.Context) error {
	var form dto.ContactForm
	if err := c.Bind(&form); err != nil {
		return FailValidation(c, service.FieldErrors{{Field: "body", Message: "request body must be valid JSON"}})
	}

	ack, err := h.service.Submit(c.Request().Context(), form)
	if err != nil {
		var fieldErrs service.FieldErrors
		if errors.As(err, &fieldErrs) {
			return FailValidation(c, fieldErrs)
		}
		h.log.Error().Err(err).Msg("submit contact form")
		return Fail(c, http.StatusInternalServerError, "Failed to submit contact form")
	}

	return c.JSON(http.StatusOK, ack)
}

// List handles GET /api/contacts requests. Access control, when enabled, is
// applied by middleware before this runs.
func (h *ContactHandler) List(c echo.Context) error {
	entries, err := h.service.List(c.Request().Context())
	if err != nil {
		h.log.Error().Err(err).Msg("fetch contacts")
		return Fail(c, http.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(http.StatusOK, entries)
}
