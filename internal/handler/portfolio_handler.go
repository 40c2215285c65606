package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dfulfagar/portfolio-api/internal/dto"
	"github.com/dfulfagar/portfolio-api/internal/repository"
	"github.com/dfulfagar/portfolio-api/internal/service"
)

// Version reported at the API root.
const Version = "1.0.0"

// PortfolioHandler exposes the read endpoints over the five content collections.
type PortfolioHandler struct {
	service *service.PortfolioService
	log     zerolog.Logger
}

// NewPortfolioHandler creates a new handler instance.
func NewPortfolioHandler(service *service.PortfolioService, log zerolog.Logger) *PortfolioHandler {
	return &PortfolioHandler{service: service, log: log.With().Str("component", "portfolio").Logger()}
}

// Root handles GET /api/ requests.
func (h *PortfolioHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.RootInfo{Message: "Portfolio API is running", Version: Version})
}

// Profile handles GET /api/profile requests.
func (h *PortfolioHandler) Profile(c echo.Context) error {
	profile, err := h.service.GetProfile(c.Request().Context())
	if err != nil {
		if errors.Is(err, repository.ErrNoDocument) {
			return Fail(c, http.StatusNotFound, "Profile not found")
		}
		h.log.Error().Err(err).Msg("fetch profile")
		return Fail(c, http.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(http.StatusOK, profile)
}

// Experience handles GET /api/experience requests.
func (h *PortfolioHandler) Experience(c echo.Context) error {
	entries, err := h.service.ListExperience(c.Request().Context())
	if err != nil {
		h.log.Error().Err(err).Msg("fetch experience")
		return Fail(c, http.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(http.StatusOK, entries)
}

// Skills handles GET /api/skills requests.
func (h *PortfolioHandler) Skills(c echo.Context) error {
	skills, err := h.service.GetSkills(c.Request().Context())
	if err != nil {
		if errors.Is(err, repository.ErrNoDocument) {
			return Fail(c, http.StatusNotFound, "Skills not found")
		}
		h.log.Error().Err(err).Msg("fetch skills")
		return Fail(c, http.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(http.StatusOK, skills)
}

// Achievements handles GET /api/achievements requests.
func (h *PortfolioHandler) Achievements(c echo.Context) error {
	entries, err := h.service.ListAchievements(c.Request().Context())
	if err != nil {
		h.log.Error().Err(err).Msg("fetch achievements")
		return Fail(c, http.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(http.StatusOK, entries)
}

// Education handles GET /api/education requests.
func (h *PortfolioHandler) Education(c echo.Context) error {
	education, err := h.service.GetEducation(c.Request().Context())
	if err != nil {
		if errors.Is(err, repository.ErrNoDocument) {
			return Fail(c, http.StatusNotFound, "Education not found")
		}
		h.log.Error().Err(err).Msg("fetch education")
		return Fail(c, http.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(http.StatusOK, education)
}
