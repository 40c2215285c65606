package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dfulfagar/portfolio-api/internal/auth"
	"github.com/dfulfagar/portfolio-api/internal/config"
)

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := RequestID()(okHandler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected generated request id header")
	}
	if RequestIDFromContext(c) == "" {
		t.Fatalf("expected request id in context")
	}
}

func TestRequestID_PreservesCallerValue(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("X-Request-ID", "caller-id")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := RequestID()(okHandler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Header().Get("X-Request-ID") != "caller-id" {
		t.Fatalf("expected caller request id to be preserved")
	}
}

func TestContactRateLimiter(t *testing.T) {
	limiter := ContactRateLimiter(config.RateLimitConfig{Requests: 2, Interval: time.Minute})
	e := echo.New()

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if err := limiter(okHandler)(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		statuses = append(statuses, rec.Code)
	}

	if statuses[0] != http.StatusOK || statuses[1] != http.StatusOK {
		t.Fatalf("expected first two requests to pass, got %v", statuses)
	}
	if statuses[2] != http.StatusTooManyRequests {
		t.Fatalf("expected third request to be limited, got %v", statuses)
	}
}

func TestContactRateLimiter_DisabledConfig(t *testing.T) {
	limiter := ContactRateLimiter(config.RateLimitConfig{})
	e := echo.New()
	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if err := limiter(okHandler)(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("disabled limiter must never throttle, got %d", rec.Code)
		}
	}
}

func TestAdminGate_NilManagerLeavesRoutePublic(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/contacts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := AdminGate(nil)(okHandler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected public access with no manager, got %d", rec.Code)
	}
}

func TestAdminGate_RejectsMissingToken(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/contacts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := AdminGate(tokens)(okHandler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
}

func TestAdminGate_AcceptsValidToken(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	token, err := tokens.Mint("operator")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/contacts", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := AdminGate(tokens)(okHandler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with a valid token, got %d", rec.Code)
	}
	if subject, _ := c.Get(ContextKeyAdminSubject).(string); subject != "operator" {
		t.Fatalf("expected admin subject in context, got %q", subject)
	}
}

func TestAdminGate_RejectsGarbageToken(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/contacts", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := AdminGate(tokens)(okHandler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for garbage token, got %d", rec.Code)
	}
}
