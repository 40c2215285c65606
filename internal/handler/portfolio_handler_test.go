package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dfulfagar/portfolio-api/internal/repository"
	"github.com/dfulfagar/portfolio-api/internal/service"
)

// stubStore implements repository.DocumentStore backed by canned documents per
// collection.
type stubStore struct {
	docs     map[repository.Collection][]repository.Document
	findErr  error
	inserted []repository.Document
}

func (s *stubStore) FindOne(ctx context.Context, col repository.Collection) (*repository.Document, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	docs := s.docs[col]
	if len(docs) == 0 {
		return nil, repository.ErrNoDocument
	}
	doc := docs[0]
	return &doc, nil
}

func (s *stubStore) FindMany(ctx context.Context, col repository.Collection, sort repository.Sort, limit int) ([]repository.Document, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.docs[col], nil
}

func (s *stubStore) InsertOne(ctx context.Context, col repository.Collection, doc repository.Document) error {
	s.inserted = append(s.inserted, doc)
	return nil
}

func (s *stubStore) InsertMany(ctx context.Context, col repository.Collection, docs []repository.Document) error {
	s.inserted = append(s.inserted, docs...)
	return nil
}

func (s *stubStore) DeleteAll(ctx context.Context, col repository.Collection) error { return nil }

func (s *stubStore) Count(ctx context.Context, col repository.Collection) (int64, error) {
	return int64(len(s.docs[col])), nil
}

func newPortfolioHandler(store repository.DocumentStore) *PortfolioHandler {
	return NewPortfolioHandler(service.NewPortfolioService(store), zerolog.Nop())
}

func performRequest(t *testing.T, h echo.HandlerFunc, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestPortfolioHandler_Root(t *testing.T) {
	rec := performRequest(t, newPortfolioHandler(&stubStore{}).Root, http.MethodGet, "/api/")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["message"] != "Portfolio API is running" || body["version"] != "1.0.0" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestPortfolioHandler_Profile(t *testing.T) {
	store := &stubStore{docs: map[repository.Collection][]repository.Document{
		repository.Profiles: {{
			ID:  "profile-row",
			Doc: json.RawMessage(`{"name":"Darshan Fulfagar","title":"t","subtitle":"s","tagline":"tg","email":"DFulfagar@gmail.com","phone":"p","location":"l","heroImage":"h","profileImage":"pi","about":{"headline":"h","description":"d","highlights":[],"philosophy":"ph"},"createdAt":"2025-01-01T00:00:00Z","updatedAt":"2025-01-01T00:00:00Z"}`),
		}},
	}}

	rec := performRequest(t, newPortfolioHandler(store).Profile, http.MethodGet, "/api/profile")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["id"] != "profile-row" {
		t.Fatalf("expected public id from row key, got %v", body["id"])
	}
	if body["email"] != "DFulfagar@gmail.com" {
		t.Fatalf("unexpected email: %v", body["email"])
	}
	if _, leaked := body["doc"]; leaked {
		t.Fatalf("internal storage fields must not leak: %v", body)
	}
}

func TestPortfolioHandler_ProfileNotFound(t *testing.T) {
	rec := performRequest(t, newPortfolioHandler(&stubStore{}).Profile, http.MethodGet, "/api/profile")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var body ErrorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Detail != "Profile not found" {
		t.Fatalf("unexpected detail: %s", body.Detail)
	}
}

func TestPortfolioHandler_ProfileStoreError(t *testing.T) {
	store := &stubStore{findErr: errors.New("connection refused")}
	rec := performRequest(t, newPortfolioHandler(store).Profile, http.MethodGet, "/api/profile")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var body ErrorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Detail != "Internal server error" {
		t.Fatalf("cause must not leak to the client, got %q", body.Detail)
	}
}

func TestPortfolioHandler_ProfileMalformedDocument(t *testing.T) {
	store := &stubStore{docs: map[repository.Collection][]repository.Document{
		repository.Profiles: {{ID: "p", Doc: json.RawMessage(`{"about":"wrong-type"}`)}},
	}}
	rec := performRequest(t, newPortfolioHandler(store).Profile, http.MethodGet, "/api/profile")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for unmappable document, got %d", rec.Code)
	}
}

func TestPortfolioHandler_ExperienceEmpty(t *testing.T) {
	rec := performRequest(t, newPortfolioHandler(&stubStore{}).Experience, http.MethodGet, "/api/experience")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var entries []any
	if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
		t.Fatalf("expected a JSON array, got %q: %v", rec.Body.String(), err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty array, got %v", entries)
	}
}

func TestPortfolioHandler_AchievementsEmpty(t *testing.T) {
	rec := performRequest(t, newPortfolioHandler(&stubStore{}).Achievements, http.MethodGet, "/api/achievements")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "[]\n" && body != "[]" {
		t.Fatalf("expected empty JSON array, got %q", body)
	}
}

func TestPortfolioHandler_SkillsNotFound(t *testing.T) {
	rec := performRequest(t, newPortfolioHandler(&stubStore{}).Skills, http.MethodGet, "/api/skills")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestPortfolioHandler_Education(t *testing.T) {
	store := &stubStore{docs: map[repository.Collection][]repository.Document{
		repository.Education: {{ID: "edu", Doc: json.RawMessage(`{"degree":"BE","university":"Pune University","year":"2009","grade":"g","highlights":[],"subjects":[],"createdAt":"2025-01-01T00:00:00Z"}`)}},
	}}
	rec := performRequest(t, newPortfolioHandler(store).Education, http.MethodGet, "/api/education")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["id"] != "edu" || body["university"] != "Pune University" {
		t.Fatalf("unexpected body: %v", body)
	}
}
