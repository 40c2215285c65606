package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dfulfagar/portfolio-api/internal/entity"
	"github.com/dfulfagar/portfolio-api/internal/repository"
)

// listLimit caps every list endpoint.
const listLimit = 100

// PortfolioService serves the five read-only collections. It owns the shape
// translation from stored documents to public records: the row identifier
// becomes the record's id, nothing internal leaks out.
type PortfolioService struct {
	store repository.DocumentStore
}

// NewPortfolioService creates a new instance of PortfolioService.
func NewPortfolioService(store repository.DocumentStore) *PortfolioService {
	return &PortfolioService{store: store}
}

// GetProfile returns the single profile record. repository.ErrNoDocument is
// passed through for the handler to translate into a 404.
func (s *PortfolioService) GetProfile(ctx context.Context) (*entity.Profile, error) {
	doc, err := s.store.FindOne(ctx, repository.Profiles)
	if err != nil {
		return nil, err
	}

	var profile entity.Profile
	if err := mapDocument(doc.Doc, &profile); err != nil {
		return nil, fmt.Errorf("map profile document %s: %w", doc.ID, err)
	}
	if profile.Name == "" || profile.Email == "" {
		return nil, fmt.Errorf("map profile document %s: missing required fields", doc.ID)
	}
	profile.ID = doc.ID

	return &profile, nil
}

// ListExperience returns work history sorted by order ascending, capped at 100.
// An empty collection yields an empty slice, never an error.
func (s *PortfolioService) ListExperience(ctx context.Context) ([]entity.Experience, error) {
	docs, err := s.store.FindMany(ctx, repository.Experiences, repository.Sort{Key: repository.SortOrder}, listLimit)
	if err != nil {
		return nil, err
	}

	entries := make([]entity.Experience, 0, len(docs))
	for _, doc := range docs {
		var exp entity.Experience
		if err := mapDocument(doc.Doc, &exp); err != nil {
			return nil, fmt.Errorf("map experience document %s: %w", doc.ID, err)
		}
		if exp.Company == "" || exp.Role == "" {
			return nil, fmt.Errorf("map experience document %s: missing required fields", doc.ID)
		}
		exp.ID = doc.ID
		entries = append(entries, exp)
	}

	return entries, nil
}

// GetSkills returns the single skills record.
func (s *PortfolioService) GetSkills(ctx context.Context) (*entity.Skills, error) {
	doc, err := s.store.FindOne(ctx, repository.Skills)
	if err != nil {
		return nil, err
	}

	var skills entity.Skills
	if err := mapDocument(doc.Doc, &skills); err != nil {
		return nil, fmt.Errorf("map skills document %s: %w", doc.ID, err)
	}
	if len(skills.Technical) == 0 {
		return nil, fmt.Errorf("map skills document %s: missing required fields", doc.ID)
	}
	skills.ID = doc.ID

	return &skills, nil
}

// ListAchievements returns achievements in insertion order, capped at 100.
func (s *PortfolioService) ListAchievements(ctx context.Context) ([]entity.Achievement, error) {
	docs, err := s.store.FindMany(ctx, repository.Achievements, repository.Sort{}, listLimit)
	if err != nil {
		return nil, err
	}

	entries := make([]entity.Achievement, 0, len(docs))
	for _, doc := range docs {
		var ach entity.Achievement
		if err := mapDocument(doc.Doc, &ach); err != nil {
			return nil, fmt.Errorf("map achievement document %s: %w", doc.ID, err)
		}
		if ach.Title == "" {
			return nil, fmt.Errorf("map achievement document %s: missing required fields", doc.ID)
		}
		ach.ID = doc.ID
		entries = append(entries, ach)
	}

	return entries, nil
}

// GetEducation returns the single education record.
func (s *PortfolioService) GetEducation(ctx context.Context) (*entity.Education, error) {
	doc, err := s.store.FindOne(ctx, repository.Education)
	if err != nil {
		return nil, err
	}

	var edu entity.Education
	if err := mapDocument(doc.Doc, &edu); err != nil {
		return nil, fmt.Errorf("map education document %s: %w", doc.ID, err)
	}
	if edu.Degree == "" || edu.University == "" {
		return nil, fmt.Errorf("map education document %s: missing required fields", doc.ID)
	}
	edu.ID = doc.ID

	return &edu, nil
}

// mapDocument decodes a stored JSON body onto a record shape. A type mismatch
// surfaces as an error so schema drift becomes a 500, not silent zero values.
func mapDocument(body json.RawMessage, target any) error {
	if len(body) == 0 {
		return fmt.Errorf("empty document body")
	}
	return json.Unmarshal(body, target)
}
