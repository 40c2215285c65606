package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dfulfagar/portfolio-api/internal/dto"
	"github.com/dfulfagar/portfolio-api/internal/entity"
	"github.com/dfulfagar/portfolio-api/internal/repository"
)

// ConfirmationMessage is the fixed acknowledgement returned for every accepted
// submission.
const ConfirmationMessage = "Thank you for your message! I'll get back to you within 24 hours."

// ContactService validates and persists contact-form submissions and serves the
// administrative listing.
type ContactService struct {
	store repository.DocumentStore
	now   func() time.Time
}

// NewContactService creates a new instance of ContactService.
func NewContactService(store repository.DocumentStore) *ContactService {
	return &ContactService{store: store, now: time.Now}
}

// Submit validates the form, persists a new entry and returns the
// acknowledgement. On validation failure it returns FieldErrors and persists
// nothing.
func (s *ContactService) Submit(ctx context.Context, form dto.ContactForm) (*dto.ContactAck, error) {
	if errs := ValidateContactForm(form); len(errs) > 0 {
		return nil, errs
	}

	entry := entity.ContactEntry{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(form.Name),
		Email:     strings.TrimSpace(form.Email),
		Company:   strings.TrimSpace(form.Company),
		Subject:   strings.TrimSpace(form.Subject),
		Message:   strings.TrimSpace(form.Message),
		Status:    entity.ContactStatusNew,
		CreatedAt: s.now().UTC(),
	}

	doc, err := contactDocument(entry)
	if err != nil {
		return nil, err
	}
	if err := s.store.InsertOne(ctx, repository.Contacts, doc); err != nil {
		return nil, err
	}

	return &dto.ContactAck{
		Success: true,
		Message: ConfirmationMessage,
		ID:      entry.ID,
	}, nil
}

// List returns all submissions, most recent first, capped at 100.
func (s *ContactService) List(ctx context.Context) ([]entity.ContactEntry, error) {
	docs, err := s.store.FindMany(ctx, repository.Contacts, repository.Sort{Key: repository.SortCreatedAt, Desc: true}, listLimit)
	if err != nil {
		return nil, err
	}

	entries := make([]entity.ContactEntry, 0, len(docs))
	for _, doc := range docs {
		var entry entity.ContactEntry
		if err := mapDocument(doc.Doc, &entry); err != nil {
			return nil, fmt.Errorf("map contact document %s: %w", doc.ID, err)
		}
		entry.ID = doc.ID
		entries = append(entries, entry)
	}

	return entries, nil
}

// contactDocument builds the stored form of an entry: the record body without
// its id (the row key carries it) plus the created_at sort column.
func contactDocument(entry entity.ContactEntry) (repository.Document, error) {
	body := entry
	body.ID = ""
	raw, err := json.Marshal(body)
	if err != nil {
		return repository.Document{}, fmt.Errorf("marshal contact entry: %w", err)
	}
	return repository.Document{
		ID:        entry.ID,
		Doc:       raw,
		CreatedAt: entry.CreatedAt,
	}, nil
}
