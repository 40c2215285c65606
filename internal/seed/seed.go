package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"
	"github.com/rs/zerolog"

	"github.com/dfulfagar/portfolio-api/internal/repository"
	"github.com/dfulfagar/portfolio-api/internal/service"
)

// defaultPhoneRegion resolves national numbers in the dataset sanity check.
const defaultPhoneRegion = "IN"

// Reseeder clears and repopulates the five read collections. It is a
// single-actor batch operation: running two reseeds concurrently is an
// operational mistake, not a supported mode.
type Reseeder struct {
	store repository.DocumentStore
	log   zerolog.Logger
	now   func() time.Time
}

// NewReseeder creates a seeder over the given store.
func NewReseeder(store repository.DocumentStore, log zerolog.Logger) *Reseeder {
	return &Reseeder{
		store: store,
		log:   log.With().Str("component", "seed").Logger(),
		now:   time.Now,
	}
}

// Reseed replaces the contents of each read collection with the dataset.
// Collections are processed independently: a failure on one is logged and does
// not block the others. The contacts collection is never touched.
func (r *Reseeder) Reseed(ctx context.Context, ds Dataset) error {
	r.sanityCheck(ds)

	var errs []error
	for _, col := range repository.ReadCollections {
		docs, err := r.collectionDocuments(col, ds)
		if err != nil {
			r.log.Error().Err(err).Str("collection", string(col)).Msg("build documents")
			errs = append(errs, err)
			continue
		}

		if err := r.store.DeleteAll(ctx, col); err != nil {
			r.log.Error().Err(err).Str("collection", string(col)).Msg("clear collection")
			errs = append(errs, err)
			continue
		}
		if err := r.store.InsertMany(ctx, col, docs); err != nil {
			r.log.Error().Err(err).Str("collection", string(col)).Msg("seed collection")
			errs = append(errs, err)
			continue
		}

		r.log.Info().Str("collection", string(col)).Int("documents", len(docs)).Msg("collection seeded")
	}

	return errors.Join(errs...)
}

// Verify reports per-collection document counts for operator inspection and
// warns when a singleton collection does not hold exactly one document.
func (r *Reseeder) Verify(ctx context.Context) (map[repository.Collection]int64, error) {
	singletons := map[repository.Collection]bool{
		repository.Profiles:  true,
		repository.Skills:    true,
		repository.Education: true,
	}

	counts := make(map[repository.Collection]int64, len(repository.ReadCollections))
	for _, col := range repository.ReadCollections {
		count, err := r.store.Count(ctx, col)
		if err != nil {
			return nil, fmt.Errorf("verify %s: %w", col, err)
		}
		counts[col] = count

		if singletons[col] && count != 1 {
			r.log.Warn().Str("collection", string(col)).Int64("documents", count).Msg("singleton collection does not hold exactly one document")
		}
	}

	return counts, nil
}

func (r *Reseeder) collectionDocuments(col repository.Collection, ds Dataset) ([]repository.Document, error) {
	now := r.now().UTC()

	switch col {
	case repository.Profiles:
		profile := ds.Profile
		profile.CreatedAt = now
		profile.UpdatedAt = now
		doc, err := buildDocument(profile, nil, now)
		if err != nil {
			return nil, err
		}
		return []repository.Document{doc}, nil

	case repository.Experiences:
		docs := make([]repository.Document, 0, len(ds.Experiences))
		for _, exp := range ds.Experiences {
			exp.CreatedAt = now
			ord := exp.Order
			doc, err := buildDocument(exp, &ord, now)
			if err != nil {
				return nil, err
			}
			docs = append(docs, doc)
		}
		return docs, nil

	case repository.Skills:
		skills := ds.Skills
		skills.CreatedAt = now
		doc, err := buildDocument(skills, nil, now)
		if err != nil {
			return nil, err
		}
		return []repository.Document{doc}, nil

	case repository.Achievements:
		docs := make([]repository.Document, 0, len(ds.Achievements))
		for _, ach := range ds.Achievements {
			ach.CreatedAt = now
			doc, err := buildDocument(ach, nil, now)
			if err != nil {
				return nil, err
			}
			docs = append(docs, doc)
		}
		return docs, nil

	case repository.Education:
		edu := ds.Education
		edu.CreatedAt = now
		doc, err := buildDocument(edu, nil, now)
		if err != nil {
			return nil, err
		}
		return []repository.Document{doc}, nil

	default:
		return nil, fmt.Errorf("no dataset for collection %q", col)
	}
}

// sanityCheck flags suspect dataset values without blocking the reseed. The
// profile email runs through the same validator the API uses; the phone is
// parsed as a real number so typos surface before they reach the public site.
func (r *Reseeder) sanityCheck(ds Dataset) {
	if !service.IsValidEmail(ds.Profile.Email) {
		r.log.Warn().Str("email", ds.Profile.Email).Msg("profile email does not look valid")
	}

	number, err := phonenumbers.Parse(ds.Profile.Phone, defaultPhoneRegion)
	if err != nil || !phonenumbers.IsValidNumber(number) {
		r.log.Warn().Str("phone", ds.Profile.Phone).Msg("profile phone does not parse as a valid number")
	}
}

// buildDocument marshals a record into its stored form, assigning a fresh
// identifier. The record's own id field stays empty so the body never carries
// a duplicate of the row key.
func buildDocument(record any, ord *int, createdAt time.Time) (repository.Document, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return repository.Document{}, fmt.Errorf("marshal seed record: %w", err)
	}
	return repository.Document{
		ID:        uuid.NewString(),
		Doc:       raw,
		Ord:       ord,
		CreatedAt: createdAt,
	}, nil
}
