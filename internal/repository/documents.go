package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Collection names a logical document collection. The set is closed so table
// names never come from request input.
type Collection string

// The six collections the system persists.
const (
	Profiles     Collection = "profiles"
	Experiences  Collection = "experiences"
	Skills       Collection = "skills"
	Achievements Collection = "achievements"
	Education    Collection = "education"
	Contacts     Collection = "contacts"
)

// ReadCollections lists the collections owned by the seed utility, in seeding
// order. Contacts is deliberately absent.
var ReadCollections = []Collection{Profiles, Experiences, Skills, Achievements, Education}

func (c Collection) table() (string, error) {
	switch c {
	case Profiles, Experiences, Skills, Achievements, Education, Contacts:
		return string(c), nil
	default:
		return "", fmt.Errorf("unknown collection %q", string(c))
	}
}

// Sort selects an ordering column for FindMany. The zero value means
// storage-native (insertion) order.
type Sort struct {
	Key  SortKey
	Desc bool
}

// SortKey is a whitelisted ordering column.
type SortKey string

// Supported sort keys.
const (
	SortNone      SortKey = ""
	SortOrder     SortKey = "ord"
	SortCreatedAt SortKey = "created_at"
)

// Document is one stored record: the caller-assigned identifier, the JSON body
// (without the identifier) and the columns used for ordering.
type Document struct {
	ID        string
	Doc       json.RawMessage
	Ord       *int
	CreatedAt time.Time
}

// ErrNoDocument indicates a singleton collection holds no document.
var ErrNoDocument = errors.New("no document found")

// DocumentStore is the minimal persistence capability the service depends on.
type DocumentStore interface {
	FindOne(ctx context.Context, col Collection) (*Document, error)
	FindMany(ctx context.Context, col Collection, sort Sort, limit int) ([]Document, error)
	InsertOne(ctx context.Context, col Collection, doc Document) error
	InsertMany(ctx context.Context, col Collection, docs []Document) error
	DeleteAll(ctx context.Context, col Collection) error
	Count(ctx context.Context, col Collection) (int64, error)
}

// pgxPool is the subset of pgxpool.Pool the store needs, extracted so tests can
// stub the database.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ pgxPool = (*pgxpool.Pool)(nil)

// PGXDocumentStore implements DocumentStore on PostgreSQL, one table per
// collection with the record body in a JSONB column.
type PGXDocumentStore struct {
	pool pgxPool
}

var _ DocumentStore = (*PGXDocumentStore)(nil)

// NewPGXDocumentStore wires a pgx backed store.
func NewPGXDocumentStore(pool *pgxpool.Pool) *PGXDocumentStore {
	return &PGXDocumentStore{pool: pool}
}

// FindOne returns the first document of a collection in insertion order, or
// ErrNoDocument when the collection is empty.
func (s *PGXDocumentStore) FindOne(ctx context.Context, col Collection) (*Document, error) {
	table, err := col.table()
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT id, doc, ord, created_at FROM %s ORDER BY created_at ASC LIMIT 1`, table)

	var doc Document
	if err := scanDocument(s.pool.QueryRow(ctx, query), &doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoDocument
		}
		return nil, fmt.Errorf("find one in %s: %w", table, err)
	}

	return &doc, nil
}

// FindMany returns up to limit documents, ordered by the requested sort key.
// Ties and the zero sort fall back to insertion order so results stay stable.
func (s *PGXDocumentStore) FindMany(ctx context.Context, col Collection, sort Sort, limit int) ([]Document, error) {
	table, err := col.table()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, fmt.Errorf("find many in %s: limit must be positive", table)
	}

	order := "created_at ASC"
	switch sort.Key {
	case SortNone:
	case SortOrder, SortCreatedAt:
		direction := "ASC"
		if sort.Desc {
			direction = "DESC"
		}
		order = fmt.Sprintf("%s %s, created_at ASC", sort.Key, direction)
	default:
		return nil, fmt.Errorf("find many in %s: unsupported sort key %q", table, sort.Key)
	}

	query := fmt.Sprintf(`SELECT id, doc, ord, created_at FROM %s ORDER BY %s LIMIT $1`, table, order)

	rows, err := s.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("find many in %s: %w", table, err)
	}
	defer rows.Close()

	return scanDocuments(rows)
}

// InsertOne persists a single document. The identifier must already be set by
// the caller; the store assigns nothing.
func (s *PGXDocumentStore) InsertOne(ctx context.Context, col Collection, doc Document) error {
	table, err := col.table()
	if err != nil {
		return err
	}
	if doc.ID == "" {
		return fmt.Errorf("insert into %s: document id must not be empty", table)
	}

	body := doc.Doc
	if len(body) == 0 {
		body = json.RawMessage("{}")
	}
	createdAt := doc.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	query := fmt.Sprintf(`INSERT INTO %s (id, doc, ord, created_at) VALUES ($1, $2, $3, $4)`, table)
	if _, err := s.pool.Exec(ctx, query, doc.ID, body, intOrNil(doc.Ord), createdAt); err != nil {
		return fmt.Errorf("insert into %s: %w", table, err)
	}

	return nil
}

// InsertMany persists a batch of documents in order.
func (s *PGXDocumentStore) InsertMany(ctx context.Context, col Collection, docs []Document) error {
	for _, doc := range docs {
		if err := s.InsertOne(ctx, col, doc); err != nil {
			return err
		}
	}
	return nil
}

// DeleteAll clears a collection. Used only by the seed utility.
func (s *PGXDocumentStore) DeleteAll(ctx context.Context, col Collection) error {
	table, err := col.table()
	if err != nil {
		return err
	}
	if _, err := s.pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s`, table)); err != nil {
		return fmt.Errorf("clear %s: %w", table, err)
	}
	return nil
}

// Count reports the number of documents in a collection.
func (s *PGXDocumentStore) Count(ctx context.Context, col Collection) (int64, error) {
	table, err := col.table()
	if err != nil {
		return 0, err
	}
	var count int64
	if err := s.pool.QueryRow(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table)).Scan(&count); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return count, nil
}

func scanDocument(row pgx.Row, doc *Document) error {
	var (
		body []byte
		ord  *int32
	)
	if err := row.Scan(&doc.ID, &body, &ord, &doc.CreatedAt); err != nil {
		return err
	}
	doc.Doc = json.RawMessage(body)
	if ord != nil {
		val := int(*ord)
		doc.Ord = &val
	}
	return nil
}

func scanDocuments(rows pgx.Rows) ([]Document, error) {
	var docs []Document
	for rows.Next() {
		var doc Document
		if err := scanDocument(rows, &doc); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}
	return docs, nil
}

func intOrNil(value *int) any {
	if value == nil {
		return nil
	}
	return *value
}
