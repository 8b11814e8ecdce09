package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a document id has no record.
var ErrNotFound = errors.New("document not found")

// Defaults applied when a create request leaves fields empty.
const (
	DefaultTitle    = "Untitled"
	DefaultLanguage = "javascript"
)

// Document is a persisted editor document.
type Document struct {
	ID        string
	Title     string
	Language  string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UpdateDocumentParams is a partial document update. Nil fields are left unchanged.
type UpdateDocumentParams struct {
	Title    *string
	Language *string
	Content  *string
}

// Store is the persistence interface for documents.
type Store interface {
	// CreateDocument inserts a document, applying defaults for empty fields.
	CreateDocument(ctx context.Context, title, language, content string) (*Document, error)
	// GetDocument returns a document by id, or ErrNotFound.
	GetDocument(ctx context.Context, id string) (*Document, error)
	// ListDocuments returns all documents ordered by most recently updated.
	ListDocuments(ctx context.Context) ([]*Document, error)
	// UpdateDocument applies a partial update and bumps the update timestamp, or ErrNotFound.
	UpdateDocument(ctx context.Context, id string, params UpdateDocumentParams) (*Document, error)
	// DeleteDocument removes a document, or ErrNotFound.
	DeleteDocument(ctx context.Context, id string) error

	Close() error
}
