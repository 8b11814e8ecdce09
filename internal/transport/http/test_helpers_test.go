package http

import (
	"context"
	"fmt"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/codesync/codesync-server/internal/config"
	"github.com/codesync/codesync-server/internal/core"
	"github.com/codesync/codesync-server/internal/store"
)

// memStore is an in-memory store.Store for handler tests.
type memStore struct {
	mu   sync.Mutex
	seq  int
	docs map[string]*store.Document
}

func newMemStore() *memStore {
	return &memStore{docs: make(map[string]*store.Document)}
}

func (m *memStore) CreateDocument(_ context.Context, title, language, content string) (*store.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if title == "" {
		title = store.DefaultTitle
	}
	if language == "" {
		language = store.DefaultLanguage
	}
	m.seq++
	now := time.Now().UTC().Add(time.Duration(m.seq) * time.Millisecond)
	doc := &store.Document{
		ID:        fmt.Sprintf("doc-%d", m.seq),
		Title:     title,
		Language:  language,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.docs[doc.ID] = doc
	copied := *doc
	return &copied, nil
}

func (m *memStore) GetDocument(_ context.Context, id string) (*store.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.docs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	copied := *doc
	return &copied, nil
}

func (m *memStore) ListDocuments(_ context.Context) ([]*store.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*store.Document, 0, len(m.docs))
	for _, doc := range m.docs {
		copied := *doc
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (m *memStore) UpdateDocument(_ context.Context, id string, params store.UpdateDocumentParams) (*store.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.docs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if params.Title != nil {
		doc.Title = *params.Title
	}
	if params.Language != nil {
		doc.Language = *params.Language
	}
	if params.Content != nil {
		doc.Content = *params.Content
	}
	doc.UpdatedAt = time.Now().UTC()
	copied := *doc
	return &copied, nil
}

func (m *memStore) DeleteDocument(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.docs, id)
	return nil
}

func (m *memStore) Close() error { return nil }

func startTestServer(t *testing.T) (*httptest.Server, *memStore) {
	t.Helper()

	hub := core.NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	st := newMemStore()
	logger := zerolog.Nop()
	cfg := config.Default()
	cfg.Addr = ":0"
	cfg.ReadHeaderTimeout = time.Second

	server := NewServer(hub, st, &cfg, &logger)

	ts := httptest.NewServer(server.Handler)
	t.Cleanup(ts.Close)

	return ts, st
}
