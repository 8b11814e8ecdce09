package core

import "sync"

// ConnectionAttributes holds the session attributes of one live connection.
type ConnectionAttributes struct {
	DisplayName  string
	DisplayColor string
	RoomID       string // document id the connection is joined to, empty if unjoined
}

// AttributeUpdate is a partial update of connection attributes.
// Nil fields are left unchanged.
type AttributeUpdate struct {
	DisplayName  *string
	DisplayColor *string
	RoomID       *string
}

// Registry maps connection ids to their session attributes.
// The hub loop owns all mutation; the lock exists so observability
// reads can run concurrently with it.
type Registry struct {
	mu    sync.RWMutex
	conns map[string]ConnectionAttributes
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{conns: make(map[string]ConnectionAttributes)}
}

// Register creates an entry with empty attributes.
// Returns ErrDuplicateConnection if the id is already present.
func (r *Registry) Register(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.conns[id]; exists {
		return ErrDuplicateConnection
	}
	r.conns[id] = ConnectionAttributes{}
	return nil
}

// SetAttributes applies a partial update to an existing entry.
// Returns ErrUnknownConnection if the id is absent.
func (r *Registry) SetAttributes(id string, upd AttributeUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	attrs, exists := r.conns[id]
	if !exists {
		return ErrUnknownConnection
	}
	if upd.DisplayName != nil {
		attrs.DisplayName = *upd.DisplayName
	}
	if upd.DisplayColor != nil {
		attrs.DisplayColor = *upd.DisplayColor
	}
	if upd.RoomID != nil {
		attrs.RoomID = *upd.RoomID
	}
	r.conns[id] = attrs
	return nil
}

// Get returns the attributes for id, and whether the entry exists.
func (r *Registry) Get(id string) (ConnectionAttributes, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	attrs, exists := r.conns[id]
	return attrs, exists
}

// Remove deletes the entry and returns its prior attributes.
// A second call on the same id reports false without error.
func (r *Registry) Remove(id string) (ConnectionAttributes, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	attrs, exists := r.conns[id]
	if !exists {
		return ConnectionAttributes{}, false
	}
	delete(r.conns, id)
	return attrs, true
}

// Len returns the number of tracked connections.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns)
}
