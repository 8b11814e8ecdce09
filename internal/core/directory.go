package core

import "sync"

// room tracks the member set of one document in join order.
type room struct {
	members map[string]struct{}
	order   []string
}

// Directory maps document ids to the connections currently present in them.
// Rooms are created on first join and deleted on last leave, so an empty
// room is never observable. The hub loop owns all mutation; the lock exists
// so observability reads can run concurrently with it.
type Directory struct {
	mu    sync.RWMutex
	rooms map[string]*room
}

// NewDirectory constructs an empty directory.
func NewDirectory() *Directory {
	return &Directory{rooms: make(map[string]*room)}
}

// Join adds a connection to a document's room, creating the room if absent.
// Re-adding an existing member is a no-op.
func (d *Directory) Join(documentID, connID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	r, exists := d.rooms[documentID]
	if !exists {
		r = &room{members: make(map[string]struct{})}
		d.rooms[documentID] = r
	}
	if _, present := r.members[connID]; present {
		return
	}
	r.members[connID] = struct{}{}
	r.order = append(r.order, connID)
}

// Leave removes a connection from a document's room, deleting the room when
// its member set becomes empty. Absent document or connection is a no-op.
func (d *Directory) Leave(documentID, connID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	r, exists := d.rooms[documentID]
	if !exists {
		return
	}
	if _, present := r.members[connID]; !present {
		return
	}
	delete(r.members, connID)
	for i, id := range r.order {
		if id == connID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	if len(r.members) == 0 {
		delete(d.rooms, documentID)
	}
}

// Members returns the connection ids in a document's room in join order.
// An absent room yields an empty slice.
func (d *Directory) Members(documentID string) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	r, exists := d.rooms[documentID]
	if !exists {
		return nil
	}
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// RoomCount returns the number of rooms with at least one member.
func (d *Directory) RoomCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.rooms)
}

// MemberCount returns the number of members in a document's room.
func (d *Directory) MemberCount(documentID string) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	r, exists := d.rooms[documentID]
	if !exists {
		return 0
	}
	return len(r.members)
}
