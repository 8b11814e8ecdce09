package core

import (
	"testing"
	"time"
)

func mustEvent(t *testing.T, ch <-chan *Event, kind EventKind) *Event {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case ev, ok := <-ch:
			if !ok {
				t.Fatalf("event channel closed while waiting for kind %v", kind)
			}
			if ev == nil {
				continue
			}
			if ev.Kind == kind {
				return ev
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
	t.Fatalf("expected event kind %v not received", kind)
	return nil
}

func mustNoEvent(t *testing.T, ch <-chan *Event) {
	t.Helper()

	select {
	case ev, ok := <-ch:
		if ok {
			t.Fatalf("expected no event, got kind %v: %+v", ev.Kind, ev)
		}
	case <-time.After(150 * time.Millisecond):
	}
}

// checkMembershipInvariant verifies that registry and directory agree about
// room membership in both directions.
func checkMembershipInvariant(t *testing.T, h *Hub) {
	t.Helper()

	h.registry.mu.RLock()
	conns := make(map[string]string, len(h.registry.conns))
	for id, attrs := range h.registry.conns {
		conns[id] = attrs.RoomID
	}
	h.registry.mu.RUnlock()

	for id, roomID := range conns {
		if roomID == "" {
			continue
		}
		found := false
		for _, member := range h.directory.Members(roomID) {
			if member == id {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("registry says %s is in room %s, directory disagrees", id, roomID)
		}
	}

	h.directory.mu.RLock()
	defer h.directory.mu.RUnlock()
	for roomID, r := range h.directory.rooms {
		if len(r.members) == 0 {
			t.Fatalf("empty room %s leaked in directory", roomID)
		}
		for member := range r.members {
			if conns[member] != roomID {
				t.Fatalf("directory says %s is in room %s, registry says %q", member, roomID, conns[member])
			}
		}
	}
}
