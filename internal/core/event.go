package core

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventUsersUpdate delivers the full presence snapshot to a client upon joining a room.
	EventUsersUpdate EventKind = iota
	// EventUserJoined notifies room peers about a newly joined user.
	EventUserJoined
	// EventUserLeft notifies room peers about a user leaving.
	EventUserLeft
	// EventCodeUpdate relays a peer's full-content edit.
	EventCodeUpdate
	// EventCursorUpdate relays a peer's cursor movement.
	EventCursorUpdate
	// EventLanguageUpdate relays a peer's language-mode change.
	EventLanguageUpdate
)

// UserInfo is the display identity of a connection as seen by peers.
type UserInfo struct {
	ID    string
	Name  string
	Color string
}

// Event is sent to clients to describe what happened in the system.
type Event struct {
	Kind      EventKind
	Users     []UserInfo // EventUsersUpdate snapshot, in join order
	User      UserInfo   // sender or subject identity for all other kinds
	Content   string
	Cursor    *CursorPosition
	Position  *CursorPosition
	Selection *SelectionRange
	Language  string
}
