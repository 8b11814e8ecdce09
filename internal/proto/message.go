package proto

import "encoding/json"

// Inbound is the envelope for messages coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	InboundTypeJoinDocument   = "join-document"
	InboundTypeCodeChange     = "code-change"
	InboundTypeCursorMove     = "cursor-move"
	InboundTypeLanguageChange = "language-change"

	OutboundEventUsersUpdate    = "users-update"
	OutboundEventUserJoined     = "user-joined"
	OutboundEventUserLeft       = "user-left"
	OutboundEventCodeUpdate     = "code-update"
	OutboundEventCursorUpdate   = "cursor-update"
	OutboundEventLanguageUpdate = "language-update"
)

// Position is an editor cursor location.
type Position struct {
	LineNumber int `json:"lineNumber"`
	Column     int `json:"column"`
}

// Selection is an editor selection span.
type Selection struct {
	StartLineNumber int `json:"startLineNumber"`
	StartColumn     int `json:"startColumn"`
	EndLineNumber   int `json:"endLineNumber"`
	EndColumn       int `json:"endColumn"`
}

// JoinDocumentData requests to join a document room.
type JoinDocumentData struct {
	DocumentID string `json:"documentId"`
	Username   string `json:"username,omitempty"`
	Color      string `json:"color,omitempty"`
}

// CodeChangeData carries a full-content edit from the client.
type CodeChangeData struct {
	DocumentID     string    `json:"documentId"`
	Content        string    `json:"content"`
	CursorPosition *Position `json:"cursorPosition,omitempty"`
}

// CursorMoveData carries a cursor movement from the client.
type CursorMoveData struct {
	DocumentID string     `json:"documentId"`
	Position   *Position  `json:"position"`
	Selection  *Selection `json:"selection,omitempty"`
}

// LanguageChangeData carries a language-mode change from the client.
type LanguageChangeData struct {
	DocumentID string `json:"documentId"`
	Language   string `json:"language"`
}

// Outbound is the envelope for messages sent to the client.
type Outbound struct {
	Type  string `json:"type"`
	Event string `json:"event,omitempty"`
	Data  any    `json:"data,omitempty"`
}

// User is a peer's display identity in outbound events.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Color    string `json:"color,omitempty"`
}

// EventCodeUpdate relays a peer's edit.
type EventCodeUpdate struct {
	Content        string    `json:"content"`
	CursorPosition *Position `json:"cursorPosition,omitempty"`
	User           User      `json:"user"`
}

// EventCursorUpdate relays a peer's cursor movement.
type EventCursorUpdate struct {
	Position  *Position  `json:"position"`
	Selection *Selection `json:"selection,omitempty"`
	User      User       `json:"user"`
}

// EventLanguageUpdate relays a peer's language-mode change.
type EventLanguageUpdate struct {
	Language string `json:"language"`
	User     User   `json:"user"`
}

// EventUserLeft notifies that a user left the room.
type EventUserLeft struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
