package core

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandJoinDocument joins the client to a document room.
	CommandJoinDocument CommandKind = iota
	// CommandCodeChange relays a full-content edit to room peers.
	CommandCodeChange
	// CommandCursorMove relays a cursor position change to room peers.
	CommandCursorMove
	// CommandLanguageChange relays a language-mode change to room peers.
	CommandLanguageChange

	// commandRegister and commandDisconnect are internal lifecycle steps
	// submitted by RegisterClient and UnregisterClient.
	commandRegister
	commandDisconnect
)

// CursorPosition is an editor cursor location.
type CursorPosition struct {
	Line   int
	Column int
}

// SelectionRange is an editor selection span.
type SelectionRange struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// Command represents an action requested by a client.
type Command struct {
	Kind         CommandKind
	DocumentID   string
	DisplayName  string
	DisplayColor string
	Content      string
	Cursor       *CursorPosition
	Position     *CursorPosition
	Selection    *SelectionRange
	Language     string
}
