package core

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/codesync/codesync-server/internal/utils"
)

// submission carries one client command into the hub loop.
type submission struct {
	client *Client
	cmd    *Command
	reply  chan error // non-nil only for commandRegister
}

// Hub is the collaboration coordinator. A single Run loop serializes every
// registry and directory mutation, so the two structures can never disagree
// about membership between commands. Outbound delivery is non-blocking per
// client; a stalled peer never holds up the loop.
type Hub struct {
	registry  *Registry
	directory *Directory
	clients   map[string]*Client // owned by the Run loop
	commands  chan submission
	log       *zerolog.Logger
}

// NewHub creates a hub. A nil logger disables logging.
func NewHub(logger *zerolog.Logger) *Hub {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Hub{
		registry:  NewRegistry(),
		directory: NewDirectory(),
		clients:   make(map[string]*Client),
		commands:  make(chan submission, 256),
		log:       logger,
	}
}

// Run processes commands until the context is cancelled.
// It must be running before clients are registered.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case sub := <-h.commands:
			h.dispatch(sub)
		case <-ctx.Done():
			return
		}
	}
}

// RegisterClient adds a connection to the registry and starts pumping its
// commands into the hub loop. Returns ErrDuplicateConnection if the
// transport reused an id without reaping the old connection.
func (h *Hub) RegisterClient(c *Client) error {
	reply := make(chan error, 1)
	h.commands <- submission{client: c, cmd: &Command{Kind: commandRegister}, reply: reply}
	return <-reply
}

// UnregisterClient reaps a connection: removes it from its room and the
// registry and notifies remaining peers. Safe to invoke more than once.
func (h *Hub) UnregisterClient(c *Client) {
	h.commands <- submission{client: c, cmd: &Command{Kind: commandDisconnect}}
}

// Stats returns the current room count and tracked-connection count.
// Safe to call concurrently with the hub loop.
func (h *Hub) Stats() (rooms, connections int) {
	return h.directory.RoomCount(), h.registry.Len()
}

func (h *Hub) dispatch(sub submission) {
	c, cmd := sub.client, sub.cmd
	switch cmd.Kind {
	case commandRegister:
		sub.reply <- h.register(c)
	case commandDisconnect:
		h.disconnect(c)
	case CommandJoinDocument:
		h.handleJoin(c, cmd)
	case CommandCodeChange, CommandCursorMove, CommandLanguageChange:
		h.relay(c, cmd)
	default:
		h.log.Warn().Int("kind", int(cmd.Kind)).Str("conn_id", c.ID).Msg("unknown command kind")
	}
}

func (h *Hub) register(c *Client) error {
	if err := h.registry.Register(c.ID); err != nil {
		h.log.Warn().Err(err).Str("conn_id", c.ID).Msg("register connection")
		return err
	}
	h.clients[c.ID] = c
	go h.pump(c)
	h.log.Debug().Str("conn_id", c.ID).Msg("connection registered")
	return nil
}

// pump forwards one client's commands into the hub loop, preserving the
// order the transport delivered them.
func (h *Hub) pump(c *Client) {
	for {
		select {
		case cmd := <-c.Commands:
			select {
			case h.commands <- submission{client: c, cmd: cmd}:
			case <-c.done:
				return
			}
		case <-c.done:
			return
		}
	}
}

func (h *Hub) handleJoin(c *Client, cmd *Command) {
	attrs, ok := h.registry.Get(c.ID)
	if !ok {
		// Join raced with disconnect; no partial state is recorded.
		h.log.Warn().Str("conn_id", c.ID).Msg("join from unknown connection")
		return
	}

	// A connection holds at most one room; switching documents leaves the
	// previous room first.
	if attrs.RoomID != "" && attrs.RoomID != cmd.DocumentID {
		h.directory.Leave(attrs.RoomID, c.ID)
		h.notifyLeft(attrs.RoomID, c.ID, attrs.DisplayName)
	}

	name := cmd.DisplayName
	if name == "" {
		name = utils.PlaceholderName(c.ID)
	}
	color := cmd.DisplayColor
	if color == "" {
		color = utils.RandomColor()
	}

	if err := h.registry.SetAttributes(c.ID, AttributeUpdate{
		DisplayName:  &name,
		DisplayColor: &color,
		RoomID:       &cmd.DocumentID,
	}); err != nil {
		h.log.Warn().Err(err).Str("conn_id", c.ID).Msg("set attributes on join")
		return
	}
	h.directory.Join(cmd.DocumentID, c.ID)

	joiner := UserInfo{ID: c.ID, Name: name, Color: color}
	snapshot := h.presenceSnapshot(cmd.DocumentID)
	c.send(&Event{Kind: EventUsersUpdate, Users: snapshot})

	for _, id := range h.directory.Members(cmd.DocumentID) {
		if id == c.ID {
			continue
		}
		if peer, live := h.clients[id]; live {
			peer.send(&Event{Kind: EventUserJoined, User: joiner})
		}
	}

	h.log.Info().Str("conn_id", c.ID).Str("document_id", cmd.DocumentID).Str("name", name).Msg("joined document")
}

// presenceSnapshot lists the attributes of every member of a room in join order.
func (h *Hub) presenceSnapshot(documentID string) []UserInfo {
	members := h.directory.Members(documentID)
	users := make([]UserInfo, 0, len(members))
	for _, id := range members {
		attrs, ok := h.registry.Get(id)
		if !ok {
			continue
		}
		users = append(users, UserInfo{ID: id, Name: attrs.DisplayName, Color: attrs.DisplayColor})
	}
	return users
}

func (h *Hub) relay(c *Client, cmd *Command) {
	attrs, ok := h.registry.Get(c.ID)
	if !ok || attrs.RoomID == "" {
		// Stray event racing a disconnect or an unjoined sender; drop it.
		h.log.Debug().Str("conn_id", c.ID).Msg("drop event from roomless connection")
		return
	}

	sender := UserInfo{ID: c.ID, Name: attrs.DisplayName, Color: attrs.DisplayColor}
	ev := &Event{User: sender}
	switch cmd.Kind {
	case CommandCodeChange:
		ev.Kind = EventCodeUpdate
		ev.Content = cmd.Content
		ev.Cursor = cmd.Cursor
	case CommandCursorMove:
		ev.Kind = EventCursorUpdate
		ev.Position = cmd.Position
		ev.Selection = cmd.Selection
	case CommandLanguageChange:
		ev.Kind = EventLanguageUpdate
		ev.Language = cmd.Language
	}

	for _, id := range h.directory.Members(attrs.RoomID) {
		if id == c.ID {
			continue
		}
		if peer, live := h.clients[id]; live {
			peer.send(ev)
		}
	}
}

func (h *Hub) disconnect(c *Client) {
	attrs, ok := h.registry.Remove(c.ID)
	if !ok {
		// Already reaped.
		return
	}
	delete(h.clients, c.ID)
	close(c.done)
	close(c.Events)

	if attrs.RoomID != "" {
		h.directory.Leave(attrs.RoomID, c.ID)
		h.notifyLeft(attrs.RoomID, c.ID, attrs.DisplayName)
	}

	h.log.Info().Str("conn_id", c.ID).Str("name", attrs.DisplayName).Msg("connection reaped")
}

// notifyLeft broadcasts a user-left notification to the remaining members of
// a room. The room may already be gone when the leaver was its last member.
func (h *Hub) notifyLeft(documentID, connID, displayName string) {
	for _, id := range h.directory.Members(documentID) {
		if peer, live := h.clients[id]; live {
			peer.send(&Event{Kind: EventUserLeft, User: UserInfo{ID: connID, Name: displayName}})
		}
	}
}
