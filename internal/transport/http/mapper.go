package http

import (
	"encoding/json"

	"github.com/codesync/codesync-server/internal/core"
	"github.com/codesync/codesync-server/internal/proto"
)

func corePosition(p *proto.Position) *core.CursorPosition {
	if p == nil {
		return nil
	}
	return &core.CursorPosition{Line: p.LineNumber, Column: p.Column}
}

func coreSelection(s *proto.Selection) *core.SelectionRange {
	if s == nil {
		return nil
	}
	return &core.SelectionRange{
		StartLine:   s.StartLineNumber,
		StartColumn: s.StartColumn,
		EndLine:     s.EndLineNumber,
		EndColumn:   s.EndColumn,
	}
}

func protoPosition(p *core.CursorPosition) *proto.Position {
	if p == nil {
		return nil
	}
	return &proto.Position{LineNumber: p.Line, Column: p.Column}
}

func protoSelection(s *core.SelectionRange) *proto.Selection {
	if s == nil {
		return nil
	}
	return &proto.Selection{
		StartLineNumber: s.StartLine,
		StartColumn:     s.StartColumn,
		EndLineNumber:   s.EndLine,
		EndColumn:       s.EndColumn,
	}
}

func protoUser(u core.UserInfo) proto.User {
	return proto.User{ID: u.ID, Username: u.Name, Color: u.Color}
}

// inboundToCommand maps a wire message to a hub command. A non-empty drop
// reason means the message is malformed and must be discarded without reply.
func inboundToCommand(inbound proto.Inbound) (*core.Command, string) {
	switch inbound.Type {
	case proto.InboundTypeJoinDocument:
		var join proto.JoinDocumentData
		if err := json.Unmarshal(inbound.Data, &join); err != nil {
			return nil, "bad join-document payload"
		}
		if join.DocumentID == "" {
			return nil, "documentId is required"
		}
		return &core.Command{
			Kind:         core.CommandJoinDocument,
			DocumentID:   join.DocumentID,
			DisplayName:  join.Username,
			DisplayColor: join.Color,
		}, ""
	case proto.InboundTypeCodeChange:
		var change proto.CodeChangeData
		if err := json.Unmarshal(inbound.Data, &change); err != nil {
			return nil, "bad code-change payload"
		}
		return &core.Command{
			Kind:       core.CommandCodeChange,
			DocumentID: change.DocumentID,
			Content:    change.Content,
			Cursor:     corePosition(change.CursorPosition),
		}, ""
	case proto.InboundTypeCursorMove:
		var move proto.CursorMoveData
		if err := json.Unmarshal(inbound.Data, &move); err != nil {
			return nil, "bad cursor-move payload"
		}
		if move.Position == nil {
			return nil, "position is required"
		}
		return &core.Command{
			Kind:       core.CommandCursorMove,
			DocumentID: move.DocumentID,
			Position:   corePosition(move.Position),
			Selection:  coreSelection(move.Selection),
		}, ""
	case proto.InboundTypeLanguageChange:
		var change proto.LanguageChangeData
		if err := json.Unmarshal(inbound.Data, &change); err != nil {
			return nil, "bad language-change payload"
		}
		if change.Language == "" {
			return nil, "language is required"
		}
		return &core.Command{
			Kind:       core.CommandLanguageChange,
			DocumentID: change.DocumentID,
			Language:   change.Language,
		}, ""
	default:
		return nil, "unknown message type"
	}
}

func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventUsersUpdate:
		users := make([]proto.User, 0, len(event.Users))
		for _, u := range event.Users {
			users = append(users, protoUser(u))
		}
		return proto.Outbound{
			Type:  "event",
			Event: proto.OutboundEventUsersUpdate,
			Data:  users,
		}
	case core.EventUserJoined:
		return proto.Outbound{
			Type:  "event",
			Event: proto.OutboundEventUserJoined,
			Data:  protoUser(event.User),
		}
	case core.EventUserLeft:
		return proto.Outbound{
			Type:  "event",
			Event: proto.OutboundEventUserLeft,
			Data: proto.EventUserLeft{
				ID:       event.User.ID,
				Username: event.User.Name,
			},
		}
	case core.EventCodeUpdate:
		return proto.Outbound{
			Type:  "event",
			Event: proto.OutboundEventCodeUpdate,
			Data: proto.EventCodeUpdate{
				Content:        event.Content,
				CursorPosition: protoPosition(event.Cursor),
				User:           protoUser(event.User),
			},
		}
	case core.EventCursorUpdate:
		return proto.Outbound{
			Type:  "event",
			Event: proto.OutboundEventCursorUpdate,
			Data: proto.EventCursorUpdate{
				Position:  protoPosition(event.Position),
				Selection: protoSelection(event.Selection),
				User:      protoUser(event.User),
			},
		}
	case core.EventLanguageUpdate:
		return proto.Outbound{
			Type:  "event",
			Event: proto.OutboundEventLanguageUpdate,
			Data: proto.EventLanguageUpdate{
				Language: event.Language,
				User:     proto.User{ID: event.User.ID, Username: event.User.Name},
			},
		}
	default:
		return proto.Outbound{Type: "event"}
	}
}
