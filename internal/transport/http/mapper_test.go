package http

import (
	"encoding/json"
	"testing"

	"github.com/codesync/codesync-server/internal/core"
	"github.com/codesync/codesync-server/internal/proto"
)

func inbound(t *testing.T, msgType string, data any) proto.Inbound {
	t.Helper()
	payload, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return proto.Inbound{Type: msgType, Data: payload}
}

func TestInboundToCommandJoin(t *testing.T) {
	cmd, dropReason := inboundToCommand(inbound(t, proto.InboundTypeJoinDocument, proto.JoinDocumentData{
		DocumentID: "doc1",
		Username:   "alice",
		Color:      "#ff0000",
	}))
	if dropReason != "" {
		t.Fatalf("unexpected drop: %s", dropReason)
	}
	if cmd.Kind != core.CommandJoinDocument || cmd.DocumentID != "doc1" || cmd.DisplayName != "alice" {
		t.Fatalf("unexpected command: %+v", cmd)
	}
}

func TestInboundToCommandDropsMissingFields(t *testing.T) {
	tests := []struct {
		name string
		in   proto.Inbound
	}{
		{"join without documentId", mustInbound(proto.InboundTypeJoinDocument, proto.JoinDocumentData{Username: "alice"})},
		{"cursor-move without position", mustInbound(proto.InboundTypeCursorMove, proto.CursorMoveData{DocumentID: "doc1"})},
		{"language-change without language", mustInbound(proto.InboundTypeLanguageChange, proto.LanguageChangeData{DocumentID: "doc1"})},
		{"unknown type", proto.Inbound{Type: "teleport"}},
		{"garbage payload", proto.Inbound{Type: proto.InboundTypeCodeChange, Data: json.RawMessage(`"nope"`)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, dropReason := inboundToCommand(tt.in)
			if cmd != nil || dropReason == "" {
				t.Fatalf("expected drop, got cmd=%+v reason=%q", cmd, dropReason)
			}
		})
	}
}

func mustInbound(msgType string, data any) proto.Inbound {
	payload, _ := json.Marshal(data)
	return proto.Inbound{Type: msgType, Data: payload}
}

func TestOutboundFromEventNames(t *testing.T) {
	tests := []struct {
		kind  core.EventKind
		event string
	}{
		{core.EventUsersUpdate, proto.OutboundEventUsersUpdate},
		{core.EventUserJoined, proto.OutboundEventUserJoined},
		{core.EventUserLeft, proto.OutboundEventUserLeft},
		{core.EventCodeUpdate, proto.OutboundEventCodeUpdate},
		{core.EventCursorUpdate, proto.OutboundEventCursorUpdate},
		{core.EventLanguageUpdate, proto.OutboundEventLanguageUpdate},
	}

	for _, tt := range tests {
		out := outboundFromEvent(&core.Event{Kind: tt.kind})
		if out.Type != "event" || out.Event != tt.event {
			t.Fatalf("kind %v mapped to %q/%q", tt.kind, out.Type, out.Event)
		}
	}
}

func TestOutboundCodeUpdatePayload(t *testing.T) {
	out := outboundFromEvent(&core.Event{
		Kind:    core.EventCodeUpdate,
		Content: "x",
		Cursor:  &core.CursorPosition{Line: 2, Column: 5},
		User:    core.UserInfo{ID: "a1", Name: "alice", Color: "#ff0000"},
	})

	data, ok := out.Data.(proto.EventCodeUpdate)
	if !ok {
		t.Fatalf("unexpected data type %T", out.Data)
	}
	if data.Content != "x" || data.User.ID != "a1" || data.User.Color != "#ff0000" {
		t.Fatalf("unexpected payload: %+v", data)
	}
	if data.CursorPosition == nil || data.CursorPosition.LineNumber != 2 {
		t.Fatalf("unexpected cursor: %+v", data.CursorPosition)
	}
}
