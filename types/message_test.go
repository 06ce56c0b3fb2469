package types

import (
	"encoding/json"
	"testing"
)

func TestContentUnmarshalString(t *testing.T) {
	var c Content
	if err := json.Unmarshal([]byte(`"hello"`), &c); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if c.Kind != ContentText {
		t.Errorf("expected ContentText, got %v", c.Kind)
	}
	if c.Text != "hello" {
		t.Errorf("expected 'hello', got '%s'", c.Text)
	}
}

func TestContentUnmarshalBlocks(t *testing.T) {
	payload := `[
		{"type": "text", "text": "part one"},
		{"type": "tool_use", "id": "tu_1", "name": "bash", "input": {"cmd": "ls"}},
		{"type": "tool_result", "tool_use_id": "tu_1", "content": "ok"}
	]`

	var c Content
	if err := json.Unmarshal([]byte(payload), &c); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if c.Kind != ContentBlocks {
		t.Fatalf("expected ContentBlocks, got %v", c.Kind)
	}
	if len(c.Blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(c.Blocks))
	}
	if c.Blocks[0].Type != ContentTypeText || c.Blocks[0].Text != "part one" {
		t.Errorf("unexpected first block: %+v", c.Blocks[0])
	}
	if c.Blocks[1].ToolName != "bash" {
		t.Errorf("unexpected tool name: %s", c.Blocks[1].ToolName)
	}
	if c.Blocks[2].ToolResultID != "tu_1" {
		t.Errorf("unexpected tool result id: %s", c.Blocks[2].ToolResultID)
	}
}

func TestContentUnmarshalUnknownShapes(t *testing.T) {
	// Unrecognized shapes must decode to absent, never error.
	tests := []struct {
		name    string
		payload string
	}{
		{"null", `null`},
		{"number", `42`},
		{"object", `{"weird": true}`},
		{"bool", `true`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Content
			if err := json.Unmarshal([]byte(tt.payload), &c); err != nil {
				t.Fatalf("Unmarshal must not fail, got %v", err)
			}
			if c.Kind != ContentAbsent {
				t.Errorf("expected ContentAbsent, got %v", c.Kind)
			}
		})
	}
}

func TestMessageUnmarshalMixedHistory(t *testing.T) {
	payload := `[
		{"role": "user", "content": "plain text"},
		{"role": "assistant", "content": [{"type": "text", "text": "blocks"}]},
		{"role": "user", "content": {"malformed": true}}
	]`

	var messages []Message
	if err := json.Unmarshal([]byte(payload), &messages); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if messages[0].Content.Kind != ContentText {
		t.Error("expected first message to hold plain text")
	}
	if messages[1].Content.Kind != ContentBlocks {
		t.Error("expected second message to hold blocks")
	}
	if messages[2].Content.Kind != ContentAbsent {
		t.Error("expected malformed content to decode as absent")
	}
}

func TestContentMarshalRoundTrip(t *testing.T) {
	original := BlockContent(
		ContentBlock{Type: ContentTypeText, Text: "hello"},
	)

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded Content
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Kind != ContentBlocks || len(decoded.Blocks) != 1 {
		t.Errorf("round trip lost block content: %+v", decoded)
	}
}

func TestContentMarshalAbsent(t *testing.T) {
	data, err := json.Marshal(Content{})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != "null" {
		t.Errorf("expected absent content to marshal as null, got %s", data)
	}
}
