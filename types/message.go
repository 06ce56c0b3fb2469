// Package types defines the message and event shapes exchanged with the
// host agent runtime. All values here are owned by the host and treated
// as read-only input; nothing in this module mutates them.
package types

import (
	"encoding/json"
	"time"
)

// Role represents the message role
type Role string

const (
	// RoleUser represents a user message
	RoleUser Role = "user"

	// RoleAssistant represents an assistant message
	RoleAssistant Role = "assistant"

	// RoleSystem represents a system message
	RoleSystem Role = "system"
)

// Message represents a single conversation message as supplied by the host.
// Only Role and Content are consumed; the remaining fields are carried for
// hosts that populate them.
type Message struct {
	ID        string         `json:"id,omitempty"`
	Role      Role           `json:"role"`
	Content   Content        `json:"content"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at,omitzero"`
}

// ContentKind tags the variant held by a Content value.
type ContentKind int

const (
	// ContentAbsent means the host sent no usable content (missing field,
	// null, or an unrecognized shape).
	ContentAbsent ContentKind = iota

	// ContentText means the host sent a plain string.
	ContentText

	// ContentBlocks means the host sent an ordered sequence of content blocks.
	ContentBlocks
)

// Content is the union of the two content shapes hosts send: a plain
// string or an ordered block sequence. Anything else decodes to
// ContentAbsent rather than failing — malformed host payloads must never
// error out of the lifecycle hooks.
type Content struct {
	Kind   ContentKind
	Text   string
	Blocks []ContentBlock
}

// TextContent returns a Content holding a plain string.
func TextContent(s string) Content {
	return Content{Kind: ContentText, Text: s}
}

// BlockContent returns a Content holding an ordered block sequence.
func BlockContent(blocks ...ContentBlock) Content {
	return Content{Kind: ContentBlocks, Blocks: blocks}
}

// UnmarshalJSON decodes either content shape. Unrecognized shapes yield
// ContentAbsent without error.
func (c *Content) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = Content{Kind: ContentText, Text: s}
		return nil
	}

	var blocks []ContentBlock
	if err := json.Unmarshal(data, &blocks); err == nil {
		*c = Content{Kind: ContentBlocks, Blocks: blocks}
		return nil
	}

	*c = Content{Kind: ContentAbsent}
	return nil
}

// MarshalJSON encodes the held variant. Absent content encodes as null.
func (c Content) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case ContentText:
		return json.Marshal(c.Text)
	case ContentBlocks:
		return json.Marshal(c.Blocks)
	default:
		return []byte("null"), nil
	}
}

// ContentType represents the type of content block
type ContentType string

const (
	// ContentTypeText represents text content
	ContentTypeText ContentType = "text"

	// ContentTypeToolUse represents a tool use block
	ContentTypeToolUse ContentType = "tool_use"

	// ContentTypeToolResult represents a tool result block
	ContentTypeToolResult ContentType = "tool_result"

	// ContentTypeImage represents an image block
	ContentTypeImage ContentType = "image"

	// ContentTypeThinking represents a thinking block
	ContentTypeThinking ContentType = "thinking"
)

// ContentBlock represents a piece of content in a message. Only the text
// variant is consumed by the digest; other variants are carried through
// untouched and ignored.
type ContentBlock struct {
	Type ContentType `json:"type"`

	// Text content
	Text string `json:"text,omitempty"`

	// Tool use content
	ToolUseID string          `json:"id,omitempty"`
	ToolName  string          `json:"name,omitempty"`
	ToolInput json.RawMessage `json:"input,omitempty"`

	// Tool result content
	ToolResultID string `json:"tool_use_id,omitempty"`
	ToolContent  string `json:"content,omitempty"`
	IsError      bool   `json:"is_error,omitempty"`
}
