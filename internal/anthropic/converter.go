// Package anthropic converts anthropic-sdk-go message histories into
// the host-neutral message shape, so hosts built on the SDK can feed
// their request params straight into the compaction hooks.
package anthropic

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/google/uuid"
	"github.com/youssefsiam38/recoverpg/types"
)

// ConvertMessages converts Anthropic message parameters to messages
func ConvertMessages(params []anthropic.MessageParam) []types.Message {
	messages := make([]types.Message, 0, len(params))
	for _, param := range params {
		messages = append(messages, ConvertMessage(param))
	}
	return messages
}

// ConvertMessage converts a single Anthropic message parameter. A
// message whose content is one plain text block collapses to the string
// shape; anything else becomes a block sequence. Unrecognized block
// variants are dropped, and a message with nothing recognizable carries
// absent content.
func ConvertMessage(param anthropic.MessageParam) types.Message {
	msg := types.Message{
		ID:        uuid.New().String(),
		Role:      types.Role(param.Role),
		CreatedAt: time.Now(),
	}

	if len(param.Content) == 1 && param.Content[0].OfText != nil {
		msg.Content = types.TextContent(param.Content[0].OfText.Text)
		return msg
	}

	blocks := make([]types.ContentBlock, 0, len(param.Content))
	for _, block := range param.Content {
		if cb, ok := convertBlock(block); ok {
			blocks = append(blocks, cb)
		}
	}
	if len(blocks) > 0 {
		msg.Content = types.BlockContent(blocks...)
	}
	return msg
}

// convertBlock converts a single content block parameter
func convertBlock(block anthropic.ContentBlockParamUnion) (types.ContentBlock, bool) {
	switch {
	case block.OfText != nil:
		return types.ContentBlock{
			Type: types.ContentTypeText,
			Text: block.OfText.Text,
		}, true

	case block.OfToolUse != nil:
		raw, err := json.Marshal(block.OfToolUse.Input)
		if err != nil {
			raw = nil
		}
		return types.ContentBlock{
			Type:      types.ContentTypeToolUse,
			ToolUseID: block.OfToolUse.ID,
			ToolName:  block.OfToolUse.Name,
			ToolInput: raw,
		}, true

	case block.OfToolResult != nil:
		var parts []string
		for _, c := range block.OfToolResult.Content {
			if c.OfText != nil {
				parts = append(parts, c.OfText.Text)
			}
		}
		return types.ContentBlock{
			Type:         types.ContentTypeToolResult,
			ToolResultID: block.OfToolResult.ToolUseID,
			ToolContent:  strings.Join(parts, "\n"),
			IsError:      block.OfToolResult.IsError.Or(false),
		}, true
	}

	return types.ContentBlock{}, false
}
