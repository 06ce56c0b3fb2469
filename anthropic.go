package recoverpg

import (
	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/youssefsiam38/recoverpg/internal/anthropic"
	"github.com/youssefsiam38/recoverpg/types"
)

// FromAnthropicMessages converts an anthropic-sdk-go message history
// into the host-neutral shape BeforeCompaction consumes, so hosts built
// on the SDK can pass their request params directly:
//
//	rec.BeforeCompaction(ctx, types.BeforeCompactionEvent{
//	    MessageCount: len(params.Messages),
//	    Messages:     recoverpg.FromAnthropicMessages(params.Messages),
//	})
func FromAnthropicMessages(params []sdk.MessageParam) []types.Message {
	return anthropic.ConvertMessages(params)
}
