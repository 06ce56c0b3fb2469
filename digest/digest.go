// Package digest extracts a short task-context digest from a
// conversation history. The digest is built right before the host
// compacts the history and is what gets re-injected on the next turn,
// so it stays deliberately small: a fixed tail window, a cheap
// task-indicator filter on assistant text, and hard caps on passage
// length and count.
package digest

import (
	"regexp"
	"strings"

	"github.com/youssefsiam38/recoverpg/types"
)

const (
	// TailWindow is how many trailing messages are scanned. A fixed
	// window bounds cost on very long histories.
	TailWindow = 20

	// MaxPassages caps the digest so re-injecting it does not itself
	// add meaningful context pressure.
	MaxPassages = 5

	// MaxUserChars truncates included user passages.
	MaxUserChars = 500

	// MaxAssistantChars truncates included assistant passages.
	MaxAssistantChars = 300
)

// taskIndicator is a cheap precision filter standing in for intent
// classification: assistant chatter is noisy, but assistant text that
// describes its own activity is worth preserving.
var taskIndicator = regexp.MustCompile(`(?i)working on|creating|building|fixing|implementing|investigating`)

// ExtractText pulls plain text out of a content value of either shape.
// Plain text is returned unchanged. A block sequence yields the text
// block payloads joined with newlines, in original order. Any other
// shape (absent content, a sequence with no text blocks) returns
// ok=false; malformed content is never an error.
func ExtractText(c types.Content) (text string, ok bool) {
	switch c.Kind {
	case types.ContentText:
		return c.Text, true
	case types.ContentBlocks:
		var parts []string
		for _, block := range c.Blocks {
			if block.Type == types.ContentTypeText && block.Text != "" {
				parts = append(parts, block.Text)
			}
		}
		if len(parts) == 0 {
			return "", false
		}
		return strings.Join(parts, "\n"), true
	default:
		return "", false
	}
}

// Build scans the tail of the history and returns the labeled passages
// judged relevant to what the agent is currently doing, in original
// chronological order. Returns nil when nothing usable was found.
//
// User messages with plain-text content are included verbatim (capped).
// Assistant messages are included only when their extracted text matches
// the task-indicator pattern. Other roles and malformed messages are
// skipped silently. Only the final MaxPassages passages are kept.
func Build(messages []types.Message) []string {
	if len(messages) == 0 {
		return nil
	}

	tail := messages
	if len(tail) > TailWindow {
		tail = tail[len(tail)-TailWindow:]
	}

	var passages []string
	for _, msg := range tail {
		switch msg.Role {
		case types.RoleUser:
			if msg.Content.Kind != types.ContentText {
				continue
			}
			passages = append(passages, "User: "+truncate(msg.Content.Text, MaxUserChars))
		case types.RoleAssistant:
			text, ok := ExtractText(msg.Content)
			if !ok || !taskIndicator.MatchString(text) {
				continue
			}
			passages = append(passages, "Assistant: "+truncate(text, MaxAssistantChars))
		}
	}

	if len(passages) > MaxPassages {
		passages = passages[len(passages)-MaxPassages:]
	}
	return passages
}

// truncate limits text to maxChars, appending an ellipsis marker when
// anything was cut.
func truncate(text string, maxChars int) string {
	if len(text) <= maxChars {
		return text
	}
	return text[:maxChars] + "..."
}
