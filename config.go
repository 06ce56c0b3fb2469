package recoverpg

import (
	"log"

	"github.com/youssefsiam38/recoverpg/snapshot"
)

// Defaults for the optional configuration surface.
const (
	// DefaultMinMessagesForSnapshot is the minimum conversation length
	// required before a compaction is considered worth snapshotting.
	// Shorter histories fit back into context after compaction anyway.
	DefaultMinMessagesForSnapshot = 10
)

// internalConfig holds the full recovery configuration including optional parameters
type internalConfig struct {
	// Snapshot persistence
	store       snapshot.Store
	contextFile string
	workspace   string

	// Behavior
	recoveryPrompt         bool
	minMessagesForSnapshot int

	// Observability
	logger *log.Logger
}

// newInternalConfig creates an internal config populated with defaults
func newInternalConfig() *internalConfig {
	return &internalConfig{
		recoveryPrompt:         true,
		minMessagesForSnapshot: DefaultMinMessagesForSnapshot,
		logger:                 log.Default(),
	}
}
