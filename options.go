package recoverpg

import (
	"log"

	"github.com/youssefsiam38/recoverpg/snapshot"
)

// Option is a functional option for configuring a Recovery
type Option func(*internalConfig) error

// WithContextFile overrides where the snapshot file lives. The path
// follows the snapshot package's resolution rules: "~/" expands to the
// home directory, absolute paths are used as-is, and relative paths are
// resolved against the workspace root.
func WithContextFile(path string) Option {
	return func(c *internalConfig) error {
		c.contextFile = path
		return nil
	}
}

// WithWorkspace sets the workspace root used to resolve relative
// snapshot paths. When unset, the RECOVERPG_WORKSPACE environment
// variable is consulted, then the current directory.
func WithWorkspace(dir string) Option {
	return func(c *internalConfig) error {
		c.workspace = dir
		return nil
	}
}

// WithStore replaces the default file-backed snapshot store, e.g. with
// snapshot.NewPostgresStore for multi-instance hosts. It takes
// precedence over WithContextFile and WithWorkspace.
func WithStore(store snapshot.Store) Option {
	return func(c *internalConfig) error {
		if store == nil {
			return NewRecoveryError("WithStore", ErrInvalidConfig).
				WithContext("reason", "store must not be nil")
		}
		c.store = store
		return nil
	}
}

// WithRecoveryPrompt enables or disables injecting recovery text on the
// next agent start (default true). When disabled, recovery state is
// still consumed and cleared but no text is produced.
func WithRecoveryPrompt(enabled bool) Option {
	return func(c *internalConfig) error {
		c.recoveryPrompt = enabled
		return nil
	}
}

// WithMinMessagesForSnapshot sets the minimum message count required
// before a compaction is snapshotted (default 10)
func WithMinMessagesForSnapshot(n int) Option {
	return func(c *internalConfig) error {
		if n <= 0 {
			return NewRecoveryError("WithMinMessagesForSnapshot", ErrInvalidConfig).
				WithContext("n", n).
				WithContext("reason", "must be positive")
		}
		c.minMessagesForSnapshot = n
		return nil
	}
}

// WithLogger sets the logger used for degradation warnings
func WithLogger(logger *log.Logger) Option {
	return func(c *internalConfig) error {
		if logger == nil {
			return NewRecoveryError("WithLogger", ErrInvalidConfig).
				WithContext("reason", "logger must not be nil")
		}
		c.logger = logger
		return nil
	}
}
