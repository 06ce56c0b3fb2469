package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	// WorkspaceEnv is the environment variable consulted for the
	// workspace root when no absolute or home-relative path is
	// configured.
	WorkspaceEnv = "RECOVERPG_WORKSPACE"

	// DefaultRelativePath is where the snapshot lands under the
	// workspace root when no path is configured at all.
	DefaultRelativePath = "memory/compaction-context.md"
)

// FileStore persists the snapshot as a single file. Saves go through a
// temp-file-and-rename so a reader racing a writer sees either the old
// or the new snapshot in full, never a partial one.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed store. configuredPath and
// workspace follow the resolution rules of ResolvePath; both may be
// empty.
func NewFileStore(configuredPath, workspace string) *FileStore {
	return &FileStore{path: ResolvePath(configuredPath, workspace)}
}

// Path returns the resolved snapshot file path.
func (s *FileStore) Path() string {
	return s.path
}

// ResolvePath applies the snapshot path policy: an explicit configured
// path wins, with "~/" expanded against the user's home directory and
// relative paths resolved against the workspace root. With no
// configured path the snapshot defaults to
// <workspace>/memory/compaction-context.md. The workspace root falls
// back to the RECOVERPG_WORKSPACE environment variable, then to the
// current directory.
func ResolvePath(configuredPath, workspace string) string {
	if workspace == "" {
		workspace = os.Getenv(WorkspaceEnv)
	}
	if workspace == "" {
		workspace = "."
	}

	if configuredPath == "" {
		return filepath.Join(workspace, DefaultRelativePath)
	}
	if configuredPath == "~" || strings.HasPrefix(configuredPath, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(configuredPath[1:], "/"))
		}
		// No resolvable home directory; fall through to the literal path.
	}
	if filepath.IsAbs(configuredPath) {
		return configuredPath
	}
	return filepath.Join(workspace, configuredPath)
}

// Save renders the snapshot and atomically replaces the file, creating
// parent directories as needed.
func (s *FileStore) Save(ctx context.Context, snap Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating snapshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".compaction-context-*.tmp")
	if err != nil {
		return fmt.Errorf("creating snapshot temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(Render(snap)); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing snapshot temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing snapshot: %w", err)
	}
	return nil
}

// Load reads the snapshot file. A missing file is ok=false with no
// error; any other read failure is returned for the caller to log and
// degrade.
func (s *FileStore) Load(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading snapshot: %w", err)
	}
	return string(data), true, nil
}

// Clear removes the snapshot file if present.
func (s *FileStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("removing snapshot: %w", err)
	}
	return nil
}
