package docindex

import (
	"context"
	"path/filepath"
	"strings"
)

// ChangeOp identifies the kind of filesystem change.
type ChangeOp int

// Change operations reported by a Watcher.
const (
	ChangeAdd ChangeOp = iota
	ChangeModify
	ChangeRemove
)

// String returns a human-readable representation of the operation.
func (op ChangeOp) String() string {
	switch op {
	case ChangeAdd:
		return "add"
	case ChangeModify:
		return "change"
	case ChangeRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// ChangeEvent is a single filesystem notification.
type ChangeEvent struct {
	Path string
	Op   ChangeOp
}

// Watcher reports filesystem changes below a directory.
type Watcher interface {
	// Watch calls fn for every change under dir until ctx is done.
	Watch(ctx context.Context, dir string, fn func(ChangeEvent)) error
}

// IsSourceChange reports whether path is a Markdown file inside sourceDir.
// Only such changes trigger a dev rebuild.
func IsSourceChange(sourceDir, path string) bool {
	if filepath.Ext(path) != ".md" {
		return false
	}
	absDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return false
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absDir, absPath)
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
