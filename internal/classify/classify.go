// Package classify assigns a library role to a filename from its extension.
package classify

import (
	"path/filepath"
	"strings"

	"camroll/internal/config"
	"camroll/pkg/types"
)

// Classifier maps lower-cased extensions to file roles. Classification is a
// pure function of the filename; an unknown suffix is RoleUnrecognized, never
// an error.
type Classifier struct {
	raw     map[string]bool
	preview map[string]bool
	sidecar map[string]bool
}

// NewWithConfig builds a classifier from the configured extension sets.
func NewWithConfig(cfg *config.Config) *Classifier {
	return &Classifier{
		raw:     toSet(cfg.Library.RawExtensions),
		preview: toSet(cfg.Library.PreviewExtensions),
		sidecar: toSet(cfg.Library.SidecarExtensions),
	}
}

// New builds a classifier with the default extension sets.
func New() *Classifier {
	return NewWithConfig(config.New())
}

func toSet(exts []string) map[string]bool {
	set := make(map[string]bool, len(exts))
	for _, ext := range exts {
		set[strings.ToLower(ext)] = true
	}
	return set
}

// Classify returns the role of filename. Only the extension is examined, so
// both bare names and full paths work.
func (c *Classifier) Classify(filename string) types.FileRole {
	ext := strings.ToLower(filepath.Ext(filename))
	switch {
	case c.raw[ext]:
		return types.RoleRaw
	case c.preview[ext]:
		return types.RolePreview
	case c.sidecar[ext]:
		return types.RoleSidecar
	default:
		return types.RoleUnrecognized
	}
}

// BaseName strips the directory and extension from a path, yielding the key
// used to associate sidecars with their raw files.
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
