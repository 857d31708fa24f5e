// Package store is the persistence gateway: whole collections are saved and
// loaded as single documents keyed by a logical name, with change
// notification for external viewers.
package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// ErrNotFound reports that no document exists under the requested name.
// First run looks like this; callers seed defaults instead of failing.
var ErrNotFound = errors.New("store: not found")

const fileExt = ".json"

// Gateway persists encoded collections under logical names. Save and Load
// are synchronous and operate on whole documents; expected collections are
// small, so there is no incremental update path.
type Gateway interface {
	Save(name string, data []byte) error
	Load(name string) ([]byte, error)
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Gateway backed by diskv using the provided config. A nil
// config resolves the default configuration.
func Load(cfg Config) (Gateway, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &gateway{d: diskv.New(diskv.Options{
		BasePath: basePath,
		// TempDir enables write-to-temp-then-rename so a crash mid-write
		// never leaves a truncated document behind.
		TempDir:           filepath.Join(basePath, ".tmp"),
		AdvancedTransform: nameToPathTransform,
		InverseTransform:  pathToNameTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type gateway struct {
	d        *diskv.Diskv
	basePath string
}

func (g *gateway) Save(name string, data []byte) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("store: document name required")
	}
	if err := g.d.Write(name, data); err != nil {
		return fmt.Errorf("store: write %s: %w", name, err)
	}
	return nil
}

func (g *gateway) Load(name string) ([]byte, error) {
	data, err := g.d.Read(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: read %s: %w", name, err)
	}
	return data, nil
}

func nameToPathTransform(name string) *diskv.PathKey {
	return &diskv.PathKey{FileName: name + fileExt}
}

func pathToNameTransform(pathKey *diskv.PathKey) string {
	return strings.TrimSuffix(pathKey.FileName, fileExt)
}
