package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/peterbourgon/diskv/v3"
)

const tempDirName = ".tmp"

// DiskvPersistence keeps the event list in a diskv directory, one file per
// key.
type DiskvPersistence struct {
	codec
	d        *diskv.Diskv
	basePath string
}

var (
	_ Persistence = (*DiskvPersistence)(nil)
	_ Watcher     = (*DiskvPersistence)(nil)
)

// NewDiskv opens (creating if needed) a diskv store rooted at path.
func NewDiskv(path string) (*DiskvPersistence, error) {
	if path == "" {
		return nil, errors.New("store: base path unknown")
	}
	basePath, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("store: expand %s: %w", path, err)
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	p := &DiskvPersistence{
		d: diskv.New(diskv.Options{
			BasePath: basePath,
			// Writes land in the temp dir and are renamed into place.
			TempDir:  filepath.Join(basePath, tempDirName),
			PathPerm: 0o755,
			FilePerm: 0o644,
			// No cache: another process may rewrite the file under us.
			CacheSizeMax: 0,
		}),
		basePath: basePath,
	}
	p.codec = codec{kv: p}
	return p, nil
}

// BasePath returns the expanded directory holding the store.
func (p *DiskvPersistence) BasePath() string {
	return p.basePath
}

func (p *DiskvPersistence) read(_ context.Context, key string) ([]byte, error) {
	if !p.d.Has(key) {
		return nil, ErrNoData
	}
	return p.d.Read(key)
}

func (p *DiskvPersistence) write(_ context.Context, key string, value []byte) error {
	return p.d.Write(key, value)
}

// Close is a no-op; diskv holds no open handles between calls.
func (p *DiskvPersistence) Close() error {
	return nil
}
