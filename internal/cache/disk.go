// Package cache keeps API responses on disk between runs.
package cache

import (
	"fmt"
	"os"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

const cacheSizeMax = 4 * 1024 * 1024

var keyReplacer = strings.NewReplacer("/", "_", "\\", "_", string(os.PathSeparator), "_", "..", "_")

// Disk is a flat diskv store with an in-memory read cache.
type Disk struct {
	d *diskv.Diskv
}

func NewDisk(dir string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}
	return &Disk{d: diskv.New(diskv.Options{
		BasePath:     dir,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: cacheSizeMax,
	})}, nil
}

func (c *Disk) Get(key string) ([]byte, bool) {
	key = sanitize(key)
	if !c.d.Has(key) {
		return nil, false
	}
	data, err := c.d.Read(key)
	if err != nil {
		return nil, false
	}
	return data, true
}

func (c *Disk) Put(key string, data []byte) error {
	return c.d.Write(sanitize(key), data)
}

func (c *Disk) Clear() error {
	return c.d.EraseAll()
}

func sanitize(key string) string {
	key = keyReplacer.Replace(strings.TrimSpace(key))
	if key == "" {
		return "_"
	}
	return key
}
