package cache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/zerr"
)

// manifestName is the manifest file inside the cache directory. The leading
// dot keeps it out of the asset namespace: hidden names are never treated as
// cache hits.
const manifestName = ".manifest.json"

// assetInfo records one completed download.
type assetInfo struct {
	Name   string `json:"name"`
	Digest string `json:"digest"`
	Size   int64  `json:"size"`
}

// manifest is a mutex-guarded JSON-file store of completed downloads, keyed
// by asset name. It is bookkeeping only: the cache fast path never consults
// it, presence of the final file name is authoritative.
type manifest struct {
	path    string
	mu      sync.Mutex
	entries map[string]assetInfo
}

func newManifest(cacheDir string) *manifest {
	return &manifest{
		path:    filepath.Join(cacheDir, manifestName),
		entries: make(map[string]assetInfo),
	}
}

func (m *manifest) put(info assetInfo) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.load(); err != nil {
		return err
	}
	m.entries[info.Name] = info
	return m.save()
}

// get returns the recorded info for an asset name, if any.
func (m *manifest) get(name string) (assetInfo, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.load(); err != nil {
		return assetInfo{}, false
	}
	info, ok := m.entries[name]
	return info, ok
}

func (m *manifest) load() error {
	data, err := os.ReadFile(m.path) //nolint:gosec // path lives in the host-owned cache directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read cache manifest")
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &m.entries); err != nil {
		return zerr.Wrap(err, "failed to unmarshal cache manifest")
	}
	return nil
}

func (m *manifest) save() error {
	data, err := json.MarshalIndent(m.entries, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal cache manifest")
	}
	if err := os.WriteFile(m.path, data, 0o644); err != nil { //nolint:gosec // shared cache bookkeeping
		return zerr.Wrap(err, "failed to write cache manifest")
	}
	return nil
}
