// Package cache implements the package artifact cache.
package cache

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	"go.trai.ch/denv/internal/core/domain"
	"go.trai.ch/denv/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	httpClientTimeout = 10 * time.Minute

	// downloadChunkSize is the fixed copy buffer size for streaming artifact
	// bodies to disk.
	downloadChunkSize = 1024

	dirPerm = 0o750
)

// Cache implements ports.AssetCache. Artifacts are downloaded to a hidden
// ".<name>.part" sibling and atomically renamed into place, so any process
// observing the final name sees a complete file. No locks are held; the
// rename is the sole concurrency-safety mechanism.
type Cache struct {
	httpClient *http.Client
	logger     ports.Logger
}

// NewCache creates a new artifact cache.
func NewCache(logger ports.Logger) *Cache {
	return newCacheWithClient(logger, &http.Client{Timeout: httpClientTimeout})
}

// newCacheWithClient creates a Cache with a custom http client (used for testing).
func newCacheWithClient(logger ports.Logger, client *http.Client) *Cache {
	return &Cache{
		httpClient: client,
		logger:     logger,
	}
}

// CacheAssets ensures every record's artifact exists in cacheDir under its
// asset name. Already-present assets are skipped without re-verification.
// Downloads run concurrently, bounded by the CPU count; each record's
// download-then-rename sequence remains atomic with respect to other
// processes targeting the same directory. The operation is idempotent and
// safe to re-invoke after a failure.
func (c *Cache) CacheAssets(ctx context.Context, records []domain.PackageRecord, cacheDir string) error {
	if err := os.MkdirAll(cacheDir, dirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create cache directory"), "cache_dir", cacheDir)
	}

	manifest := newManifest(cacheDir)

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for _, record := range records {
		record := record
		g.Go(func() error {
			return c.cacheOne(groupCtx, record, cacheDir, manifest)
		})
	}

	return g.Wait()
}

// AssetNames returns the expected final cache file names for the records
// without downloading anything.
func (c *Cache) AssetNames(records []domain.PackageRecord) []string {
	names := make([]string, len(records))
	for i, record := range records {
		names[i] = record.AssetName()
	}
	return names
}

func (c *Cache) cacheOne(ctx context.Context, record domain.PackageRecord, cacheDir string, manifest *manifest) error {
	name := record.AssetName()
	finalPath := filepath.Join(cacheDir, name)

	// Presence of the final name implies a complete download.
	if _, err := os.Stat(finalPath); err == nil {
		return nil
	}

	tmpPath := filepath.Join(cacheDir, "."+name+".part")

	digest, size, err := c.download(ctx, record, tmpPath)
	if err != nil {
		return err
	}

	if err := os.Rename(tmpPath, finalPath); err != nil {
		downloadErr := zerr.Wrap(err, domain.ErrDownload.Error())
		return zerr.With(downloadErr, "asset", name)
	}

	if err := manifest.put(assetInfo{Name: name, Digest: digest, Size: size}); err != nil {
		// The asset itself is complete; a manifest write failure only degrades
		// later verification.
		c.logger.Warn("failed to update cache manifest: " + err.Error())
	}

	c.logger.Info("cached " + name)
	return nil
}

// download streams the record's artifact to tmpPath in fixed-size chunks and
// returns the content fingerprint and size. Nothing is ever written at the
// final asset name; an abandoned tmp file is disregarded by readers.
func (c *Cache) download(ctx context.Context, record domain.PackageRecord, tmpPath string) (string, int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, record.URL, nil)
	if err != nil {
		return "", 0, c.downloadErr(err, record)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", 0, c.downloadErr(err, record)
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := zerr.With(domain.ErrDownload, "url", record.URL)
		return "", 0, zerr.With(err, "status", resp.Status)
	}

	f, err := os.Create(tmpPath) //nolint:gosec // tmpPath lives in the host-owned cache directory
	if err != nil {
		return "", 0, c.downloadErr(err, record)
	}

	hasher := xxhash.New()
	buf := make([]byte, downloadChunkSize)
	size, err := io.CopyBuffer(io.MultiWriter(f, hasher), resp.Body, buf)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return "", 0, c.downloadErr(err, record)
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), size, nil
}

func (c *Cache) downloadErr(err error, record domain.PackageRecord) error {
	wrapped := zerr.Wrap(err, domain.ErrDownload.Error())
	return zerr.With(wrapped, "url", record.URL)
}
