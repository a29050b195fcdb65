package ports

import (
	"context"

	"go.trai.ch/denv/internal/core/domain"
)

// AssetCache downloads package artifacts into a flat cache directory, exactly
// once per artifact. Implementations must be idempotent and safe under
// concurrent invocations across processes sharing the cache directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=assets.go -destination=mocks/mock_assets.go -package=mocks
type AssetCache interface {
	// CacheAssets ensures every record's artifact exists in cacheDir under its
	// asset name. Already-present assets are skipped.
	CacheAssets(ctx context.Context, records []domain.PackageRecord, cacheDir string) error

	// AssetNames returns the expected final cache file names without
	// downloading anything.
	AssetNames(records []domain.PackageRecord) []string
}
