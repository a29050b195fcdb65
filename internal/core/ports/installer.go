package ports

import (
	"context"

	"go.trai.ch/denv/internal/core/domain"
)

// Installer is the external package-installing service. It unpacks and links
// resolved records into a target prefix, using previously cached artifacts
// where available.
//
//go:generate go run go.uber.org/mock/mockgen -source=installer.go -destination=mocks/mock_installer.go -package=mocks
type Installer interface {
	// Install materializes the records into targetPrefix. cacheDir holds
	// already-downloaded artifacts keyed by asset name.
	Install(ctx context.Context, records []domain.PackageRecord, targetPrefix, cacheDir string) error
}
