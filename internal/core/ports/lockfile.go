package ports

import "go.trai.ch/denv/internal/core/domain"

// LockfileCodec reads and writes the explicit lock file format.
//
//go:generate go run go.uber.org/mock/mockgen -source=lockfile.go -destination=mocks/mock_lockfile.go -package=mocks
type LockfileCodec interface {
	// Write encodes the records to path in order, header first. On any I/O
	// error the whole operation fails and the file's final state is undefined.
	Write(path string, records []domain.PackageRecord) error

	// Read decodes the lock file at path into records, preserving order.
	Read(path string) ([]domain.PackageRecord, error)
}
