package ports

import "go.trai.ch/denv/internal/core/domain"

// EnvFileLoader parses a declarative environment file into its partitioned
// form. The file is trusted immutable once the host has materialized it.
//
//go:generate go run go.uber.org/mock/mockgen -source=envfile.go -destination=mocks/mock_envfile.go -package=mocks
type EnvFileLoader interface {
	// Load reads and parses the file at path.
	Load(path string) (*domain.EnvFile, error)
}
