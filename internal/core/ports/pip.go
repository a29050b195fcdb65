package ports

import "context"

// PipInstaller installs secondary-ecosystem packages into an already
// materialized prefix, scoped to the prefix's own interpreter.
//
//go:generate go run go.uber.org/mock/mockgen -source=pip.go -destination=mocks/mock_pip.go -package=mocks
type PipInstaller interface {
	// Install runs the installer as a subprocess against the interpreter at
	// python, targeting prefix. specs are constraint strings with embedded
	// whitespace already stripped.
	Install(ctx context.Context, prefix, python string, specs []string) error
}
