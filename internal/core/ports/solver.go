// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/denv/internal/core/domain"
)

// Solver is the external dependency-solving service. It converts channel and
// constraint lists into an ordered list of package records.
//
//go:generate go run go.uber.org/mock/mockgen -source=solver.go -destination=mocks/mock_solver.go -package=mocks
type Solver interface {
	// Solve resolves the given constraint strings against the channels, with
	// the host's virtual packages as implicit constraints. The returned order
	// is solver-determined and must be preserved by callers.
	Solve(ctx context.Context, channels, specs []string, virtual []domain.VirtualPackage) ([]domain.PackageRecord, error)
}
