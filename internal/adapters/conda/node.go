package conda

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/denv/internal/core/ports"
)

const (
	// SolverNodeID is the unique identifier for the solver Graft node.
	SolverNodeID graft.ID = "adapter.conda_solver"
	// InstallerNodeID is the unique identifier for the installer Graft node.
	InstallerNodeID graft.ID = "adapter.conda_installer"
	// ClientNodeID is the unique identifier for the conda client Graft node.
	ClientNodeID graft.ID = "adapter.conda_client"
)

func init() {
	graft.Register(graft.Node[ports.Solver]{
		ID:        SolverNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Solver, error) {
			return NewSolver(), nil
		},
	})

	graft.Register(graft.Node[ports.Installer]{
		ID:        InstallerNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Installer, error) {
			return NewInstaller(), nil
		},
	})

	graft.Register(graft.Node[ports.CondaClient]{
		ID:        ClientNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.CondaClient, error) {
			return NewClient(), nil
		},
	})
}
