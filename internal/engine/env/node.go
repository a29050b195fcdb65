package env

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/denv/internal/adapters/cache"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/denv/internal/adapters/conda"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/denv/internal/adapters/detector" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/denv/internal/adapters/envfile"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/denv/internal/adapters/lockfile" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/denv/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/denv/internal/adapters/pip"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/denv/internal/core/ports"
)

// NodeID is the unique identifier for the environment factory Graft node.
const NodeID graft.ID = "engine.env_factory"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			envfile.NodeID,
			lockfile.NodeID,
			cache.NodeID,
			conda.SolverNodeID,
			conda.InstallerNodeID,
			conda.ClientNodeID,
			detector.NodeID,
			pip.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Factory, error) {
			loader, err := graft.Dep[ports.EnvFileLoader](ctx)
			if err != nil {
				return nil, err
			}

			codec, err := graft.Dep[ports.LockfileCodec](ctx)
			if err != nil {
				return nil, err
			}

			solver, err := graft.Dep[ports.Solver](ctx)
			if err != nil {
				return nil, err
			}

			installer, err := graft.Dep[ports.Installer](ctx)
			if err != nil {
				return nil, err
			}

			pipInstaller, err := graft.Dep[ports.PipInstaller](ctx)
			if err != nil {
				return nil, err
			}

			assets, err := graft.Dep[ports.AssetCache](ctx)
			if err != nil {
				return nil, err
			}

			condaClient, err := graft.Dep[ports.CondaClient](ctx)
			if err != nil {
				return nil, err
			}

			platformDetector, err := graft.Dep[ports.PlatformDetector](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewFactory(Deps{
				Loader:    loader,
				Codec:     codec,
				Solver:    solver,
				Installer: installer,
				Pip:       pipInstaller,
				Assets:    assets,
				Conda:     condaClient,
				Detector:  platformDetector,
				Logger:    log,
			}), nil
		},
	})
}
