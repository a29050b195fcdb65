package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/denv/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/denv/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/denv/internal/core/ports"
	"go.trai.ch/denv/internal/engine/env"
)

// NodeID is the unique identifier for the main App Graft node.
const NodeID graft.ID = "app.main"

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			env.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			factory, err := graft.Dep[*env.Factory](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(factory, telemetry, log), nil
		},
	})
}
