package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/denv/internal/adapters/logger"
	"go.trai.ch/denv/internal/core/ports"
)

const NodeID graft.ID = "adapter.asset_cache"

func init() {
	graft.Register(graft.Node[ports.AssetCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.AssetCache, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewCache(log), nil
		},
	})
}
