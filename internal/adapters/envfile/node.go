package envfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/denv/internal/core/ports"
)

const NodeID graft.ID = "adapter.envfile_loader"

func init() {
	graft.Register(graft.Node[ports.EnvFileLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.EnvFileLoader, error) {
			return NewLoader(), nil
		},
	})
}
