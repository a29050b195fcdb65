package pip

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/denv/internal/core/ports"
)

const NodeID graft.ID = "adapter.pip_installer"

func init() {
	graft.Register(graft.Node[ports.PipInstaller]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.PipInstaller, error) {
			return NewInstaller(), nil
		},
	})
}
