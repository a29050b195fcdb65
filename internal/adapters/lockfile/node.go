package lockfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/denv/internal/core/ports"
)

const NodeID graft.ID = "adapter.lockfile_codec"

func init() {
	graft.Register(graft.Node[ports.LockfileCodec]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.LockfileCodec, error) {
			return NewCodec(), nil
		},
	})
}
