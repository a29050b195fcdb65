package detector

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/denv/internal/core/ports"
)

const NodeID graft.ID = "adapter.platform_detector"

func init() {
	graft.Register(graft.Node[ports.PlatformDetector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.PlatformDetector, error) {
			return New(), nil
		},
	})
}
