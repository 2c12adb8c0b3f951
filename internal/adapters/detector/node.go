package detector

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lintcfg/internal/core/ports"
)

// NodeID is the unique identifier for the capability detector Graft node.
const NodeID graft.ID = "adapter.detector"

func init() {
	graft.Register(graft.Node[ports.CapabilityDetector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CapabilityDetector, error) {
			return New(), nil
		},
	})
}
