package version

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lintcfg/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lintcfg/internal/core/ports"
)

// NodeID is the unique identifier for the version evaluator Graft node.
const NodeID graft.ID = "engine.version"

func init() {
	graft.Register(graft.Node[*Evaluator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Evaluator, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewEvaluator(log), nil
		},
	})
}
