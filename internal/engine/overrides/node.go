package overrides

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lintcfg/internal/engine/version"
)

// NodeID is the unique identifier for the override builder Graft node.
const NodeID graft.ID = "engine.overrides"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{version.NodeID},
		Run: func(ctx context.Context) (*Builder, error) {
			versions, err := graft.Dep[*version.Evaluator](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(versions), nil
		},
	})
}
