package tsconfig

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tsconf/internal/adapters/fs"
	"go.trai.ch/tsconf/internal/core/ports"
)

// NodeID is the unique identifier for the validator Graft node.
const NodeID graft.ID = "adapter.validator"

func init() {
	graft.Register(graft.Node[ports.Validator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.FileSystemNodeID},
		Run: func(ctx context.Context) (ports.Validator, error) {
			fsys, err := graft.Dep[fs.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			return NewValidator(fsys), nil
		},
	})
}
