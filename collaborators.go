package tsconf

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tsconf/internal/adapters/fs"
	"go.trai.ch/tsconf/internal/adapters/logger"
	"go.trai.ch/tsconf/internal/adapters/telemetry"
	"go.trai.ch/tsconf/internal/adapters/tsconfig"
	"go.trai.ch/tsconf/internal/core/ports"
	_ "go.trai.ch/tsconf/internal/wiring" // Register adapter nodes.
)

// CollaboratorsNodeID is the unique identifier for the collaborators Graft node.
const CollaboratorsNodeID graft.ID = "tsconf.collaborators"

func init() {
	graft.Register(graft.Node[*Collaborators]{
		ID:        CollaboratorsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.FileSystemNodeID,
			fs.LocatorNodeID,
			tsconfig.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Collaborators, error) {
			fsys, err := graft.Dep[fs.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			locator, err := graft.Dep[ports.RootLocator](ctx)
			if err != nil {
				return nil, err
			}
			validator, err := graft.Dep[ports.Validator](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return &Collaborators{
				FS:        fsys,
				Locator:   locator,
				Validator: validator,
				Logger:    log,
				Tracer:    tracer,
			}, nil
		},
	})
}

// NewDefault creates a Parser whose collaborators are resolved through the
// Graft dependency graph. The cache store is still built lazily from
// opts.CacheDir on the first Parse.
func NewDefault(ctx context.Context, opts Opts) (*Parser, error) {
	c, _, err := graft.ExecuteFor[*Collaborators](ctx)
	if err != nil {
		return nil, err
	}
	return New(opts, *c)
}
