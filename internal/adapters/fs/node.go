package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tsconf/internal/core/ports"
)

const (
	// FileSystemNodeID is the unique identifier for the filesystem Graft node.
	FileSystemNodeID graft.ID = "adapter.filesystem"
	// LocatorNodeID is the unique identifier for the root locator Graft node.
	LocatorNodeID graft.ID = "adapter.root_locator"
)

func init() {
	graft.Register(graft.Node[FileSystem]{
		ID:        FileSystemNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (FileSystem, error) {
			return NewOSFS(), nil
		},
	})

	graft.Register(graft.Node[ports.RootLocator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{FileSystemNodeID},
		Run: func(ctx context.Context) (ports.RootLocator, error) {
			fsys, err := graft.Dep[FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocator(fsys), nil
		},
	})
}
