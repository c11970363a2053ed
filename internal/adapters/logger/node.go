package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crate/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// NodeID is the unique identifier for the logger Graft node.
	NodeID graft.ID = "adapter.logger"
	// BuildLoggerNodeID is the unique identifier for the build logger Graft node.
	BuildLoggerNodeID graft.ID = "adapter.build_logger"
)

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			return New(), nil
		},
	})

	graft.Register(graft.Node[ports.BuildLogger]{
		ID:        BuildLoggerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.BuildLogger, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			concrete, ok := log.(*Logger)
			if !ok {
				return nil, zerr.New("build logger requires the slog logger")
			}
			return NewBuildLogger(concrete), nil
		},
	})
}
