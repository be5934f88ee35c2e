//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/basalt/internal/core/observability/log"
	"github.com/zeusync/basalt/internal/core/profile"
	"github.com/zeusync/basalt/internal/core/storage"
)

func ProvideLogger() log.Log {
	return log.New(log.LevelInfo)
}

func ProvideManager(store storage.Store) *profile.Manager {
	wire.Build(ProvideLogger, profile.NewManager)
	return nil
}
