//go:build wireinject
// +build wireinject

package router

import (
	"github.com/google/wire"
	"github.com/leandro-lugaresi/hub"
	"go.uber.org/zap"

	"github.com/traPtitech/sociogram/repository"
	"github.com/traPtitech/sociogram/router/api"
	"github.com/traPtitech/sociogram/service"
	"github.com/traPtitech/sociogram/utils/jwt"
	"github.com/traPtitech/sociogram/utils/storage"
)

func newRouter(hub *hub.Hub, repo repository.Repository, fs storage.FileStorage, signer *jwt.Signer, ss *service.Services, logger *zap.Logger, config *Config) *Router {
	wire.Build(
		service.ProviderSet,
		newEcho,
		provideAPIConfig,
		wire.Struct(new(api.Handlers), "*"),
		wire.Struct(new(Router), "*"),
	)
	return nil
}
