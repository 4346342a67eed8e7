//go:build wireinject
// +build wireinject

package cmd

import (
	"github.com/google/wire"
	"github.com/leandro-lugaresi/hub"
	"go.uber.org/zap"

	"github.com/traPtitech/sociogram/repository"
	"github.com/traPtitech/sociogram/router"
	"github.com/traPtitech/sociogram/service"
	"github.com/traPtitech/sociogram/service/counter"
	"github.com/traPtitech/sociogram/service/friend"
	"github.com/traPtitech/sociogram/service/imaging"
	"github.com/traPtitech/sociogram/service/message"
	"github.com/traPtitech/sociogram/service/notification"
	"github.com/traPtitech/sociogram/service/post"
	"github.com/traPtitech/sociogram/service/presence"
	"github.com/traPtitech/sociogram/service/ws"
	"github.com/traPtitech/sociogram/utils/jwt"
	"github.com/traPtitech/sociogram/utils/storage"
)

func newServer(hub *hub.Hub, repo repository.Repository, fs storage.FileStorage, signer *jwt.Signer, logger *zap.Logger, c *Config) (*Server, error) {
	wire.Build(
		counter.NewOnlineCounter,
		counter.NewActivityCounter,
		friend.NewFriendManager,
		imaging.NewProcessor,
		message.NewMessageManager,
		notification.NewRouter,
		post.NewPostManager,
		presence.NewRegistry,
		ws.NewStreamer,
		router.Setup,
		provideImageProcessorConfig,
		provideRouterConfig,
		wire.Struct(new(service.Services), "*"),
		wire.Struct(new(Server), "*"),
		wire.Bind(new(notification.Notifier), new(*notification.Router)),
		wire.Bind(new(notification.Presence), new(*presence.Registry)),
		wire.Bind(new(notification.Sender), new(*ws.Streamer)),
	)
	return nil, nil
}
