package router

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/leandro-lugaresi/hub"
	"go.uber.org/zap"

	"github.com/traPtitech/sociogram/repository"
	"github.com/traPtitech/sociogram/router/api"
	"github.com/traPtitech/sociogram/router/auth"
	"github.com/traPtitech/sociogram/router/consts"
	"github.com/traPtitech/sociogram/router/extension"
	"github.com/traPtitech/sociogram/router/middlewares"
	"github.com/traPtitech/sociogram/service"
	"github.com/traPtitech/sociogram/utils/jwt"
	"github.com/traPtitech/sociogram/utils/storage"
)

type Router struct {
	e   *echo.Echo
	api *api.Handlers
}

func Setup(hub *hub.Hub, repo repository.Repository, fs storage.FileStorage, signer *jwt.Signer, ss *service.Services, logger *zap.Logger, config *Config) *echo.Echo {
	r := newRouter(hub, repo, fs, signer, ss, logger.Named("router"), config)

	e := r.e.Group("/api")
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, http.StatusText(http.StatusOK)) })
	e.GET("/ws", echo.WrapHandler(ss.WS))
	r.api.Setup(e)

	// 外部authハンドラ
	extAuth := e.Group("/auth")
	if config.ExternalAuth.Google.Valid() {
		p := auth.NewGoogleProvider(repo, logger.Named("ext_auth"), auth.CallbackConfig{ClientURL: config.ClientURL, Signer: signer}, config.ExternalAuth.Google)
		extAuth.GET("/google", p.LoginHandler)
		extAuth.GET("/google/callback", p.CallbackHandler)
	}

	return r.e
}

func newEcho(logger *zap.Logger, config *Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = extension.ErrorHandler(logger)
	e.Binder = &extension.Binder{}

	// ミドルウェア設定
	e.Use(middlewares.ResponseHeaders(config.Version))
	if config.AccessLogging {
		e.Use(middlewares.AccessLogging(logger.Named("access_log"), config.Development))
	}
	e.Use(middlewares.Recovery(logger))
	if config.Gzipped {
		e.Use(middlewares.Gzip())
	}
	e.Use(extension.Wrap())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     config.AllowOrigins,
		AllowCredentials: true,
		ExposeHeaders:    []string{consts.HeaderVersion, echo.HeaderXRequestID},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		MaxAge:           3600,
	}))
	e.Use(echoprometheus.NewMiddleware("sociogram"))

	return e
}
