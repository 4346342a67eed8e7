package middlewares

import (
	"github.com/labstack/echo/v4"

	"github.com/traPtitech/sociogram/router/consts"
	"github.com/traPtitech/sociogram/router/extension"
)

// ResponseHeaders サーバーバージョンとリクエストIDをレスポンスヘッダーに付与するミドルウェア
func ResponseHeaders(version string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set(consts.HeaderVersion, version)
			h.Set(echo.HeaderXRequestID, extension.GetRequestID(c))
			return next(c)
		}
	}
}
