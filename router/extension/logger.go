package extension

import (
	"github.com/labstack/echo/v4"

	"github.com/traPtitech/sociogram/router/consts"
	"github.com/traPtitech/sociogram/utils/random"
)

// GetRequestID リクエストIDを返します
//
// クライアントがX-Request-IDを指定していない場合は生成し、同じリクエスト内では同じ値を返します。
func GetRequestID(c echo.Context) string {
	if rid, ok := c.Get(consts.KeyRequestID).(string); ok {
		return rid
	}
	rid := c.Request().Header.Get(echo.HeaderXRequestID)
	if len(rid) == 0 || len(rid) > 64 {
		rid = random.AlphaNumeric(32)
	}
	c.Set(consts.KeyRequestID, rid)
	return rid
}
