package middlewares

import (
	"strings"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/singleflight"

	"github.com/traPtitech/sociogram/model"
	"github.com/traPtitech/sociogram/repository"
	"github.com/traPtitech/sociogram/router/consts"
	"github.com/traPtitech/sociogram/router/extension/herror"
	"github.com/traPtitech/sociogram/utils/jwt"
)

const authScheme = "Bearer"

// UserAuthenticate リクエスト認証ミドルウェア
func UserAuthenticate(repo repository.Repository, signer *jwt.Signer) echo.MiddlewareFunc {
	var sfUser singleflight.Group

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ah := c.Request().Header.Get(echo.HeaderAuthorization)
			if len(ah) == 0 {
				return herror.Unauthorized("No token, authorization denied")
			}

			// Authorizationスキーム検証
			l := len(authScheme)
			if !(len(ah) > l+1 && strings.EqualFold(ah[:l], authScheme)) {
				return herror.Unauthorized("invalid authorization scheme")
			}

			// トークン検証
			sub, err := signer.Verify(ah[l+1:])
			if err != nil {
				return herror.Unauthorized("Token is not valid")
			}
			uid, err := primitive.ObjectIDFromHex(sub)
			if err != nil {
				return herror.Unauthorized("Token is not valid")
			}

			// ユーザー取得
			uI, err, _ := sfUser.Do(sub, func() (interface{}, error) { return repo.GetUser(c.Request().Context(), uid) })
			if err != nil {
				if err == repository.ErrNotFound {
					return herror.Unauthorized("Token is not valid")
				}
				return herror.InternalServerError(err)
			}
			user := uI.(*model.User)

			c.Set(consts.KeyUser, user)
			c.Set(consts.KeyUserID, user.ID)
			return next(c)
		}
	}
}
