package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/guregu/null"
	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/traPtitech/sociogram/model"
	"github.com/traPtitech/sociogram/repository"
	"github.com/traPtitech/sociogram/router/extension/herror"
	"github.com/traPtitech/sociogram/utils/jwt"
	"github.com/traPtitech/sociogram/utils/random"
)

const (
	cookieName   = "sociogram_ext_auth_cookie"
	cookieMaxAge = 60 * 5
)

type Provider interface {
	FetchUserInfo(t *oauth2.Token) (UserInfo, error)
	LoginHandler(c echo.Context) error
	CallbackHandler(c echo.Context) error
	L() *zap.Logger
}

type UserInfo interface {
	GetProviderName() string
	GetID() string
	GetEmail() string
	GetProfileImageURL() string
}

// CallbackConfig 外部認証後のリダイレクト設定
type CallbackConfig struct {
	// ClientURL フロントエンドのURL
	ClientURL string
	// Signer APIトークン発行
	Signer *jwt.Signer
}

func defaultLoginHandler(oac *oauth2.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		state := random.AlphaNumeric(32)
		c.SetCookie(&http.Cookie{
			Name:     cookieName,
			Value:    state,
			Path:     "/",
			Expires:  time.Now().Add(cookieMaxAge * time.Second),
			MaxAge:   cookieMaxAge,
			HttpOnly: true,
		})
		return c.Redirect(http.StatusFound, oac.AuthCodeURL(state))
	}
}

func defaultCallbackHandler(p Provider, oac *oauth2.Config, repo repository.Repository, cc CallbackConfig) echo.HandlerFunc {
	return func(c echo.Context) error {
		code := c.QueryParam("code")
		state := c.QueryParam("state")
		if len(code) == 0 || len(state) == 0 {
			return herror.BadRequest("missing code or state")
		}

		cookie, err := c.Cookie(cookieName)
		if err != nil {
			return herror.BadRequest("missing cookie")
		}
		if cookie.Value != state {
			return herror.BadRequest("invalid state")
		}

		t, err := oac.Exchange(c.Request().Context(), code)
		if err != nil {
			return herror.BadRequest("token exchange failed")
		}

		tu, err := p.FetchUserInfo(t)
		if err != nil {
			return herror.InternalServerError(err)
		}

		user, created, err := resolveUser(c.Request().Context(), repo, tu)
		if err != nil {
			return herror.InternalServerError(err)
		}
		if created {
			p.L().Info("New user was created by external auth",
				zap.Stringer("id", user.ID),
				zap.String("name", user.Username),
				zap.String("providerName", tu.GetProviderName()),
				zap.String("externalId", tu.GetID()))
		}

		token, err := cc.Signer.Sign(user.HexID())
		if err != nil {
			return herror.InternalServerError(err)
		}
		u, err := callbackURL(cc.ClientURL, token, user)
		if err != nil {
			return herror.InternalServerError(err)
		}
		p.L().Info("User was logged in by external auth",
			zap.Stringer("id", user.ID),
			zap.String("name", user.Username),
			zap.String("providerName", tu.GetProviderName()),
			zap.String("externalId", tu.GetID()))

		return c.Redirect(http.StatusFound, u)
	}
}

// resolveUser 外部アカウントに対応するユーザーを取得します
//
// 外部アカウントIDで見つからなければ同じメールアドレスのユーザーに紐付け、それも無ければ新規作成します。
func resolveUser(ctx context.Context, repo repository.Repository, tu UserInfo) (user *model.User, created bool, err error) {
	user, err = repo.GetUserByGoogleID(ctx, tu.GetID())
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, false, err
	}

	if len(tu.GetEmail()) > 0 {
		user, err = repo.GetUserByEmail(ctx, tu.GetEmail())
		switch {
		case err == nil:
			args := repository.UpdateUserArgs{GoogleID: null.StringFrom(tu.GetID())}
			if len(user.ProfilePic) == 0 && len(tu.GetProfileImageURL()) > 0 {
				args.ProfilePic = null.StringFrom(tu.GetProfileImageURL())
			}
			user, err = repo.UpdateUser(ctx, user.ID, args)
			if err != nil {
				return nil, false, err
			}
			return user, false, nil
		case !errors.Is(err, repository.ErrNotFound):
			return nil, false, err
		}
	}

	user, err = repo.CreateUser(ctx, repository.CreateUserArgs{
		Username:   fmt.Sprintf("user_%d", time.Now().UnixMilli()),
		Email:      tu.GetEmail(),
		ProfilePic: tu.GetProfileImageURL(),
		GoogleID:   tu.GetID(),
	})
	if err != nil {
		return nil, false, err
	}
	return user, true, nil
}

func callbackURL(clientURL, token string, user *model.User) (string, error) {
	b, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(user)
	if err != nil {
		return "", err
	}
	q := url.Values{}
	q.Set("token", token)
	q.Set("user", string(b))
	return clientURL + "/auth/callback?" + q.Encode(), nil
}
