package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/traPtitech/sociogram/model"
	"github.com/traPtitech/sociogram/repository"
	"github.com/traPtitech/sociogram/repository/mock_repository"
	"github.com/traPtitech/sociogram/router/consts"
	"github.com/traPtitech/sociogram/router/extension"
	"github.com/traPtitech/sociogram/utils/jwt"
)

type Repo struct {
	*mock_repository.MockUserRepository
	*mock_repository.MockFriendRepository
	*mock_repository.MockPostRepository
	*mock_repository.MockNotificationRepository
	*mock_repository.MockMessageRepository
}

func NewMockRepo(ctrl *gomock.Controller) *Repo {
	return &Repo{
		MockUserRepository:         mock_repository.NewMockUserRepository(ctrl),
		MockFriendRepository:       mock_repository.NewMockFriendRepository(ctrl),
		MockPostRepository:         mock_repository.NewMockPostRepository(ctrl),
		MockNotificationRepository: mock_repository.NewMockNotificationRepository(ctrl),
		MockMessageRepository:      mock_repository.NewMockMessageRepository(ctrl),
	}
}

func (*Repo) Sync(context.Context) error { return nil }

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = extension.ErrorHandler(zap.NewNop())
	return e
}

func TestUserAuthenticate(t *testing.T) {
	t.Parallel()

	signer, err := jwt.NewSigner("secret", time.Hour)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	user := &model.User{ID: primitive.NewObjectID(), Username: "alice"}

	handler := func(c echo.Context) error {
		assert.Equal(t, user.ID, c.Get(consts.KeyUserID))
		assert.Equal(t, user, c.Get(consts.KeyUser))
		return c.NoContent(http.StatusNoContent)
	}
	serve := func(t *testing.T, repo repository.Repository, authorization string) int {
		t.Helper()
		e := newTestEcho()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if len(authorization) > 0 {
			req.Header.Set(echo.HeaderAuthorization, authorization)
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if err := UserAuthenticate(repo, signer)(handler)(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		return rec.Code
	}

	t.Run("no token", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		assert.Equal(t, http.StatusUnauthorized, serve(t, NewMockRepo(ctrl), ""))
	})

	t.Run("wrong scheme", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		token, _ := signer.Sign(user.HexID())
		assert.Equal(t, http.StatusUnauthorized, serve(t, NewMockRepo(ctrl), "Basic "+token))
	})

	t.Run("invalid token", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		assert.Equal(t, http.StatusUnauthorized, serve(t, NewMockRepo(ctrl), "Bearer invalid"))
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := NewMockRepo(ctrl)
		repo.MockUserRepository.EXPECT().
			GetUser(gomock.Any(), user.ID).
			Return(nil, repository.ErrNotFound).
			Times(1)
		token, _ := signer.Sign(user.HexID())
		assert.Equal(t, http.StatusUnauthorized, serve(t, repo, "Bearer "+token))
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := NewMockRepo(ctrl)
		repo.MockUserRepository.EXPECT().
			GetUser(gomock.Any(), user.ID).
			Return(user, nil).
			Times(1)
		token, _ := signer.Sign(user.HexID())
		assert.Equal(t, http.StatusNoContent, serve(t, repo, "bearer "+token))
	})
}

func TestRequestBodyLengthLimit(t *testing.T) {
	t.Parallel()

	handler := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }
	serve := func(body string) int {
		e := newTestEcho()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if err := RequestBodyLengthLimit(8)(handler)(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, serve("small"))
	assert.Equal(t, http.StatusRequestEntityTooLarge, serve("too large body"))
}

func TestResponseHeaders(t *testing.T) {
	t.Parallel()

	serve := func(rid string) *httptest.ResponseRecorder {
		e := newTestEcho()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if len(rid) > 0 {
			req.Header.Set(echo.HeaderXRequestID, rid)
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		_ = ResponseHeaders("v1.2.3")(func(c echo.Context) error {
			assert.Equal(t, rec.Header().Get(echo.HeaderXRequestID), extension.GetRequestID(c))
			return c.NoContent(http.StatusNoContent)
		})(c)
		return rec
	}

	t.Run("generated request id", func(t *testing.T) {
		t.Parallel()
		rec := serve("")
		assert.Equal(t, "v1.2.3", rec.Header().Get(consts.HeaderVersion))
		assert.Len(t, rec.Header().Get(echo.HeaderXRequestID), 32)
	})

	t.Run("client request id", func(t *testing.T) {
		t.Parallel()
		rec := serve("abc")
		assert.Equal(t, "abc", rec.Header().Get(echo.HeaderXRequestID))
	})
}

func TestRecovery(t *testing.T) {
	t.Parallel()

	serve := func(v interface{}) int {
		e := newTestEcho()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		if err := Recovery(zap.NewNop())(func(echo.Context) error { panic(v) })(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		return rec.Code
	}

	assert.Equal(t, http.StatusInternalServerError, serve("boom"))
	assert.Equal(t, http.StatusOK, serve(fmt.Errorf("write: %w", syscall.EPIPE)))
}
