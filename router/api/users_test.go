package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/traPtitech/sociogram/utils/random"
)

func TestHandlers_GetUserProfile(t *testing.T) {
	t.Parallel()

	path := "/api/users/profile/{id}"
	repo, server := Setup(t, common)
	user := CreateUser(t, repo, rand)
	other := CreateUser(t, repo, rand)

	t.Run("not logged in", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		e.GET(path, other.HexID()).
			Expect().
			Status(http.StatusUnauthorized)
	})

	t.Run("invalid token", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		e.GET(path, other.HexID()).
			WithHeader(echo.HeaderAuthorization, "Bearer invalid").
			Expect().
			Status(http.StatusUnauthorized)
	})

	t.Run("bad id", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		e.GET(path, "invalid").
			WithHeader(echo.HeaderAuthorization, T(t, user)).
			Expect().
			Status(http.StatusBadRequest)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		e.GET(path, primitive.NewObjectID().Hex()).
			WithHeader(echo.HeaderAuthorization, T(t, user)).
			Expect().
			Status(http.StatusNotFound)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		obj := e.GET(path, other.HexID()).
			WithHeader(echo.HeaderAuthorization, T(t, user)).
			Expect().
			Status(http.StatusOK).
			JSON().
			Object()

		obj.Value("_id").String().IsEqual(other.HexID())
		obj.Value("username").String().IsEqual(other.Username)
		obj.NotContainsKey("password")
	})
}

func TestHandlers_SearchUsers(t *testing.T) {
	t.Parallel()

	path := "/api/users/search"
	repo, server := Setup(t, common)
	user := CreateUser(t, repo, rand)
	prefix := strings.ToLower(random.AlphaNumeric(10))
	target := CreateUser(t, repo, prefix+"target")

	t.Run("no query", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		e.GET(path).
			WithHeader(echo.HeaderAuthorization, T(t, user)).
			Expect().
			Status(http.StatusBadRequest)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		arr := e.GET(path).
			WithQuery("q", strings.ToUpper(prefix)).
			WithHeader(echo.HeaderAuthorization, T(t, user)).
			Expect().
			Status(http.StatusOK).
			JSON().
			Array()

		arr.Length().IsEqual(1)
		arr.Value(0).Object().Value("_id").String().IsEqual(target.HexID())
	})
}

func TestHandlers_EditProfile(t *testing.T) {
	t.Parallel()

	path := "/api/users/edit"
	repo, server := Setup(t, common)

	t.Run("no fields", func(t *testing.T) {
		t.Parallel()
		user := CreateUser(t, repo, rand)
		e := R(t, server)
		e.PUT(path).
			WithHeader(echo.HeaderAuthorization, T(t, user)).
			WithJSON(map[string]interface{}{}).
			Expect().
			Status(http.StatusBadRequest)
	})

	t.Run("too long bio", func(t *testing.T) {
		t.Parallel()
		user := CreateUser(t, repo, rand)
		e := R(t, server)
		e.PUT(path).
			WithHeader(echo.HeaderAuthorization, T(t, user)).
			WithJSON(map[string]interface{}{"bio": strings.Repeat("a", 101)}).
			Expect().
			Status(http.StatusBadRequest)
	})

	t.Run("duplicated username", func(t *testing.T) {
		t.Parallel()
		user := CreateUser(t, repo, rand)
		other := CreateUser(t, repo, rand)
		e := R(t, server)
		e.PUT(path).
			WithHeader(echo.HeaderAuthorization, T(t, user)).
			WithJSON(map[string]interface{}{"username": other.Username}).
			Expect().
			Status(http.StatusConflict)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		user := CreateUser(t, repo, rand)
		e := R(t, server)
		obj := e.PUT(path).
			WithHeader(echo.HeaderAuthorization, T(t, user)).
			WithJSON(map[string]interface{}{"bio": "hello"}).
			Expect().
			Status(http.StatusOK).
			JSON().
			Object()

		obj.Value("message").String().IsEqual("Profile updated successfully")
		obj.Value("user").Object().Value("bio").String().IsEqual("hello")
		obj.Value("user").Object().Value("username").String().IsEqual(user.Username)
	})
}

func TestHandlers_CheckUsername(t *testing.T) {
	t.Parallel()

	path := "/api/users/check-username"
	repo, server := Setup(t, common)
	user := CreateUser(t, repo, rand)

	t.Run("taken", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		e.GET(path).
			WithQuery("username", user.Username).
			WithHeader(echo.HeaderAuthorization, T(t, user)).
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			Value("available").Boolean().IsFalse()
	})

	t.Run("available", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		e.GET(path).
			WithQuery("username", strings.ToLower(random.AlphaNumeric(20))).
			WithHeader(echo.HeaderAuthorization, T(t, user)).
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			Value("available").Boolean().IsTrue()
	})

	t.Run("bad request", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		e.GET(path).
			WithHeader(echo.HeaderAuthorization, T(t, user)).
			Expect().
			Status(http.StatusBadRequest)
	})
}

func TestHandlers_GetOnlineUsers(t *testing.T) {
	t.Parallel()

	path := "/api/users/online"
	repo, server := Setup(t, common)
	user := CreateUser(t, repo, rand)
	online := CreateUser(t, repo, rand)
	Connect(t, server, online)

	e := R(t, server)
	e.GET(path).
		WithHeader(echo.HeaderAuthorization, T(t, user)).
		Expect().
		Status(http.StatusOK).
		JSON().
		Array().
		ContainsAll(online.HexID()).
		NotContainsAll(user.HexID())
}
