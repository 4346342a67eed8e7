package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/traPtitech/sociogram/utils/random"
)

func TestHandlers_Register(t *testing.T) {
	t.Parallel()

	path := "/api/auth/register"
	_, server := Setup(t, common)

	t.Run("bad request", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		e.POST(path).
			WithJSON(&PostRegisterRequest{Username: "ab", Email: "invalid", Password: ""}).
			Expect().
			Status(http.StatusBadRequest)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		name := strings.ToLower(random.AlphaNumeric(20))
		obj := e.POST(path).
			WithJSON(&PostRegisterRequest{Username: name, Email: name + "@example.com", Password: testPassword}).
			Expect().
			Status(http.StatusCreated).
			JSON().
			Object()

		obj.Value("token").String().NotEmpty()
		user := obj.Value("user").Object()
		user.Value("username").String().IsEqual(name)
		user.NotContainsKey("password")
	})

	t.Run("duplicated", func(t *testing.T) {
		t.Parallel()
		repo, _ := Setup(t, common)
		user := CreateUser(t, repo, rand)
		e := R(t, server)
		e.POST(path).
			WithJSON(&PostRegisterRequest{Username: user.Username, Email: "other" + user.Email, Password: testPassword}).
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object().
			Value("message").String().IsEqual("Username or email already in use")
	})
}

func TestHandlers_Login(t *testing.T) {
	t.Parallel()

	path := "/api/auth/login"
	repo, server := Setup(t, common)
	user := CreateUser(t, repo, rand)

	t.Run("by username", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		obj := e.POST(path).
			WithJSON(&PostLoginRequest{EmailOrUsername: user.Username, Password: testPassword}).
			Expect().
			Status(http.StatusOK).
			JSON().
			Object()

		token := obj.Value("token").String().Raw()
		sub, err := signer.Verify(token)
		if assert.NoError(t, err) {
			assert.Equal(t, user.HexID(), sub)
		}
		obj.Value("user").Object().Value("_id").String().IsEqual(user.HexID())
	})

	t.Run("by email", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		e.POST(path).
			WithJSON(&PostLoginRequest{EmailOrUsername: user.Email, Password: testPassword}).
			Expect().
			Status(http.StatusOK)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		e.POST(path).
			WithJSON(&PostLoginRequest{EmailOrUsername: user.Username, Password: "wrong"}).
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object().
			Value("message").String().IsEqual("Invalid credentials")
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		e.POST(path).
			WithJSON(&PostLoginRequest{EmailOrUsername: "nobody-" + random.AlphaNumeric(10), Password: testPassword}).
			Expect().
			Status(http.StatusNotFound)
	})
}
