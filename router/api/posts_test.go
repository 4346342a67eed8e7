package api

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/traPtitech/sociogram/model"
	"github.com/traPtitech/sociogram/repository"
	"github.com/traPtitech/sociogram/service/notification"
)

func createPost(t *testing.T, repo repository.Repository, user *model.User) *model.Post {
	t.Helper()
	p, err := repo.CreatePost(context.Background(), repository.CreatePostArgs{UserID: user.ID, TextContent: "hello"})
	require.NoError(t, err)
	return p
}

func TestHandlers_CreatePost(t *testing.T) {
	t.Parallel()

	path := "/api/posts"
	repo, server := Setup(t, common)
	user := CreateUser(t, repo, rand)

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		e.POST(path).
			WithHeader(echo.HeaderAuthorization, T(t, user)).
			WithJSON(&PostCreatePostRequest{TextContent: "   "}).
			Expect().
			Status(http.StatusBadRequest)
	})

	t.Run("too long", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		e.POST(path).
			WithHeader(echo.HeaderAuthorization, T(t, user)).
			WithJSON(&PostCreatePostRequest{TextContent: strings.Repeat("a", model.PostTextMaxLength+1)}).
			Expect().
			Status(http.StatusBadRequest)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		obj := e.POST(path).
			WithHeader(echo.HeaderAuthorization, T(t, user)).
			WithJSON(&PostCreatePostRequest{TextContent: "hello world"}).
			Expect().
			Status(http.StatusCreated).
			JSON().
			Object()

		obj.Value("message").String().IsEqual("Post created successfully")
		p := obj.Value("post").Object()
		p.Value("textContent").String().IsEqual("hello world")
		p.Value("userId").Object().Value("username").String().IsEqual(user.Username)
	})
}

func TestHandlers_GetPost(t *testing.T) {
	t.Parallel()

	path := "/api/posts/{id}"
	repo, server := Setup(t, common)
	user := CreateUser(t, repo, rand)
	p := createPost(t, repo, user)

	t.Run("public", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		e.GET(path, p.ID.Hex()).
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			Value("_id").String().IsEqual(p.ID.Hex())
	})

	t.Run("bad id", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		e.GET(path, "invalid").
			Expect().
			Status(http.StatusBadRequest)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		e.GET(path, primitive.NewObjectID().Hex()).
			Expect().
			Status(http.StatusNotFound)
	})
}

func TestHandlers_GetUserPosts(t *testing.T) {
	t.Parallel()

	repo, server := Setup(t, common)
	user := CreateUser(t, repo, rand)
	other := CreateUser(t, repo, rand)
	p1 := createPost(t, repo, other)
	p2 := createPost(t, repo, other)
	_, _, err := repo.TogglePostLike(context.Background(), p1.ID, user.ID)
	require.NoError(t, err)

	t.Run("by author", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		arr := e.GET("/api/posts/user/{userId}", other.HexID()).
			WithHeader(echo.HeaderAuthorization, T(t, user)).
			Expect().
			Status(http.StatusOK).
			JSON().
			Array()

		arr.Length().IsEqual(2)
		arr.Value(0).Object().Value("_id").String().IsEqual(p2.ID.Hex())
	})

	t.Run("liked", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		arr := e.GET("/api/posts/liked/{userId}", user.HexID()).
			WithHeader(echo.HeaderAuthorization, T(t, user)).
			Expect().
			Status(http.StatusOK).
			JSON().
			Array()

		arr.Length().IsEqual(1)
		arr.Value(0).Object().Value("_id").String().IsEqual(p1.ID.Hex())
	})
}

func TestHandlers_DeletePost(t *testing.T) {
	t.Parallel()

	path := "/api/posts/{id}"
	repo, server := Setup(t, common)
	user := CreateUser(t, repo, rand)
	other := CreateUser(t, repo, rand)
	p := createPost(t, repo, user)

	e := R(t, server)
	e.DELETE(path, p.ID.Hex()).
		WithHeader(echo.HeaderAuthorization, T(t, other)).
		Expect().
		Status(http.StatusForbidden)
	e.DELETE(path, p.ID.Hex()).
		WithHeader(echo.HeaderAuthorization, T(t, user)).
		Expect().
		Status(http.StatusOK)
	e.GET(path, p.ID.Hex()).
		Expect().
		Status(http.StatusNotFound)
}

func TestHandlers_LikeAndComment(t *testing.T) {
	t.Parallel()

	repo, server := Setup(t, common)
	a := CreateUser(t, repo, rand)
	b := CreateUser(t, repo, rand)
	p := createPost(t, repo, a)
	conn := Connect(t, server, a)

	e := R(t, server)
	e.PUT("/api/posts/{id}/like", p.ID.Hex()).
		WithHeader(echo.HeaderAuthorization, T(t, b)).
		Expect().
		Status(http.StatusOK).
		JSON().Object().
		Value("message").String().IsEqual("Post liked")
	e.POST("/api/posts/{id}/comment", p.ID.Hex()).
		WithHeader(echo.HeaderAuthorization, T(t, b)).
		WithJSON(&PostCommentRequest{Text: "nice"}).
		Expect().
		Status(http.StatusOK).
		JSON().Object().
		Value("comments").Array().Value(0).Object().
		Value("userId").Object().Value("_id").String().IsEqual(b.HexID())

	// いいね、コメントの順に届く
	f := ReadFrame(t, conn)
	assert.Equal(t, notification.NewNotificationEvent, f.Type)
	assert.Equal(t, b.Username+" liked your post.", f.Body["message"])
	f = ReadFrame(t, conn)
	assert.Equal(t, notification.PostNotificationEvent, f.Type)
	assert.EqualValues(t, notification.PostNotificationLike, f.Body["type"])
	assert.Equal(t, p.ID.Hex(), f.Body["postId"])
	f = ReadFrame(t, conn)
	assert.Equal(t, notification.NewNotificationEvent, f.Type)
	assert.Equal(t, b.Username+" commented on your post.", f.Body["message"])
	f = ReadFrame(t, conn)
	assert.Equal(t, notification.PostNotificationEvent, f.Type)
	assert.EqualValues(t, notification.PostNotificationComment, f.Body["type"])
	assert.Equal(t, "nice", f.Body["commentText"])

	e.PUT("/api/posts/{id}/like", p.ID.Hex()).
		WithHeader(echo.HeaderAuthorization, T(t, b)).
		Expect().
		Status(http.StatusOK).
		JSON().Object().
		Value("message").String().IsEqual("Post unliked")
	AssertNoFrame(t, conn)
}

func TestHandlers_AddComment(t *testing.T) {
	t.Parallel()

	path := "/api/posts/{id}/comment"
	repo, server := Setup(t, common)
	user := CreateUser(t, repo, rand)
	p := createPost(t, repo, user)

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		e.POST(path, p.ID.Hex()).
			WithHeader(echo.HeaderAuthorization, T(t, user)).
			WithJSON(&PostCommentRequest{Text: " "}).
			Expect().
			Status(http.StatusBadRequest)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		e := R(t, server)
		e.POST(path, primitive.NewObjectID().Hex()).
			WithHeader(echo.HeaderAuthorization, T(t, user)).
			WithJSON(&PostCommentRequest{Text: "hi"}).
			Expect().
			Status(http.StatusNotFound)
	})
}
