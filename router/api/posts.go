package api

import (
	"net/http"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"

	"github.com/traPtitech/sociogram/repository"
	"github.com/traPtitech/sociogram/router/consts"
	"github.com/traPtitech/sociogram/router/extension/herror"
	"github.com/traPtitech/sociogram/service/post"
	"github.com/traPtitech/sociogram/utils/validator"
)

func postError(err error) error {
	switch err {
	case post.ErrNotFound:
		return herror.NotFound("Post not found")
	case post.ErrForbidden:
		return herror.Forbidden(err)
	case post.ErrEmptyPost, post.ErrEmptyComment:
		return herror.BadRequest(err)
	default:
		return herror.InternalServerError(err)
	}
}

// PostCreatePostRequest POST /posts リクエストボディ
type PostCreatePostRequest struct {
	TextContent string `json:"textContent"`
	Image       string `json:"image"`
}

func (r PostCreatePostRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.TextContent, validator.PostTextRule...),
	)
}

// CreatePost POST /posts
func (h *Handlers) CreatePost(c echo.Context) error {
	var req PostCreatePostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	p, err := h.PostManager.Create(c.Request().Context(), getRequestUserID(c), req.TextContent, req.Image)
	if err != nil {
		return postError(err)
	}
	res, err := formatPost(c.Request().Context(), h.Repo, p)
	if err != nil {
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Post created successfully",
		"post":    res,
	})
}

func (h *Handlers) servePosts(c echo.Context, q repository.PostsQuery) error {
	posts, err := h.PostManager.GetPosts(c.Request().Context(), q)
	if err != nil {
		return herror.InternalServerError(err)
	}
	res, err := formatPosts(c.Request().Context(), h.Repo, posts)
	if err != nil {
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// GetAllPosts GET /posts/posts
func (h *Handlers) GetAllPosts(c echo.Context) error {
	return h.servePosts(c, repository.PostsQuery{})
}

// GetLikedPosts GET /posts/liked/:userId
func (h *Handlers) GetLikedPosts(c echo.Context) error {
	userID, err := getParamObjectID(c, consts.ParamUserID)
	if err != nil {
		return err
	}
	return h.servePosts(c, repository.PostsQuery{LikedBy: userID})
}

// GetUserPosts GET /posts/user/:userId
func (h *Handlers) GetUserPosts(c echo.Context) error {
	userID, err := getParamObjectID(c, consts.ParamUserID)
	if err != nil {
		return err
	}
	return h.servePosts(c, repository.PostsQuery{Author: userID})
}

// GetPost GET /posts/:id
func (h *Handlers) GetPost(c echo.Context) error {
	id, err := getParamObjectID(c, consts.ParamID)
	if err != nil {
		return err
	}

	p, err := h.PostManager.Get(c.Request().Context(), id)
	if err != nil {
		return postError(err)
	}
	res, err := formatPost(c.Request().Context(), h.Repo, p)
	if err != nil {
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// DeletePost DELETE /posts/:id
func (h *Handlers) DeletePost(c echo.Context) error {
	id, err := getParamObjectID(c, consts.ParamID)
	if err != nil {
		return err
	}

	if err := h.PostManager.Delete(c.Request().Context(), id, getRequestUserID(c)); err != nil {
		return postError(err)
	}
	return c.JSON(http.StatusOK, messageResponse("Post deleted successfully"))
}

// ToggleLike PUT /posts/:id/like
func (h *Handlers) ToggleLike(c echo.Context) error {
	id, err := getParamObjectID(c, consts.ParamID)
	if err != nil {
		return err
	}

	p, liked, err := h.PostManager.ToggleLike(c.Request().Context(), id, getRequestUserID(c))
	if err != nil {
		return postError(err)
	}
	res, err := formatPost(c.Request().Context(), h.Repo, p)
	if err != nil {
		return herror.InternalServerError(err)
	}

	message := "Post unliked"
	if liked {
		message = "Post liked"
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": message,
		"post":    res,
	})
}

// PostCommentRequest POST /posts/:id/comment リクエストボディ
type PostCommentRequest struct {
	Text string `json:"text"`
}

func (r PostCommentRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.Text, validator.CommentTextRule...),
	)
}

// AddComment POST /posts/:id/comment
func (h *Handlers) AddComment(c echo.Context) error {
	id, err := getParamObjectID(c, consts.ParamID)
	if err != nil {
		return err
	}

	var req PostCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	p, err := h.PostManager.Comment(c.Request().Context(), id, getRequestUserID(c), req.Text)
	if err != nil {
		return postError(err)
	}
	res, err := formatPost(c.Request().Context(), h.Repo, p)
	if err != nil {
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, res)
}
