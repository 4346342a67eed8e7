package api

import (
	"errors"
	"net/http"
	"strings"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/guregu/null"
	"github.com/labstack/echo/v4"
	"github.com/samber/lo"

	"github.com/traPtitech/sociogram/repository"
	"github.com/traPtitech/sociogram/router/consts"
	"github.com/traPtitech/sociogram/router/extension/herror"
	"github.com/traPtitech/sociogram/utils/validator"
)

// SearchUsers GET /users/search
func (h *Handlers) SearchUsers(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if len(q) == 0 {
		return herror.BadRequest("Search query is required")
	}

	users, err := h.Repo.SearchUsers(c.Request().Context(), q)
	if err != nil {
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// GetUserProfile GET /users/profile/:id
func (h *Handlers) GetUserProfile(c echo.Context) error {
	id, err := getParamObjectID(c, consts.ParamID)
	if err != nil {
		return err
	}

	user, err := h.Repo.GetUser(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return herror.NotFound("User not found")
		}
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// PutEditProfileRequest PUT /users/edit リクエストボディ
type PutEditProfileRequest struct {
	Username   null.String `json:"username"`
	Email      null.String `json:"email"`
	Bio        null.String `json:"bio"`
	ProfilePic null.String `json:"profilePic"`
}

func (r PutEditProfileRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.Username, validator.UserNameRule...),
		vd.Field(&r.Email, validator.EmailRule...),
		vd.Field(&r.Bio, validator.BioRule...),
	)
}

// EditProfile PUT /users/edit
func (h *Handlers) EditProfile(c echo.Context) error {
	userID := getRequestUserID(c)

	var req PutEditProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	args := repository.UpdateUserArgs{
		Username:   req.Username,
		Email:      req.Email,
		Bio:        req.Bio,
		ProfilePic: req.ProfilePic,
	}
	if args.IsEmpty() {
		return herror.BadRequest("No fields to update")
	}

	user, err := h.Repo.UpdateUser(c.Request().Context(), userID, args)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAlreadyExists):
			return herror.Conflict("Username or email already in use")
		case errors.Is(err, repository.ErrNotFound):
			return herror.NotFound("User not found")
		case repository.IsArgError(err):
			return herror.BadRequest(err)
		default:
			return herror.InternalServerError(err)
		}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Profile updated successfully",
		"user":    user,
	})
}

// CheckUsername GET /users/check-username
func (h *Handlers) CheckUsername(c echo.Context) error {
	username := strings.ToLower(strings.TrimSpace(c.QueryParam("username")))
	if err := vd.Validate(username, validator.UserNameRuleRequired...); err != nil {
		return herror.BadRequest(err)
	}

	exists, err := h.Repo.UsernameExists(c.Request().Context(), username)
	if err != nil {
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"available": !exists,
		"message":   lo.Ternary(exists, "Username is already taken", "Username is available"),
	})
}

// GetOnlineUsers GET /users/online
func (h *Handlers) GetOnlineUsers(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Presence.Users())
}
