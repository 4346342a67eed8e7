package api

import (
	"errors"
	"net/http"
	"strings"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"

	"github.com/traPtitech/sociogram/model"
	"github.com/traPtitech/sociogram/repository"
	"github.com/traPtitech/sociogram/router/extension/herror"
	"github.com/traPtitech/sociogram/utils/validator"
)

// authResponse 認証APIのレスポンス
type authResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// PostRegisterRequest POST /auth/register リクエストボディ
type PostRegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r PostRegisterRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.Username, validator.UserNameRuleRequired...),
		vd.Field(&r.Email, validator.EmailRuleRequired...),
		vd.Field(&r.Password, validator.PasswordRuleRequired...),
	)
}

// Register POST /auth/register
func (h *Handlers) Register(c echo.Context) error {
	var req PostRegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.Repo.CreateUser(c.Request().Context(), repository.CreateUserArgs{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return herror.BadRequest("Username or email already in use")
		}
		return herror.InternalServerError(err)
	}

	token, err := h.Signer.Sign(user.HexID())
	if err != nil {
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusCreated, &authResponse{Token: token, User: user})
}

// PostLoginRequest POST /auth/login リクエストボディ
type PostLoginRequest struct {
	EmailOrUsername string `json:"emailOrUsername"`
	Password        string `json:"password"`
}

func (r PostLoginRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.EmailOrUsername, vd.Required),
		vd.Field(&r.Password, vd.Required),
	)
}

// Login POST /auth/login
func (h *Handlers) Login(c echo.Context) error {
	var req PostLoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	var (
		user *model.User
		err  error
	)
	if strings.Contains(req.EmailOrUsername, "@") {
		user, err = h.Repo.GetUserByEmail(c.Request().Context(), req.EmailOrUsername)
	} else {
		user, err = h.Repo.GetUserByUsername(c.Request().Context(), req.EmailOrUsername)
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return herror.NotFound("User not found")
		}
		return herror.InternalServerError(err)
	}

	if err := user.Authenticate(req.Password); err != nil {
		switch err {
		case model.ErrUserWrongIDOrPassword, model.ErrUserHasNoPassword:
			return herror.BadRequest("Invalid credentials")
		default:
			return herror.InternalServerError(err)
		}
	}

	token, err := h.Signer.Sign(user.HexID())
	if err != nil {
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, &authResponse{Token: token, User: user})
}
