package api

import (
	"net/http"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"

	"github.com/traPtitech/sociogram/router/consts"
	"github.com/traPtitech/sociogram/router/extension/herror"
	"github.com/traPtitech/sociogram/service/message"
)

// PostMessageRequest POST /messages/send/:id リクエストボディ
type PostMessageRequest struct {
	Message string `json:"message"`
}

func (r PostMessageRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.Message, vd.Required),
	)
}

// SendMessage POST /messages/send/:id
func (h *Handlers) SendMessage(c echo.Context) error {
	receiverID, err := getParamObjectID(c, consts.ParamID)
	if err != nil {
		return err
	}

	var req PostMessageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	m, err := h.MessageManager.Send(c.Request().Context(), getRequestUserID(c), receiverID, req.Message)
	if err != nil {
		switch err {
		case message.ErrUserNotFound:
			return herror.NotFound("User not found")
		case message.ErrEmptyMessage:
			return herror.BadRequest(err)
		default:
			return herror.InternalServerError(err)
		}
	}
	return c.JSON(http.StatusCreated, m)
}

// GetMessages GET /messages/:id
func (h *Handlers) GetMessages(c echo.Context) error {
	otherID, err := getParamObjectID(c, consts.ParamID)
	if err != nil {
		return err
	}

	messages, err := h.MessageManager.GetConversation(c.Request().Context(), getRequestUserID(c), otherID)
	if err != nil {
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, messages)
}
