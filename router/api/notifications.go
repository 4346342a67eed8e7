package api

import (
	"errors"
	"net/http"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/traPtitech/sociogram/model"
	"github.com/traPtitech/sociogram/repository"
	"github.com/traPtitech/sociogram/router/consts"
	"github.com/traPtitech/sociogram/router/extension/herror"
	"github.com/traPtitech/sociogram/utils/validator"
)

// GetNotifications GET /notifications
func (h *Handlers) GetNotifications(c echo.Context) error {
	ns, err := h.Repo.GetNotifications(c.Request().Context(), getRequestUserID(c))
	if err != nil {
		return herror.InternalServerError(err)
	}
	res, err := formatNotifications(c.Request().Context(), h.Repo, ns)
	if err != nil {
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// MarkNotificationAsRead PUT /notifications/:id/read
func (h *Handlers) MarkNotificationAsRead(c echo.Context) error {
	id, err := getParamObjectID(c, consts.ParamID)
	if err != nil {
		return err
	}

	n, err := h.Repo.MarkNotificationAsRead(c.Request().Context(), id, getRequestUserID(c))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return herror.NotFound("Notification not found")
		}
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, n)
}

// MarkAllNotificationsAsRead PUT /notifications/read-all
func (h *Handlers) MarkAllNotificationsAsRead(c echo.Context) error {
	if _, err := h.Repo.MarkAllNotificationsAsRead(c.Request().Context(), getRequestUserID(c), model.NotificationTypeLike, model.NotificationTypeComment); err != nil {
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, messageResponse("All notifications marked as read"))
}

// PutReadNotificationsRequest PUT /notifications/read リクエストボディ
type PutReadNotificationsRequest struct {
	IDs []string `json:"ids"`
}

func (r PutReadNotificationsRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.IDs, vd.Required, vd.Each(vd.Required, validator.ObjectIDHex)),
	)
}

// MarkNotificationsAsRead PUT /notifications/read
func (h *Handlers) MarkNotificationsAsRead(c echo.Context) error {
	var req PutReadNotificationsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ids := lo.Map(req.IDs, func(s string, _ int) primitive.ObjectID {
		id, _ := primitive.ObjectIDFromHex(s)
		return id
	})
	modified, err := h.Repo.MarkNotificationsAsRead(c.Request().Context(), getRequestUserID(c), ids)
	if err != nil {
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":       "Notifications marked as read",
		"modifiedCount": modified,
	})
}
