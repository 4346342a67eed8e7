package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/traPtitech/sociogram/router/consts"
	"github.com/traPtitech/sociogram/router/extension/herror"
	"github.com/traPtitech/sociogram/service/friend"
)

func friendError(err error) error {
	switch err {
	case friend.ErrUserNotFound:
		return herror.NotFound("User not found")
	case friend.ErrSelfRequest, friend.ErrAlreadyFriends, friend.ErrAlreadyRequested, friend.ErrReverseRequestPending, friend.ErrRequestNotFound:
		return herror.BadRequest(err)
	default:
		return herror.InternalServerError(err)
	}
}

// SendFriendRequest POST /friend/friend-request/:id
func (h *Handlers) SendFriendRequest(c echo.Context) error {
	receiverID, err := getParamObjectID(c, consts.ParamID)
	if err != nil {
		return err
	}

	if err := h.FriendManager.SendRequest(c.Request().Context(), getRequestUserID(c), receiverID); err != nil {
		return friendError(err)
	}
	return c.JSON(http.StatusOK, messageResponse("Friend request sent successfully"))
}

// AcceptFriendRequest POST /friend/friend-request/:id/accept
func (h *Handlers) AcceptFriendRequest(c echo.Context) error {
	senderID, err := getParamObjectID(c, consts.ParamID)
	if err != nil {
		return err
	}

	if err := h.FriendManager.AcceptRequest(c.Request().Context(), getRequestUserID(c), senderID); err != nil {
		return friendError(err)
	}
	return c.JSON(http.StatusOK, messageResponse("Friend request accepted successfully"))
}

// RejectFriendRequest POST /friend/friend-request/:id/reject
func (h *Handlers) RejectFriendRequest(c echo.Context) error {
	senderID, err := getParamObjectID(c, consts.ParamID)
	if err != nil {
		return err
	}

	if err := h.FriendManager.RejectRequest(c.Request().Context(), getRequestUserID(c), senderID); err != nil {
		return friendError(err)
	}
	return c.JSON(http.StatusOK, messageResponse("Friend request rejected successfully"))
}

// CancelFriendRequest DELETE /friend/friend-request/:id/cancel
func (h *Handlers) CancelFriendRequest(c echo.Context) error {
	receiverID, err := getParamObjectID(c, consts.ParamID)
	if err != nil {
		return err
	}

	if err := h.FriendManager.CancelRequest(c.Request().Context(), getRequestUserID(c), receiverID); err != nil {
		if err == friend.ErrRequestNotFound {
			return herror.NotFound(err)
		}
		return friendError(err)
	}
	return c.JSON(http.StatusOK, messageResponse("Friend request cancelled successfully"))
}

// GetFriendRequests GET /friend/friend-requests
func (h *Handlers) GetFriendRequests(c echo.Context) error {
	requests, err := h.FriendManager.GetRequests(c.Request().Context(), getRequestUserID(c))
	if err != nil {
		return friendError(err)
	}
	return c.JSON(http.StatusOK, requests)
}

// GetFriends GET /friend/friends
func (h *Handlers) GetFriends(c echo.Context) error {
	friends, err := h.FriendManager.GetFriends(c.Request().Context(), getRequestUserID(c))
	if err != nil {
		return friendError(err)
	}
	return c.JSON(http.StatusOK, friends)
}
