package notification

import (
	"go.uber.org/zap"
)

// Presence オンラインユーザーの接続先
type Presence interface {
	Lookup(userID string) (connectionID string, ok bool)
}

// Sender コネクションへのイベント送信
type Sender interface {
	Send(connectionID string, eventName string, payload interface{}) error
}

// Router Notifierの実装
type Router struct {
	presence Presence
	sender   Sender
	logger   *zap.Logger
}

// NewRouter Routerを生成します
func NewRouter(presence Presence, sender Sender, logger *zap.Logger) *Router {
	return &Router{
		presence: presence,
		sender:   sender,
		logger:   logger.Named("notification"),
	}
}

// Notify implements Notifier interface.
func (r *Router) Notify(targetUserID, eventName string, payload interface{}) {
	if len(targetUserID) == 0 {
		return
	}
	connID, ok := r.presence.Lookup(targetUserID)
	if !ok {
		return
	}
	if err := r.sender.Send(connID, eventName, payload); err != nil {
		r.logger.Debug("failed to deliver an event",
			zap.Error(err),
			zap.String("event", eventName),
			zap.String("userId", targetUserID),
			zap.String("connId", connID))
	}
}
