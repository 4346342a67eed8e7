package service

import (
	"github.com/traPtitech/sociogram/service/counter"
	"github.com/traPtitech/sociogram/service/friend"
	"github.com/traPtitech/sociogram/service/imaging"
	"github.com/traPtitech/sociogram/service/message"
	"github.com/traPtitech/sociogram/service/notification"
	"github.com/traPtitech/sociogram/service/post"
	"github.com/traPtitech/sociogram/service/presence"
	"github.com/traPtitech/sociogram/service/ws"
)

type Services struct {
	OnlineCounter   *counter.OnlineCounter
	ActivityCounter counter.ActivityCounter
	FriendManager   friend.Manager
	Imaging         imaging.Processor
	MessageManager  message.Manager
	Notifier        notification.Notifier
	PostManager     post.Manager
	Presence        *presence.Registry
	WS              *ws.Streamer
}
