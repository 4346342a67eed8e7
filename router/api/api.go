package api

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/traPtitech/sociogram/repository"
	"github.com/traPtitech/sociogram/router/middlewares"
	"github.com/traPtitech/sociogram/service/counter"
	"github.com/traPtitech/sociogram/service/friend"
	"github.com/traPtitech/sociogram/service/imaging"
	"github.com/traPtitech/sociogram/service/message"
	"github.com/traPtitech/sociogram/service/post"
	"github.com/traPtitech/sociogram/service/presence"
	"github.com/traPtitech/sociogram/service/ws"
	"github.com/traPtitech/sociogram/utils/jwt"
	"github.com/traPtitech/sociogram/utils/storage"
)

// uploadMaxBytes アップロード可能な画像の最大バイト数
const uploadMaxBytes = 10 << 20

type Handlers struct {
	Repo            repository.Repository
	Logger          *zap.Logger
	Signer          *jwt.Signer
	Storage         storage.FileStorage
	Imaging         imaging.Processor
	Presence        *presence.Registry
	FriendManager   friend.Manager
	PostManager     post.Manager
	MessageManager  message.Manager
	ActivityCounter counter.ActivityCounter
	WS              *ws.Streamer

	Config
}

type Config struct {
	// AuthRateLimit 認証APIのIPアドレスごとの秒間リクエスト数上限 0の場合は無制限
	AuthRateLimit rate.Limit
}

// Setup APIルーティングを行います
func (h *Handlers) Setup(e *echo.Group) {
	requiresLogin := middlewares.UserAuthenticate(h.Repo, h.Signer)

	apiAuth := e.Group("/auth")
	if h.AuthRateLimit > 0 {
		apiAuth.Use(middlewares.RateLimiterWithLogging(h.AuthRateLimit, int(h.AuthRateLimit*5)+1, h.Logger.Named("rate_limit")))
	}
	{
		apiAuth.POST("/register", h.Register)
		apiAuth.POST("/login", h.Login)
	}

	apiUsers := e.Group("/users", requiresLogin)
	{
		apiUsers.GET("/search", h.SearchUsers)
		apiUsers.GET("/profile/:id", h.GetUserProfile)
		apiUsers.PUT("/edit", h.EditProfile)
		apiUsers.GET("/check-username", h.CheckUsername)
		apiUsers.GET("/online", h.GetOnlineUsers)
	}

	apiPosts := e.Group("/posts")
	{
		apiPosts.POST("", h.CreatePost, requiresLogin)
		apiPosts.GET("/posts", h.GetAllPosts, requiresLogin)
		apiPosts.GET("/liked/:userId", h.GetLikedPosts, requiresLogin)
		apiPosts.GET("/user/:userId", h.GetUserPosts, requiresLogin)
		apiPosts.GET("/:id", h.GetPost)
		apiPosts.DELETE("/:id", h.DeletePost, requiresLogin)
		apiPosts.PUT("/:id/like", h.ToggleLike, requiresLogin)
		apiPosts.POST("/:id/comment", h.AddComment, requiresLogin)
	}

	apiFriend := e.Group("/friend", requiresLogin)
	{
		apiFriend.POST("/friend-request/:id", h.SendFriendRequest)
		apiFriend.POST("/friend-request/:id/accept", h.AcceptFriendRequest)
		apiFriend.POST("/friend-request/:id/reject", h.RejectFriendRequest)
		apiFriend.DELETE("/friend-request/:id/cancel", h.CancelFriendRequest)
		apiFriend.GET("/friend-requests", h.GetFriendRequests)
		apiFriend.GET("/friends", h.GetFriends)
	}

	apiNotifications := e.Group("/notifications", requiresLogin)
	{
		apiNotifications.GET("", h.GetNotifications)
		apiNotifications.PUT("/read-all", h.MarkAllNotificationsAsRead)
		apiNotifications.PUT("/read", h.MarkNotificationsAsRead)
		apiNotifications.PUT("/:id/read", h.MarkNotificationAsRead)
	}

	apiMessages := e.Group("/messages", requiresLogin)
	{
		apiMessages.POST("/send/:id", h.SendMessage)
		apiMessages.GET("/:id", h.GetMessages)
	}

	e.GET("/stats", h.GetStats, requiresLogin)
	e.POST("/upload", h.UploadImage, requiresLogin, middlewares.RequestBodyLengthLimit(uploadMaxBytes))
	e.GET("/files/:key", h.GetFile)
}
