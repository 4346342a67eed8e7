package event

const (
	// UserCreated ユーザーが追加された
	// 	Fields:
	// 		user_id: string
	// 		user: *model.User
	UserCreated = "user.created"
	// UserOnline ユーザーがオンラインになった
	// 	Fields:
	// 		user_id: string
	// 		datetime: time.Time
	UserOnline = "user.online"
	// UserOffline ユーザーがオフラインになった
	// 	Fields:
	// 		user_id: string
	// 		datetime: time.Time
	UserOffline = "user.offline"

	// WSConnected ユーザーがWSストリームに接続した
	// 	Fields:
	// 		user_id: string
	// 		conn_id: string
	// 		req: *http.Request
	WSConnected = "ws.connected"
	// WSDisconnected ユーザーがWSストリームから切断した
	// 	Fields:
	// 		user_id: string
	// 		conn_id: string
	// 		req: *http.Request
	WSDisconnected = "ws.disconnected"

	// PostCreated 投稿が作成された
	// 	Fields:
	// 		post_id: string
	// 		post: *model.Post
	PostCreated = "post.created"
	// PostDeleted 投稿が削除された
	// 	Fields:
	// 		post_id: string
	PostDeleted = "post.deleted"
	// FriendshipCreated 友達関係が成立した
	// 	Fields:
	// 		user_id: string
	// 		friend_id: string
	FriendshipCreated = "friendship.created"
	// DirectMessageCreated ダイレクトメッセージが送信された
	// 	Fields:
	// 		message_id: string
	// 		message: *model.Message
	DirectMessageCreated = "direct_message.created"
)
