package notification

// クライアントが購読しているイベント名
const (
	// NewNotificationEvent 汎用の通知
	NewNotificationEvent = "new-notification"
	// FriendRequestReceivedEvent フレンドリクエストを受け取った
	FriendRequestReceivedEvent = "friend-request-received"
	// FriendshipAcceptedEvent 送ったフレンドリクエストが承認され、フレンドになった
	FriendshipAcceptedEvent = "friendship-accepted"
	// FriendRequestAcceptedEvent 送ったフレンドリクエストが承認された
	FriendRequestAcceptedEvent = "friend-request-accepted"
	// PostNotificationEvent 自分の投稿へのいいね・コメント
	PostNotificationEvent = "post-notification"
	// NewMessageEvent ダイレクトメッセージを受け取った bodyはメッセージそのもの
	NewMessageEvent = "newMessage"
)

// PostNotificationType post-notificationの種類
type PostNotificationType string

const (
	PostNotificationLike    PostNotificationType = "like"
	PostNotificationComment PostNotificationType = "comment"
)

// NewNotificationPayload new-notificationのbody
type NewNotificationPayload struct {
	Message string `json:"message"`
}

// FriendRequestReceivedPayload friend-request-receivedのbody
type FriendRequestReceivedPayload struct {
	ID         string `json:"_id"`
	Username   string `json:"username"`
	ProfilePic string `json:"profilePic"`
	Message    string `json:"message"`
}

// FriendshipAcceptedPayload friendship-acceptedのbody
type FriendshipAcceptedPayload struct {
	NewFriend FriendPayload `json:"newFriend"`
}

// FriendPayload 新しいフレンド
type FriendPayload struct {
	ID         string `json:"_id"`
	Username   string `json:"username"`
	ProfilePic string `json:"profilePic"`
}

// FriendRequestAcceptedPayload friend-request-acceptedのbody
type FriendRequestAcceptedPayload struct {
	By      ActorPayload `json:"by"`
	Message string       `json:"message"`
}

// ActorPayload 操作したユーザー
type ActorPayload struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

// PostNotificationPayload post-notificationのbody
type PostNotificationPayload struct {
	Type        PostNotificationType `json:"type"`
	From        string               `json:"from"`
	PostID      string               `json:"postId"`
	Message     string               `json:"message"`
	CommentText string               `json:"commentText,omitempty"`
}
