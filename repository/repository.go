package repository

import "context"

// Repository データリポジトリ
type Repository interface {
	// Sync インデックスなどのスキーマを同期します
	Sync(ctx context.Context) error
	UserRepository
	FriendRepository
	PostRepository
	NotificationRepository
	MessageRepository
}
