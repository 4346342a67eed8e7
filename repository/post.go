//go:generate mockgen -source=$GOFILE -destination=mock_$GOPACKAGE/mock_$GOFILE

package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/traPtitech/sociogram/model"
)

// CreatePostArgs 投稿作成引数
type CreatePostArgs struct {
	UserID      primitive.ObjectID
	TextContent string
	Image       string
}

// PostsQuery GetPosts用クエリ
//
// NilObjectIDのフィールドは条件に含めません。
type PostsQuery struct {
	Author  primitive.ObjectID
	LikedBy primitive.ObjectID
}

// PostRepository 投稿リポジトリ
type PostRepository interface {
	// CreatePost 投稿を作成します
	//
	// 成功した場合、投稿とnilを返します。
	// DBによるエラーを返すことがあります。
	CreatePost(ctx context.Context, args CreatePostArgs) (*model.Post, error)
	// GetPost 指定したIDの投稿を取得します
	//
	// 存在しなかった場合、ErrNotFoundを返します。
	GetPost(ctx context.Context, id primitive.ObjectID) (*model.Post, error)
	// GetPosts クエリに一致する投稿を新しい順に取得します
	GetPosts(ctx context.Context, query PostsQuery) ([]*model.Post, error)
	// DeletePost 指定した投稿を削除します
	//
	// 存在しなかった場合、ErrNotFoundを返します。
	DeletePost(ctx context.Context, id primitive.ObjectID) error
	// TogglePostLike 指定したユーザーのいいねを切り替えます
	//
	// 成功した場合、更新後の投稿と、いいねした状態になったかどうかを返します。
	// 存在しなかった場合、ErrNotFoundを返します。
	TogglePostLike(ctx context.Context, postID, userID primitive.ObjectID) (post *model.Post, liked bool, err error)
	// AddPostComment 投稿にコメントを追加します
	//
	// 成功した場合、更新後の投稿を返します。
	// 存在しなかった場合、ErrNotFoundを返します。
	AddPostComment(ctx context.Context, postID, userID primitive.ObjectID, text string) (*model.Post, error)
}
