package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// PostTextMaxLength 投稿本文の最大文字数
	PostTextMaxLength = 1000
	// CommentTextMaxLength コメントの最大文字数
	CommentTextMaxLength = 500
)

// Post 投稿
type Post struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	UserID      primitive.ObjectID   `bson:"userId" json:"userId"`
	TextContent string               `bson:"textContent" json:"textContent"`
	Image       string               `bson:"image" json:"image"`
	Likes       []primitive.ObjectID `bson:"likes" json:"likes"`
	Comments    []*Comment           `bson:"comments" json:"comments"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// LikedBy 指定したユーザーがいいねしているかどうか
func (p *Post) LikedBy(userID primitive.ObjectID) bool {
	return containsID(p.Likes, userID)
}

// Comment 投稿へのコメント
type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Text      string             `bson:"text" json:"text"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
