package mongo

import (
	"context"
	"errors"

	"github.com/leandro-lugaresi/hub"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/traPtitech/sociogram/event"
	"github.com/traPtitech/sociogram/model"
	"github.com/traPtitech/sociogram/repository"
)

var newestFirst = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}

// CreatePost implements PostRepository interface.
func (repo *Repository) CreatePost(ctx context.Context, args repository.CreatePostArgs) (*model.Post, error) {
	if args.UserID.IsZero() {
		return nil, repository.ErrNilID
	}
	t := now()
	post := &model.Post{
		ID:          primitive.NewObjectID(),
		UserID:      args.UserID,
		TextContent: args.TextContent,
		Image:       args.Image,
		Likes:       []primitive.ObjectID{},
		Comments:    []*model.Comment{},
		CreatedAt:   t,
		UpdatedAt:   t,
	}
	if _, err := repo.db.Collection(postsCollection).InsertOne(ctx, post); err != nil {
		return nil, convertError(err)
	}
	repo.publish(event.PostCreated, hub.Fields{
		"post_id": post.ID.Hex(),
		"post":    post,
	})
	return post, nil
}

// GetPost implements PostRepository interface.
func (repo *Repository) GetPost(ctx context.Context, id primitive.ObjectID) (*model.Post, error) {
	if id.IsZero() {
		return nil, repository.ErrNotFound
	}
	var post model.Post
	if err := repo.db.Collection(postsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&post); err != nil {
		return nil, convertError(err)
	}
	return &post, nil
}

// GetPosts implements PostRepository interface.
func (repo *Repository) GetPosts(ctx context.Context, query repository.PostsQuery) ([]*model.Post, error) {
	filter := bson.M{}
	if !query.Author.IsZero() {
		filter["userId"] = query.Author
	}
	if !query.LikedBy.IsZero() {
		filter["likes"] = query.LikedBy
	}

	cur, err := repo.db.Collection(postsCollection).Find(ctx, filter, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, err
	}
	posts := make([]*model.Post, 0)
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// DeletePost implements PostRepository interface.
func (repo *Repository) DeletePost(ctx context.Context, id primitive.ObjectID) error {
	if id.IsZero() {
		return repository.ErrNilID
	}
	res, err := repo.db.Collection(postsCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	repo.publish(event.PostDeleted, hub.Fields{
		"post_id": id.Hex(),
	})
	return nil
}

// TogglePostLike implements PostRepository interface.
func (repo *Repository) TogglePostLike(ctx context.Context, postID, userID primitive.ObjectID) (*model.Post, bool, error) {
	if postID.IsZero() || userID.IsZero() {
		return nil, false, repository.ErrNilID
	}
	posts := repo.db.Collection(postsCollection)
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var post model.Post
	err := posts.FindOneAndUpdate(ctx,
		bson.M{"_id": postID, "likes": bson.M{"$ne": userID}},
		bson.M{"$push": bson.M{"likes": userID}, "$set": bson.M{"updatedAt": now()}},
		opts,
	).Decode(&post)
	if err == nil {
		return &post, true, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, err
	}

	// 既にいいねしていた
	err = posts.FindOneAndUpdate(ctx,
		bson.M{"_id": postID, "likes": userID},
		bson.M{"$pull": bson.M{"likes": userID}, "$set": bson.M{"updatedAt": now()}},
		opts,
	).Decode(&post)
	if err != nil {
		return nil, false, convertError(err)
	}
	return &post, false, nil
}

// AddPostComment implements PostRepository interface.
func (repo *Repository) AddPostComment(ctx context.Context, postID, userID primitive.ObjectID, text string) (*model.Post, error) {
	if postID.IsZero() || userID.IsZero() {
		return nil, repository.ErrNilID
	}
	t := now()
	comment := &model.Comment{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Text:      text,
		CreatedAt: t,
	}

	var post model.Post
	err := repo.db.Collection(postsCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": postID},
		bson.M{"$push": bson.M{"comments": comment}, "$set": bson.M{"updatedAt": t}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&post)
	if err != nil {
		return nil, convertError(err)
	}
	return &post, nil
}
