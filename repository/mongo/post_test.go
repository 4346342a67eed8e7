package mongo

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/traPtitech/sociogram/event"
	"github.com/traPtitech/sociogram/repository"
)

func TestRepositoryImpl_CreatePost(t *testing.T) {
	t.Parallel()
	repo, assert, require, user := setupWithUser(t, common)

	p, err := repo.CreatePost(context.Background(), repository.CreatePostArgs{
		UserID:      user.ID,
		TextContent: "hello",
		Image:       "img.png",
	})
	require.NoError(err)
	assert.False(p.ID.IsZero())
	assert.Equal(user.ID, p.UserID)
	assert.NotNil(p.Likes)
	assert.NotNil(p.Comments)

	got, err := repo.GetPost(context.Background(), p.ID)
	require.NoError(err)
	assert.Equal("hello", got.TextContent)
	assert.Equal("img.png", got.Image)

	_, err = repo.CreatePost(context.Background(), repository.CreatePostArgs{TextContent: "a"})
	assert.ErrorIs(err, repository.ErrNilID)
}

func TestRepositoryImpl_GetPost(t *testing.T) {
	t.Parallel()
	repo, assert, _ := setup(t, common)

	_, err := repo.GetPost(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(err, repository.ErrNotFound)
}

func TestRepositoryImpl_GetPosts(t *testing.T) {
	t.Parallel()
	repo, assert, require := setup(t, common)
	u1 := mustMakeUser(t, repo, rand)
	u2 := mustMakeUser(t, repo, rand)
	p1 := mustMakePost(t, repo, u1)
	p2 := mustMakePost(t, repo, u1)
	p3 := mustMakePost(t, repo, u2)

	_, liked, err := repo.TogglePostLike(context.Background(), p3.ID, u1.ID)
	require.NoError(err)
	require.True(liked)

	posts, err := repo.GetPosts(context.Background(), repository.PostsQuery{Author: u1.ID})
	require.NoError(err)
	if assert.Len(posts, 2) {
		// 新しい順
		assert.Equal(p2.ID, posts[0].ID)
		assert.Equal(p1.ID, posts[1].ID)
	}

	posts, err = repo.GetPosts(context.Background(), repository.PostsQuery{LikedBy: u1.ID})
	require.NoError(err)
	if assert.Len(posts, 1) {
		assert.Equal(p3.ID, posts[0].ID)
	}

	posts, err = repo.GetPosts(context.Background(), repository.PostsQuery{Author: primitive.NewObjectID()})
	require.NoError(err)
	assert.NotNil(posts)
	assert.Empty(posts)
}

func TestRepositoryImpl_DeletePost(t *testing.T) {
	t.Parallel()
	repo, assert, require, user := setupWithUser(t, common)
	p := mustMakePost(t, repo, user)
	sub := repositories[common].hub.Subscribe(8, event.PostDeleted)
	defer repositories[common].hub.Unsubscribe(sub)

	require.NoError(repo.DeletePost(context.Background(), p.ID))
	assert.ErrorIs(repo.DeletePost(context.Background(), p.ID), repository.ErrNotFound)
	_, err := repo.GetPost(context.Background(), p.ID)
	assert.ErrorIs(err, repository.ErrNotFound)

	for {
		select {
		case m := <-sub.Receiver:
			if m.Fields["post_id"] == p.ID.Hex() {
				return
			}
		case <-time.After(3 * time.Second):
			t.Fatal("PostDeleted was not published")
		}
	}
}

func TestRepositoryImpl_TogglePostLike(t *testing.T) {
	t.Parallel()
	repo, assert, require := setup(t, common)
	owner := mustMakeUser(t, repo, rand)
	liker := mustMakeUser(t, repo, rand)
	p := mustMakePost(t, repo, owner)

	post, liked, err := repo.TogglePostLike(context.Background(), p.ID, liker.ID)
	require.NoError(err)
	assert.True(liked)
	assert.True(post.LikedBy(liker.ID))

	post, liked, err = repo.TogglePostLike(context.Background(), p.ID, liker.ID)
	require.NoError(err)
	assert.False(liked)
	assert.False(post.LikedBy(liker.ID))
	assert.Empty(post.Likes)

	_, _, err = repo.TogglePostLike(context.Background(), primitive.NewObjectID(), liker.ID)
	assert.ErrorIs(err, repository.ErrNotFound)
}

func TestRepositoryImpl_AddPostComment(t *testing.T) {
	t.Parallel()
	repo, assert, require := setup(t, common)
	owner := mustMakeUser(t, repo, rand)
	commenter := mustMakeUser(t, repo, rand)
	p := mustMakePost(t, repo, owner)

	post, err := repo.AddPostComment(context.Background(), p.ID, commenter.ID, "nice")
	require.NoError(err)
	if assert.Len(post.Comments, 1) {
		assert.Equal(commenter.ID, post.Comments[0].UserID)
		assert.Equal("nice", post.Comments[0].Text)
		assert.False(post.Comments[0].ID.IsZero())
	}

	_, err = repo.AddPostComment(context.Background(), primitive.NewObjectID(), commenter.ID, "nice")
	assert.ErrorIs(err, repository.ErrNotFound)
}
