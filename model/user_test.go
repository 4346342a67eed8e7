package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUser_Authenticate(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("password1234")
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		u := &User{Password: hash}
		assert.NoError(t, u.Authenticate("password1234"))
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		u := &User{Password: hash}
		assert.ErrorIs(t, u.Authenticate("wrong"), ErrUserWrongIDOrPassword)
	})

	t.Run("no password", func(t *testing.T) {
		t.Parallel()
		u := &User{}
		assert.ErrorIs(t, u.Authenticate("password1234"), ErrUserHasNoPassword)
	})
}

func TestUser_HasFriend(t *testing.T) {
	t.Parallel()

	a, b := primitive.NewObjectID(), primitive.NewObjectID()
	u := &User{Friends: []primitive.ObjectID{a}, FriendRequests: []primitive.ObjectID{b}}
	assert.True(t, u.HasFriend(a))
	assert.False(t, u.HasFriend(b))
	assert.True(t, u.HasFriendRequestFrom(b))
	assert.False(t, u.HasFriendRequestFrom(a))
}

func TestUser_Summary(t *testing.T) {
	t.Parallel()

	u := &User{ID: primitive.NewObjectID(), Username: "alice", Email: "a@example.com", ProfilePic: "p.png", Password: "x"}
	s := u.Summary()
	assert.Equal(t, u.ID, s.ID)
	assert.Equal(t, "alice", s.Username)
	assert.Equal(t, "a@example.com", s.Email)
	assert.Equal(t, "p.png", s.ProfilePic)
}

func TestNotificationType_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, NotificationTypeLike.Valid())
	assert.True(t, NotificationTypeFriendRequest.Valid())
	assert.False(t, NotificationType("poke").Valid())
}
