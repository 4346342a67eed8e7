package mongo

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/traPtitech/sociogram/model"
	"github.com/traPtitech/sociogram/repository"
)

func mustMakeNotification(t *testing.T, repo repository.Repository, recipient, sender primitive.ObjectID, typ model.NotificationType) *model.Notification {
	t.Helper()
	n, err := repo.CreateNotification(context.Background(), repository.CreateNotificationArgs{
		Recipient: recipient,
		Sender:    sender,
		Type:      typ,
		EntityID:  primitive.NewObjectID(),
	})
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestRepositoryImpl_CreateNotification(t *testing.T) {
	t.Parallel()
	repo, assert, require := setup(t, common)
	r := mustMakeUser(t, repo, rand)
	s := mustMakeUser(t, repo, rand)

	n, err := repo.CreateNotification(context.Background(), repository.CreateNotificationArgs{
		Recipient: r.ID,
		Sender:    s.ID,
		Type:      model.NotificationTypeLike,
		EntityID:  primitive.NewObjectID(),
	})
	require.NoError(err)
	assert.False(n.Read)
	assert.Equal(model.NotificationTypeLike, n.Type)

	_, err = repo.CreateNotification(context.Background(), repository.CreateNotificationArgs{
		Recipient: r.ID,
		Sender:    s.ID,
		Type:      "poke",
	})
	assert.True(repository.IsArgError(err))
}

func TestRepositoryImpl_GetNotifications(t *testing.T) {
	t.Parallel()
	repo, assert, require := setup(t, common)
	r := mustMakeUser(t, repo, rand)
	s := mustMakeUser(t, repo, rand)
	n1 := mustMakeNotification(t, repo, r.ID, s.ID, model.NotificationTypeLike)
	n2 := mustMakeNotification(t, repo, r.ID, s.ID, model.NotificationTypeComment)
	mustMakeNotification(t, repo, s.ID, r.ID, model.NotificationTypeComment)

	ns, err := repo.GetNotifications(context.Background(), r.ID)
	require.NoError(err)
	if assert.Len(ns, 2) {
		assert.Equal(n2.ID, ns[0].ID)
		assert.Equal(n1.ID, ns[1].ID)
	}
}

func TestRepositoryImpl_MarkNotificationAsRead(t *testing.T) {
	t.Parallel()
	repo, assert, require := setup(t, common)
	r := mustMakeUser(t, repo, rand)
	s := mustMakeUser(t, repo, rand)
	n := mustMakeNotification(t, repo, r.ID, s.ID, model.NotificationTypeLike)

	_, err := repo.MarkNotificationAsRead(context.Background(), n.ID, s.ID)
	assert.ErrorIs(err, repository.ErrNotFound)

	got, err := repo.MarkNotificationAsRead(context.Background(), n.ID, r.ID)
	require.NoError(err)
	assert.True(got.Read)
}

func TestRepositoryImpl_MarkNotificationsAsRead(t *testing.T) {
	t.Parallel()
	repo, assert, require := setup(t, common)
	r := mustMakeUser(t, repo, rand)
	s := mustMakeUser(t, repo, rand)
	n1 := mustMakeNotification(t, repo, r.ID, s.ID, model.NotificationTypeLike)
	mustMakeNotification(t, repo, r.ID, s.ID, model.NotificationTypeComment)
	other := mustMakeNotification(t, repo, s.ID, r.ID, model.NotificationTypeComment)

	cnt, err := repo.MarkNotificationsAsRead(context.Background(), r.ID, []primitive.ObjectID{n1.ID, other.ID})
	require.NoError(err)
	assert.EqualValues(1, cnt)

	cnt, err = repo.MarkNotificationsAsRead(context.Background(), r.ID, nil)
	require.NoError(err)
	assert.EqualValues(0, cnt)

	ns, err := repo.GetNotifications(context.Background(), r.ID)
	require.NoError(err)
	for _, n := range ns {
		assert.Equal(n.ID == n1.ID, n.Read, n.ID.Hex())
	}
}

func TestRepositoryImpl_MarkAllNotificationsAsRead(t *testing.T) {
	t.Parallel()
	repo, assert, require := setup(t, common)
	r := mustMakeUser(t, repo, rand)
	s := mustMakeUser(t, repo, rand)
	mustMakeNotification(t, repo, r.ID, s.ID, model.NotificationTypeLike)
	mustMakeNotification(t, repo, r.ID, s.ID, model.NotificationTypeComment)
	fr := mustMakeNotification(t, repo, r.ID, s.ID, model.NotificationTypeFriendRequest)

	cnt, err := repo.MarkAllNotificationsAsRead(context.Background(), r.ID, model.NotificationTypeLike, model.NotificationTypeComment)
	require.NoError(err)
	assert.EqualValues(2, cnt)

	ns, err := repo.GetNotifications(context.Background(), r.ID)
	require.NoError(err)
	for _, n := range ns {
		assert.Equal(n.ID != fr.ID, n.Read)
	}
}
