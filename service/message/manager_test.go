package message

import (
	"context"

	"github.com/golang/mock/gomock"
	"go.uber.org/zap"

	"github.com/traPtitech/sociogram/repository/mock_repository"
	"github.com/traPtitech/sociogram/service/notification/mock_notification"
)

type Repo struct {
	*mock_repository.MockUserRepository
	*mock_repository.MockFriendRepository
	*mock_repository.MockPostRepository
	*mock_repository.MockNotificationRepository
	*mock_repository.MockMessageRepository
}

func NewMockRepo(ctrl *gomock.Controller) *Repo {
	return &Repo{
		MockUserRepository:         mock_repository.NewMockUserRepository(ctrl),
		MockFriendRepository:       mock_repository.NewMockFriendRepository(ctrl),
		MockPostRepository:         mock_repository.NewMockPostRepository(ctrl),
		MockNotificationRepository: mock_repository.NewMockNotificationRepository(ctrl),
		MockMessageRepository:      mock_repository.NewMockMessageRepository(ctrl),
	}
}

func (*Repo) Sync(context.Context) error { return nil }

func setupM(ctrl *gomock.Controller) (Manager, *Repo, *mock_notification.MockNotifier) {
	repo := NewMockRepo(ctrl)
	n := mock_notification.NewMockNotifier(ctrl)
	m, _ := NewMessageManager(repo, n, zap.NewNop())
	return m, repo, n
}
