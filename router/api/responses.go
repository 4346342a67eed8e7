package api

import (
	"context"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/traPtitech/sociogram/model"
	"github.com/traPtitech/sociogram/repository"
)

// userRef 他のレスポンスに埋め込まれるユーザー
type userRef struct {
	ID         primitive.ObjectID `json:"_id"`
	Username   string             `json:"username"`
	ProfilePic string             `json:"profilePic"`
}

type commentResponse struct {
	ID        primitive.ObjectID `json:"_id"`
	UserID    *userRef           `json:"userId"`
	Text      string             `json:"text"`
	CreatedAt time.Time          `json:"createdAt"`
}

type postResponse struct {
	ID          primitive.ObjectID   `json:"_id"`
	UserID      *userRef             `json:"userId"`
	TextContent string               `json:"textContent"`
	Image       string               `json:"image"`
	Likes       []primitive.ObjectID `json:"likes"`
	Comments    []*commentResponse   `json:"comments"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

type notificationResponse struct {
	ID        primitive.ObjectID     `json:"_id"`
	Recipient primitive.ObjectID     `json:"recipient"`
	Sender    *userRef               `json:"sender"`
	Type      model.NotificationType `json:"type"`
	EntityID  primitive.ObjectID     `json:"entityId"`
	Read      bool                   `json:"read"`
	CreatedAt time.Time              `json:"createdAt"`
}

// userRefs 指定したユーザーのuserRefをIDで引けるようにして返します
func userRefs(ctx context.Context, repo repository.UserRepository, ids []primitive.ObjectID) (map[primitive.ObjectID]*userRef, error) {
	summaries, err := repo.GetUserSummaries(ctx, lo.Uniq(ids))
	if err != nil {
		return nil, err
	}
	return lo.SliceToMap(summaries, func(s *model.UserSummary) (primitive.ObjectID, *userRef) {
		return s.ID, &userRef{ID: s.ID, Username: s.Username, ProfilePic: s.ProfilePic}
	}), nil
}

func formatPosts(ctx context.Context, repo repository.UserRepository, posts []*model.Post) ([]*postResponse, error) {
	var ids []primitive.ObjectID
	for _, p := range posts {
		ids = append(ids, p.UserID)
		for _, c := range p.Comments {
			ids = append(ids, c.UserID)
		}
	}
	refs, err := userRefs(ctx, repo, ids)
	if err != nil {
		return nil, err
	}

	return lo.Map(posts, func(p *model.Post, _ int) *postResponse {
		return &postResponse{
			ID:          p.ID,
			UserID:      refs[p.UserID],
			TextContent: p.TextContent,
			Image:       p.Image,
			Likes:       lo.Ternary(p.Likes == nil, []primitive.ObjectID{}, p.Likes),
			Comments: lo.Map(p.Comments, func(c *model.Comment, _ int) *commentResponse {
				return &commentResponse{
					ID:        c.ID,
					UserID:    refs[c.UserID],
					Text:      c.Text,
					CreatedAt: c.CreatedAt,
				}
			}),
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		}
	}), nil
}

func formatPost(ctx context.Context, repo repository.UserRepository, p *model.Post) (*postResponse, error) {
	res, err := formatPosts(ctx, repo, []*model.Post{p})
	if err != nil {
		return nil, err
	}
	return res[0], nil
}

func formatNotifications(ctx context.Context, repo repository.UserRepository, ns []*model.Notification) ([]*notificationResponse, error) {
	refs, err := userRefs(ctx, repo, lo.Map(ns, func(n *model.Notification, _ int) primitive.ObjectID { return n.Sender }))
	if err != nil {
		return nil, err
	}
	return lo.Map(ns, func(n *model.Notification, _ int) *notificationResponse {
		return &notificationResponse{
			ID:        n.ID,
			Recipient: n.Recipient,
			Sender:    refs[n.Sender],
			Type:      n.Type,
			EntityID:  n.EntityID,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		}
	}), nil
}
