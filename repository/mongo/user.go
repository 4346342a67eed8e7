package mongo

import (
	"context"
	"regexp"
	"time"

	"github.com/leandro-lugaresi/hub"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/traPtitech/sociogram/event"
	"github.com/traPtitech/sociogram/model"
	"github.com/traPtitech/sociogram/repository"
)

var userSummaryProjection = bson.M{"username": 1, "email": 1, "profilePic": 1}

func (repo *Repository) getUser(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	var user model.User
	if err := repo.db.Collection(usersCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, convertError(err)
	}
	return &user, nil
}

func (repo *Repository) forgetUser(ids ...primitive.ObjectID) {
	for _, id := range ids {
		repo.users.Forget(id)
	}
}

func (repo *Repository) findUser(ctx context.Context, filter bson.M) (*model.User, error) {
	var user model.User
	if err := repo.db.Collection(usersCollection).FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, convertError(err)
	}
	return &user, nil
}

// CreateUser implements UserRepository interface.
func (repo *Repository) CreateUser(ctx context.Context, args repository.CreateUserArgs) (*model.User, error) {
	t := now()
	user := &model.User{
		ID:             primitive.NewObjectID(),
		Username:       args.Username,
		Email:          args.Email,
		ProfilePic:     args.ProfilePic,
		GoogleID:       args.GoogleID,
		Friends:        []primitive.ObjectID{},
		FriendRequests: []primitive.ObjectID{},
		CreatedAt:      t,
		UpdatedAt:      t,
	}
	if len(args.Password) > 0 {
		hash, err := model.HashPassword(args.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}

	if _, err := repo.db.Collection(usersCollection).InsertOne(ctx, user); err != nil {
		return nil, convertError(err)
	}
	repo.publish(event.UserCreated, hub.Fields{
		"user_id": user.ID.Hex(),
		"user":    user,
	})
	return user, nil
}

// GetUser implements UserRepository interface.
func (repo *Repository) GetUser(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	if id.IsZero() {
		return nil, repository.ErrNotFound
	}
	return repo.users.Get(ctx, id)
}

// GetUserByUsername implements UserRepository interface.
func (repo *Repository) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	if len(username) == 0 {
		return nil, repository.ErrNotFound
	}
	return repo.findUser(ctx, bson.M{"username": username})
}

// GetUserByEmail implements UserRepository interface.
func (repo *Repository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	if len(email) == 0 {
		return nil, repository.ErrNotFound
	}
	return repo.findUser(ctx, bson.M{"email": email})
}

// GetUserByGoogleID implements UserRepository interface.
func (repo *Repository) GetUserByGoogleID(ctx context.Context, googleID string) (*model.User, error) {
	if len(googleID) == 0 {
		return nil, repository.ErrNotFound
	}
	return repo.findUser(ctx, bson.M{"googleId": googleID})
}

// GetUserSummaries implements UserRepository interface.
func (repo *Repository) GetUserSummaries(ctx context.Context, ids []primitive.ObjectID) ([]*model.UserSummary, error) {
	result := make([]*model.UserSummary, 0, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	cur, err := repo.db.Collection(usersCollection).Find(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		options.Find().SetProjection(userSummaryProjection))
	if err != nil {
		return nil, err
	}
	var users []*model.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]*model.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	for _, id := range ids {
		if u, ok := byID[id]; ok {
			result = append(result, u.Summary())
		}
	}
	return result, nil
}

// SearchUsers implements UserRepository interface.
func (repo *Repository) SearchUsers(ctx context.Context, query string) ([]*model.UserSummary, error) {
	re := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	cur, err := repo.db.Collection(usersCollection).Find(ctx,
		bson.M{"$or": bson.A{
			bson.M{"username": re},
			bson.M{"email": re},
		}},
		options.Find().SetProjection(userSummaryProjection).SetSort(bson.D{{Key: "username", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var users []*model.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}

	result := make([]*model.UserSummary, len(users))
	for i, u := range users {
		result[i] = &model.UserSummary{ID: u.ID, Username: u.Username, Email: u.Email}
	}
	return result, nil
}

// UsernameExists implements UserRepository interface.
func (repo *Repository) UsernameExists(ctx context.Context, username string) (bool, error) {
	n, err := repo.db.Collection(usersCollection).CountDocuments(ctx, bson.M{"username": username}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// UpdateUser implements UserRepository interface.
func (repo *Repository) UpdateUser(ctx context.Context, id primitive.ObjectID, args repository.UpdateUserArgs) (*model.User, error) {
	if id.IsZero() {
		return nil, repository.ErrNilID
	}

	set := bson.M{"updatedAt": now()}
	if args.Username.Valid {
		set["username"] = args.Username.String
	}
	if args.Email.Valid {
		set["email"] = args.Email.String
	}
	if args.Bio.Valid {
		set["bio"] = args.Bio.String
	}
	if args.ProfilePic.Valid {
		set["profilePic"] = args.ProfilePic.String
	}
	if args.GoogleID.Valid {
		set["googleId"] = args.GoogleID.String
	}

	var user model.User
	err := repo.db.Collection(usersCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		return nil, convertError(err)
	}
	repo.forgetUser(id)
	return &user, nil
}

// UpdateUserLastOnline implements UserRepository interface.
func (repo *Repository) UpdateUserLastOnline(ctx context.Context, id primitive.ObjectID, t time.Time) error {
	if id.IsZero() {
		return repository.ErrNilID
	}
	_, err := repo.db.Collection(usersCollection).UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"lastOnline": t.UTC().Truncate(time.Millisecond)}})
	if err != nil {
		return err
	}
	repo.forgetUser(id)
	return nil
}
