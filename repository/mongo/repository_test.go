package mongo

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/leandro-lugaresi/hub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/traPtitech/sociogram/model"
	"github.com/traPtitech/sociogram/repository"
	"github.com/traPtitech/sociogram/testutils"
	"github.com/traPtitech/sociogram/utils/random"
)

const (
	dbPrefix = "sociogram-test-repo-"
	common   = "common"
	ex1      = "ex1"
	rand     = "random"
)

var (
	repositories = map[string]*Repository{}
)

func TestMain(m *testing.M) {
	server, err := testutils.StartMongo()
	if err != nil {
		panic(err)
	}

	dbs := []string{
		common,
		ex1,
	}
	for _, key := range dbs {
		db, err := server.Database(dbPrefix + key)
		if err != nil {
			panic(err)
		}
		repo, err := NewMongoRepository(db, hub.New(), zap.NewNop())
		if err != nil {
			panic(err)
		}
		if err := repo.Sync(context.Background()); err != nil {
			panic(err)
		}
		repositories[key] = repo.(*Repository)
	}

	// Execute tests
	code := m.Run()

	for _, v := range repositories {
		v.hub.Close()
	}
	server.Close()
	os.Exit(code)
}

func setup(t *testing.T, repo string) (repository.Repository, *assert.Assertions, *require.Assertions) {
	t.Helper()
	r, ok := repositories[repo]
	if !ok {
		t.FailNow()
	}
	assert, require := assertAndRequire(t)
	return r, assert, require
}

func assertAndRequire(t *testing.T) (*assert.Assertions, *require.Assertions) {
	return assert.New(t), require.New(t)
}

func setupWithUser(t *testing.T, repo string) (repository.Repository, *assert.Assertions, *require.Assertions, *model.User) {
	t.Helper()
	r, assert, require := setup(t, repo)
	return r, assert, require, mustMakeUser(t, r, rand)
}

func mustMakeUser(t *testing.T, repo repository.Repository, username string) *model.User {
	t.Helper()
	if username == rand {
		username = "u" + random.AlphaNumeric(20)
	}
	u, err := repo.CreateUser(context.Background(), repository.CreateUserArgs{
		Username: username,
		Email:    fmt.Sprintf("%s@example.com", username),
		Password: "testtesttesttest",
	})
	require.NoError(t, err)
	return u
}

func mustMakePost(t *testing.T, repo repository.Repository, user *model.User) *model.Post {
	t.Helper()
	p, err := repo.CreatePost(context.Background(), repository.CreatePostArgs{
		UserID:      user.ID,
		TextContent: random.AlphaNumeric(30),
	})
	require.NoError(t, err)
	return p
}
