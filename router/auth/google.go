package auth

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	googleOAuth2 "golang.org/x/oauth2/google"
	google "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"github.com/traPtitech/sociogram/repository"
)

const (
	GoogleProviderName          = "google"
	googleAPIRequestErrorFormat = "google api request error: %w"
)

type GoogleProvider struct {
	config GoogleProviderConfig
	cc     CallbackConfig
	repo   repository.Repository
	logger *zap.Logger
	oa2    oauth2.Config
}

type GoogleProviderConfig struct {
	ClientID     string
	ClientSecret string
	CallbackURL  string
}

func (c GoogleProviderConfig) Valid() bool {
	return len(c.ClientSecret) > 0 && len(c.ClientID) > 0 && len(c.CallbackURL) > 0
}

type googleUserInfo struct {
	id              string
	email           string
	profileImageURL string
}

func (u *googleUserInfo) GetProviderName() string {
	return GoogleProviderName
}

func (u *googleUserInfo) GetID() string {
	return u.id
}

func (u *googleUserInfo) GetEmail() string {
	return u.email
}

func (u *googleUserInfo) GetProfileImageURL() string {
	return u.profileImageURL
}

func NewGoogleProvider(repo repository.Repository, logger *zap.Logger, cc CallbackConfig, config GoogleProviderConfig) *GoogleProvider {
	return &GoogleProvider{
		repo:   repo,
		config: config,
		cc:     cc,
		logger: logger,
		oa2: oauth2.Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			RedirectURL:  config.CallbackURL,
			Endpoint:     googleOAuth2.Endpoint,
			Scopes:       []string{"profile", "email"},
		},
	}
}

func (p *GoogleProvider) LoginHandler(c echo.Context) error {
	return defaultLoginHandler(&p.oa2)(c)
}

func (p *GoogleProvider) CallbackHandler(c echo.Context) error {
	return defaultCallbackHandler(p, &p.oa2, p.repo, p.cc)(c)
}

func (p *GoogleProvider) FetchUserInfo(t *oauth2.Token) (UserInfo, error) {
	c := p.oa2.Client(context.Background(), t)
	googleService, err := google.NewService(context.Background(), option.WithHTTPClient(c))
	if err != nil {
		return nil, fmt.Errorf(googleAPIRequestErrorFormat, err)
	}
	u, err := googleService.Userinfo.Get().Do()
	if err != nil {
		return nil, fmt.Errorf(googleAPIRequestErrorFormat, err)
	}

	return &googleUserInfo{
		id:              u.Id,
		email:           u.Email,
		profileImageURL: u.Picture,
	}, nil
}

func (p *GoogleProvider) L() *zap.Logger {
	return p.logger
}
