package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/leandro-lugaresi/hub"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/traPtitech/sociogram/event"
	"github.com/traPtitech/sociogram/repository"
	"github.com/traPtitech/sociogram/repository/mongo"
	"github.com/traPtitech/sociogram/service"
)

// serveCommand サーバー起動コマンド
func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve Sociogram API",
		Run: func(_ *cobra.Command, _ []string) {
			// Logger
			logger := getLogger()
			defer logger.Sync()

			logger.Info(fmt.Sprintf("sociogram %s (revision %s)", Version, Revision))

			// Message Hub
			hub := hub.New()

			// Database
			logger.Info("connecting database...")
			client, err := c.getDatabase(context.Background())
			if err != nil {
				logger.Fatal("failed to connect database", zap.Error(err))
			}
			defer client.Disconnect(context.Background())
			logger.Info("database connection was established")

			// FileStorage
			logger.Info("checking file storage...")
			fs, err := c.getFileStorage(context.Background())
			if err != nil {
				logger.Fatal("failed to setup file storage", zap.Error(err))
			}
			logger.Info("file storage is ok")

			// Repository
			logger.Info("setting up repository...")
			repo, err := mongo.NewMongoRepository(client.Database(c.MongoDB.Database), hub, logger)
			if err != nil {
				logger.Fatal("failed to initialize repository", zap.Error(err))
			}
			if err := repo.Sync(context.Background()); err != nil {
				logger.Fatal("failed to sync repository", zap.Error(err))
			}
			logger.Info("repository was set up")

			// JWT
			signer, err := c.getSigner()
			if err != nil {
				logger.Fatal("failed to setup jwt signer", zap.Error(err))
			}

			// サーバー作成
			server, err := newServer(hub, repo, fs, signer, logger, &c)
			if err != nil {
				logger.Fatal("failed to create server", zap.Error(err))
			}

			go func() {
				if err := server.Start(fmt.Sprintf(":%d", c.Port)); err != nil {
					logger.Info("shutting down the server")
				}
			}()

			logger.Info("sociogram started")
			waitSIGINT()
			logger.Info("sociogram shutting down...")

			ctx, cancel := context.WithTimeout(context.Background(), time.Duration(c.ShutdownTimeout)*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				logger.Warn("abnormal shutdown", zap.Error(err))
			}
			logger.Info("sociogram shutdown")
		},
	}
}

type Server struct {
	L      *zap.Logger
	SS     *service.Services
	Router *echo.Echo
	Hub    *hub.Hub
	Repo   repository.Repository
}

func (s *Server) Start(address string) error {
	go s.recordLastOnline()
	return s.Router.Start(address)
}

// recordLastOnline ユーザーがオフラインになった時刻を記録します
func (s *Server) recordLastOnline() {
	sub := s.Hub.Subscribe(10, event.UserOffline)
	for ev := range sub.Receiver {
		userID, err := primitive.ObjectIDFromHex(ev.Fields["user_id"].(string))
		if err != nil {
			continue
		}
		datetime := ev.Fields["datetime"].(time.Time)
		if err := s.Repo.UpdateUserLastOnline(context.Background(), userID, datetime); err != nil && err != repository.ErrNotFound {
			s.L.Warn("failed to update lastOnline", zap.Error(err), zap.Stringer("userId", userID))
		}
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		err := s.Router.Shutdown(ctx)
		s.L.Info("Router shutdown")
		return err
	})
	eg.Go(func() error {
		err := s.SS.WS.Close()
		s.L.Info("WebSocket shutdown")
		return err
	})
	return eg.Wait()
}

func waitSIGINT() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
}
