package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tagtube/domain/repository"
	"tagtube/infrastructure/cache"
	youtubeclient "tagtube/infrastructure/clients/youtube"
	"tagtube/infrastructure/configuration"
	"tagtube/infrastructure/logger"
	"tagtube/infrastructure/persistence"
	"tagtube/infrastructure/pubsub"
	"tagtube/infrastructure/scheduler"
	"tagtube/infrastructure/servicebus"
	httpHandler "tagtube/interfaces/http"
	"tagtube/server"
	"tagtube/usecase"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const sweepJobID = "heartbeat-sweep"

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := configuration.C
	if err := cfg.Validate(); err != nil {
		logger.GetLogger().WithField("error", err).Fatal("Invalid configuration")
	}

	db, err := persistence.NewDatabase(cfg.Database)
	if err != nil {
		logger.GetLogger().WithField("error", err).Fatal("Cannot connect to database")
	}
	if err := persistence.Migrate(db); err != nil {
		logger.GetLogger().WithField("error", err).Fatal("Cannot migrate database")
	}

	rawDefaults, err := configuration.LoadVideoDefaults(cfg.Search.VideoDefaultsFile)
	if err != nil {
		logger.GetLogger().WithField("error", err).Fatal("Cannot load video defaults")
	}
	defaults, err := usecase.NewVideoDefaults(rawDefaults)
	if err != nil {
		logger.GetLogger().WithField("error", err).Fatal("Invalid video defaults")
	}

	videos := initiateVideoSearch(ctx, cfg)
	audit, closeAudit := initiateAudit(ctx, cfg)
	defer closeAudit()

	userRepository := persistence.NewUserRepository(db)
	accessRepository := persistence.NewAccessRepository(db)
	searchRepository := persistence.NewSearchRepository(db)

	userUsecase := usecase.NewUserUsecase(userRepository, audit)
	presenceUsecase := usecase.NewPresenceUsecase(accessRepository, audit)
	searchUsecase := usecase.NewSearchUsecase(searchRepository, videos, defaults, audit, usecase.SearchOptions{
		DefaultMaxResults: cfg.Search.DefaultMaxResults,
		MaxResultsLimit:   cfg.Search.MaxResultsLimit,
	})

	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := server.InitiateRouter(
		httpHandler.NewUserHandler(userUsecase),
		httpHandler.NewPresenceHandler(userUsecase, presenceUsecase),
		httpHandler.NewSearchHandler(userUsecase, searchUsecase),
		httpHandler.NewHealthHandler(func(ctx context.Context) error { return persistence.Ping(ctx, db) }),
		cfg.Cors.AllowOrigins,
	)

	jobs := scheduler.New(scheduler.Logger())
	maxIdle := cfg.Heartbeat.MaxIdle()
	jobs.Register(sweepJobID, cfg.Heartbeat.CheckIntervalDuration(), func() {
		presenceUsecase.Sweep(ctx, maxIdle)
	})

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.GetLogger().WithFields(map[string]interface{}{
		"port":          cfg.App.Port,
		"vendor":        cfg.Database.Vendor,
		"checkInterval": cfg.Heartbeat.CheckInterval,
		"maxTime":       cfg.Heartbeat.MaxTime,
	}).Info("Starting application")

	g.Go(func() error {
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return jobs.Run(ctx)
	})
	g.Go(func() error {
		select {
		case <-interrupt:
			logger.GetLogger().Info("Application shutdown requested")
		case <-ctx.Done():
		}
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		closeAudit()
		closeDatabase(db)
		os.Exit(2)
	}
	closeDatabase(db)
	logger.GetLogger().Info("Application stopped")
}

// initiateVideoSearch wires the YouTube client behind the Redis cache when
// Redis is configured and reachable.
func initiateVideoSearch(ctx context.Context, cfg configuration.Config) repository.IVideoSearch {
	videos, err := youtubeclient.NewYouTubeClient(ctx, configuration.GetYouTubeConfig())
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("YouTube client unavailable, searches will be answered with defaults")
		videos = youtubeclient.DisabledClient{}
	}

	addr := cfg.RedisClient.Addr()
	if addr == "" {
		return videos
	}
	redisClient, err := cache.NewCache(ctx, addr, cfg.RedisClient.Username, cfg.RedisClient.Password)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis unavailable, search cache disabled")
		return videos
	}
	return cache.NewSearchCache(videos, redisClient, cfg.RedisClient.TTL())
}

// initiateAudit connects every configured audit sink. The returned func
// releases them and is safe to call more than once.
func initiateAudit(ctx context.Context, cfg configuration.Config) (repository.IAuditPublisher, func()) {
	var (
		publishers []repository.IAuditPublisher
		closers    []func()
	)

	if cfg.Pubsub.ProjectID != "" && cfg.Pubsub.Topic != "" {
		client, err := pubsub.NewPubSub(ctx, cfg.Pubsub.ProjectID)
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("Pub/Sub unavailable, audit events not published there")
		} else if publisher, err := pubsub.NewAuditPublisher(ctx, client, cfg.Pubsub.Topic); err != nil {
			logger.GetLogger().WithField("error", err).Warn("Pub/Sub topic unavailable")
			_ = client.Close()
		} else {
			publishers = append(publishers, publisher)
			closers = append(closers, func() {
				publisher.Stop()
				_ = client.Close()
			})
		}
	}

	if cfg.ServiceBus.Namespace != "" && cfg.ServiceBus.Queue != "" {
		client, err := servicebus.NewServiceBus(cfg.ServiceBus.Namespace)
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("Service Bus unavailable, audit events not published there")
		} else if publisher, err := servicebus.NewAuditPublisher(client, cfg.ServiceBus.Queue); err != nil {
			logger.GetLogger().WithField("error", err).Warn("Service Bus queue unavailable")
			_ = client.Close(ctx)
		} else {
			publishers = append(publishers, publisher)
			closers = append(closers, func() {
				closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				publisher.Close(closeCtx)
				_ = client.Close(closeCtx)
			})
		}
	}

	closed := false
	return usecase.NewAuditFanout(publishers...), func() {
		if closed {
			return
		}
		closed = true
		for _, c := range closers {
			c()
		}
	}
}

func closeDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Error while closing database")
	}
}
