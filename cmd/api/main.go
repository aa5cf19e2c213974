package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/acarrillodev/wishtrack-backend/api/routes"
	"github.com/acarrillodev/wishtrack-backend/internal/auth"
	"github.com/acarrillodev/wishtrack-backend/internal/doubts"
	"github.com/acarrillodev/wishtrack-backend/internal/gifts"
	"github.com/acarrillodev/wishtrack-backend/internal/groups"
	"github.com/acarrillodev/wishtrack-backend/internal/records"
	"github.com/acarrillodev/wishtrack-backend/internal/tags"
	"github.com/acarrillodev/wishtrack-backend/internal/users"
	"github.com/acarrillodev/wishtrack-backend/internal/wishes"
	"github.com/acarrillodev/wishtrack-backend/pkg/auth/session"
	"github.com/acarrillodev/wishtrack-backend/pkg/config"
	"github.com/acarrillodev/wishtrack-backend/pkg/db"
	"github.com/acarrillodev/wishtrack-backend/pkg/logger"
	"github.com/acarrillodev/wishtrack-backend/pkg/metrics"
	"github.com/acarrillodev/wishtrack-backend/pkg/migrate"
	"github.com/acarrillodev/wishtrack-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	userRepo := users.NewRepository(dbClient.DB())
	groupRepo := groups.NewRepository(dbClient.DB())
	tagRepo := tags.NewRepository(dbClient.DB())

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       userRepo,
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	usersService, err := users.NewService(users.ServiceParams{UserRepo: userRepo})
	if err != nil {
		logg.Error(context.Background(), "failed to create users service", err)
		os.Exit(1)
	}

	groupsService, err := groups.NewService(groups.ServiceParams{GroupRepo: groupRepo})
	if err != nil {
		logg.Error(context.Background(), "failed to create groups service", err)
		os.Exit(1)
	}

	wishesService, err := wishes.NewService(wishes.ServiceParams{
		WishRepo:  wishes.NewRepository(dbClient.DB()),
		GroupRepo: groupRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create wishes service", err)
		os.Exit(1)
	}

	giftsService, err := gifts.NewService(gifts.ServiceParams{
		GiftRepo:  gifts.NewRepository(dbClient.DB()),
		GroupRepo: groupRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create gifts service", err)
		os.Exit(1)
	}

	tagsService, err := tags.NewService(tags.ServiceParams{TagRepo: tagRepo})
	if err != nil {
		logg.Error(context.Background(), "failed to create tags service", err)
		os.Exit(1)
	}

	recordsService, err := records.NewService(records.ServiceParams{
		RecordRepo: records.NewRepository(dbClient.DB()),
		TagRepo:    tagRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create records service", err)
		os.Exit(1)
	}

	doubtsService, err := doubts.NewService(doubts.ServiceParams{
		DoubtRepo: doubts.NewRepository(dbClient.DB()),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create doubts service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	handler := routes.NewRouter(routes.Deps{
		Config:      cfg,
		Logger:      logg,
		DB:          dbClient,
		Redis:       redisClient,
		Sessions:    sessionManager,
		Registry:    registry,
		HTTPMetrics: httpMetrics,
		Auth:        authService,
		Users:       usersService,
		Wishes:      wishesService,
		Gifts:       giftsService,
		Groups:      groupsService,
		Records:     recordsService,
		Tags:        tagsService,
		Doubts:      doubtsService,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}

	var closeErr error
	closeErr = multierr.Append(closeErr, dbClient.Close())
	closeErr = multierr.Append(closeErr, redisClient.Close())
	if closeErr != nil {
		logg.Error(ctx, "error closing resources", closeErr)
		os.Exit(1)
	}
}
