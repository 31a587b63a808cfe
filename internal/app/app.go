package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Zenin-Doffy/AfterSchoolBack/internal/config"
	"github.com/Zenin-Doffy/AfterSchoolBack/internal/domain"
	"github.com/Zenin-Doffy/AfterSchoolBack/internal/handler"
	"github.com/Zenin-Doffy/AfterSchoolBack/internal/middleware"
	"github.com/Zenin-Doffy/AfterSchoolBack/internal/notification"
	"github.com/Zenin-Doffy/AfterSchoolBack/internal/repository"
	"github.com/Zenin-Doffy/AfterSchoolBack/internal/router"
	"github.com/Zenin-Doffy/AfterSchoolBack/internal/service"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	mongo      *mongo.Client
	lessonRepo *repository.LessonRepository
	httpServer *http.Server
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"AfterSchoolBack",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	if err = app.prepareLessons(); err != nil {
		return nil, fmt.Errorf("prepare lessons: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Mongo.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(a.cfg.Mongo.URI))
	if err != nil {
		return fmt.Errorf("connecting to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("pinging mongo: %w", err)
	}

	a.mongo = client
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "mongo connected",
		logger.String("uri", a.cfg.Mongo.URI),
		logger.String("database", a.cfg.Mongo.Database),
	)

	return nil
}

func (a *App) initServices() error {
	db := a.mongo.Database(a.cfg.Mongo.Database)
	strategy := retry.Strategy{
		Attempts: a.cfg.Retry.Attempts,
		Delay:    a.cfg.Retry.Delay,
		Backoff:  a.cfg.Retry.Backoff,
	}

	a.lessonRepo = repository.NewLessonRepo(db, strategy)
	orderRepo := repository.NewOrderRepo(db, strategy)

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.AdminChatID, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	lessonService := service.NewLessonService(a.lessonRepo)
	orderService := service.NewOrderService(orderRepo, a.lessonRepo, n, a.log)

	h := handler.NewHandler(lessonService, orderService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

// prepareLessons поднимает текстовый индекс и один раз загружает
// стартовый набор занятий, если коллекция пуста.
func (a *App) prepareLessons() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Mongo.ConnectTimeout)
	defer cancel()

	if err := a.lessonRepo.EnsureIndexes(ctx); err != nil {
		return err
	}

	count, err := a.lessonRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 || a.cfg.Seed.File == "" {
		return nil
	}

	data, err := os.ReadFile(a.cfg.Seed.File)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var lessons []*domain.Lesson
	if err := json.Unmarshal(data, &lessons); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	if err := a.lessonRepo.InsertMany(ctx, lessons); err != nil {
		return err
	}

	a.log.LogAttrs(ctx, logger.InfoLevel, "lessons seeded",
		logger.Int("count", len(lessons)),
		logger.String("file", a.cfg.Seed.File),
	)

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.mongo.Disconnect(shutdownCtx); err != nil {
		return fmt.Errorf("disconnect mongo: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "mongo connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
