package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/manyabajaj09/audience-assist/internal/api/http"
	"github.com/manyabajaj09/audience-assist/internal/api/http/handlers"
	"github.com/manyabajaj09/audience-assist/internal/classifier"
	"github.com/manyabajaj09/audience-assist/internal/config"
	"github.com/manyabajaj09/audience-assist/internal/events"
	"github.com/manyabajaj09/audience-assist/internal/observability"
	"github.com/manyabajaj09/audience-assist/internal/persistence"
	"github.com/manyabajaj09/audience-assist/internal/repository"
	"github.com/manyabajaj09/audience-assist/internal/service"
	"github.com/manyabajaj09/audience-assist/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	messageRepo := repository.NewMessageRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	activityRepo := repository.NewActivityLogRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	var clf classifier.Classifier = classifier.NewOpenAIClient(cfg.Classifier)
	clf = classifier.NewReplyCache(clf, redis.Client, cfg.Classifier.ReplyCacheTTL, logger)

	dispatcher := events.NewInMemoryDispatcher()

	ingestionService := service.NewIngestionService(service.IngestionDependencies{
		MessageRepo:  messageRepo,
		TicketRepo:   ticketRepo,
		ActivityRepo: activityRepo,
		Classifier:   clf,
		Policy:       service.NewEscalationPolicy(),
		Timeout:      cfg.Classifier.Timeout(),
		Dispatcher:   dispatcher,
		Logger:       logger,
	})
	messageService := service.NewMessageService(messageRepo, clf, cfg.Classifier.Timeout(), logger)
	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo:   ticketRepo,
		MessageRepo:  messageRepo,
		UserRepo:     userRepo,
		ActivityRepo: activityRepo,
		Dispatcher:   dispatcher,
	})
	analyticsService := service.NewAnalyticsService(messageRepo, ticketRepo)
	userService := service.NewUserService(userRepo)

	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(pg, redis),
		Messages:  handlers.NewMessagesHandler(ingestionService, messageService),
		Tickets:   handlers.NewTicketsHandler(ticketService),
		Analytics: handlers.NewAnalyticsHandler(analyticsService, cfg.Analytics.TimelineLimit),
		Users:     handlers.NewUsersHandler(userService),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
