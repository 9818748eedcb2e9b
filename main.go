package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventra/config"
	"eventra/cron"
	"eventra/database"
	bookingRepo "eventra/database/repository/booking"
	chatRepo "eventra/database/repository/chat"
	eventRepo "eventra/database/repository/event"
	providerRepo "eventra/database/repository/provider"
	userRepoPkg "eventra/database/repository/user"
	"eventra/handlers"
	"eventra/realtime"
	"eventra/routes"
	"eventra/services/ai"
	"eventra/services/booking"
	"eventra/services/chat"
	"eventra/services/event"
	"eventra/services/notification"
	"eventra/services/payment"
	"eventra/services/provider"
	"eventra/services/storage"
	"eventra/services/user"
	"eventra/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer logger.Sync()

	if err := utils.RegisterValidators(); err != nil {
		logger.Fatal("main: failed to register validators", zap.Error(err))
	}

	database.InitDB()
	utils.InitRedis()

	rootCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	// repositories.
	db := database.DB()
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	provRepo := providerRepo.NewMongoProviderRepo(db)
	evRepo := eventRepo.NewMongoEventRepo(db)
	bkRepo := bookingRepo.NewMongoBookingRepo(db)
	chRepo := chatRepo.NewMongoChatRepo(db)

	// push notifications.
	var fcm notification.MessagingClient
	if client, err := utils.FirebaseMessaging(rootCtx); err != nil {
		logger.Warn("main: push delivery disabled", zap.Error(err))
	} else {
		fcm = client
	}
	notificationService, err := notification.NewDefaultNotificationService(userRepo, fcm)
	if err != nil {
		logger.Fatal("main: failed to initialize notification service", zap.Error(err))
	}

	var notifier notification.Notifier = notification.LogNotifier{}
	var pushWorker *asynq.Server
	if utils.GetCacheClient() != nil {
		queueClient := asynq.NewClient(cron.QueueRedisOpt())
		defer queueClient.Close()
		notifier = notification.NewQueueNotifier(queueClient)
		pushWorker = cron.InitPushWorker(rootCtx, notificationService)
	} else {
		logger.Warn("main: Redis unavailable, notifications will only be logged")
	}

	// media storage.
	var mediaStorage storage.StorageService
	if store, err := utils.Cloudinary(); err != nil {
		logger.Warn("main: media uploads disabled", zap.Error(err))
	} else {
		mediaStorage = store
	}

	// planning assistant.
	var advisor ai.Advisor
	if config.AppConfig.GeminiAPIKey != "" {
		gemini, err := ai.NewGeminiAdvisor(rootCtx, config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
		if err != nil {
			logger.Warn("main: Gemini advisor disabled", zap.Error(err))
		} else {
			defer gemini.Close()
			advisor = ai.NewCachedAdvisor(gemini, utils.GetCacheClient(), 6*time.Hour)
		}
	}

	hub := realtime.NewHub()

	// services.
	userService := user.NewDefaultUserService(user.Repositories{
		Users:     userRepo,
		Providers: provRepo,
		Events:    evRepo,
		Bookings:  bkRepo,
		Chats:     chRepo,
	}, utils.GetAuthCacheClient())

	providerService, err := provider.NewDefaultProviderService(provRepo, userRepo, mediaStorage)
	if err != nil {
		logger.Fatal("main: failed to initialize provider service", zap.Error(err))
	}
	eventService := event.NewDefaultEventService(evRepo, bkRepo, chRepo)
	bookingService := booking.NewDefaultBookingService(
		bkRepo, evRepo, userRepo, notifier,
		payment.NewStripeGateway(config.AppConfig.StripeKey),
		config.AppConfig.PaymentCurrency,
	)
	chatService := chat.NewDefaultChatService(chRepo, userRepo, evRepo, bkRepo, notifier, hub)
	plannerService := ai.NewLocalPlannerService(provRepo, advisor)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:  userRepo,
		AuthCache: utils.GetAuthCacheClient(),
		Auth:      handlers.NewAuthHandler(userService),
		Events:    handlers.NewEventHandler(eventService),
		Provider:  handlers.NewProviderHandler(providerService),
		Booking:   handlers.NewBookingHandler(bookingService),
		Chat:      handlers.NewChatHandler(chatService, hub, userRepo, utils.GetAuthCacheClient()),
		AI:        handlers.NewAIHandler(plannerService),
		Storage:   handlers.NewStorageHandler(mediaStorage),
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	routes.RegisterRoutes(router, handlerBundle)

	var redisClients []*redis.Client
	for _, c := range []*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()} {
		if c != nil {
			redisClients = append(redisClients, c)
		}
	}
	utils.StartHealthMonitor(rootCtx, redisClients, database.MongoClient)

	// Start the HTTP server.
	srv := &http.Server{
		Addr:    "0.0.0.0:" + config.AppConfig.AppPort,
		Handler: router,
	}

	logger.Info("Starting server", zap.String("addr", srv.Addr), zap.String("env", config.GetEnv()))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("main: server failed to start", zap.Error(err))
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")
	stopBackground()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	if pushWorker != nil {
		pushWorker.Shutdown()
	}
	utils.CloseRedis()
	if err := database.Close(ctx); err != nil {
		logger.Warn("main: MongoDB disconnect failed", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}
