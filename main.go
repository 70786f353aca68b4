package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctorsportal/config"
	"doctorsportal/database"
	bookingRepo "doctorsportal/database/repository/booking"
	doctorRepo "doctorsportal/database/repository/doctor"
	serviceRepo "doctorsportal/database/repository/service"
	userRepoPkg "doctorsportal/database/repository/user"
	"doctorsportal/handlers"
	"doctorsportal/middleware"
	"doctorsportal/routes"
	"doctorsportal/services/auth"
	"doctorsportal/services/booking"
	"doctorsportal/services/catalog"
	"doctorsportal/services/doctor"
	"doctorsportal/services/notification"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("main: failed to load config: %v", err)
	}

	logger, err := utils.NewLogger(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("main: failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	mongoClient, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("main: database unavailable", zap.Error(err))
	}
	defer func() {
		if err := database.Disconnect(mongoClient); err != nil {
			logger.Error("main: failed to disconnect MongoDB", zap.Error(err))
		}
	}()
	logger.Info("Connected to MongoDB", zap.String("database", cfg.DatabaseName))
	db := mongoClient.Database(cfg.DatabaseName)

	var cache *redis.Client
	if cfg.RedisAddr != "" {
		cache, err = utils.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisCacheDB)
		if err != nil {
			logger.Warn("main: Redis unavailable, caching disabled", zap.Error(err))
			cache = nil
		} else {
			defer cache.Close()
		}
	}

	var notifier notification.NotificationService = notification.NopNotificationService{}
	if brokers := cfg.Brokers(); len(brokers) > 0 {
		kn, err := notification.NewKafkaNotificationService(brokers, cfg.KafkaTopic)
		if err != nil {
			logger.Fatal("main: failed to configure event publisher", zap.Error(err))
		}
		notifier = kn
	}
	defer func() {
		if err := notifier.Close(); err != nil {
			logger.Error("main: failed to close event publisher", zap.Error(err))
		}
	}()

	if err := utils.RegisterValidators(); err != nil {
		logger.Fatal("main: failed to register validators", zap.Error(err))
	}

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo(db)
	if err := bookings.EnsureIndexes(ctx); err != nil {
		logger.Fatal("main: booking indexes", zap.Error(err))
	}
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		logger.Warn("main: user indexes", zap.Error(err))
	}
	svcRepo := serviceRepo.NewMongoServiceRepo(db)
	docRepo := doctorRepo.NewMongoDoctorRepo(db)

	// services.
	tokens := utils.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	verifier := auth.NewVerifier(tokens)
	authorizer := auth.NewAuthorizer(userRepo, cache)

	catalogService := &catalog.DefaultCatalogService{Repo: svcRepo, Cache: cache}
	bookingService := &booking.DefaultBookingService{
		Catalog:  catalogService,
		Repo:     bookings,
		Notifier: notifier,
	}
	userService := &user.DefaultUserService{Repo: userRepo, Cache: cache, Notifier: notifier}
	doctorService := &doctor.DefaultDoctorService{Repo: docRepo}

	health := utils.NewHealthMonitor(mongoClient, cache)
	health.Start(ctx, time.Minute)

	// handlers.
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	catalogHandler := handlers.NewCatalogHandler(catalogService, logger)
	userHandler := handlers.NewUserHandler(userService, tokens, logger)
	adminHandler := handlers.NewAdminHandler(userService, doctorService, logger)

	handlerBundle := &handlers.HandlerBundle{
		Verifier:   verifier,
		Authorizer: authorizer,

		HomeHandler:          handlers.HomeHandler,
		HealthHandler:        handlers.NewHealthHandler(health),
		GetAvailableHandler:  bookingHandler.GetAvailable,
		GetServicesHandler:   catalogHandler.GetServices,
		CreateBookingHandler: bookingHandler.CreateBooking,
		IsAdminHandler:       userHandler.IsAdmin,
		UpsertUserHandler:    userHandler.UpsertUser,

		GetPatientBookingsHandler: bookingHandler.GetPatientBookings,
		GetUsersHandler:           userHandler.GetUsers,

		GrantAdminHandler: adminHandler.GrantAdminHandler,
		AddDoctorHandler:  adminHandler.AddDoctorHandler,
		GetDoctorsHandler: adminHandler.GetDoctorsHandler,
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(routes.CORS(cfg.Origins()))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))
	if cfg.MetricsEnabled {
		router.Use(middleware.MetricsMiddleware(middleware.NewMetrics(prometheus.DefaultRegisterer)))
		routes.RegisterMetricsRoute(router, routes.DefaultMetricsHandler())
	}
	routes.RegisterRoutes(router, handlerBundle)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}
