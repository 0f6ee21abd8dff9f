package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weddify/config"
	"weddify/cron"
	"weddify/database"
	bookingRepoPkg "weddify/database/repository/booking"
	feedRepoPkg "weddify/database/repository/feed"
	packageRepoPkg "weddify/database/repository/packages"
	settingsRepoPkg "weddify/database/repository/settings"
	userRepoPkg "weddify/database/repository/user"
	vendorRepoPkg "weddify/database/repository/vendor"
	venueRepoPkg "weddify/database/repository/venue"
	"weddify/handlers"
	"weddify/routes"
	"weddify/services/admin"
	"weddify/services/assistant"
	"weddify/services/booking"
	"weddify/services/feed"
	"weddify/services/notification"
	"weddify/services/user"
	"weddify/services/vendor"
	"weddify/services/venue"
	"weddify/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	if config.AppConfig.FirebaseServiceAccountKeyPath != "" {
		utils.FirebaseInit()
	}
	stripe.Key = config.AppConfig.StripeKey

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	vendorRepo := vendorRepoPkg.NewMongoVendorRepo()
	venueRepo := venueRepoPkg.NewMongoVenueRepo()
	packageRepo := packageRepoPkg.NewMongoPackageRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	feedRepo := feedRepoPkg.NewMongoFeedRepo()
	settingsRepo := settingsRepoPkg.NewMongoSettingsRepo()

	// services.
	notificationService := &notification.DefaultNotificationService{
		UserRepo: userRepo,
	}
	settingsService := &admin.DefaultSettingsService{
		Repo:  settingsRepo,
		Cache: utils.GetCacheClient(),
	}
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	vendorService := &vendor.DefaultVendorService{
		Repo:        vendorRepo,
		PackageRepo: packageRepo,
	}
	venueService := &venue.DefaultVenueService{
		Repo: venueRepo,
	}
	feedService := &feed.DefaultFeedService{
		Repo:  feedRepo,
		Cache: utils.GetCacheClient(),
	}

	paymentHandler := booking.NewPaymentHandler(logger, notificationService)
	bookingService := &booking.DefaultBookingService{
		PackageRepo:  packageRepo,
		VenueRepo:    venueRepo,
		BookingRepo:  bookingRepo,
		Payments:     paymentHandler,
		Notification: notificationService,
		Settings:     settingsService,
		Reminders:    cron.QueueReminderScheduler{},
	}

	assistantService := &assistant.DefaultAssistantService{
		VendorRepo:  vendorRepo,
		PackageRepo: packageRepo,
	}
	if config.AppConfig.GeminiAPIKey != "" {
		gemini, err := assistant.NewGeminiClient(config.AppConfig.GeminiAPIKey)
		if err != nil {
			logger.Warn("main: gemini unavailable, assistant falls back to catalogue answers", zap.Error(err))
		} else {
			assistantService.Gemini = gemini
		}
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:   userRepo,
		VendorRepo: vendorRepo,

		User:      handlers.NewUserHandler(userService),
		Vendor:    handlers.NewVendorHandler(vendorService),
		Venue:     handlers.NewVenueHandler(venueService),
		Booking:   handlers.NewBookingHandler(bookingService),
		Feed:      handlers.NewFeedHandler(feedService),
		Admin:     handlers.NewAdminHandler(settingsService),
		Assistant: handlers.NewAssistantHandler(assistantService),
		Storage:   handlers.NewStorageHandler(cloudinaryStorageService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background worker: pending-payment expiry sweeps and reminders.
	cron.InitBookingWorker(bookingService, notificationService)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("Starting server on %s...", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("forced shutdown: %v", err)
	}
	logger.Info("Server exited")
}
