// File: lokseva/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lokseva/config"
	"lokseva/cron"
	"lokseva/database"
	bookingRepoPkg "lokseva/database/repository/booking"
	reviewRepoPkg "lokseva/database/repository/review"
	userRepoPkg "lokseva/database/repository/user"
	"lokseva/handlers"
	"lokseva/middleware"
	"lokseva/routes"
	"lokseva/services/booking"
	"lokseva/services/notification"
	"lokseva/services/review"
	"lokseva/services/user"
	"lokseva/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	utils.InitOTPCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()

	// background mail delivery.
	mailer := notification.NewSMTPMailer()
	cron.InitMailWorker(mailer)
	notifier := notification.NewQueueNotificationService()
	defer notifier.Close()

	// services.
	userService := &user.DefaultUserService{
		Repo:     userRepo,
		Sessions: utils.GetAuthCacheClient(),
		OTPStore: utils.GetOTPCacheClient(),
		Notifier: notifier,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:     bookingRepo,
		UserRepo: userRepo,
	}
	reviewService := &review.DefaultReviewService{
		Repo:     reviewRepo,
		UserRepo: userRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:        handlers.NewAuthHandler(userService),
		Booking:     handlers.NewBookingHandler(bookingService),
		Review:      handlers.NewReviewHandler(reviewService),
		UserService: userService,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
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
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
