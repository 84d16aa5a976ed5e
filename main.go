// File: travelerapp/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travelerapp/config"
	"travelerapp/cron"
	"travelerapp/database"
	bookingRepoPkg "travelerapp/database/repository/booking"
	tourRepoPkg "travelerapp/database/repository/tour"
	userRepoPkg "travelerapp/database/repository/user"
	"travelerapp/handlers"
	"travelerapp/middleware"
	"travelerapp/routes"
	"travelerapp/services/booking"
	"travelerapp/services/payment"
	"travelerapp/services/tour"
	"travelerapp/services/user"
	"travelerapp/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	tourRepo := tourRepoPkg.NewMongoTourRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	deadlineWindow := time.Duration(config.AppConfig.PaymentDeadlineHours) * time.Hour
	expiryScheduler := cron.NewExpiryScheduler()
	cron.InitExpiryWorker(bookingRepo)

	// services.
	tourService := &tour.DefaultTourService{
		Repo:  tourRepo,
		Cache: utils.GetCacheClient(),
	}

	bookingService := &booking.DefaultBookingService{
		TourRepo:       tourRepo,
		BookingRepo:    bookingRepo,
		UserRepo:       userRepo,
		Expiry:         expiryScheduler,
		DeadlineWindow: deadlineWindow,
	}

	paymentService := &payment.DefaultPaymentService{
		BookingRepo:    bookingRepo,
		TourRepo:       tourRepo,
		DeadlineWindow: deadlineWindow,
	}

	userService := &user.DefaultUserService{
		Repo:    userRepo,
		Storage: cloudinaryStorageService,
	}

	tourHandler := handlers.NewTourHandler(tourService)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	userHandler := handlers.NewUserHandler(userService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Tour endpoints.
		ListToursHandler:      tourHandler.ListToursHandler,
		GetTourHandler:        tourHandler.GetTourHandler,
		GetReviewCountHandler: tourHandler.GetReviewCountHandler,

		// Booking endpoints.
		GetDateOptionsHandler: bookingHandler.GetDateOptionsHandler,
		QuotePriceHandler:     bookingHandler.QuotePriceHandler,
		CreateBookingHandler:  bookingHandler.CreateBookingHandler,
		GetBookingHandler:     bookingHandler.GetBookingHandler,
		MyBookingsHandler:     bookingHandler.MyBookingsHandler,

		// Payment endpoints.
		GetPaymentDetailsHandler: paymentHandler.GetPaymentDetailsHandler,
		StreamCountdownHandler:   paymentHandler.StreamCountdownHandler,
		ConfirmPaymentHandler:    paymentHandler.ConfirmPaymentHandler,

		// User endpoints.
		GetProfileHandler:    userHandler.GetProfileHandler,
		UpdateProfileHandler: userHandler.UpdateProfileHandler,
		UploadAvatarHandler:  userHandler.UploadAvatarHandler,
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
