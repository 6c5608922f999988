package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ahmed-faraz22/Bite-Xplore-sub000/app/echo-server/router"
	"github.com/ahmed-faraz22/Bite-Xplore-sub000/business/commission"
	ordersService "github.com/ahmed-faraz22/Bite-Xplore-sub000/business/orders"
	"github.com/ahmed-faraz22/Bite-Xplore-sub000/business/rating"
	restaurantService "github.com/ahmed-faraz22/Bite-Xplore-sub000/business/restaurant"
	"github.com/ahmed-faraz22/Bite-Xplore-sub000/business/slider"
	"github.com/ahmed-faraz22/Bite-Xplore-sub000/internal/middleware"
	psqlRepo "github.com/ahmed-faraz22/Bite-Xplore-sub000/internal/repository/postgres"
	"github.com/ahmed-faraz22/Bite-Xplore-sub000/internal/repository/redislock"
	"github.com/ahmed-faraz22/Bite-Xplore-sub000/internal/repository/xendit"
	"github.com/ahmed-faraz22/Bite-Xplore-sub000/internal/rest"
	"github.com/ahmed-faraz22/Bite-Xplore-sub000/pkg/config"
	"github.com/ahmed-faraz22/Bite-Xplore-sub000/pkg/database"
	redisdb "github.com/ahmed-faraz22/Bite-Xplore-sub000/pkg/database/redis"
	"github.com/ahmed-faraz22/Bite-Xplore-sub000/pkg/logger"
	"github.com/ahmed-faraz22/Bite-Xplore-sub000/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Bite-Xplore commission API", "version", cfg.App.Version)

	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", "error", err)
	}
	defer func() {
		_ = redisdb.CloseRedisClient(redisClient)
	}()

	xenditRepo := xendit.NewXenditRepository(
		xendit.XenditConfig{
			XenditApi:          cfg.Xendit.XenditSecretKey,
			XenditUrl:          cfg.Xendit.XenditUrl,
			SuccessRedirectUrl: cfg.Xendit.RedirectUrl,
			FailureRedirectUrl: cfg.Xendit.RedirectUrl,
		},
	)

	// Init repo
	restaurantRepo := psqlRepo.NewRestaurantRepository(db)
	productRepo := psqlRepo.NewProductRepository(db)
	reviewRepo := psqlRepo.NewReviewRepository(db)
	ordersRepo := psqlRepo.NewOrdersRepository(db)
	paymentsRepo := psqlRepo.NewPaymentsRepository(db)
	paymentLock := redislock.NewLock(redisClient)

	// Init service
	ratingSvc := rating.NewRatingService(restaurantRepo, productRepo, reviewRepo)
	sliderSvc := slider.NewSliderService(restaurantRepo)
	commissionSvc := commission.NewCommissionService(restaurantRepo, ratingSvc, sliderSvc, paymentsRepo, xenditRepo, paymentLock)
	ordersSvc := ordersService.NewOrdersService(ordersRepo, restaurantRepo, productRepo)
	restaurantSvc := restaurantService.NewRestaurantService(restaurantRepo)

	// Init handler
	restaurantHandler := rest.NewRestaurantHandler(restaurantSvc)
	commissionHandler := rest.NewCommissionHandler(commissionSvc, paymentsRepo, restaurantRepo)
	sliderHandler := rest.NewSliderHandler(sliderSvc)
	ordersHandler := rest.NewOrdersHandler(ordersSvc)
	webhookHandler := rest.NewWebhookHandler(commissionSvc, cfg.Xendit.XenditWebhookVerificationToken)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupRestaurantRoutes(api, restaurantHandler)
	router.SetupCommissionRoutes(api, commissionHandler)
	router.SetupSliderRoutes(api, sliderHandler)
	router.SetOrdersRoutes(api, ordersHandler)
	router.SetWebhookHandler(api, webhookHandler)

	// Graceful shutdown on signal or server failure. A failed Start goes
	// through the same path so deferred cleanup still runs.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server stopped unexpectedly", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
