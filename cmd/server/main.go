package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/laredoma/storefront/internal/config"
	"github.com/laredoma/storefront/internal/geo"
	"github.com/laredoma/storefront/internal/handlers"
	"github.com/laredoma/storefront/internal/payment"
	"github.com/laredoma/storefront/internal/repository"
	"github.com/laredoma/storefront/internal/routing"
	"github.com/laredoma/storefront/internal/server"
	"github.com/laredoma/storefront/internal/service"
	"github.com/laredoma/storefront/internal/session"
	"github.com/laredoma/storefront/internal/shipping"
	"github.com/laredoma/storefront/pkg/logger"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

func main() {
	// A .env file is optional; real environment variables win
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewWithFormat(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	slog.SetDefault(log)

	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		log.Warn("failed to read .env file", "error", envErr)
	}

	log.Info("starting storefront api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
		"session_backend", cfg.Session.Backend,
	)

	// Stops background workers on shutdown
	workers, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	// Session store
	var (
		sessions    session.Store
		sessionPing handlers.Pinger
		redisClient *redis.Client
		sweeperDone <-chan struct{}
	)
	switch cfg.Session.Backend {
	case "redis":
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Session.RedisAddr,
			Password: cfg.Session.RedisPassword,
			DB:       cfg.Session.RedisDB,
		})

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Error("failed to connect to redis", "addr", cfg.Session.RedisAddr, "error", err)
			os.Exit(1)
		}

		redisStore := session.NewRedisStore(redisClient, cfg.Session.TTL)
		sessions = redisStore
		sessionPing = redisStore
		log.Info("connected to redis", "addr", cfg.Session.RedisAddr, "db", cfg.Session.RedisDB)
	default:
		memoryStore := session.NewMemoryStore(cfg.Session.TTL)
		sessions = memoryStore
		sweeperDone = memoryStore.StartSweeper(workers, cfg.Session.SweepInterval)
		log.Info("session sweeper started",
			"ttl", cfg.Session.TTL.String(),
			"interval", cfg.Session.SweepInterval.String(),
		)
	}

	// Repositories
	productRepo := repository.NewInMemoryProductRepository()
	orderRepo := repository.NewInMemoryOrderRepository()

	// References on existing orders are flagged when seen again at checkout
	refs := orderRepo.PaymentRefs()
	payments := payment.NewRegistry(10000)
	payments.Seed(refs...)
	log.Info("payment references loaded", "count", payments.Len())

	store := geo.Coordinate{Lat: cfg.Store.Lat, Lng: cfg.Store.Lng}
	estimator := shipping.NewEstimator(store, shipping.Rates{
		PerKm:                 decimal.NewFromFloat(cfg.Shipping.RatePerKm),
		Minimum:               decimal.NewFromFloat(cfg.Shipping.Minimum),
		FreeShippingThreshold: decimal.NewFromFloat(cfg.Shipping.FreeShippingThreshold),
	})
	planner := routing.NewPlanner(routing.NewClient(cfg.Routing.BaseURL, cfg.Routing.Timeout), log)

	// Services
	productService := service.NewProductService(productRepo)
	cartService := service.NewCartService(sessions, productRepo)
	checkoutService := service.NewCheckoutService(sessions, estimator, payments)
	orderService := service.NewOrderService(orderRepo, planner, store)

	router := server.NewRouter(server.Handlers{
		Health:   handlers.NewHealthHandler(log, sessionPing),
		Products: handlers.NewProductHandler(productService, log),
		Sessions: handlers.NewSessionHandler(cartService, log),
		Checkout: handlers.NewCheckoutHandler(checkoutService, log),
		Admin:    handlers.NewAdminHandler(orderService, log),
	}, server.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RequestTimeout: cfg.Server.RequestTimeout,
	}, log)

	addr := cfg.Address()
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	stopWorkers()
	if sweeperDone != nil {
		<-sweeperDone
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Warn("failed to close redis client", "error", err)
		}
	}

	log.Info("server stopped gracefully")
}
