package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"restaurant-ops/internal/api"
	"restaurant-ops/internal/cache"
	"restaurant-ops/internal/config"
	"restaurant-ops/internal/database"
	"restaurant-ops/internal/logger"
	"restaurant-ops/internal/messaging"
	"restaurant-ops/internal/services/catalog"
	"restaurant-ops/internal/services/customer"
	"restaurant-ops/internal/services/order"
	"restaurant-ops/internal/services/reservation"
)

func main() {
	var (
		port           = flag.Int("port", 0, "HTTP port (overrides HTTP_PORT)")
		maxConcurrent  = flag.Int("max-concurrent", 50, "Maximum concurrent order placements")
		migrationsPath = flag.String("migrations", "migrations", "Path to SQL migration files")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.HTTPPort = *port
	}

	log := logger.New("restaurant-ops")
	requestID := logger.GenerateRequestID()

	log.Info("service_started", "Starting restaurant-ops", requestID, map[string]interface{}{
		"port":           cfg.HTTPPort,
		"max_concurrent": *maxConcurrent,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info("graceful_shutdown", "Received shutdown signal", requestID, nil)
		cancel()
	}()

	if err := run(ctx, cfg, log, *maxConcurrent, *migrationsPath, requestID); err != nil {
		log.Error("service_failed", "Service failed", requestID, err, nil)
		os.Exit(1)
	}

	log.Info("service_stopped", "Service stopped gracefully", requestID, nil)
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger, maxConcurrent int, migrationsPath, requestID string) error {
	db, err := database.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	log.Info("db_connected", "Connected to PostgreSQL database", requestID, nil)

	if err := db.RunMigrations(ctx, migrationsPath); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// The menu cache and the event stream are optional: the service is fully
	// functional against Postgres alone.
	var catalogStore catalog.Store = catalog.NewPostgresStore(db)
	if cfg.CacheEnabled() {
		rdb, err := cache.Connect(cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer rdb.Close()
		catalogStore = catalog.NewCachedStore(catalogStore, rdb, cfg.CacheTTL, log)
		log.Info("redis_connected", "Connected to Redis, menu cache enabled", requestID, nil)
	}

	var publisher order.EventPublisher
	if cfg.MessagingEnabled() {
		conn, err := messaging.New(cfg, log)
		if err != nil {
			return fmt.Errorf("failed to initialize messaging: %w", err)
		}
		defer conn.Close()
		publisher = messaging.NewPublisher(conn, log)
		log.Info("rabbitmq_connected", "Connected to RabbitMQ, event publishing enabled", requestID, nil)
	}

	catalogHandler := catalog.NewHandler(catalogStore, log)
	reservationHandler := reservation.NewHandler(reservation.NewPostgresStore(db), log)
	customerHandler := customer.NewHandler(customer.NewPostgresStore(db), log)
	orderService := order.NewService(order.NewPostgresStore(db), publisher, log, maxConcurrent)
	orderHandler := order.NewHandler(orderService, log)

	router := chi.NewRouter()
	router.Use(api.RequestLogger(log))

	router.Get("/menu", catalogHandler.ListMenu)
	router.Get("/tables", catalogHandler.ListTables)
	router.Get("/reservations", reservationHandler.List)
	router.Post("/reservations", reservationHandler.Create)
	router.Get("/orders", orderHandler.List)
	router.Post("/orders", orderHandler.Create)
	router.Put("/orders/{id}/status", orderHandler.UpdateStatus)
	router.Get("/customers/search", customerHandler.Search)
	router.Get("/health", healthHandler(db))

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: router,
	}

	go func() {
		log.Info("server_started", fmt.Sprintf("HTTP server listening on port %d", cfg.HTTPPort), requestID, nil)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server_failed", "HTTP server failed", requestID, err, nil)
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	return server.Shutdown(shutdownCtx)
}

func healthHandler(db *database.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		status := http.StatusOK
		body := map[string]interface{}{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}
		if err := db.Ping(ctx); err != nil {
			status = http.StatusServiceUnavailable
			body["status"] = "unhealthy"
		}
		api.WriteJSON(w, status, body)
	}
}
