package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"delivery-system/internal/config"
	"delivery-system/internal/connections/database"
	"delivery-system/internal/connections/rabbitmq"
	"delivery-system/internal/events"
	"delivery-system/internal/handlers"
	"delivery-system/internal/logger"
	"delivery-system/internal/repository"
	"delivery-system/internal/service/customer"
	"delivery-system/internal/service/order"
	"delivery-system/internal/service/product"
	"delivery-system/internal/service/restaurant"
)

func main() {
	var cfgPath string
	flag.StringVar(&cfgPath, "config", "config.yml", "path to config file")
	flag.Parse()

	log := logger.New("delivery-system")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Error(ctx, "config_load_failed", err, nil)
		os.Exit(1)
	}

	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		log.Error(ctx, "db_connect_failed", err, nil)
		os.Exit(1)
	}
	defer db.Close()
	log.Info(ctx, "db_connected", map[string]any{
		"host": cfg.Database.Host, "database": cfg.Database.Database,
	})

	// Events are best-effort: without a broker the server still runs,
	// it just publishes nothing.
	var publisher events.Publisher = events.Nop{}
	if cfg.RabbitMQ.Host != "" {
		rmq, err := rabbitmq.Dial(cfg.RabbitMQ)
		if err != nil {
			log.Error(ctx, "rabbitmq_connect_failed", err, nil)
			os.Exit(1)
		}
		defer rmq.Close()
		publisher, err = events.NewRabbitMQ(rmq)
		if err != nil {
			log.Error(ctx, "rabbitmq_setup_failed", err, nil)
			os.Exit(1)
		}
		log.Info(ctx, "rabbitmq_connected", map[string]any{"host": cfg.RabbitMQ.Host})
	}

	store := repository.NewStore(db)
	customers := repository.NewCustomerRepository(store)
	restaurants := repository.NewRestaurantRepository(store)
	products := repository.NewProductRepository(store)
	orders := repository.NewOrderRepository(store)

	h := handlers.New(
		order.NewService(store, customers, restaurants, products, orders, publisher, log),
		customer.NewService(customers),
		restaurant.NewService(restaurants),
		product.NewService(products, restaurants),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           handlers.Router(h, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "server_started", map[string]any{"port": cfg.Server.Port})
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info(ctx, "shutdown_signal", map[string]any{"signal": sig.String()})
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "server_failed", err, nil)
			os.Exit(1)
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "shutdown_failed", err, nil)
	}
	log.Info(ctx, "server_stopped", nil)
}
