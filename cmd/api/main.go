package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"coffeestore/internal/config"
	"coffeestore/internal/db"
	"coffeestore/internal/events"
	"coffeestore/internal/httpserver"
	"coffeestore/internal/metrics"
	bannerrepo "coffeestore/internal/repository/banner"
	cartrepo "coffeestore/internal/repository/cart"
	orderrepo "coffeestore/internal/repository/order"
	productrepo "coffeestore/internal/repository/product"
	bannersvc "coffeestore/internal/service/banner"
	cartsvc "coffeestore/internal/service/cart"
	catalogsvc "coffeestore/internal/service/catalog"
	checkoutsvc "coffeestore/internal/service/checkout"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	productRepo := productrepo.NewPostgres(dbpool, logger)
	catalogService := catalogsvc.New(productRepo)
	bannerRepo := bannerrepo.NewPostgres(dbpool, logger)
	bannerService := bannersvc.New(bannerRepo)
	cartRepo := cartrepo.NewPostgres(dbpool)
	cartService := cartsvc.New(cartRepo, catalogService)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)

	publisher := events.NewPublisher(cfg.KafkaBrokers, cfg.OrderTopic)
	var checkoutService *checkoutsvc.Service
	if publisher != nil {
		defer publisher.Close()
		logger.Printf("order events enabled on topic %s", cfg.OrderTopic)
		checkoutService = checkoutsvc.New(orderRepo, publisher, logger)
	} else {
		checkoutService = checkoutsvc.New(orderRepo, nil, logger)
	}

	m := metrics.New()

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CatalogSvc:  catalogService,
		BannerSvc:   bannerService,
		CartSvc:     cartService,
		CheckoutSvc: checkoutService,
	}, m, cfg.CORSOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
