package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"tomishop/internal/adapter/handler"
	"tomishop/internal/adapter/notify"
	"tomishop/internal/adapter/storage"
	"tomishop/internal/core/catalog"
	"tomishop/internal/core/service"
	"tomishop/internal/port"
)

const (
	defaultHTTPAddr  = ":8080"
	defaultRedisAddr = "localhost:6379"
	defaultMySQLDSN  = "root:root@tcp(localhost:3306)/tomishop?parseTime=true"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Cart state lives in Redis, the order ledger in MySQL. Either
	// backend falls back to the in-memory store when unreachable, so
	// the demo runs standalone.
	cartStore, closeCart := newCartStore(ctx, logger)
	defer closeCart()

	ordersStore, closeOrders := newOrdersStore(ctx, logger)
	defer closeOrders()

	notifier := notify.NewZapNotifier(logger)

	cartService, err := service.NewCartService(ctx, cartStore, notifier)
	if err != nil {
		logger.Fatal("failed to hydrate cart", zap.Error(err))
	}

	orderService, err := service.NewOrderService(ctx, ordersStore, notifier, cartService)
	if err != nil {
		logger.Fatal("failed to hydrate orders", zap.Error(err))
	}

	catalogStore := catalog.NewStore()

	httpHandler := handler.NewHTTPHandler(catalogStore, cartService, orderService)

	httpServer := &http.Server{
		Addr:    getenv("HTTP_ADDR", defaultHTTPAddr),
		Handler: httpHandler.Routes(),
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("HTTP server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)

	logger.Info("HTTP server stopped")
}

func newCartStore(ctx context.Context, logger *zap.Logger) (port.KeyValueStore, func()) {
	addr := getenv("REDIS_ADDR", defaultRedisAddr)

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable, cart uses in-memory store", zap.Error(err))
		rdb.Close()
		return storage.NewMemoryAdapter(), func() {}
	}

	logger.Info("connected to redis", zap.String("addr", addr))
	return storage.NewRedisAdapter(rdb), func() { rdb.Close() }
}

func newOrdersStore(ctx context.Context, logger *zap.Logger) (port.KeyValueStore, func()) {
	dsn := getenv("MYSQL_DSN", defaultMySQLDSN)

	db, err := sql.Open("mysql", dsn)
	if err == nil {
		db.SetMaxOpenConns(10)
		db.SetConnMaxLifetime(5 * time.Minute)
		err = db.PingContext(ctx)
	}
	if err != nil {
		logger.Warn("mysql unavailable, orders use in-memory store", zap.Error(err))
		if db != nil {
			db.Close()
		}
		return storage.NewMemoryAdapter(), func() {}
	}

	adapter := storage.NewMySQLAdapter(db)
	if err := adapter.InitSchema(ctx); err != nil {
		logger.Fatal("failed to init mysql schema", zap.Error(err))
	}

	logger.Info("connected to mysql")
	return adapter, func() { db.Close() }
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
