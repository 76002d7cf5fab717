package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/mercadodigital/commerce-service/internal/app"
	"github.com/mercadodigital/commerce-service/internal/config"
	"github.com/mercadodigital/commerce-service/internal/handler"
	"github.com/mercadodigital/commerce-service/internal/postgres"
	"github.com/mercadodigital/commerce-service/internal/repo"
	"github.com/mercadodigital/commerce-service/internal/service"
	"github.com/mercadodigital/commerce-service/pkg/cache"
	"github.com/mercadodigital/commerce-service/pkg/trm"
)

func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	storage := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db, trm.WithIsolation(sql.LevelRepeatableRead))
	productCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	checkoutService := service.NewCheckoutService(logger, txManager, storage)
	shipmentService := service.NewShipmentService(logger, txManager, storage)
	customerService := service.NewCustomerService(logger, txManager, storage)
	catalogService := service.NewCatalogService(logger, storage, productCache)
	orderQueryService := service.NewOrderQueryService(logger, storage)
	dashboardService := service.NewDashboardService(logger, storage)

	handler.RegisterMetrics()

	application := app.New(logger, conf)
	application.SetHttpHandlers(
		handler.NewOrderHandler(logger, checkoutService, orderQueryService),
		handler.NewShipmentHandler(logger, shipmentService),
		handler.NewCustomerHandler(logger, customerService),
		handler.NewCatalogHandler(logger, catalogService),
		handler.NewDashboardHandler(logger, dashboardService),
	)
	application.SetConsumers(
		handler.NewKafkaHandler(logger, conf.Kafka, checkoutService),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	productCache.StartJanitor(ctx)

	application.Start(ctx)
	<-ctx.Done()
	application.Stop()
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
