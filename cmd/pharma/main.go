package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pharma-erp/pharma-erp/internal/app"
	"github.com/pharma-erp/pharma-erp/internal/masterdata/categories"
	"github.com/pharma-erp/pharma-erp/internal/masterdata/generics"
	"github.com/pharma-erp/pharma-erp/internal/masterdata/manufacturers"
	"github.com/pharma-erp/pharma-erp/internal/masterdata/productgenerics"
	"github.com/pharma-erp/pharma-erp/internal/masterdata/products"
	"github.com/pharma-erp/pharma-erp/internal/masterdata/producttypes"
	"github.com/pharma-erp/pharma-erp/internal/masterdata/scheduletypes"
	"github.com/pharma-erp/pharma-erp/internal/masterdata/taxes"
	"github.com/pharma-erp/pharma-erp/internal/platform/db"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool); err != nil {
		logger.Error("apply schema", slog.Any("error", err))
		os.Exit(1)
	}

	taxHandler := taxes.NewHandler(logger, taxes.NewService(taxes.NewRepository(pool)))
	productTypeHandler := producttypes.NewHandler(logger, producttypes.NewService(producttypes.NewRepository(pool)))
	categoryHandler := categories.NewHandler(logger, categories.NewService(categories.NewRepository(pool)))
	manufacturerHandler := manufacturers.NewHandler(logger, manufacturers.NewService(manufacturers.NewRepository(pool)))
	scheduleTypeHandler := scheduletypes.NewHandler(logger, scheduletypes.NewService(scheduletypes.NewRepository(pool)))
	genericHandler := generics.NewHandler(logger, generics.NewService(generics.NewRepository(pool)))
	productHandler := products.NewHandler(logger, products.NewService(products.NewRepository(pool)))
	productGenericHandler := productgenerics.NewHandler(logger, productgenerics.NewService(productgenerics.NewRepository(pool)))

	router := app.NewRouter(app.RouterParams{
		Logger:                logger,
		Config:                cfg,
		TaxHandler:            taxHandler,
		ProductTypeHandler:    productTypeHandler,
		CategoryHandler:       categoryHandler,
		ManufacturerHandler:   manufacturerHandler,
		ScheduleTypeHandler:   scheduleTypeHandler,
		GenericHandler:        genericHandler,
		ProductHandler:        productHandler,
		ProductGenericHandler: productGenericHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
