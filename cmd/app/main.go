package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/cmd"
	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultStalePendingMaxAge = 24 * time.Hour

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := openDatabase(configs)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}, &productrepo.ProductDTO{},
	); err != nil {
		logger.Error("Failed to migrate database schema", "error", err)
		os.Exit(1)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(
		app.CreateCancelStaleOrdersCommandHandler(),
		stalePendingMaxAge(configs, logger),
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		logger.Error("Failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		StalePendingMaxAge: goDotEnvVariable("STALE_PENDING_MAX_AGE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)
	return gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
}

// stalePendingMaxAge parses the configured sweep age, falling back to the
// default when unset or unparseable.
func stalePendingMaxAge(configs cmd.Config, logger *slog.Logger) time.Duration {
	if configs.StalePendingMaxAge == "" {
		return defaultStalePendingMaxAge
	}

	maxAge, err := time.ParseDuration(configs.StalePendingMaxAge)
	if err != nil || maxAge <= 0 {
		logger.Warn("Invalid STALE_PENDING_MAX_AGE, using default",
			"value", configs.StalePendingMaxAge, "default", defaultStalePendingMaxAge)
		return defaultStalePendingMaxAge
	}
	return maxAge
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	createOrderHandler := app.CreateCreateOrderCommandHandler()
	changeOrderStatusHandler := app.CreateChangeOrderStatusCommandHandler()
	cancelOrderHandler := app.CreateCancelOrderCommandHandler()
	returnOrderHandler := app.CreateReturnOrderCommandHandler()
	createProductHandler := app.CreateCreateProductCommandHandler()
	updateProductHandler := app.CreateUpdateProductCommandHandler()
	deleteProductHandler := app.CreateDeleteProductCommandHandler()

	server := httpin.NewServer(
		&createOrderHandler,
		&changeOrderStatusHandler,
		&cancelOrderHandler,
		&returnOrderHandler,
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		&createProductHandler,
		&updateProductHandler,
		&deleteProductHandler,
		app.CreateGetAllProductsQueryHandler(),
		app.CreateGetProductQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Web server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", "error", err)
	}
}
