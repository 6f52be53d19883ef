package main

import (
	"os"

	"github.com/Danzskrtt/Health-Point-Management-System/config"
	"github.com/Danzskrtt/Health-Point-Management-System/internal/delivery"
	"github.com/Danzskrtt/Health-Point-Management-System/internal/idgen"
	"github.com/Danzskrtt/Health-Point-Management-System/internal/middleware"
	"github.com/Danzskrtt/Health-Point-Management-System/internal/receipt"
	"github.com/Danzskrtt/Health-Point-Management-System/internal/repository"
	"github.com/Danzskrtt/Health-Point-Management-System/internal/usecase"
	"github.com/Danzskrtt/Health-Point-Management-System/pkg/db"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.LoadConfig(logger)

	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
		logger.Warnf("Invalid LOG_LEVEL '%s', using default: %s", cfg.LogLevel, logLevel.String())
	}
	logger.SetLevel(logLevel)
	logger.Info("Starting Health Point service...")

	database, err := db.Connect(cfg.DatabasePath)
	if err != nil {
		logger.Fatalf("Failed to connect to database at %s: %v", cfg.DatabasePath, err)
	}
	defer database.Close()
	if err := db.InitSchema(database); err != nil {
		logger.Fatalf("Failed to initialize database schema: %v", err)
	}
	logger.Info("Database connection established.")

	gen := idgen.NewGenerator(idgen.DefaultCodeTable(), idgen.Options{})
	receipts := receipt.NewGenerator(cfg.StoreName, "")

	productRepo := repository.NewSQLiteProductRepository(database, logger)
	orderRepo := repository.NewSQLiteOrderRepository(database, logger)
	userRepo := repository.NewSQLiteUserRepository(database, logger)
	logger.Info("Repositories initialized.")

	productUseCase := usecase.NewProductUseCase(productRepo, gen, nil, logger)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, productRepo, gen, nil, logger)
	userUseCase := usecase.NewUserUseCase(userRepo, logger)
	logger.Info("Use cases initialized.")

	productHandler := delivery.NewProductHandler(productUseCase, logger)
	orderHandler := delivery.NewOrderHandler(orderUseCase, receipts, logger)
	authHandler := delivery.NewAuthHandler(userUseCase, logger)
	logger.Info("Handlers initialized.")

	router := gin.Default()
	router.RedirectTrailingSlash = false
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))

	requireAuth := middleware.RequireAuth(userUseCase.ValidateToken, logger)
	productHandler.RegisterRoutes(router, requireAuth)
	orderHandler.RegisterRoutes(router, requireAuth)
	authHandler.RegisterRoutes(router)
	logger.Info("Routes registered.")

	logger.Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		logger.Errorf("Failed to start server on port %s: %v", cfg.Port, err)
		os.Exit(1)
	}
}
