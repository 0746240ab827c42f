package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	httphandlers "github.com/rafabene/dealflow-backend/internal/handlers/http"
	"github.com/rafabene/dealflow-backend/internal/infrastructure/auth"
	"github.com/rafabene/dealflow-backend/internal/infrastructure/config"
	"github.com/rafabene/dealflow-backend/internal/infrastructure/i18n"
	"github.com/rafabene/dealflow-backend/internal/infrastructure/logging"
	"github.com/rafabene/dealflow-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/dealflow-backend/internal/infrastructure/storage"
	"github.com/rafabene/dealflow-backend/internal/services"
)

// @title                       DealFlow API
// @version                     1.0.0
// @description                 Brand deal CRM API for creators
// @BasePath                    /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level, cfg.Logging.Format)
	logger.Info("starting dealflow backend",
		"env", cfg.Env,
		"version", httphandlers.Version,
	)

	ctx := context.Background()

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, cfg.Logging.Level, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	if cfg.Database.AutoMigrate {
		if err := postgres.RunMigrations(ctx, db); err != nil {
			logger.Error("failed to run migrations", "error", err)
			log.Fatal(err)
		}
		logger.Info("migrations applied")
	}

	// Inicializar i18n
	i18nService, err := i18n.NewEmbeddedService("en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Object storage dos contratos
	fileStorage, err := storage.NewS3Storage(ctx, &cfg.Storage, logger)
	if err != nil {
		logger.Error("failed to initialize storage", "error", err)
		log.Fatal(err)
	}

	// Inicializar repositories
	dealRepo := postgres.NewDealRepository(db)
	paymentRepo := postgres.NewPaymentRepository(db)
	contractRepo := postgres.NewContractRepository(db)
	reminderRepo := postgres.NewReminderRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar services
	dealService := services.NewDealService(dealRepo, contractRepo, fileStorage, uow, logger)
	paymentService := services.NewPaymentService(paymentRepo, dealRepo, uow, logger)
	contractService := services.NewContractService(contractRepo, dealRepo, fileStorage, uow, logger)
	reminderService := services.NewReminderService(reminderRepo, dealRepo, uow, logger)

	// Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := httphandlers.NewRouter(httphandlers.RouterConfig{
		Logger:         logger,
		I18n:           i18nService,
		Verifier:       auth.NewJWTVerifier(cfg.JWT.Secret),
		BaseURL:        cfg.Server.BaseURL,
		AllowedOrigins: cfg.CORS.AllowedOrigins(),
		Deals:          httphandlers.NewDealHandler(dealService, paymentService, contractService, logger),
		Payments:       httphandlers.NewPaymentHandler(paymentService, dealService, logger),
		Contracts:      httphandlers.NewContractHandler(contractService, dealService, logger),
		Reminders:      httphandlers.NewReminderHandler(reminderService, logger),
	})

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("server exited")
}
