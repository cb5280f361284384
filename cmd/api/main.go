package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/config"
	appHTTP "github.com/checkpoint-estagio/checkpoint-backend-go/internal/handler/http"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/pkg/database"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/pkg/geocode"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/pkg/jwt"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/pkg/ratelimit"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/pkg/storage"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/repository/postgresql"
	authService "github.com/checkpoint-estagio/checkpoint-backend-go/internal/service/auth"
	clockService "github.com/checkpoint-estagio/checkpoint-backend-go/internal/service/clock"
	contractService "github.com/checkpoint-estagio/checkpoint-backend-go/internal/service/contract"
	diaryService "github.com/checkpoint-estagio/checkpoint-backend-go/internal/service/diary"
	documentService "github.com/checkpoint-estagio/checkpoint-backend-go/internal/service/document"
	evaluationService "github.com/checkpoint-estagio/checkpoint-backend-go/internal/service/evaluation"
	justificationService "github.com/checkpoint-estagio/checkpoint-backend-go/internal/service/justification"
	reportService "github.com/checkpoint-estagio/checkpoint-backend-go/internal/service/report"
	userService "github.com/checkpoint-estagio/checkpoint-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println("Invalid config:", err)
		os.Exit(1)
	}

	logLevel := slog.LevelInfo
	if cfg.App.LogLevel == "debug" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})).With(
		slog.String("app", "checkpoint-backend"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	dsn := cfg.DatabaseURL()
	if err := database.Migrate(dsn); err != nil {
		logger.Error("Migration failed", "error", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		logger.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	addressRepo := postgresql.NewAddressRepository(db)
	contractRepo := postgresql.NewContractRepository(db)
	clockRepo := postgresql.NewClockRepository(db)
	justificationRepo := postgresql.NewJustificationRepository(db)
	diaryRepo := postgresql.NewDiaryRepository(db)
	evaluationRepo := postgresql.NewEvaluationRepository(db)
	documentRepo := postgresql.NewDocumentRepository(db)
	txManager := postgresql.NewTxManager(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var limiter ratelimit.AttemptLimiter
	redisLimiter, err := ratelimit.NewRedisLimiter(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Warn("Redis unreachable, login rate limiting falls back to in-process memory", "error", err)
		limiter = ratelimit.NewMemoryLimiter()
	} else {
		limiter = redisLimiter
	}

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath)
		if err != nil {
			logger.Error("Failed to initialize local storage", "error", err)
			os.Exit(1)
		}
	default:
		logger.Error("Unsupported storage type", "type", cfg.Storage.Type)
		os.Exit(1)
	}

	var geocoder geocode.Provider
	if cfg.Geocoding.GoogleAPIKey != "" {
		geocoder = geocode.NewGoogleProvider(cfg.Geocoding.GoogleAPIKey)
	} else {
		logger.Warn("No geocoding API key set, new addresses keep null coordinates")
	}

	authSvc := authService.NewAuthService(
		txManager,
		userRepo,
		refreshTokenRepo,
		jwtService,
		limiter,
		cfg.RateLimit.LoginMaxAttempts,
		cfg.RateLimit.LoginWindow,
	)
	userSvc := userService.NewUserService(userRepo)
	addressSvc := contractService.NewAddressService(addressRepo, geocoder, logger)
	contractSvc := contractService.NewContractService(contractRepo, addressRepo, userRepo)
	justificationSvc := justificationService.NewJustificationService(
		justificationRepo,
		contractRepo,
		cfg.Attendance.JustificationSLAHours,
		logger,
	)
	clockSvc := clockService.NewClockService(
		clockRepo,
		contractRepo,
		addressRepo,
		justificationSvc,
		diaryRepo,
		evaluationRepo,
		cfg.Attendance,
		logger,
	)
	diarySvc := diaryService.NewDiaryService(diaryRepo, contractRepo)
	evaluationSvc := evaluationService.NewEvaluationService(evaluationRepo)
	documentSvc := documentService.NewDocumentService(documentRepo, contractRepo, fileStorage)
	reportSvc := reportService.NewReportService(clockRepo, contractRepo)

	handlers := appHTTP.Handlers{
		Auth:          appHTTP.NewAuthHandler(jwtService, authSvc),
		User:          appHTTP.NewUserHandler(userSvc),
		Address:       appHTTP.NewAddressHandler(addressSvc),
		Contract:      appHTTP.NewContractHandler(contractSvc),
		Clock:         appHTTP.NewClockHandler(clockSvc),
		Justification: appHTTP.NewJustificationHandler(justificationSvc),
		Diary:         appHTTP.NewDiaryHandler(diarySvc),
		Evaluation:    appHTTP.NewEvaluationHandler(evaluationSvc),
		Document:      appHTTP.NewDocumentHandler(documentSvc),
		Report:        appHTTP.NewReportHandler(reportSvc),
		File:          appHTTP.NewFileHandler(fileStorage),
	}

	router := appHTTP.NewRouter(logger, jwtService, []string{cfg.App.AllowedOrigin}, handlers)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
}
