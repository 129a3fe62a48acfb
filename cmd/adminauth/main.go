package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/propline/adminauth/internal/pkg/config"
	"github.com/propline/adminauth/internal/pkg/database"
	"github.com/propline/adminauth/internal/pkg/health"
	"github.com/propline/adminauth/internal/pkg/logger"
	"github.com/propline/adminauth/internal/pkg/middleware"
	nsqpkg "github.com/propline/adminauth/internal/pkg/nsq"
	"github.com/propline/adminauth/internal/pkg/server"
	"github.com/propline/adminauth/services/admin/gateway"
	"github.com/propline/adminauth/services/admin/handler"
	httpHandler "github.com/propline/adminauth/services/admin/handler/http"
	"github.com/propline/adminauth/services/admin/repository"
	"github.com/propline/adminauth/services/admin/usecase"
)

func main() {
	appName := "admin-auth"
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NSQ producer for audit events
	producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", zap.Error(err))
	}
	defer producer.Stop()

	// Initialize repository
	adminRepo := repository.NewAdminRepository(configs, postgresClient.GetDB(), redisClient)

	// Initialize gateways
	smsGW := gateway.NewSMSGW(configs)
	eventGW := gateway.NewEventGW(configs, producer)

	// Initialize usecase
	adminUC := usecase.NewAdminUC(adminRepo, smsGW, eventGW, configs)

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(adminUC, configs)
	otpHandler := httpHandler.NewOTPHandler(adminUC, configs)
	sessionHandler := httpHandler.NewSessionHandler(adminUC, configs)
	h := handler.NewHandler(authHandler, otpHandler, sessionHandler, adminUC, adminRepo, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)
	h.RegisterRoutes(e)

	// Background sweep of expired session rows and stale OTP challenges
	sweepCtx, cancelSweep := context.WithCancel(context.Background())
	defer cancelSweep()
	go runSweep(sweepCtx, adminUC, configs.Auth.SessionSweep)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error", zap.Error(err))
	}
}

// runSweep periodically removes expired session rows and marks stale OTP
// challenges as expired until ctx is done
func runSweep(ctx context.Context, adminUC *usecase.AdminUC, intervalSeconds int) {
	if intervalSeconds <= 0 {
		intervalSeconds = 300
	}
	ticker := time.NewTicker(time.Duration(intervalSeconds) * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := adminUC.SweepSessions(ctx); err != nil {
				logger.Warn("Session sweep failed", logger.Err(err))
			}
			if _, err := adminUC.SweepChallenges(ctx); err != nil {
				logger.Warn("Challenge sweep failed", logger.Err(err))
			}
		}
	}
}
