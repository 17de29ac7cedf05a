package app

import (
	"fmt"

	"go-payroll/internal/config"
	"go-payroll/internal/shared/connection"
	"go-payroll/migrations"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure, migrates the schema and registers
// every module on router. The returned cleanup closes the connections.
func BuildApp(router *gin.Engine, cfg *config.Config, logger *zap.Logger) (func(), error) {
	if err := migrations.Up(cfg.PostgresDSN()); err != nil {
		return nil, err
	}
	logger.Info("database migrations applied")

	db, err := connection.ConnectGORMWithRetry(cfg.PostgresDSN(), cfg.DBMaxRetries, logger)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.DBMaxRetries, logger)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	cleanup := func() {
		_ = redisClient.Close()
		_ = sqlDB.Close()
	}

	if err := registerModules(router, db, redisClient, cfg, logger); err != nil {
		cleanup()
		return nil, fmt.Errorf("register modules: %w", err)
	}
	return cleanup, nil
}
