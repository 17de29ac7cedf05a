package app

import (
	"net/http"

	"go-payroll/internal/config"
	"go-payroll/internal/employee"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/middleware"
	"go-payroll/internal/payroll"
	"go-payroll/internal/setting"
	"go-payroll/internal/shared/response"
	"go-payroll/internal/timeentry"
	"go-payroll/internal/workrecord"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	logger *zap.Logger,
) error {
	defaultRate, err := cfg.DailyRate()
	if err != nil {
		return err
	}

	// --- Repositories ---
	employeeRepo := employee.NewRepository(db)
	settingRepo := setting.NewRepository(db)
	timeEntryRepo := timeentry.NewRepository(db)
	workRecordRepo := workrecord.NewRepository(db)
	payrollRepo := payroll.NewRepository(db)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	settingService := setting.NewService(settingRepo, defaultRate, logger)
	employeeService := employee.NewService(db, employeeRepo, logger)
	timeEntryService := timeentry.NewService(db, timeEntryRepo, employeeRepo, payrollRepo, logger)
	workRecordService := workrecord.NewService(db, workRecordRepo, employeeRepo, payrollRepo, logger)
	aggregator := payroll.NewAggregator(timeEntryRepo, workRecordRepo)
	payrollService := payroll.NewServiceWithOutbox(
		db,
		payrollRepo,
		employeeRepo,
		aggregator,
		settingService,
		outboxRepo,
		rdb,
		logger,
	)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)
	settingHandler := setting.NewHandler(settingService)
	timeEntryHandler := timeentry.NewHandler(timeEntryService)
	workRecordHandler := workrecord.NewHandler(workRecordService)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, rdb)

	router.GET("/healthz", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"}, nil)
	})

	authed := []gin.HandlerFunc{
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.ContextLogger(logger),
	}

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler, authed...)
		setting.RegisterRoutes(api, settingHandler, authed...)
		timeentry.RegisterRoutes(api, timeEntryHandler, authed...)
		workrecord.RegisterRoutes(api, workRecordHandler, authed...)
		payroll.RegisterRoutes(api, payrollHandler, rate.Limit(cfg.PayRateLimit), cfg.PayRateBurst, authed...)
	}

	return nil
}
