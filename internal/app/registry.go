package app

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"tdl-hrms/internal/attendance"
	"tdl-hrms/internal/auth"
	"tdl-hrms/internal/breaks"
	"tdl-hrms/internal/employee"
	"tdl-hrms/internal/holiday"
	"tdl-hrms/internal/leave"
	"tdl-hrms/internal/messaging/kafka"
	"tdl-hrms/internal/middleware"
	"tdl-hrms/internal/report"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	breaksRepo := breaks.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	holidayRepo := holiday.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := middleware.NewEnforcer()
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(employeeRepo)
	employeeService := employee.NewService(db, employeeRepo)
	attendanceService := attendance.NewService(attendanceRepo)
	breaksService := breaks.NewService(breaksRepo)
	leaveCache := leave.NewRedisListCache(rdb)
	leaveService := leave.NewService(db, leaveRepo, leaveCache, outboxRepo)
	holidayService := holiday.NewService(holidayRepo)
	reportService := report.NewService(db, employeeRepo, attendanceRepo, breaksRepo, leaveRepo, holidayRepo, outboxRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	breaksHandler := breaks.NewHandler(breaksService)
	leaveHandler := leave.NewHandler(leaveService)
	holidayHandler := holiday.NewHandler(holidayService)
	reportHandler := report.NewHandler(reportService)

	// --- Global middleware ---
	router.Use(middleware.ContextLogger(zap.L()))
	router.Use(middleware.RateLimitByIP(rate.Limit(20), 40))

	idem := middleware.Idempotency(rdb)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler, enforcer)
		attendance.RegisterRoutes(api, attendanceHandler, enforcer, idem)
		breaks.RegisterRoutes(api, breaksHandler, enforcer, idem)
		leave.RegisterRoutes(api, leaveHandler, enforcer)
		holiday.RegisterRoutes(api, holidayHandler, enforcer)
		report.RegisterRoutes(api, reportHandler, enforcer)
	}

	return nil
}
