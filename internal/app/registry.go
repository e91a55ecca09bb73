package app

import (
	"go-groomops/internal/appointment"
	"go-groomops/internal/auth"
	"go-groomops/internal/authz"
	"go-groomops/internal/customer"
	"go-groomops/internal/invoice"
	"go-groomops/internal/ledger"
	"go-groomops/internal/messaging/kafka"
	"go-groomops/internal/middleware"
	"go-groomops/internal/payroll"
	"go-groomops/internal/shared/counter"
	"go-groomops/internal/staff"
	"go-groomops/internal/transport"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	customerRepo := customer.NewRepository(gormDB)
	appointmentRepo := appointment.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	ledgerRepo := ledger.NewRepository(gormDB)
	invoiceRepo := invoice.NewRepository(gormDB)
	staffRepo := staff.NewRepository(gormDB)
	transportRepo := transport.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- Authorization ---
	enforcer, err := authz.NewEnforcer()
	if err != nil {
		return err
	}
	authzService := authz.NewService(enforcer)

	// --- Services ---
	ledgerService := ledger.NewServiceWithOutbox(gormDB, ledgerRepo, customerRepo, outboxRepo)
	invoiceService := invoice.NewServiceWithOutbox(
		gormDB, invoiceRepo, appointmentRepo, ledgerRepo, customerRepo, counterRepo, outboxRepo,
	)
	staffService := staff.NewService(gormDB, staffRepo)
	authService := auth.NewService(authRepo)
	payrollService := payroll.NewServiceWithOutbox(gormDB, payrollRepo, staffRepo, transportRepo, outboxRepo)

	// --- Handlers ---
	invoiceHandler := invoice.NewHandlerWithRedis(invoiceService, rdb)
	ledgerHandler := ledger.NewHandler(ledgerService)
	staffHandler := staff.NewHandler(staffService)
	authHandler := auth.NewHandler(authService)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, rdb)

	// --- Routes Registration ---
	idempotency := middleware.Idempotency(rdb)

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		invoice.RegisterRoutes(api, invoiceHandler, authzService, idempotency)
		ledger.RegisterRoutes(api, ledgerHandler, authzService)
		staff.RegisterRoutes(api, staffHandler, authzService)
		payroll.RegisterRoutes(api, payrollHandler, authzService, idempotency)
	}

	return nil
}
