package app

import (
	"os"

	"go-groomops/internal/middleware"
	"go-groomops/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure and registers every module on the
// router.
func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))
	router.Use(middleware.RateLimitByIP(20, 40))

	return registerModules(router, gormDB, redisClient)
}
