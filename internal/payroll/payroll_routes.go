package payroll

import (
	"go-groomops/internal/authz"
	"go-groomops/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authzService authz.Service, idempotency gin.HandlerFunc) {
	group := r.Group("/payroll")
	group.Use(middleware.AuthMiddleware())
	if idempotency != nil {
		group.Use(idempotency)
	}
	{
		group.GET("/:staffId/preview", authz.Authorize(authzService, "payroll", "read"), handler.Preview)
		group.GET("/:staffId/history", authz.Authorize(authzService, "payroll", "read"), handler.History)
		group.POST("/close", authz.Authorize(authzService, "payroll", "create"), handler.ClosePeriod)
	}
}
