package ledger

import (
	"go-groomops/internal/authz"
	"go-groomops/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authzService authz.Service) {
	payments := r.Group("/payments")
	payments.Use(middleware.AuthMiddleware())
	{
		payments.POST("", authz.Authorize(authzService, "payment", "create"), handler.CreatePayment)
	}

	ledgerGroup := r.Group("/ledger")
	ledgerGroup.Use(middleware.AuthMiddleware())
	{
		ledgerGroup.GET("", authz.Authorize(authzService, "ledger", "read"), handler.GetLedger)
	}
}
