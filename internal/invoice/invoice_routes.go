package invoice

import (
	"go-groomops/internal/authz"
	"go-groomops/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authzService authz.Service, idempotency gin.HandlerFunc) {
	invoices := r.Group("/invoices")
	invoices.Use(middleware.AuthMiddleware())
	if idempotency != nil {
		invoices.Use(idempotency)
	}
	{
		invoices.POST("", authz.Authorize(authzService, "invoice", "create"), handler.CreateDraft)
		invoices.GET("", authz.Authorize(authzService, "invoice", "read"), handler.GetAll)
		invoices.GET("/:id", authz.Authorize(authzService, "invoice", "read"), handler.GetById)
		invoices.POST("/:id/issue", authz.Authorize(authzService, "invoice", "update"), handler.Issue)
		invoices.POST("/:id/void", authz.Authorize(authzService, "invoice", "update"), handler.Void)
		invoices.POST("/:id/credit-notes", authz.Authorize(authzService, "invoice", "update"), handler.CreateCreditNote)
	}
}
