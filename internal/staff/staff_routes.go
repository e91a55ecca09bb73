package staff

import (
	"go-groomops/internal/authz"
	"go-groomops/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authzService authz.Service) {
	hr := r.Group("/hr")
	hr.Use(middleware.AuthMiddleware())
	{
		hr.POST("/attendance/check-in", authz.Authorize(authzService, "hr", "create"), handler.CheckIn)
		hr.POST("/attendance/check-out", authz.Authorize(authzService, "hr", "create"), handler.CheckOut)
		hr.POST("/adjustments", authz.Authorize(authzService, "hr", "create"), handler.CreateAdjustment)
		hr.GET("/staff/:id", authz.Authorize(authzService, "hr", "read"), handler.GetProfile)
	}
}
