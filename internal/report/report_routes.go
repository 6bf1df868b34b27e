package report

import (
	"tdl-hrms/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware())
	{
		reports.GET("/monthly", middleware.Authorize(enforcer, "reports", "read"), h.Monthly)
		reports.GET("/dashboard", h.Dashboard)
		reports.GET("/dashboard/:empProfileId", middleware.Authorize(enforcer, "reports", "read"), h.DashboardFor)
	}
}
