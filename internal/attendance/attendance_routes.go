package attendance

import (
	"tdl-hrms/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer, idem gin.HandlerFunc) {
	attendance := r.Group("/attendance")
	attendance.Use(middleware.AuthMiddleware())
	{
		attendance.POST("/login", middleware.Authorize(enforcer, "attendance", "write"), idem, h.AddLogin)
		attendance.POST("/logoff", middleware.Authorize(enforcer, "attendance", "write"), idem, h.AddLogoff)
		attendance.POST("/absent", middleware.Authorize(enforcer, "attendance", "write"), idem, h.MarkAbsent)
		attendance.GET("", middleware.Authorize(enforcer, "attendance", "read"), h.GetToday)
		attendance.GET("/:empProfileId", middleware.Authorize(enforcer, "attendance", "read"), h.GetByDate)
		attendance.GET("/:empProfileId/range", middleware.Authorize(enforcer, "attendance", "read"), h.GetByRange)
	}
}
