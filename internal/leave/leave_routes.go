package leave

import (
	"tdl-hrms/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware())
	{
		leaves.POST("", middleware.Authorize(enforcer, "leaves", "write"), h.Submit)
		leaves.GET("/mine", middleware.Authorize(enforcer, "leaves", "read"), h.GetMine)
		leaves.GET("", middleware.Authorize(enforcer, "leaves", "approve"), h.GetAll)
		leaves.GET("/employee/:empProfileId", middleware.Authorize(enforcer, "leaves", "approve"), h.GetByEmployee)
		leaves.PATCH("/:id/status", middleware.Authorize(enforcer, "leaves", "approve"), h.UpdateStatus)
	}
}
