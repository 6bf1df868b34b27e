package holiday

import (
	"tdl-hrms/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	holidays := r.Group("/holidays")
	holidays.Use(middleware.AuthMiddleware())
	{
		holidays.GET("", middleware.Authorize(enforcer, "holidays", "read"), h.GetAll)
		holidays.POST("", middleware.Authorize(enforcer, "holidays", "write"), h.Create)
		holidays.DELETE("/:id", middleware.Authorize(enforcer, "holidays", "write"), h.Delete)
	}
}
