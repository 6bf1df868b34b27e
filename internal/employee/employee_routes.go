package employee

import (
	"tdl-hrms/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("", middleware.Authorize(enforcer, "employees", "read"), h.GetAll)
		employees.GET("/birthdays/today", middleware.Authorize(enforcer, "employees", "read"), h.TodaysBirthdays)
		employees.GET("/birthdays", middleware.Authorize(enforcer, "employees", "read"), h.BirthdaysByMonth)
		employees.GET("/:id", middleware.Authorize(enforcer, "employees", "read"), h.GetByID)
		employees.POST("", middleware.Authorize(enforcer, "employees", "write"), h.Create)
		employees.PUT("/:id", middleware.Authorize(enforcer, "employees", "write"), h.Update)
		employees.DELETE("/:id", middleware.Authorize(enforcer, "employees", "write"), h.Delete)
	}
}
