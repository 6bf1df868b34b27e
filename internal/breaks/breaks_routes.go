package breaks

import (
	"tdl-hrms/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer, idem gin.HandlerFunc) {
	brk := r.Group("/breaks")
	brk.Use(middleware.AuthMiddleware())
	{
		write := middleware.Authorize(enforcer, "breaks", "write")
		read := middleware.Authorize(enforcer, "breaks", "read")

		brk.POST("/tea-break-1/start", write, idem, h.StartTeaBreak1)
		brk.POST("/tea-break-1/end", write, idem, h.EndTeaBreak1)
		brk.POST("/lunch-break/start", write, idem, h.StartLunchBreak)
		brk.POST("/lunch-break/end", write, idem, h.EndLunchBreak)
		brk.POST("/tea-break-2/start", write, idem, h.StartTeaBreak2)
		brk.POST("/tea-break-2/end", write, idem, h.EndTeaBreak2)
		brk.POST("/absent", write, idem, h.MarkAbsent)
		brk.GET("/:empProfileId/daily", read, h.GetDailyActivity)
		brk.GET("/:empProfileId/range", read, h.GetByRange)
	}
}
