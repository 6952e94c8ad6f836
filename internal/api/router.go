package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/turismo-backend-go/internal/config"
	"github.com/jengzang/turismo-backend-go/internal/handler"
	"github.com/jengzang/turismo-backend-go/internal/middleware"
	"github.com/jengzang/turismo-backend-go/internal/service"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, viewService *service.ViewService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(), middleware.RequestTiming())

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Disposition, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Turismo Backend API is running",
			"source":  viewService.Source(),
		})
	})

	pages := handler.NewPageHandler(viewService)
	dashboard := handler.NewDashboardHandler(viewService)
	maps := handler.NewMapHandler(viewService)

	limiter := middleware.NewRateLimiter(cfg.RateLimit, time.Duration(cfg.RateWindowSeconds)*time.Second)
	exportLimit := middleware.RateLimit(limiter)

	r.GET("/", pages.GetLanding)

	// API 路由组
	api := r.Group("/api/v1")
	{
		api.GET("/overview", pages.GetOverview)

		dash := api.Group("/dashboard")
		{
			dash.GET("", dashboard.GetDashboard)
			dash.GET("/boxplot", dashboard.GetBoxplot)
			dash.GET("/export", exportLimit, dashboard.ExportDashboard)
		}

		m := api.Group("/map")
		{
			m.GET("", maps.GetMap)
			m.GET("/export", exportLimit, maps.ExportMap)
		}
	}

	return r
}
