package app

import (
	"fcc_dashboard/docs"
	"fcc_dashboard/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// HTML 页面
	router.GET("/", c.dashboard.Page)

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("", c.dashboard.GetDashboard)
			dashboard.GET("/kpis", c.dashboard.GetKPIs)
			dashboard.GET("/charts", c.dashboard.GetCharts)
			dashboard.GET("/charts/:kind", c.dashboard.GetChart)
			dashboard.GET("/charts/:kind/image", c.dashboard.GetChartImage)
			dashboard.GET("/dataset", c.dashboard.GetDataset)
			dashboard.GET("/narrative", c.dashboard.GetNarrative)
			dashboard.POST("/preview", c.dashboard.Preview)
		}
	}
}
