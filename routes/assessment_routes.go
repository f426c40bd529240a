package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/BerniceZTT/portfolio_end/controllers"
)

func RegisterAssessmentRoutes(router *gin.Engine) {
	assessmentRoutes := router.Group("/api/organizational-assessments")

	assessmentRoutes.GET("/dashboard", controllers.GetAssessmentDashboard)
	assessmentRoutes.POST("/generate", controllers.GenerateAssessment)
}

func RegisterDashboardRoutes(router *gin.Engine) {
	dashboardRoutes := router.Group("/api/dashboard")

	dashboardRoutes.GET("/metrics", controllers.GetPortfolioMetrics)
	dashboardRoutes.GET("/trends", controllers.GetPortfolioTrends)
	dashboardRoutes.GET("/strategic", controllers.GetStrategicOverview)
}
