package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/BerniceZTT/portfolio_end/controllers"
)

func RegisterWeeklyReportRoutes(router *gin.Engine) {
	weeklyReportRoutes := router.Group("/api/weekly-reports")

	weeklyReportRoutes.GET("", controllers.GetWeeklyReports)
	weeklyReportRoutes.GET("/summary", controllers.GetWeeklyReportSummary)
	weeklyReportRoutes.GET("/:id", controllers.GetWeeklyReportDetail)
	weeklyReportRoutes.POST("", controllers.CreateWeeklyReport)
	weeklyReportRoutes.PUT("/:id", controllers.UpdateWeeklyReport)
	weeklyReportRoutes.DELETE("/:id", controllers.DeleteWeeklyReport)
}
