package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/BerniceZTT/portfolio_end/controllers"
)

func RegisterProjectRoutes(router *gin.Engine) {
	projectRoutes := router.Group("/api/projects")

	projectRoutes.GET("", controllers.GetProjects)
	projectRoutes.GET("/board", controllers.GetProjectBoard)
	projectRoutes.GET("/managers", controllers.GetProjectManagers)
}
