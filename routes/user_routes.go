package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/BerniceZTT/portfolio_end/controllers"
)

func RegisterUserRoutes(router *gin.Engine) {
	userRoutes := router.Group("/api/users")

	userRoutes.GET("", controllers.GetUsers)
	userRoutes.GET("/me", controllers.GetCurrentUser)
}
