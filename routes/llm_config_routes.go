package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/BerniceZTT/portfolio_end/controllers"
)

func RegisterLLMConfigRoutes(router *gin.Engine) {
	llmConfigRoutes := router.Group("/api/llm-config")

	llmConfigRoutes.GET("", controllers.GetLLMConfigs)
	llmConfigRoutes.GET("/active", controllers.GetActiveLLMConfig)
	llmConfigRoutes.POST("", controllers.CreateLLMConfig)
	llmConfigRoutes.PUT("/:id", controllers.UpdateLLMConfig)
	llmConfigRoutes.PATCH("/:id/activate", controllers.ActivateLLMConfig)
	llmConfigRoutes.DELETE("/:id", controllers.DeleteLLMConfig)
}
