package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/BerniceZTT/portfolio_end/controllers"
)

func RegisterTechnicalReviewRoutes(router *gin.Engine) {
	technicalReviewRoutes := router.Group("/api/technical-reviews")

	technicalReviewRoutes.GET("", controllers.GetTechnicalReviews)
	technicalReviewRoutes.GET("/:id", controllers.GetTechnicalReviewDetail)
	technicalReviewRoutes.POST("", controllers.CreateTechnicalReview)
	technicalReviewRoutes.PUT("/:id", controllers.UpdateTechnicalReview)
	technicalReviewRoutes.DELETE("/:id", controllers.DeleteTechnicalReview)
}
