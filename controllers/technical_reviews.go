package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/BerniceZTT/portfolio_end/models"
	"github.com/BerniceZTT/portfolio_end/repository"
	"github.com/BerniceZTT/portfolio_end/utils"
)

// 合法的技术评审类型
var validReviewTypes = map[string]bool{
	"architecture": true,
	"code":         true,
	"security":     true,
	"sdlc":         true,
}

// GetTechnicalReviews 获取技术评审列表
// GET /api/technical-reviews
func GetTechnicalReviews(c *gin.Context) {
	projectID := c.Query("projectId")
	status := c.Query("status")

	query := bson.M{}
	if projectID != "" {
		query["projectId"] = projectID
	}
	if status != "" {
		query["status"] = status
	}

	collection := repository.Collection(repository.TechnicalReviewsCollection)
	ctx := repository.GetContext()

	findOptions := options.Find().SetSort(bson.D{{Key: "reviewDate", Value: -1}})
	cursor, err := collection.Find(ctx, query, findOptions)
	if err != nil {
		utils.Logger.Error().Err(err).Msg("[技术评审] 获取评审列表失败")
		utils.ErrorResponse(c, "获取评审列表失败", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var reviews []models.TechnicalReview
	if err := cursor.All(ctx, &reviews); err != nil {
		utils.Logger.Error().Err(err).Msg("[技术评审] 解析评审列表失败")
		utils.ErrorResponse(c, "获取评审列表失败", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"reviews": reviews,
			"total":   len(reviews),
		},
	})
}

// GetTechnicalReviewDetail 获取技术评审详情
// GET /api/technical-reviews/:id
func GetTechnicalReviewDetail(c *gin.Context) {
	reviewID := c.Param("id")
	objID, err := primitive.ObjectIDFromHex(reviewID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的评审ID"})
		return
	}

	collection := repository.Collection(repository.TechnicalReviewsCollection)
	ctx := repository.GetContext()

	var review models.TechnicalReview
	err = collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&review)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "评审不存在"})
		} else {
			utils.HandleError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    review,
	})
}

// CreateTechnicalReview 创建技术评审
// POST /api/technical-reviews
func CreateTechnicalReview(c *gin.Context) {
	var req models.CreateTechnicalReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求数据格式不正确", "detail": err.Error()})
		return
	}

	if !validReviewTypes[req.ReviewType] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的评审类型: " + req.ReviewType})
		return
	}

	review := models.TechnicalReview{
		ProjectID:       req.ProjectID,
		ProjectName:     req.ProjectName,
		ReviewDate:      req.ReviewDate,
		ReviewerName:    req.ReviewerName,
		ReviewType:      req.ReviewType,
		Findings:        req.Findings,
		Recommendations: req.Recommendations,
		Rating:          req.Rating,
		Status:          models.ReviewStatusDraft,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	collection := repository.Collection(repository.TechnicalReviewsCollection)
	ctx := repository.GetContext()

	result, err := collection.InsertOne(ctx, review)
	if err != nil {
		utils.Logger.Error().Err(err).Msg("[技术评审] 创建评审失败")
		utils.ErrorResponse(c, "创建评审失败", http.StatusInternalServerError)
		return
	}

	review.ID = result.InsertedID.(primitive.ObjectID)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "评审创建成功",
		"data":    review,
	})
}

// UpdateTechnicalReview 更新技术评审
// PUT /api/technical-reviews/:id
func UpdateTechnicalReview(c *gin.Context) {
	reviewID := c.Param("id")
	objID, err := primitive.ObjectIDFromHex(reviewID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的评审ID"})
		return
	}

	var req models.UpdateTechnicalReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求数据格式不正确", "detail": err.Error()})
		return
	}

	update := bson.M{"updatedAt": time.Now()}
	if req.ReviewDate != "" {
		update["reviewDate"] = req.ReviewDate
	}
	if req.ReviewerName != "" {
		update["reviewerName"] = req.ReviewerName
	}
	if req.ReviewType != "" {
		if !validReviewTypes[req.ReviewType] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的评审类型: " + req.ReviewType})
			return
		}
		update["reviewType"] = req.ReviewType
	}
	if req.Findings != "" {
		update["findings"] = req.Findings
	}
	if req.Recommendations != "" {
		update["recommendations"] = req.Recommendations
	}
	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "评分必须在1到5之间"})
			return
		}
		update["rating"] = *req.Rating
	}
	if req.Status != "" {
		switch req.Status {
		case models.ReviewStatusDraft, models.ReviewStatusSubmitted, models.ReviewStatusClosed:
			update["status"] = req.Status
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的评审状态: " + string(req.Status)})
			return
		}
	}

	collection := repository.Collection(repository.TechnicalReviewsCollection)
	ctx := repository.GetContext()

	result, err := collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": update})
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "评审不存在"})
		return
	}

	utils.SuccessResponse(c, nil, "评审更新成功")
}

// DeleteTechnicalReview 删除技术评审
// DELETE /api/technical-reviews/:id
func DeleteTechnicalReview(c *gin.Context) {
	reviewID := c.Param("id")
	objID, err := primitive.ObjectIDFromHex(reviewID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的评审ID"})
		return
	}

	collection := repository.Collection(repository.TechnicalReviewsCollection)
	ctx := repository.GetContext()

	result, err := collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "评审不存在"})
		return
	}

	utils.SuccessResponse(c, nil, "评审删除成功")
}
