package controllers

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/BerniceZTT/portfolio_end/models"
	"github.com/BerniceZTT/portfolio_end/repository"
	"github.com/BerniceZTT/portfolio_end/service"
	"github.com/BerniceZTT/portfolio_end/utils"
)

// GetWeeklyReports 获取周报列表
// GET /api/weekly-reports
func GetWeeklyReports(c *gin.Context) {
	projectID := c.Query("projectId")
	weekStart := c.Query("weekStart")

	// 构建查询条件
	query := bson.M{}
	if projectID != "" {
		query["projectId"] = projectID
	}
	if weekStart != "" {
		query["weekStart"] = weekStart
	}

	collection := repository.Collection(repository.WeeklyReportsCollection)
	ctx := repository.GetContext()

	findOptions := options.Find().SetSort(bson.D{{Key: "weekStart", Value: -1}, {Key: "createdAt", Value: -1}})
	cursor, err := collection.Find(ctx, query, findOptions)
	if err != nil {
		utils.Logger.Error().Err(err).Msg("[周报] 获取周报列表失败")
		utils.ErrorResponse(c, "获取周报列表失败", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var reports []models.WeeklyReport
	if err := cursor.All(ctx, &reports); err != nil {
		utils.Logger.Error().Err(err).Msg("[周报] 解析周报列表失败")
		utils.ErrorResponse(c, "获取周报列表失败", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"reports": reports,
			"total":   len(reports),
		},
	})
}

// GetWeeklyReportDetail 获取周报详情
// GET /api/weekly-reports/:id
func GetWeeklyReportDetail(c *gin.Context) {
	reportID := c.Param("id")
	objID, err := primitive.ObjectIDFromHex(reportID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的周报ID"})
		return
	}

	collection := repository.Collection(repository.WeeklyReportsCollection)
	ctx := repository.GetContext()

	var report models.WeeklyReport
	err = collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&report)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "周报不存在"})
		} else {
			utils.HandleError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    report,
	})
}

// CreateWeeklyReport 创建周报
// POST /api/weekly-reports
func CreateWeeklyReport(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req models.CreateWeeklyReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求数据格式不正确", "detail": err.Error()})
		return
	}

	// RAG状态必须能归一化到标准桶
	if service.NormalizeRAGStatus(req.RAGStatus) == service.BucketUnknown {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的RAG状态: " + req.RAGStatus})
		return
	}

	collection := repository.Collection(repository.WeeklyReportsCollection)
	ctx := repository.GetContext()

	// 同一项目同一周只允许一份周报
	existing := collection.FindOne(ctx, bson.M{
		"projectId": req.ProjectID,
		"weekStart": req.WeekStart,
	})
	if existing.Err() == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "该项目本周周报已存在"})
		return
	} else if existing.Err() != mongo.ErrNoDocuments {
		utils.HandleError(c, existing.Err())
		return
	}

	report := models.WeeklyReport{
		ProjectID:               req.ProjectID,
		ProjectName:             req.ProjectName,
		WeekStart:               req.WeekStart,
		RAGStatus:               req.RAGStatus,
		Highlights:              req.Highlights,
		Lowlights:               req.Lowlights,
		NextWeekPlan:            req.NextWeekPlan,
		ClientEscalation:        req.ClientEscalation,
		ClientEscalationDetails: req.ClientEscalationDetails,
		AuthorID:                user.ID,
		AuthorName:              user.Username,
		CreatedAt:               time.Now(),
		UpdatedAt:               time.Now(),
	}

	result, err := collection.InsertOne(ctx, report)
	if err != nil {
		utils.Logger.Error().Err(err).Msg("[周报] 创建周报失败")
		utils.ErrorResponse(c, "创建周报失败", http.StatusInternalServerError)
		return
	}

	report.ID = result.InsertedID.(primitive.ObjectID)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "周报创建成功",
		"data":    report,
	})
}

// UpdateWeeklyReport 更新周报
// PUT /api/weekly-reports/:id
func UpdateWeeklyReport(c *gin.Context) {
	reportID := c.Param("id")
	objID, err := primitive.ObjectIDFromHex(reportID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的周报ID"})
		return
	}

	var req models.UpdateWeeklyReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求数据格式不正确", "detail": err.Error()})
		return
	}

	update := bson.M{"updatedAt": time.Now()}
	if req.RAGStatus != "" {
		if service.NormalizeRAGStatus(req.RAGStatus) == service.BucketUnknown {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的RAG状态: " + req.RAGStatus})
			return
		}
		update["ragStatus"] = req.RAGStatus
	}
	if req.Highlights != "" {
		update["highlights"] = req.Highlights
	}
	if req.Lowlights != "" {
		update["lowlights"] = req.Lowlights
	}
	if req.NextWeekPlan != "" {
		update["nextWeekPlan"] = req.NextWeekPlan
	}
	if req.ClientEscalation != nil {
		update["clientEscalation"] = *req.ClientEscalation
	}
	if req.ClientEscalationDetails != "" {
		update["clientEscalationDetails"] = req.ClientEscalationDetails
	}

	collection := repository.Collection(repository.WeeklyReportsCollection)
	ctx := repository.GetContext()

	result, err := collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": update})
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "周报不存在"})
		return
	}

	utils.SuccessResponse(c, nil, "周报更新成功")
}

// DeleteWeeklyReport 删除周报
// DELETE /api/weekly-reports/:id
func DeleteWeeklyReport(c *gin.Context) {
	reportID := c.Param("id")
	objID, err := primitive.ObjectIDFromHex(reportID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的周报ID"})
		return
	}

	collection := repository.Collection(repository.WeeklyReportsCollection)
	ctx := repository.GetContext()

	result, err := collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "周报不存在"})
		return
	}

	utils.SuccessResponse(c, nil, "周报删除成功")
}

// GetWeeklyReportSummary 按周聚合的周报统计
// GET /api/weekly-reports/summary
func GetWeeklyReportSummary(c *gin.Context) {
	collection := repository.Collection(repository.WeeklyReportsCollection)
	ctx := repository.GetContext()

	cursor, err := collection.Find(ctx, bson.M{})
	if err != nil {
		utils.Logger.Error().Err(err).Msg("[周报] 获取周报汇总失败")
		utils.ErrorResponse(c, "获取周报汇总失败", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var reports []models.WeeklyReport
	if err := cursor.All(ctx, &reports); err != nil {
		utils.Logger.Error().Err(err).Msg("[周报] 解析周报汇总失败")
		utils.ErrorResponse(c, "获取周报汇总失败", http.StatusInternalServerError)
		return
	}

	// 按周起始日期分桶，RAG状态归一化后计数
	buckets := map[string]*models.WeeklyReportSummary{}
	for _, r := range reports {
		summary, ok := buckets[r.WeekStart]
		if !ok {
			summary = &models.WeeklyReportSummary{WeekStart: r.WeekStart}
			buckets[r.WeekStart] = summary
		}
		switch service.NormalizeRAGStatus(r.RAGStatus) {
		case service.BucketGreen:
			summary.Green++
		case service.BucketAmber:
			summary.Amber++
		case service.BucketRed:
			summary.Red++
		}
		summary.Total++
		if r.ClientEscalation {
			summary.Escalated++
		}
	}

	summaries := make([]models.WeeklyReportSummary, 0, len(buckets))
	for _, s := range buckets {
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].WeekStart < summaries[j].WeekStart
	})

	utils.SuccessResponse(c, summaries, "")
}
