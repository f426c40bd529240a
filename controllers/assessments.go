package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BerniceZTT/portfolio_end/models"
	"github.com/BerniceZTT/portfolio_end/service"
	"github.com/BerniceZTT/portfolio_end/utils"
)

// GetAssessmentDashboard 组织评估看板代理
// GET /api/organizational-assessments/dashboard
func GetAssessmentDashboard(c *gin.Context) {
	assessedPersonName := c.Query("assessedPersonName")
	assessmentLevel := c.Query("assessmentLevel")

	assessments, err := portfolioClient.DashboardAssessments(c.Request.Context(), assessedPersonName, assessmentLevel)
	if err != nil {
		utils.HandleError(c, utils.CreateUpstreamError(err))
		return
	}

	c.JSON(http.StatusOK, assessments)
}

// GenerateAssessment 触发外部(重新)生成评估
// POST /api/organizational-assessments/generate
func GenerateAssessment(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req models.GenerateAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求数据格式不正确", "detail": err.Error()})
		return
	}

	jobID := uuid.NewString()
	utils.LogInfo(map[string]interface{}{
		"jobId":              jobID,
		"operator":           user.Username,
		"assessmentLevel":    req.AssessmentLevel,
		"assessedPersonName": req.AssessedPersonName,
		"reAssess":           req.ReAssess,
	}, "触发评估生成")

	result, err := portfolioClient.GenerateAssessment(c.Request.Context(), req)
	if err != nil {
		utils.HandleError(c, utils.CreateUpstreamError(err))
		return
	}

	utils.SuccessResponse(c, gin.H{
		"jobId":    jobID,
		"upstream": result,
	}, "评估生成已触发")
}

// GetPortfolioTrends 趋势序列
// GET /api/dashboard/trends
func GetPortfolioTrends(c *gin.Context) {
	assessedPersonName := c.Query("assessedPersonName")
	assessmentLevel := c.Query("assessmentLevel")

	assessments, err := portfolioClient.DashboardAssessments(c.Request.Context(), assessedPersonName, assessmentLevel)
	if err != nil {
		utils.HandleError(c, utils.CreateUpstreamError(err))
		return
	}

	series := service.BuildTrendSeries(assessments)
	utils.SuccessResponse(c, series, "")
}

// GetStrategicOverview 战略项目分组统计
// GET /api/dashboard/strategic
// 取最新一条评估记录的importanceGroups
func GetStrategicOverview(c *gin.Context) {
	assessedPersonName := c.Query("assessedPersonName")
	assessmentLevel := c.Query("assessmentLevel")

	assessments, err := portfolioClient.DashboardAssessments(c.Request.Context(), assessedPersonName, assessmentLevel)
	if err != nil {
		utils.HandleError(c, utils.CreateUpstreamError(err))
		return
	}

	overview := models.StrategicOverview{Counts: map[string]int{}}
	if latest := latestAssessment(assessments); latest != nil {
		if sub, ok := service.StrategicGroup(latest.ImportanceGroups); ok {
			overview.Found = true
			overview.Counts = sub
			overview.Total = service.GroupTotal(sub, false)
		}
	}

	utils.SuccessResponse(c, overview, "")
}

// latestAssessment 取评估日期最大的记录，空列表返回nil
func latestAssessment(assessments []models.Assessment) *models.Assessment {
	if len(assessments) == 0 {
		return nil
	}

	latest := &assessments[0]
	latestDate, _ := utils.ParseReportDate(latest.AssessmentDate)
	for i := 1; i < len(assessments); i++ {
		date, _ := utils.ParseReportDate(assessments[i].AssessmentDate)
		if !date.Before(latestDate) {
			latest = &assessments[i]
			latestDate = date
		}
	}
	return latest
}
