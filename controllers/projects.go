package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BerniceZTT/portfolio_end/models"
	"github.com/BerniceZTT/portfolio_end/service"
	"github.com/BerniceZTT/portfolio_end/utils"
)

// GetProjects 项目列表代理
// GET /api/projects
// 成功时原样透传外部API的响应体，失败时返回 {message, error} 结构
func GetProjects(c *gin.Context) {
	body, err := portfolioClient.ListProjectsRaw(c.Request.Context())
	if err != nil {
		utils.LogError(err, map[string]interface{}{"path": c.Request.URL.Path}, "获取项目列表失败")
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "获取项目列表失败",
			"error":   err.Error(),
		})
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// GetProjectBoard 项目看板查询：筛选 + 排序 + 分页
// GET /api/projects/board
func GetProjectBoard(c *gin.Context) {
	var query models.ProjectListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "查询参数格式不正确", "detail": err.Error()})
		return
	}

	projects, err := portfolioClient.ListProjects(c.Request.Context())
	if err != nil {
		utils.HandleError(c, utils.CreateUpstreamError(err))
		return
	}

	result := service.QueryProjects(projects, query)
	utils.SuccessResponse(c, result, "")
}

// GetPortfolioMetrics 组合RAG统计
// GET /api/dashboard/metrics
func GetPortfolioMetrics(c *gin.Context) {
	projects, err := portfolioClient.ListProjects(c.Request.Context())
	if err != nil {
		utils.HandleError(c, utils.CreateUpstreamError(err))
		return
	}

	metrics := service.AggregateProjects(projects)
	utils.SuccessResponse(c, metrics, "")
}

// GetProjectManagers 项目经理去重列表，用于看板筛选下拉
// GET /api/projects/managers
func GetProjectManagers(c *gin.Context) {
	projects, err := portfolioClient.ListProjects(c.Request.Context())
	if err != nil {
		utils.HandleError(c, utils.CreateUpstreamError(err))
		return
	}

	seen := map[string]bool{}
	managers := []string{}
	for _, p := range projects {
		if p.ManagerName == "" || seen[p.ManagerName] {
			continue
		}
		seen[p.ManagerName] = true
		managers = append(managers, p.ManagerName)
	}

	utils.SuccessResponse(c, managers, "")
}
