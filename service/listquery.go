package service

import (
	"sort"
	"strings"

	"github.com/BerniceZTT/portfolio_end/models"
)

// DefaultPageSize 项目看板默认每页条数
const DefaultPageSize = 12

// 状态排序优先级：Red在前，未知/缺失排最后
// 这是业务规则，不是字典序
var statusRank = map[string]int{
	BucketRed:   0,
	BucketAmber: 1,
	BucketGreen: 2,
}

// 重要程度排序优先级：High在前
var importanceRank = map[string]int{
	"high":   0,
	"medium": 1,
	"low":    2,
}

// FilterProjects 对项目列表应用AND组合的筛选条件
func FilterProjects(projects []models.Project, q models.ProjectListQuery) []models.Project {
	result := []models.Project{}

	search := strings.ToLower(strings.TrimSpace(q.Search))
	status := NormalizeRAGStatus(q.Status)
	importance := strings.ToLower(strings.TrimSpace(q.Importance))

	for _, p := range projects {
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		cur := CurrentStatus(p)
		if q.Status != "" {
			if cur == nil || NormalizeRAGStatus(cur.RAGStatus) != status {
				continue
			}
		}
		if q.Importance != "" && strings.ToLower(p.Importance) != importance {
			continue
		}
		if q.Manager != "" && p.ManagerName != q.Manager {
			continue
		}
		if !matchesEscalation(cur, q.Escalation) {
			continue
		}
		result = append(result, p)
	}

	return result
}

// matchesSearch 名称/客户/编码子串匹配，大小写不敏感
func matchesSearch(p models.Project, search string) bool {
	return strings.Contains(strings.ToLower(p.Name), search) ||
		strings.Contains(strings.ToLower(p.Account), search) ||
		strings.Contains(strings.ToLower(p.Code), search)
}

// matchesEscalation 客户升级三态筛选
func matchesEscalation(cur *models.ProjectStatus, escalation string) bool {
	switch escalation {
	case "escalated":
		return cur != nil && cur.ClientEscalation
	case "not_escalated":
		return cur == nil || !cur.ClientEscalation
	default: // all 或未指定
		return true
	}
}

// SortProjects 按单一字段稳定排序
// status与importance使用固定优先级顺序而非字典序
func SortProjects(projects []models.Project, sortBy, sortDir string) {
	if sortBy == "" {
		return
	}
	desc := sortDir == "desc"

	less := func(i, j int) bool { return false }
	switch sortBy {
	case "name":
		less = func(i, j int) bool {
			return strings.ToLower(projects[i].Name) < strings.ToLower(projects[j].Name)
		}
	case "manager":
		less = func(i, j int) bool {
			return strings.ToLower(projects[i].ManagerName) < strings.ToLower(projects[j].ManagerName)
		}
	case "status":
		less = func(i, j int) bool {
			return projectStatusRank(projects[i]) < projectStatusRank(projects[j])
		}
	case "importance":
		less = func(i, j int) bool {
			return projectImportanceRank(projects[i]) < projectImportanceRank(projects[j])
		}
	default:
		return
	}

	if desc {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}

	sort.SliceStable(projects, less)
}

// projectStatusRank 当前状态的排序优先级
func projectStatusRank(p models.Project) int {
	cur := CurrentStatus(p)
	if cur == nil {
		return len(statusRank) + 1
	}
	if rank, ok := statusRank[NormalizeRAGStatus(cur.RAGStatus)]; ok {
		return rank
	}
	return len(statusRank) + 1
}

// projectImportanceRank 重要程度的排序优先级
func projectImportanceRank(p models.Project) int {
	if rank, ok := importanceRank[strings.ToLower(strings.TrimSpace(p.Importance))]; ok {
		return rank
	}
	return len(importanceRank) + 1
}

// Paginate 固定页大小切片，页码从1开始
func Paginate(projects []models.Project, page, pageSize int) []models.Project {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page <= 0 {
		page = 1
	}

	start := (page - 1) * pageSize
	if start >= len(projects) {
		return []models.Project{}
	}
	end := start + pageSize
	if end > len(projects) {
		end = len(projects)
	}

	return projects[start:end]
}

// QueryProjects 筛选、排序、分页的完整管道
func QueryProjects(projects []models.Project, q models.ProjectListQuery) models.ProjectListResult {
	filtered := FilterProjects(projects, q)
	SortProjects(filtered, q.SortBy, q.SortDir)

	pageSize := q.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	page := q.Page
	if page <= 0 {
		page = 1
	}

	totalPages := (len(filtered) + pageSize - 1) / pageSize

	return models.ProjectListResult{
		Items:      Paginate(filtered, page, pageSize),
		Total:      len(filtered),
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
