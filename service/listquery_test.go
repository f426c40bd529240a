package service

import (
	"fmt"
	"testing"

	"github.com/BerniceZTT/portfolio_end/models"
)

func projectWithStatus(name, manager, importance, rag string, escalated bool) models.Project {
	return models.Project{
		ID:          name,
		Name:        name,
		ManagerName: manager,
		Importance:  importance,
		Statuses: []models.ProjectStatus{
			{ReportingDate: "2024-06-01", RAGStatus: rag, ClientEscalation: escalated},
		},
	}
}

func TestFilterProjectsConjunction(t *testing.T) {
	projects := []models.Project{
		projectWithStatus("alpha", "Priya", "High", "Red", false),
		projectWithStatus("beta", "Priya", "Low", "Red", false),
		projectWithStatus("gamma", "Rahul", "High", "Green", false),
		projectWithStatus("delta", "Rahul", "High", "Red", true),
	}

	got := FilterProjects(projects, models.ProjectListQuery{Status: "red", Importance: "high"})

	if len(got) != 2 {
		t.Fatalf("AND筛选应返回2个项目, got %d", len(got))
	}
	for _, p := range got {
		if p.Name != "alpha" && p.Name != "delta" {
			t.Errorf("意外的项目: %s", p.Name)
		}
	}
}

func TestFilterProjectsSearch(t *testing.T) {
	projects := []models.Project{
		{Name: "Phoenix Rebuild", Account: "Acme", Code: "PX-1"},
		{Name: "Atlas", Account: "Phoenix Corp", Code: "AT-1"},
		{Name: "Orion", Account: "Beta", Code: "OR-1"},
	}

	got := FilterProjects(projects, models.ProjectListQuery{Search: "phoenix"})
	if len(got) != 2 {
		t.Errorf("名称/客户子串匹配应命中2个, got %d", len(got))
	}

	got = FilterProjects(projects, models.ProjectListQuery{Search: "or-1"})
	if len(got) != 1 || got[0].Name != "Orion" {
		t.Errorf("编码匹配失败: %+v", got)
	}
}

func TestFilterProjectsEscalation(t *testing.T) {
	projects := []models.Project{
		projectWithStatus("a", "m", "High", "Red", true),
		projectWithStatus("b", "m", "High", "Green", false),
		{Name: "c"}, // 无状态记录
	}

	if got := FilterProjects(projects, models.ProjectListQuery{Escalation: "escalated"}); len(got) != 1 || got[0].Name != "a" {
		t.Errorf("escalated筛选错误: %+v", got)
	}
	if got := FilterProjects(projects, models.ProjectListQuery{Escalation: "not_escalated"}); len(got) != 2 {
		t.Errorf("not_escalated筛选错误: %d", len(got))
	}
	if got := FilterProjects(projects, models.ProjectListQuery{Escalation: "all"}); len(got) != 3 {
		t.Errorf("all不应过滤任何项目: %d", len(got))
	}
}

func TestSortProjectsStatusOrder(t *testing.T) {
	projects := []models.Project{
		projectWithStatus("g", "m", "Low", "Green", false),
		projectWithStatus("a", "m", "Low", "Amber", false),
		{Name: "none"},
		projectWithStatus("r", "m", "Low", "Red", false),
	}

	SortProjects(projects, "status", "asc")

	want := []string{"r", "a", "g", "none"}
	for i, name := range want {
		if projects[i].Name != name {
			t.Fatalf("状态排序错误: 位置%d是%s, want %s", i, projects[i].Name, name)
		}
	}
}

func TestSortProjectsImportanceOrder(t *testing.T) {
	projects := []models.Project{
		{Name: "l", Importance: "Low"},
		{Name: "h", Importance: "High"},
		{Name: "x"},
		{Name: "m", Importance: "Medium"},
	}

	SortProjects(projects, "importance", "asc")

	want := []string{"h", "m", "l", "x"}
	for i, name := range want {
		if projects[i].Name != name {
			t.Fatalf("重要程度排序错误: 位置%d是%s, want %s", i, projects[i].Name, name)
		}
	}
}

func TestSortProjectsStableForTies(t *testing.T) {
	// 两个Red项目应保持输入相对顺序
	projects := []models.Project{
		projectWithStatus("red-first", "m", "Low", "Red", false),
		projectWithStatus("green", "m", "Low", "Green", false),
		projectWithStatus("red-second", "m", "Low", "Red", false),
	}

	SortProjects(projects, "status", "asc")

	if projects[0].Name != "red-first" || projects[1].Name != "red-second" {
		t.Errorf("稳定排序被破坏: %s, %s", projects[0].Name, projects[1].Name)
	}
}

func TestSortProjectsDescending(t *testing.T) {
	projects := []models.Project{
		{Name: "b"},
		{Name: "a"},
		{Name: "c"},
	}

	SortProjects(projects, "name", "desc")

	want := []string{"c", "b", "a"}
	for i, name := range want {
		if projects[i].Name != name {
			t.Fatalf("降序排序错误: %v", projects)
		}
	}
}

func TestPaginate(t *testing.T) {
	projects := make([]models.Project, 25)
	for i := range projects {
		projects[i] = models.Project{Name: fmt.Sprintf("p%02d", i)}
	}

	page1 := Paginate(projects, 1, 12)
	page2 := Paginate(projects, 2, 12)
	page3 := Paginate(projects, 3, 12)

	if len(page1) != 12 || len(page2) != 12 || len(page3) != 1 {
		t.Fatalf("分页大小错误: %d, %d, %d", len(page1), len(page2), len(page3))
	}

	// 三页拼接应等于原始顺序
	combined := append(append(append([]models.Project{}, page1...), page2...), page3...)
	for i, p := range combined {
		if p.Name != projects[i].Name {
			t.Fatalf("分页拼接顺序错误: 位置%d", i)
		}
	}

	// 超出范围的页返回空
	if got := Paginate(projects, 4, 12); len(got) != 0 {
		t.Errorf("超出范围应返回空页, got %d", len(got))
	}
}

func TestQueryProjects(t *testing.T) {
	projects := []models.Project{
		projectWithStatus("alpha", "Priya", "High", "Red", false),
		projectWithStatus("beta", "Priya", "High", "Green", false),
		projectWithStatus("gamma", "Rahul", "High", "Amber", false),
	}

	result := QueryProjects(projects, models.ProjectListQuery{
		Manager: "Priya",
		SortBy:  "status",
		SortDir: "asc",
	})

	if result.Total != 2 || result.Page != 1 || result.PageSize != DefaultPageSize {
		t.Fatalf("查询结果元数据错误: %+v", result)
	}
	if result.Items[0].Name != "alpha" || result.Items[1].Name != "beta" {
		t.Errorf("Red应排在Green之前: %+v", result.Items)
	}
	if result.TotalPages != 1 {
		t.Errorf("totalPages = %d, want 1", result.TotalPages)
	}
}
