package service

import (
	"testing"

	"github.com/BerniceZTT/portfolio_end/models"
)

func TestNormalizeRAGStatus(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Green", "green"},
		{"GREEN", "green"},
		{"amber", "amber"},
		{"Yellow", "amber"},
		{"yellow", "amber"},
		{"Red", "red"},
		{"Error", "error"},
		{"", "unknown"},
		{"blue", "unknown"},
		{" green ", "green"},
	}

	for _, tt := range tests {
		if got := NormalizeRAGStatus(tt.input); got != tt.want {
			t.Errorf("NormalizeRAGStatus(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeRAGStatusIdempotent(t *testing.T) {
	inputs := []string{"Green", "Yellow", "RED", "error", "", "whatever"}
	for _, s := range inputs {
		once := NormalizeRAGStatus(s)
		twice := NormalizeRAGStatus(once)
		if once != twice {
			t.Errorf("归一化不幂等: normalize(%q)=%q, normalize(normalize)=%q", s, once, twice)
		}
	}
}

func TestCurrentStatusEmpty(t *testing.T) {
	p := models.Project{ID: "p1", Name: "empty"}
	if got := CurrentStatus(p); got != nil {
		t.Errorf("无状态记录时应返回nil, got %+v", got)
	}
}

func TestCurrentStatusMaxDate(t *testing.T) {
	p := models.Project{
		Statuses: []models.ProjectStatus{
			{ReportingDate: "2024-01-15", RAGStatus: "Red"},
			{ReportingDate: "2024-02-01", RAGStatus: "Green"},
			{ReportingDate: "2024-01-01", RAGStatus: "Amber"},
		},
	}
	got := CurrentStatus(p)
	if got == nil || got.RAGStatus != "Green" {
		t.Fatalf("应返回日期最大的记录, got %+v", got)
	}
}

func TestCurrentStatusTieLastWins(t *testing.T) {
	// 相同日期时输入顺序靠后的记录胜出
	p := models.Project{
		Statuses: []models.ProjectStatus{
			{ReportingDate: "2024-02-01", RAGStatus: "Red", WeeklyStatusUpdates: "first"},
			{ReportingDate: "2024-02-01", RAGStatus: "Amber", WeeklyStatusUpdates: "second"},
		},
	}
	got := CurrentStatus(p)
	if got == nil || got.WeeklyStatusUpdates != "second" {
		t.Fatalf("相同日期应取后出现的记录, got %+v", got)
	}
}

func TestAggregateProjects(t *testing.T) {
	projects := []models.Project{
		{Statuses: []models.ProjectStatus{{ReportingDate: "2024-01-01", RAGStatus: "Green"}}},
		{Statuses: []models.ProjectStatus{{ReportingDate: "2024-01-01", RAGStatus: "Yellow"}}},
		{Statuses: []models.ProjectStatus{{ReportingDate: "2024-01-01", RAGStatus: "RED"}}},
		{Statuses: []models.ProjectStatus{
			{ReportingDate: "2024-01-01", RAGStatus: "Red"},
			{ReportingDate: "2024-01-08", RAGStatus: "Green"},
		}},
	}

	m := AggregateProjects(projects)

	if m.Counts["green"] != 2 || m.Counts["amber"] != 1 || m.Counts["red"] != 1 {
		t.Errorf("计数错误: %+v", m.Counts)
	}
	if m.Total != len(projects) {
		t.Errorf("总数应等于项目数: total=%d, n=%d", m.Total, len(projects))
	}
}

func TestAggregateProjectsEmptyInput(t *testing.T) {
	m := AggregateProjects(nil)
	if m.Total != 0 {
		t.Errorf("空输入total应为0, got %d", m.Total)
	}
	for _, bucket := range []string{"green", "amber", "red", "error"} {
		if m.Counts[bucket] != 0 {
			t.Errorf("空输入桶%s应为0", bucket)
		}
	}
}

func TestAggregateProjectsNoStatusContributesNothing(t *testing.T) {
	projects := []models.Project{
		{ID: "p1"}, // 无状态记录
		{Statuses: []models.ProjectStatus{{ReportingDate: "2024-01-01", RAGStatus: "Green"}}},
	}
	m := AggregateProjects(projects)
	if m.Total != 1 {
		t.Errorf("无状态的项目不应计入任何桶: total=%d", m.Total)
	}
}

func TestAggregateStatusCounts(t *testing.T) {
	m := AggregateStatusCounts(map[string]int{
		"Green":  3,
		"YELLOW": 2,
		"red":    1,
		"Error":  1,
	})
	if m.Counts["green"] != 3 || m.Counts["amber"] != 2 || m.Counts["red"] != 1 || m.Counts["error"] != 1 {
		t.Errorf("键归一化错误: %+v", m.Counts)
	}
	if m.Total != 7 {
		t.Errorf("total = %d, want 7", m.Total)
	}
}

func TestStrategicGroup(t *testing.T) {
	// 空映射不报错
	if _, ok := StrategicGroup(map[string]map[string]int{}); ok {
		t.Error("空映射不应找到战略分组")
	}

	// 正常键
	sub, ok := StrategicGroup(map[string]map[string]int{
		"strategic": {"green": 2, "red": 1},
	})
	if !ok || GroupTotal(sub, false) != 3 {
		t.Errorf("正常键提取失败: sub=%v ok=%v", sub, ok)
	}

	// 带尾部空格的脏键
	sub, ok = StrategicGroup(map[string]map[string]int{
		"strategic ": {"green": 2},
	})
	if !ok || GroupTotal(sub, false) != 2 {
		t.Errorf("应容忍尾部空格键: sub=%v ok=%v", sub, ok)
	}
}

func TestGroupTotalExcludeError(t *testing.T) {
	sub := map[string]int{"green": 2, "amber": 1, "error": 3}
	if got := GroupTotal(sub, true); got != 3 {
		t.Errorf("排除error后total = %d, want 3", got)
	}
	if got := GroupTotal(sub, false); got != 6 {
		t.Errorf("含error的total = %d, want 6", got)
	}
}

func TestBuildTrendSeriesEmpty(t *testing.T) {
	series := BuildTrendSeries(nil)
	if len(series) != 0 {
		t.Errorf("空输入应返回空序列, got %d", len(series))
	}
}

func TestBuildTrendSeriesDedupAndSort(t *testing.T) {
	assessments := []models.Assessment{
		{
			Trends: []models.TrendPoint{
				{Date: "2024-01-08", Green: 5, Amber: 1, Red: 0, Total: 6},
				{Date: "2024-01-01", Green: 3, Amber: 2, Red: 1, Total: 6},
			},
		},
		{
			Trends: []models.TrendPoint{
				// 与第一条评估重复的日期，计数不同，应保留先遇到的
				{Date: "2024-01-01", Green: 9, Amber: 9, Red: 9, Total: 27},
				{Date: "2024-01-15", Green: 4, Amber: 2, Red: 0, Total: 6},
			},
		},
	}

	series := BuildTrendSeries(assessments)

	if len(series) != 3 {
		t.Fatalf("去重后应有3个点, got %d", len(series))
	}

	// 升序且无重复日期
	seen := map[string]bool{}
	for i, tp := range series {
		if seen[tp.Date] {
			t.Errorf("日期重复: %s", tp.Date)
		}
		seen[tp.Date] = true
		if i > 0 && series[i-1].Date > tp.Date {
			t.Errorf("序列未按日期升序: %s > %s", series[i-1].Date, tp.Date)
		}
	}

	// 重复日期保留先遇到的点
	if series[0].Date != "2024-01-01" || series[0].Green != 3 {
		t.Errorf("重复日期应保留先遇到的点: %+v", series[0])
	}
}

func TestBuildTrendSeriesFallback(t *testing.T) {
	assessments := []models.Assessment{
		{
			AssessmentDate: "2024-03-01",
			GreenProjects:  3,
			AmberProjects:  2,
			RedProjects:    1,
			ErrorProjects:  1,
			TotalProjects:  7,
		},
	}

	series := BuildTrendSeries(assessments)

	if len(series) != 1 {
		t.Fatalf("退化路径应合成1个点, got %d", len(series))
	}
	tp := series[0]
	if tp.Green != 3 || tp.Amber != 2 || tp.Red != 1 {
		t.Errorf("RAG计数错误: %+v", tp)
	}
	// total = 7 - 1(error)
	if tp.Total != 6 {
		t.Errorf("total = %d, want 6", tp.Total)
	}
}

func TestBuildTrendSeriesKeepsAuthoritativeTotal(t *testing.T) {
	// 上游total已排除error项目，不得按green+amber+red重算
	assessments := []models.Assessment{
		{
			Trends: []models.TrendPoint{
				{Date: "2024-01-01", Green: 3, Amber: 2, Red: 1, Total: 5},
			},
		},
	}
	series := BuildTrendSeries(assessments)
	if len(series) != 1 || series[0].Total != 5 {
		t.Errorf("上游total应原样保留: %+v", series)
	}
}
