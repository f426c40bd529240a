package service

import (
	"sort"
	"strings"

	"github.com/BerniceZTT/portfolio_end/models"
	"github.com/BerniceZTT/portfolio_end/utils"
)

// RAG状态标准桶
const (
	BucketGreen   = "green"
	BucketAmber   = "amber"
	BucketRed     = "red"
	BucketError   = "error"
	BucketUnknown = "unknown"
)

// NormalizeRAGStatus 将自由文本状态映射到标准桶
// 大小写不敏感；历史值 "Yellow" 视为 "amber"；其余未知值归入 "unknown"
func NormalizeRAGStatus(status string) string {
	s := strings.ToLower(strings.TrimSpace(status))
	if s == "yellow" {
		return BucketAmber
	}
	switch s {
	case BucketGreen, BucketAmber, BucketRed, BucketError:
		return s
	}
	return BucketUnknown
}

// CurrentStatus 返回项目的当前状态：上报日期最大的记录
// 日期相同时取输入顺序中靠后的一条；序列为空返回nil
func CurrentStatus(p models.Project) *models.ProjectStatus {
	if len(p.Statuses) == 0 {
		return nil
	}

	// 无法解析的日期按零值参与比较，不会胜过任何有效日期
	current := &p.Statuses[0]
	currentDate, _ := utils.ParseReportDate(current.ReportingDate)

	for i := 1; i < len(p.Statuses); i++ {
		date, _ := utils.ParseReportDate(p.Statuses[i].ReportingDate)
		if !date.Before(currentDate) {
			current = &p.Statuses[i]
			currentDate = date
		}
	}

	return current
}

// AggregateProjects 将项目列表按当前状态聚合为RAG计数
// 没有状态记录的项目不计入任何桶
func AggregateProjects(projects []models.Project) models.PortfolioMetrics {
	counts := emptyCounts()

	for _, p := range projects {
		cur := CurrentStatus(p)
		if cur == nil {
			continue
		}
		counts[NormalizeRAGStatus(cur.RAGStatus)]++
	}

	return models.PortfolioMetrics{Counts: counts, Total: sumCounts(counts)}
}

// AggregateStatusCounts 规范化评估记录自带的statusCounts并求总数
func AggregateStatusCounts(raw map[string]int) models.PortfolioMetrics {
	counts := emptyCounts()

	for key, n := range raw {
		counts[NormalizeRAGStatus(key)] += n
	}

	return models.PortfolioMetrics{Counts: counts, Total: sumCounts(counts)}
}

// StrategicGroup 从重要程度分组中取出战略项目桶
// 上游生产方存在带尾部空格的 "strategic " 键的脏数据，这里必须容忍
func StrategicGroup(groups map[string]map[string]int) (map[string]int, bool) {
	if sub, ok := groups["strategic"]; ok {
		return sub, true
	}
	if sub, ok := groups["strategic "]; ok {
		return sub, true
	}
	return nil, false
}

// GroupTotal 求分组子映射的总数，excludeError为真时跳过error键
func GroupTotal(sub map[string]int, excludeError bool) int {
	total := 0
	for key, n := range sub {
		if excludeError && NormalizeRAGStatus(key) == BucketError {
			continue
		}
		total += n
	}
	return total
}

// BuildTrendSeries 构建可直接绘图的趋势序列
// 1. 展平所有评估记录的趋势点
// 2. 按日期去重，保留先遇到的点
// 3. 按日期升序稳定排序
// 4. 完全没有趋势数据时，退化为每条评估记录合成一个点
// 上游趋势点自带的total是权威值，不重新计算
func BuildTrendSeries(assessments []models.Assessment) []models.TrendPoint {
	series := []models.TrendPoint{}
	seen := map[string]bool{}

	for _, a := range assessments {
		for _, tp := range a.Trends {
			if seen[tp.Date] {
				continue
			}
			seen[tp.Date] = true
			series = append(series, tp)
		}
	}

	// 退化路径：用顶层计数合成，total需扣除error项目
	if len(series) == 0 {
		for _, a := range assessments {
			if seen[a.AssessmentDate] {
				continue
			}
			seen[a.AssessmentDate] = true
			total := a.TotalProjects - a.ErrorProjects
			if total < 0 {
				total = 0
			}
			series = append(series, models.TrendPoint{
				Date:  a.AssessmentDate,
				Green: a.GreenProjects,
				Amber: a.AmberProjects,
				Red:   a.RedProjects,
				Total: total,
			})
		}
	}

	sort.SliceStable(series, func(i, j int) bool {
		ti, iOK := utils.ParseReportDate(series[i].Date)
		tj, jOK := utils.ParseReportDate(series[j].Date)
		if iOK && jOK {
			return ti.Before(tj)
		}
		return series[i].Date < series[j].Date
	})

	return series
}

// emptyCounts 返回带全部标准桶的零值计数
func emptyCounts() map[string]int {
	return map[string]int{
		BucketGreen: 0,
		BucketAmber: 0,
		BucketRed:   0,
		BucketError: 0,
	}
}

// sumCounts 求计数总和
func sumCounts(counts map[string]int) int {
	total := 0
	for _, n := range counts {
		total += n
	}
	return total
}
