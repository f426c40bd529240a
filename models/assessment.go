package models

// TrendPoint 趋势图数据点：某一天的RAG计数快照
type TrendPoint struct {
	Date  string `json:"date"`
	Green int    `json:"green"`
	Amber int    `json:"amber"`
	Red   int    `json:"red"`
	Total int    `json:"total"`
}

// Assessment 组织级组合评估记录（由外部LLM管道生成）
type Assessment struct {
	ID                 string                    `json:"id,omitempty"`
	AssessedPersonName string                    `json:"assessedPersonName"`
	AssessmentLevel    string                    `json:"assessmentLevel"`
	AssessmentDate     string                    `json:"assessmentDate"`
	GreenProjects      int                       `json:"greenProjects"`
	AmberProjects      int                       `json:"amberProjects"`
	RedProjects        int                       `json:"redProjects"`
	ErrorProjects      int                       `json:"errorProjects"`
	TotalProjects      int                       `json:"totalProjects"`
	StatusCounts       map[string]int            `json:"statusCounts,omitempty"`
	ImportanceGroups   map[string]map[string]int `json:"importanceGroups,omitempty"`
	KeyRisks           string                    `json:"keyRisks,omitempty"`
	Recommendations    string                    `json:"recommendations,omitempty"`
	Description        string                    `json:"description,omitempty"`
	OverallHealthScore *float64                  `json:"overallHealthScore"`
	Trends             []TrendPoint              `json:"trends,omitempty"`
}

// GenerateAssessmentRequest 触发外部重新评估的请求体
type GenerateAssessmentRequest struct {
	AssessmentLevel    string `json:"assessmentLevel" binding:"required"`
	AssessedPersonName string `json:"assessedPersonName" binding:"required"`
	LLMProvider        string `json:"llmProvider,omitempty"`
	ReAssess           bool   `json:"reAssess"`
}

// PortfolioMetrics 组合RAG统计响应
type PortfolioMetrics struct {
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}

// StrategicOverview 战略项目分组统计响应
type StrategicOverview struct {
	Found  bool           `json:"found"`
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}
