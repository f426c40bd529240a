package models

// Importance 项目重要程度枚举
type Importance string

const (
	ImportanceLow       Importance = "Low"
	ImportanceMedium    Importance = "Medium"
	ImportanceHigh      Importance = "High"
	ImportanceCritical  Importance = "Critical"
	ImportanceStrategic Importance = "Strategic"
)

// ProjectStatus 项目每周状态记录
type ProjectStatus struct {
	ReportingDate           string `json:"reportingDate"`
	RAGStatus               string `json:"ragStatus"`
	Importance              string `json:"importance,omitempty"`
	ClientEscalation        bool   `json:"clientEscalation"`
	ClientEscalationDetails string `json:"clientEscalationDetails,omitempty"`
	WeeklyStatusUpdates     string `json:"weeklyStatusUpdates,omitempty"`
	Issues                  string `json:"issues,omitempty"`
	PlanForGreen            string `json:"planForGreen,omitempty"`
	NextWeekPlan            string `json:"nextWeekPlan,omitempty"`
	SDLCPhase               string `json:"sdlcPhase,omitempty"`
	SQARemarks              string `json:"sqaRemarks,omitempty"`
	AIStatus                string `json:"aiStatus,omitempty"`
	AIStatusDescription     string `json:"aiStatusDescription,omitempty"`
}

// Project 外部组合API返回的项目记录
type Project struct {
	ID          string          `json:"projectId"`
	Name        string          `json:"projectName"`
	Code        string          `json:"projectCode,omitempty"`
	Account     string          `json:"account,omitempty"`
	Tower       string          `json:"tower,omitempty"`
	ManagerName string          `json:"projectManagerName,omitempty"`
	Importance  string          `json:"importance,omitempty"`
	IsActive    bool            `json:"isActive"`
	Statuses    []ProjectStatus `json:"statuses,omitempty"`
}

// ProjectListQuery 项目看板查询参数
type ProjectListQuery struct {
	Search     string `form:"search"`
	Status     string `form:"status"`
	Importance string `form:"importance"`
	Manager    string `form:"manager"`
	Escalation string `form:"escalation"` // all | escalated | not_escalated
	SortBy     string `form:"sortBy"`     // name | status | importance | manager
	SortDir    string `form:"sortDir"`    // asc | desc
	Page       int    `form:"page"`
	PageSize   int    `form:"pageSize"`
}

// ProjectListResult 项目看板分页结果
type ProjectListResult struct {
	Items      []Project `json:"items"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	TotalPages int       `json:"totalPages"`
}
