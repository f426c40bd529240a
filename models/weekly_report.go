package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WeeklyReport 周报模型 (MongoDB文档结构)
type WeeklyReport struct {
	ID                      primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ProjectID               string             `bson:"projectId" json:"projectId"`
	ProjectName             string             `bson:"projectName" json:"projectName"`
	WeekStart               string             `bson:"weekStart" json:"weekStart"` // 周一日期, YYYY-MM-DD
	RAGStatus               string             `bson:"ragStatus" json:"ragStatus"`
	Highlights              string             `bson:"highlights" json:"highlights"`
	Lowlights               string             `bson:"lowlights,omitempty" json:"lowlights,omitempty"`
	NextWeekPlan            string             `bson:"nextWeekPlan,omitempty" json:"nextWeekPlan,omitempty"`
	ClientEscalation        bool               `bson:"clientEscalation" json:"clientEscalation"`
	ClientEscalationDetails string             `bson:"clientEscalationDetails,omitempty" json:"clientEscalationDetails,omitempty"`

	// 创建信息
	AuthorID   string    `bson:"authorId" json:"authorId"`
	AuthorName string    `bson:"authorName" json:"authorName"`
	CreatedAt  time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt  time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// CreateWeeklyReportRequest 创建周报请求
type CreateWeeklyReportRequest struct {
	ProjectID               string `json:"projectId" binding:"required"`
	ProjectName             string `json:"projectName" binding:"required"`
	WeekStart               string `json:"weekStart" binding:"required"`
	RAGStatus               string `json:"ragStatus" binding:"required"`
	Highlights              string `json:"highlights"`
	Lowlights               string `json:"lowlights"`
	NextWeekPlan            string `json:"nextWeekPlan"`
	ClientEscalation        bool   `json:"clientEscalation"`
	ClientEscalationDetails string `json:"clientEscalationDetails"`
}

// UpdateWeeklyReportRequest 更新周报请求
type UpdateWeeklyReportRequest struct {
	RAGStatus               string `json:"ragStatus,omitempty"`
	Highlights              string `json:"highlights,omitempty"`
	Lowlights               string `json:"lowlights,omitempty"`
	NextWeekPlan            string `json:"nextWeekPlan,omitempty"`
	ClientEscalation        *bool  `json:"clientEscalation,omitempty"`
	ClientEscalationDetails string `json:"clientEscalationDetails,omitempty"`
}

// WeeklyReportSummary 按周聚合的周报统计
type WeeklyReportSummary struct {
	WeekStart string `json:"weekStart" bson:"_id"`
	Green     int    `json:"green" bson:"green"`
	Amber     int    `json:"amber" bson:"amber"`
	Red       int    `json:"red" bson:"red"`
	Total     int    `json:"total" bson:"total"`
	Escalated int    `json:"escalated" bson:"escalated"`
}
